package asciify

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/esimov/asciify/utils"
	"github.com/pkg/errors"
)

// Processor options
type Processor struct {
	NewWidth  int
	NewHeight int
	Filter    imaging.ResampleFilter
	Spinner   *utils.Spinner
	// AutoOrient applies the EXIF orientation tag of JPEG sources before conversion.
	AutoOrient bool
}

// Request maps the requested width and height onto a scale request.
func (p *Processor) Request() (ScaleRequest, error) {
	return NewScaleRequest(p.NewWidth, p.NewHeight)
}

// Convert runs the grayscale, scale and render stages over an already decoded image.
func (p *Processor) Convert(img image.Image) (AsciiArt, error) {
	req, err := p.Request()
	if err != nil {
		return nil, err
	}
	s := &Scaler{Filter: p.Filter}
	grid, err := s.Scale(GridFromImage(img), req)
	if err != nil {
		return nil, err
	}

	return Render(grid), nil
}

// Decode reads an image in any of the registered formats.
// The stored pixel order is kept unless AutoOrient is set.
func (p *Processor) Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(p.AutoOrient))
	if err != nil {
		return nil, errors.Wrap(ErrDecode, err.Error())
	}
	return img, nil
}

// Process decodes the source image and writes its ascii rendering into w.
// We are using the io package, since we can provide different input and output types,
// as long as they implement the io.Reader and io.Writer interface.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	art, err := p.Art(r)
	if err != nil {
		return err
	}
	if _, err := art.WriteTo(w); err != nil {
		return errors.Wrap(ErrOutput, err.Error())
	}
	return nil
}

// Art decodes the source image and returns its ascii rendering.
func (p *Processor) Art(r io.Reader) (AsciiArt, error) {
	img, err := p.Decode(r)
	if err != nil {
		return nil, err
	}
	return p.Convert(img)
}
