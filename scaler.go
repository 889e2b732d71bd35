package asciify

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

type scaleKind int

const (
	unconstrained scaleKind = iota
	widthOnly
	heightOnly
	bothSides
)

// ScaleRequest describes the target size of a grid. Only four shapes are meaningful:
// no resize, a fixed width, a fixed height, or both. The zero value is Unconstrained.
type ScaleRequest struct {
	kind   scaleKind
	width  int
	height int
}

// Unconstrained requests no resize at all.
func Unconstrained() ScaleRequest {
	return ScaleRequest{kind: unconstrained}
}

// Width requests a fixed width; the height follows the source aspect ratio.
func Width(w int) (ScaleRequest, error) {
	if w <= 0 {
		return ScaleRequest{}, errors.Wrapf(ErrInvalidDimension, "width %d", w)
	}
	return ScaleRequest{kind: widthOnly, width: w}, nil
}

// Height requests a fixed height; the width follows the source aspect ratio.
func Height(h int) (ScaleRequest, error) {
	if h <= 0 {
		return ScaleRequest{}, errors.Wrapf(ErrInvalidDimension, "height %d", h)
	}
	return ScaleRequest{kind: heightOnly, height: h}, nil
}

// Both requests a fixed width and height, ignoring the source aspect ratio.
func Both(w, h int) (ScaleRequest, error) {
	if w <= 0 || h <= 0 {
		return ScaleRequest{}, errors.Wrapf(ErrInvalidDimension, "size %dx%d", w, h)
	}
	return ScaleRequest{kind: bothSides, width: w, height: h}, nil
}

// NewScaleRequest maps a pair of optional dimensions, where zero means absent,
// onto one of the four request shapes.
func NewScaleRequest(w, h int) (ScaleRequest, error) {
	switch {
	case w < 0 || h < 0:
		return ScaleRequest{}, errors.Wrapf(ErrInvalidDimension, "size %dx%d", w, h)
	case w > 0 && h > 0:
		return Both(w, h)
	case w > 0:
		return Width(w)
	case h > 0:
		return Height(h)
	}
	return Unconstrained(), nil
}

// Dimensions returns the requested width and height; an absent side is reported as zero.
func (r ScaleRequest) Dimensions() (int, int) {
	return r.width, r.height
}

// IsUnconstrained reports whether the request keeps the source size.
func (r ScaleRequest) IsUnconstrained() bool {
	return r.kind == unconstrained
}

func (r ScaleRequest) String() string {
	switch r.kind {
	case widthOnly:
		return fmt.Sprintf("width(%d)", r.width)
	case heightOnly:
		return fmt.Sprintf("height(%d)", r.height)
	case bothSides:
		return fmt.Sprintf("both(%d, %d)", r.width, r.height)
	}
	return "unconstrained"
}

// ResampleFunc resizes an image to exactly width x height pixels.
type ResampleFunc func(src image.Image, width, height int) *image.NRGBA

// Scaler resizes luminance grids.
type Scaler struct {
	// Filter is the resampling filter used by the default resampler.
	// The zero value selects imaging.Lanczos.
	Filter imaging.ResampleFilter
	// Resample overrides the resampling capability. When nil imaging.Resize is used.
	Resample ResampleFunc
}

// NewScaler returns a Scaler using the Lanczos filter.
func NewScaler() *Scaler {
	return &Scaler{Filter: imaging.Lanczos}
}

func (s *Scaler) resampler() ResampleFunc {
	if s.Resample != nil {
		return s.Resample
	}
	filter := s.Filter
	if filter.Kernel == nil {
		filter = imaging.Lanczos
	}
	return func(src image.Image, width, height int) *image.NRGBA {
		return imaging.Resize(src, width, height, filter)
	}
}

// TargetSize computes the size a grid of srcWidth x srcHeight is scaled to.
// A derived side is truncated toward zero.
func (r ScaleRequest) TargetSize(srcWidth, srcHeight int) (int, int) {
	switch r.kind {
	case widthOnly:
		if srcWidth == 0 {
			return r.width, 0
		}
		return r.width, int(float64(r.width) / float64(srcWidth) * float64(srcHeight))
	case heightOnly:
		if srcHeight == 0 {
			return 0, r.height
		}
		return int(float64(r.height) / float64(srcHeight) * float64(srcWidth)), r.height
	case bothSides:
		return r.width, r.height
	}
	return srcWidth, srcHeight
}

// Scale returns a new grid resized according to the request.
// An unconstrained request returns a pixel identical copy of the source.
func (s *Scaler) Scale(g *Grid, req ScaleRequest) (*Grid, error) {
	if req.IsUnconstrained() {
		return NewGridFromPix(g.Pix, g.Width, g.Height)
	}

	width, height := req.TargetSize(g.Width, g.Height)
	if width == 0 || height == 0 || g.Empty() {
		return NewGrid(width, height), nil
	}

	dst := s.resampler()(g.Image(), width, height)
	if dst == nil || dst.Bounds().Dx() != width || dst.Bounds().Dy() != height {
		var got image.Rectangle
		if dst != nil {
			got = dst.Bounds()
		}
		return nil, errors.Wrapf(ErrBufferSize, "resampled to %v, want %dx%d", got.Size(), width, height)
	}

	// The resampled image is gray, so any of the color channels holds the luminance.
	pix := make([]uint8, 0, width*height)
	for y := 0; y < height; y++ {
		i := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		for x := 0; x < width; x++ {
			pix = append(pix, dst.Pix[i])
			i += 4
		}
	}

	return NewGridFromPix(pix, width, height)
}
