package asciify

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// Grid is a row-major 8-bit luminance buffer with its origin in the top-left corner.
// Pipeline stages never modify a grid they received; they return a new one.
type Grid struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewGrid allocates a black grid of the given size.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Pix:    make([]uint8, width*height),
		Width:  width,
		Height: height,
	}
}

// NewGridFromPix builds a grid from a copy of pix.
// The buffer length has to match width*height exactly.
func NewGridFromPix(pix []uint8, width, height int) (*Grid, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, errors.Wrapf(ErrBufferSize, "%d bytes for a %dx%d grid", len(pix), width, height)
	}
	g := NewGrid(width, height)
	copy(g.Pix, pix)

	return g, nil
}

// GridFromImage converts any image type to a luminance grid with min-point at (0, 0).
func GridFromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	minX, minY := bounds.Min.X, bounds.Min.Y
	g := NewGrid(bounds.Dx(), bounds.Dy())

	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < g.Height; y++ {
			si := src.PixOffset(minX, minY+y)
			copy(g.Pix[y*g.Width:(y+1)*g.Width], src.Pix[si:si+g.Width])
		}
	case *image.NRGBA:
		for y := 0; y < g.Height; y++ {
			si := src.PixOffset(minX, minY+y)
			di := y * g.Width
			for x := 0; x < g.Width; x++ {
				s := src.Pix[si : si+3 : si+3]
				g.Pix[di] = luma(s[0], s[1], s[2])
				si += 4
				di++
			}
		}
	default:
		for y := 0; y < g.Height; y++ {
			di := y * g.Width
			for x := 0; x < g.Width; x++ {
				c := color.NRGBAModel.Convert(img.At(minX+x, minY+y)).(color.NRGBA)
				g.Pix[di] = luma(c.R, c.G, c.B)
				di++
			}
		}
	}

	return g
}

// luma returns the Rec. 709 gray level of an unpremultiplied color, truncated.
// The alpha channel is ignored, so transparent pixels keep their color.
func luma(r, g, b uint8) uint8 {
	return uint8((2126*uint32(r) + 7152*uint32(g) + 722*uint32(b)) / 10000)
}

// At returns the luminance at (x, y).
func (g *Grid) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Set changes the luminance at (x, y).
func (g *Grid) Set(x, y int, l uint8) {
	g.Pix[y*g.Width+x] = l
}

// Row returns the pixels of row y. The slice shares the grid buffer and must not be modified.
func (g *Grid) Row(y int) []uint8 {
	return g.Pix[y*g.Width : (y+1)*g.Width : (y+1)*g.Width]
}

// Empty reports whether the grid has no pixels.
func (g *Grid) Empty() bool {
	return g.Width == 0 || g.Height == 0
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	dst := NewGrid(g.Width, g.Height)
	copy(dst.Pix, g.Pix)

	return dst
}

// Image returns the grid as a newly allocated grayscale image.
func (g *Grid) Image() *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		copy(dst.Pix[dst.PixOffset(0, y):], g.Row(y))
	}

	return dst
}
