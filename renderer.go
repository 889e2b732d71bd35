package asciify

import (
	"io"
	"strings"
)

// Ramp holds the characters used to approximate gray levels, from the densest to the sparsest.
const Ramp = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "

// AsciiArt is the text rendering of a grid, one line per pixel row.
type AsciiArt []string

// Quantize maps a luminance value onto a ramp character.
// The index is truncated, so 255 lands exactly on the last character.
func Quantize(l uint8) byte {
	return Ramp[int(float64(l)/255*float64(len(Ramp)-1))]
}

// Render converts every pixel of the grid into two ramp characters,
// compensating for monospace glyphs being roughly twice as tall as wide.
func Render(g *Grid) AsciiArt {
	art := make(AsciiArt, 0, g.Height)
	line := make([]byte, 2*g.Width)

	for y := 0; y < g.Height; y++ {
		for x, l := range g.Row(y) {
			c := Quantize(l)
			line[2*x] = c
			line[2*x+1] = c
		}
		art = append(art, string(line))
	}

	return art
}

// String joins the lines with a single newline, without a trailing one.
func (a AsciiArt) String() string {
	return strings.Join(a, "\n")
}

// WriteTo writes the art as returned by String.
func (a AsciiArt) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String())
	return int64(n), err
}
