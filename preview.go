package asciify

import (
	"image"
	"image/draw"

	"github.com/esimov/asciify/utils"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	snapshotFontSize = 12.0
	snapshotDPI      = 72.0
)

// Snapshot draws the ascii art with a monospace font, white on black.
// The image size follows from the number of lines, the longest line and the glyph metrics.
func (a AsciiArt) Snapshot() (*image.Gray, error) {
	ttf, err := freetype.ParseFont(gomono.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parsing the snapshot font")
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    snapshotFontSize,
		DPI:     snapshotDPI,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	advance, _ := face.GlyphAdvance('M')
	metrics := face.Metrics()
	cellWidth := advance.Ceil()
	ascent := metrics.Ascent.Ceil()
	cellHeight := utils.Max(ascent+metrics.Descent.Ceil(), metrics.Height.Ceil())

	var cols int
	for _, line := range a {
		cols = utils.Max(cols, len(line))
	}

	dst := image.NewGray(image.Rect(0, 0, cols*cellWidth, len(a)*cellHeight))
	draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)
	if cols == 0 {
		return dst, nil
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(snapshotDPI)
	ctx.SetFont(ttf)
	ctx.SetFontSize(snapshotFontSize)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.White)

	for y, line := range a {
		if line == "" {
			continue
		}
		pt := freetype.Pt(0, y*cellHeight+ascent)
		if _, err := ctx.DrawString(line, pt); err != nil {
			return nil, errors.Wrapf(err, "drawing line %d", y)
		}
	}

	return dst, nil
}
