package asciify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_ShouldFollowTextLayout(t *testing.T) {
	small, err := AsciiArt{"$$", "  "}.Snapshot()
	require.NoError(t, err)

	wide, err := AsciiArt{"$$$$", "    "}.Snapshot()
	require.NoError(t, err)

	tall, err := AsciiArt{"$$", "  ", "$$", "  "}.Snapshot()
	require.NoError(t, err)

	assert.Greater(t, small.Bounds().Dx(), 0)
	assert.Greater(t, small.Bounds().Dy(), 0)
	assert.Equal(t, 2*small.Bounds().Dx(), wide.Bounds().Dx())
	assert.Equal(t, small.Bounds().Dy(), wide.Bounds().Dy())
	assert.Equal(t, 2*small.Bounds().Dy(), tall.Bounds().Dy())
}

func TestSnapshot_ShouldDrawGlyphs(t *testing.T) {
	img, err := AsciiArt{"$$$$"}.Snapshot()
	require.NoError(t, err)

	var lit int
	for _, v := range img.Pix {
		if v > 0 {
			lit++
		}
	}
	assert.Greater(t, lit, 0)

	blank, err := AsciiArt{"    "}.Snapshot()
	require.NoError(t, err)
	for _, v := range blank.Pix {
		require.Zero(t, v)
	}
}

func TestSnapshot_EmptyArt(t *testing.T) {
	img, err := AsciiArt{}.Snapshot()
	require.NoError(t, err)
	assert.True(t, img.Bounds().Empty())
}

func TestSnapshot_WidthFollowsLongestLine(t *testing.T) {
	even, err := AsciiArt{"$$$$", "$$$$"}.Snapshot()
	require.NoError(t, err)

	ragged, err := AsciiArt{"$$", "$$$$", ""}.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, even.Bounds().Dx(), ragged.Bounds().Dx())
	assert.Equal(t, 3*even.Bounds().Dy()/2, ragged.Bounds().Dy())
}
