package asciify

import (
	"image"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientGrid(width, height int) *Grid {
	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Set(x, y, uint8((x*7+y*13)%256))
		}
	}
	return g
}

func TestScaleRequest_Shapes(t *testing.T) {
	assert := assert.New(t)

	req, err := NewScaleRequest(0, 0)
	assert.NoError(err)
	assert.True(req.IsUnconstrained())
	assert.Equal("unconstrained", req.String())

	req, err = NewScaleRequest(30, 0)
	assert.NoError(err)
	assert.Equal("width(30)", req.String())

	req, err = NewScaleRequest(0, 12)
	assert.NoError(err)
	assert.Equal("height(12)", req.String())

	req, err = NewScaleRequest(30, 12)
	assert.NoError(err)
	assert.Equal("both(30, 12)", req.String())
	w, h := req.Dimensions()
	assert.Equal(30, w)
	assert.Equal(12, h)

	assert.True(Unconstrained().IsUnconstrained())
	assert.True(ScaleRequest{}.IsUnconstrained())
}

func TestScaleRequest_ShouldRejectInvalidDimensions(t *testing.T) {
	_, err := NewScaleRequest(-1, 10)
	assert.True(t, errors.Is(err, ErrInvalidDimension))

	_, err = Width(0)
	assert.True(t, errors.Is(err, ErrInvalidDimension))

	_, err = Height(-4)
	assert.True(t, errors.Is(err, ErrInvalidDimension))

	_, err = Both(10, 0)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
}

func TestScaleRequest_TargetSizeShouldTruncate(t *testing.T) {
	req, _ := Width(10)
	w, h := req.TargetSize(30, 20)
	assert.Equal(t, 10, w)
	assert.Equal(t, 6, h) // 10 / 30 * 20 = 6.67

	req, _ = Height(7)
	w, h = req.TargetSize(10, 20)
	assert.Equal(t, 3, w) // 7 / 20 * 10 = 3.5
	assert.Equal(t, 7, h)

	req, _ = Both(5, 9)
	w, h = req.TargetSize(100, 100)
	assert.Equal(t, 5, w)
	assert.Equal(t, 9, h)

	w, h = Unconstrained().TargetSize(13, 17)
	assert.Equal(t, 13, w)
	assert.Equal(t, 17, h)
}

func TestScaler_BothDimensions(t *testing.T) {
	s := NewScaler()
	src := gradientGrid(40, 30)

	for _, size := range [][2]int{{10, 10}, {80, 5}, {3, 60}, {40, 30}} {
		req, err := Both(size[0], size[1])
		require.NoError(t, err)

		dst, err := s.Scale(src, req)
		require.NoError(t, err)
		assert.Equal(t, size[0], dst.Width)
		assert.Equal(t, size[1], dst.Height)
		assert.Len(t, dst.Pix, size[0]*size[1])
	}
}

func TestScaler_WidthOnlyShouldPreserveAspectRatio(t *testing.T) {
	s := NewScaler()
	src := gradientGrid(200, 100)

	req, err := Width(50)
	require.NoError(t, err)

	dst, err := s.Scale(src, req)
	require.NoError(t, err)
	assert.Equal(t, 50, dst.Width)
	assert.Equal(t, 25, dst.Height)
}

func TestScaler_HeightOnlyShouldPreserveAspectRatio(t *testing.T) {
	s := NewScaler()
	src := gradientGrid(20, 10)

	req, err := Height(7)
	require.NoError(t, err)

	dst, err := s.Scale(src, req)
	require.NoError(t, err)
	assert.Equal(t, 14, dst.Width)
	assert.Equal(t, 7, dst.Height)
}

func TestScaler_UnconstrainedShouldCopy(t *testing.T) {
	s := NewScaler()
	src := gradientGrid(imgWidth, imgHeight)

	once, err := s.Scale(src, Unconstrained())
	require.NoError(t, err)
	assert.Equal(t, src, once)

	twice, err := s.Scale(once, Unconstrained())
	require.NoError(t, err)
	assert.Equal(t, once, twice)

	// The result must not share the source buffer.
	once.Set(0, 0, src.At(0, 0)+1)
	assert.NotEqual(t, src.At(0, 0), once.At(0, 0))
}

func TestScaler_UnconstrainedShouldNotResample(t *testing.T) {
	s := &Scaler{Resample: func(image.Image, int, int) *image.NRGBA {
		t.Fatal("the resampler should not be invoked")
		return nil
	}}

	_, err := s.Scale(gradientGrid(4, 4), Unconstrained())
	assert.NoError(t, err)
}

func TestScaler_UniformGridStaysUniform(t *testing.T) {
	s := NewScaler()
	src := NewGrid(16, 16)
	for i := range src.Pix {
		src.Pix[i] = 255
	}

	req, _ := Both(5, 3)
	dst, err := s.Scale(src, req)
	require.NoError(t, err)
	for _, l := range dst.Pix {
		assert.Equal(t, uint8(255), l)
	}
}

func TestScaler_ZeroDerivedDimensionShouldYieldEmptyGrid(t *testing.T) {
	s := &Scaler{Resample: func(image.Image, int, int) *image.NRGBA {
		t.Fatal("the resampler should not be invoked")
		return nil
	}}

	req, _ := Width(1)
	dst, err := s.Scale(gradientGrid(100, 1), req)
	require.NoError(t, err)
	assert.Equal(t, 1, dst.Width)
	assert.Equal(t, 0, dst.Height)
	assert.True(t, dst.Empty())
}

func TestScaler_ShouldFailOnBufferSizeMismatch(t *testing.T) {
	s := &Scaler{Resample: func(src image.Image, width, height int) *image.NRGBA {
		return image.NewNRGBA(image.Rect(0, 0, width-1, height))
	}}

	req, _ := Both(8, 8)
	_, err := s.Scale(gradientGrid(4, 4), req)
	assert.True(t, errors.Is(err, ErrBufferSize))

	s.Resample = func(image.Image, int, int) *image.NRGBA { return nil }
	_, err = s.Scale(gradientGrid(4, 4), req)
	assert.True(t, errors.Is(err, ErrBufferSize))
}

func TestScaler_CustomFilter(t *testing.T) {
	s := &Scaler{Filter: imaging.NearestNeighbor}
	src := NewGrid(2, 1)
	src.Set(1, 0, 255)

	req, _ := Both(4, 1)
	dst, err := s.Scale(src, req)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 255, 255}, dst.Pix)
}
