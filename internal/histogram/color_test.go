package histogram

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func bgrFrame(t *testing.T, rows, cols int, pix []uint8) gocv.Mat {
	return frameFromBytes(t, rows, cols, gocv.MatTypeCV8UC3, pix)
}

func TestColorCalculate_ChannelsAreIndependent(t *testing.T) {
	frame := bgrFrame(t, 1, 2, []uint8{
		1, 2, 3,
		1, 5, 6,
	})

	h := NewColor()
	require.NoError(t, h.Calculate(frame))

	assert.Equal(t, 2.0, h.bins[0][1])
	assert.Equal(t, 1.0, h.bins[1][2])
	assert.Equal(t, 1.0, h.bins[1][5])
	assert.Equal(t, 1.0, h.bins[2][3])
	assert.Equal(t, 1.0, h.bins[2][6])
}

func TestColorCalculate_ChannelSumsEqualPixelCount(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	rows, cols := 37, 53
	pix := make([]uint8, rows*cols*3)
	rng.Read(pix)

	h := NewColor()
	require.NoError(t, h.Calculate(bgrFrame(t, rows, cols, pix)))

	for c := 0; c < 3; c++ {
		assert.Equal(t, float64(rows*cols), sum(h.bins[c][:]), "channel %d", c)
	}
}

func TestColorCalculate_InvalidFormatKeepsBins(t *testing.T) {
	h := NewColor()
	require.NoError(t, h.Calculate(bgrFrame(t, 1, 1, []uint8{4, 5, 6})))
	before := h.bins

	gray := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV8UC1)
	defer gray.Close()
	require.ErrorIs(t, h.Calculate(gray), ErrInvalidFormat)
	assert.Equal(t, before, h.bins)

	bgra := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV8UC4)
	defer bgra.Close()
	require.ErrorIs(t, h.Calculate(bgra), ErrInvalidFormat)
	assert.Equal(t, before, h.bins)

	float3 := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV32FC3)
	defer float3.Close()
	require.ErrorIs(t, h.Calculate(float3), ErrInvalidFormat)
	assert.Equal(t, before, h.bins)
}

func TestColorNormalize_SharedPeak(t *testing.T) {
	// Blue is constant, green and red split over two values.
	frame := bgrFrame(t, 1, 4, []uint8{
		0, 10, 20,
		0, 10, 21,
		0, 11, 20,
		0, 11, 21,
	})

	h := NewColor()
	require.NoError(t, h.Calculate(frame))
	h.Normalize()

	assert.Equal(t, 1.0, h.bins[0][0])
	assert.Equal(t, 0.5, h.bins[1][10])
	assert.Equal(t, 0.5, h.bins[2][21])

	peak := 0.0
	for c := range h.bins {
		for _, v := range h.bins[c] {
			peak = math.Max(peak, v)
		}
	}
	assert.Equal(t, 1.0, peak)
}

func TestColorAllBlackFrame(t *testing.T) {
	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 4, 4, gocv.MatTypeCV8UC3)
	defer frame.Close()

	h := NewColor()
	require.NoError(t, h.Calculate(frame))
	for c := range h.bins {
		assert.Equal(t, 16.0, h.bins[c][0])
		assert.Equal(t, 16.0, sum(h.bins[c][:]))
	}

	h.Normalize()
	for c := range h.bins {
		assert.Equal(t, 1.0, h.bins[c][0])
		for i := 1; i < NumBins; i++ {
			v := h.bins[c][i]
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
			assert.Zero(t, v)
		}
	}

	chart := h.Render()
	defer chart.Close()
	require.Equal(t, gocv.MatTypeCV8UC3, chart.Type())

	// Only bin 0 has height; everything right of its contour stays black
	// above the baseline.
	for row := 0; row < ChartHeight-1; row++ {
		for col := 2; col < ChartWidth; col++ {
			px := chart.GetVecbAt(row, col)
			require.Equal(t, gocv.Vecb{0, 0, 0}, px, "row %d col %d", row, col)
		}
	}
}

func TestColorRender_EmptyHistogram(t *testing.T) {
	h := NewColor()
	h.Normalize()

	chart := h.Render()
	defer chart.Close()

	require.Equal(t, ChartHeight, chart.Rows())
	require.Equal(t, ChartWidth, chart.Cols())

	for row := 0; row < ChartHeight-1; row++ {
		for col := 0; col < ChartWidth; col++ {
			require.Equal(t, gocv.Vecb{0, 0, 0}, chart.GetVecbAt(row, col), "row %d col %d", row, col)
		}
	}
	// The baseline carries the red contour, drawn last.
	assert.Equal(t, gocv.Vecb{0, 0, 255}, chart.GetVecbAt(ChartHeight-1, 128))
}

func TestColorRender_BarReachesTop(t *testing.T) {
	h := NewColor()
	h.bins[2][10] = 1.0

	chart := h.Render()
	defer chart.Close()

	// The baseline row is repainted by the other channels' contours.
	for row := 0; row < ChartHeight-1; row++ {
		px := chart.GetVecbAt(row, 10)
		assert.GreaterOrEqual(t, px[2], uint8(160), "row %d", row)
	}
	for row := 0; row < ChartHeight-1; row++ {
		assert.Equal(t, gocv.Vecb{0, 0, 0}, chart.GetVecbAt(row, 100))
	}
}

func TestColorSummarize(t *testing.T) {
	frame := bgrFrame(t, 1, 2, []uint8{
		0, 100, 200,
		0, 100, 100,
	})

	h := NewColor()
	require.NoError(t, h.Calculate(frame))

	s := h.Summarize()
	require.Len(t, s, 3)
	assert.Equal(t, []string{"blue", "green", "red"}, []string{s[0].Channel, s[1].Channel, s[2].Channel})
	assert.InDelta(t, 0, s[0].Mean, 1e-9)
	assert.InDelta(t, 100, s[1].Mean, 1e-9)
	assert.InDelta(t, 150, s[2].Mean, 1e-9)
	assert.InDelta(t, 50, s[2].StdDev, 1e-9)
	assert.Equal(t, 2.0, s[0].Total)
}
