package histogram

import (
	"image"

	"video-histogram/pkg/colorutil"

	"gocv.io/x/gocv"
)

// Color holds three independent 256-bin histograms of a CV_8UC3 frame, one
// per channel in OpenCV's BGR order.
type Color struct {
	bins [3][NumBins]float64
}

// NewColor creates an empty color histogram.
func NewColor() *Color {
	return &Color{}
}

// Channels returns 3.
func (h *Color) Channels() int { return len(h.bins) }

// Calculate counts the per-channel intensities of a CV_8UC3 frame.
func (h *Color) Calculate(frame gocv.Mat) error {
	if err := checkFormat(frame, gocv.MatTypeCV8UC3, 3); err != nil {
		return err
	}
	data, release, err := pixelData(frame)
	if err != nil {
		return err
	}
	defer release()

	h.bins = [3][NumBins]float64{}
	for i := 0; i+2 < len(data); i += 3 {
		h.bins[0][data[i]]++
		h.bins[1][data[i+1]]++
		h.bins[2][data[i+2]]++
	}
	return nil
}

// Normalize scales all three channels by the single largest bin, keeping
// the channels comparable.
func (h *Color) Normalize() {
	normalize(h.bins[0][:], h.bins[1][:], h.bins[2][:])
}

// Render draws a tinted bar per bin and channel, then outlines each channel
// with a brighter contour joining neighbouring bars.
func (h *Color) Render() gocv.Mat {
	chart := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0),
		ChartHeight, ChartWidth, gocv.MatTypeCV8UC3)

	baseline := ChartHeight - 1
	top := func(c, i int) image.Point {
		return image.Pt(i, baseline-barHeight(h.bins[c][i]))
	}

	for i := 0; i < NumBins; i++ {
		for c := range h.bins {
			gocv.Line(&chart, image.Pt(i, baseline), top(c, i), colorutil.Bar[c], 1)
		}
	}

	for i := 1; i < NumBins; i++ {
		for c := range h.bins {
			gocv.Line(&chart, top(c, i-1), top(c, i), colorutil.Contour[c], 1)
		}
	}

	return chart
}

// Summarize returns blue, green and red statistics in that order.
func (h *Color) Summarize() []ChannelSummary {
	out := make([]ChannelSummary, len(h.bins))
	for c := range h.bins {
		out[c] = summarize(colorutil.ChannelName(c), h.bins[c][:])
	}
	return out
}
