package histogram

import (
	"image"

	"video-histogram/pkg/colorutil"

	"gocv.io/x/gocv"
)

// Gray is a 256-bin intensity histogram of single-channel 8-bit frames.
type Gray struct {
	bins [NumBins]float64
}

// NewGray creates an empty grayscale histogram.
func NewGray() *Gray {
	return &Gray{}
}

// Channels returns 1.
func (h *Gray) Channels() int { return 1 }

// Calculate counts the intensities of a CV_8UC1 frame.
func (h *Gray) Calculate(frame gocv.Mat) error {
	if err := checkFormat(frame, gocv.MatTypeCV8UC1, 1); err != nil {
		return err
	}
	data, release, err := pixelData(frame)
	if err != nil {
		return err
	}
	defer release()

	h.bins = [NumBins]float64{}
	for _, v := range data {
		h.bins[v]++
	}
	return nil
}

// Normalize scales the bins so the largest one is 1.0.
func (h *Gray) Normalize() {
	normalize(h.bins[:])
}

// Render draws one vertical line per bin, rising from the bottom of the chart.
func (h *Gray) Render() gocv.Mat {
	chart := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0),
		ChartHeight, ChartWidth, gocv.MatTypeCV8UC1)

	// Drawn top-down from row 0, then flipped so the baseline is at the bottom.
	for i, v := range h.bins {
		gocv.Line(&chart, image.Pt(i, 0), image.Pt(i, barHeight(v)), colorutil.HistogramGray, 1)
	}
	gocv.Flip(chart, &chart, 0)

	return chart
}

// Summarize returns the statistics of the intensity channel.
func (h *Gray) Summarize() []ChannelSummary {
	return []ChannelSummary{summarize("gray", h.bins[:])}
}
