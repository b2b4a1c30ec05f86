// Package histogram computes per-frame intensity histograms and renders them
// as fixed-size charts.
//
// A Histogram owns one 256-bin array per channel. Calculate overwrites the
// bins from a frame, Normalize rescales them so the tallest bin becomes 1.0,
// and Render draws the current bins into a new 256x100 mat. The intended call
// sequence per frame is Calculate, Normalize, Render; Normalize is not
// idempotent and rescales again if called twice.
package histogram

import (
	"errors"
	"fmt"
	"strings"

	"gocv.io/x/gocv"
)

// Chart geometry.
const (
	NumBins     = 256
	ChartWidth  = NumBins
	ChartHeight = 100
)

// ErrInvalidFormat is returned by Calculate when a frame's channel count or
// depth does not match the histogram variant.
var ErrInvalidFormat = errors.New("invalid frame format")

// Histogram is implemented by the grayscale and color variants.
type Histogram interface {
	// Calculate resets the bins and counts every pixel of frame.
	// On a format mismatch the bins are left untouched.
	Calculate(frame gocv.Mat) error
	// Normalize divides every bin by the largest bin (at least 1.0).
	Normalize()
	// Render draws the bins into a new ChartWidth x ChartHeight mat.
	// The caller owns the returned mat.
	Render() gocv.Mat
	// Channels returns the number of bin arrays.
	Channels() int
	// Summarize returns per-channel statistics of the current bins.
	Summarize() []ChannelSummary
}

// ChannelSummary describes one channel's bins.
type ChannelSummary struct {
	Channel string
	Total   float64 // sum of bins; the pixel count before Normalize
	Mean    float64 // mean intensity
	StdDev  float64 // intensity standard deviation
	PeakBin int
	Peak    float64
}

// Mode selects a histogram variant.
type Mode int

const (
	ModeColor Mode = iota
	ModeGray
)

func (m Mode) String() string {
	switch m {
	case ModeColor:
		return "color"
	case ModeGray:
		return "gray"
	default:
		return "unknown"
	}
}

// ParseMode converts a command-line mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "color", "colour", "rgb", "bgr":
		return ModeColor, nil
	case "gray", "grey", "grayscale":
		return ModeGray, nil
	}
	return 0, fmt.Errorf("unknown histogram mode %q (want color or gray)", s)
}

// New creates the histogram variant for mode.
func New(mode Mode) (Histogram, error) {
	switch mode {
	case ModeColor:
		return NewColor(), nil
	case ModeGray:
		return NewGray(), nil
	}
	return nil, fmt.Errorf("unsupported histogram mode %d", int(mode))
}
