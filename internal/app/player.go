// Package app drives the per-frame histogram loop.
package app

import (
	"log"

	"video-histogram/internal/capture"
	"video-histogram/internal/histogram"

	"gocv.io/x/gocv"
)

// Window titles.
const (
	FrameWindow     = "Extracted Frame"
	HistogramWindow = "Histogram"
)

// Options tunes the loop.
type Options struct {
	// ConvertGray converts BGR frames to grayscale before handing them to a
	// single-channel histogram.
	ConvertGray bool
	// Hold keeps the windows up after the last frame until a key is pressed.
	Hold bool
	// Verbose logs per-channel statistics for every rendered frame.
	Verbose bool
}

// Stats counts what a Run did.
type Stats struct {
	Frames   int // frames read from the source
	Rendered int // frames whose histogram was drawn
	Skipped  int // frames rejected by Calculate
}

// Player reads frames from a Source, computes their histogram and shows
// both in a Display. It runs on the caller's goroutine.
type Player struct {
	Source    capture.Source
	Display   capture.Display
	Histogram histogram.Histogram
	Options   Options
}

// Run processes frames until the source is exhausted. A frame the histogram
// rejects is still displayed and the loop moves on. Run does not close the
// source.
func (p *Player) Run() Stats {
	var stats Stats

	delay := capture.FrameDelay(p.Source.FPS())
	frame := gocv.NewMat()
	defer frame.Close()
	gray := gocv.NewMat()
	defer gray.Close()

	for p.Source.Read(&frame) {
		stats.Frames++

		p.Display.Show(FrameWindow, frame)
		p.Display.Wait(delay)

		input := frame
		if p.Options.ConvertGray && p.Histogram.Channels() == 1 && frame.Channels() == 3 {
			gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
			input = gray
		}

		if err := p.Histogram.Calculate(input); err != nil {
			log.Printf("Can't calculate histogram for frame %d: %v", stats.Frames, err)
			stats.Skipped++
			continue
		}

		if p.Options.Verbose {
			p.logSummary(stats.Frames)
		}

		p.Histogram.Normalize()
		chart := p.Histogram.Render()
		p.Display.Show(HistogramWindow, chart)
		chart.Close()
		stats.Rendered++
	}

	if p.Options.Hold && stats.Frames > 0 {
		p.Display.Wait(0)
	}
	return stats
}

func (p *Player) logSummary(n int) {
	for _, s := range p.Histogram.Summarize() {
		log.Printf("frame %d %-5s: pixels=%.0f mean=%.1f stddev=%.1f peak=%d",
			n, s.Channel, s.Total, s.Mean, s.StdDev, s.PeakBin)
	}
}
