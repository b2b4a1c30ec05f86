package histogram

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// levels holds the intensity value of each bin, used as samples when
// computing moments with the bins as weights.
var levels = func() []float64 {
	l := make([]float64, NumBins)
	for i := range l {
		l[i] = float64(i)
	}
	return l
}()

// checkFormat reports ErrInvalidFormat unless frame has the wanted type.
func checkFormat(frame gocv.Mat, want gocv.MatType, wantChannels int) error {
	if frame.Channels() != wantChannels || frame.Type() != want {
		return fmt.Errorf("%w: want %d-channel 8-bit frame, got %d channels (type %d)",
			ErrInvalidFormat, wantChannels, frame.Channels(), int(frame.Type()))
	}
	return nil
}

// pixelData returns the frame's interleaved pixel bytes. Views that are not
// continuous in memory are copied first; release frees that copy.
func pixelData(frame gocv.Mat) (data []uint8, release func(), err error) {
	release = func() {}
	if frame.Empty() {
		return nil, release, nil
	}

	src := frame
	if !frame.IsContinuous() {
		src = frame.Clone()
		release = func() { src.Close() }
	}

	data, err = src.DataPtrUint8()
	if err != nil {
		release()
		return nil, func() {}, fmt.Errorf("failed to access frame data: %w", err)
	}
	return data, release, nil
}

// normalize divides every bin of every channel by the largest bin. The
// divisor is seeded at 1.0 so an all-zero histogram stays all zero.
func normalize(channels ...[]float64) {
	peak := 1.0
	for _, bins := range channels {
		if m := floats.Max(bins); m > peak {
			peak = m
		}
	}
	for _, bins := range channels {
		for i := range bins {
			bins[i] /= peak
		}
	}
}

// barHeight converts a normalized bin value to a chart height in pixels,
// rounding half to even like cvRound.
func barHeight(v float64) int {
	return int(math.RoundToEven(ChartHeight * v))
}

func summarize(name string, bins []float64) ChannelSummary {
	s := ChannelSummary{
		Channel: name,
		Total:   floats.Sum(bins),
		PeakBin: floats.MaxIdx(bins),
	}
	s.Peak = bins[s.PeakBin]
	if s.Total > 0 {
		s.Mean, s.StdDev = stat.PopMeanStdDev(levels, bins)
	}
	return s
}
