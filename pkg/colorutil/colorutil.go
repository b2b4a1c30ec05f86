// Package colorutil provides the colors used to draw histogram charts.
//
// gocv maps color.RGBA onto an OpenCV scalar as (B, G, R, A), so the values
// below draw correctly on BGR mats. On a single-channel mat only the B
// component is used.
package colorutil

import "image/color"

// Chart colors.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}

	// HistogramGray is the intensity of grayscale histogram bars.
	HistogramGray = color.RGBA{R: 192, G: 192, B: 192, A: 255}
)

// Bar holds the muted per-channel bar tints, indexed by BGR channel.
var Bar = [3]color.RGBA{
	{R: 40, G: 40, B: 150, A: 255}, // blue
	{R: 40, G: 150, B: 40, A: 255}, // green
	{R: 160, G: 40, B: 40, A: 255}, // red
}

// Contour holds the saturated per-channel outline colors, indexed by BGR channel.
var Contour = [3]color.RGBA{
	{R: 0, G: 0, B: 255, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
}

// ChannelName returns a short name for a BGR channel index.
func ChannelName(ch int) string {
	switch ch {
	case 0:
		return "blue"
	case 1:
		return "green"
	case 2:
		return "red"
	default:
		return "unknown"
	}
}
