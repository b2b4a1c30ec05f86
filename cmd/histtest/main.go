// Command histtest computes the histogram of a still image and prints
// per-channel statistics.
package main

import (
	"flag"
	"fmt"
	"os"

	"video-histogram/internal/capture"
	"video-histogram/internal/histogram"

	"gocv.io/x/gocv"
)

func main() {
	imagePath := flag.String("image", "", "Path to image (TIFF, PNG, or JPEG)")
	modeName := flag.String("mode", "color", "Histogram mode: color or gray")
	show := flag.Bool("show", false, "Display the chart until a key is pressed")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: histtest -image <path> [-mode color|gray] [-show]")
		os.Exit(1)
	}

	mode, err := histogram.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	hist, err := histogram.New(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	img, format, err := capture.LoadImage(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	bounds := img.Bounds()
	fmt.Printf("Loaded %s image: %dx%d pixels\n", format, bounds.Dx(), bounds.Dy())

	frame := capture.ImageToMat(img)
	defer frame.Close()

	input := frame
	if mode == histogram.ModeGray {
		gray := gocv.NewMat()
		defer gray.Close()
		gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
		input = gray
	}

	if err := hist.Calculate(input); err != nil {
		fmt.Fprintf(os.Stderr, "Histogram failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%s histogram:\n", mode)
	fmt.Printf("%-8s %10s %8s %8s %6s %10s\n", "Channel", "Pixels", "Mean", "StdDev", "Peak", "PeakCount")
	for _, s := range hist.Summarize() {
		fmt.Printf("%-8s %10.0f %8.2f %8.2f %6d %10.0f\n",
			s.Channel, s.Total, s.Mean, s.StdDev, s.PeakBin, s.Peak)
	}

	if !*show {
		return
	}

	hist.Normalize()
	chart := hist.Render()
	defer chart.Close()

	windows := capture.NewWindows()
	defer windows.Close()
	windows.Show("Image", frame)
	windows.Show("Histogram", chart)
	windows.Wait(0)
}
