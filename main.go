// Package main provides the entry point for the video histogram viewer.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"video-histogram/internal/app"
	"video-histogram/internal/capture"
	"video-histogram/internal/histogram"
	"video-histogram/internal/version"
)

const appTitle = "Video Histogram"

// exitFailure is the status for bad arguments or an unreadable source.
const exitFailure = -1

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("video-histogram", flag.ContinueOnError)
	fs.SetOutput(stderr)
	modeName := fs.String("mode", "color", "Histogram mode: color or gray")
	still := fs.Bool("image", false, "Treat the source as a still image (TIFF, PNG or JPEG)")
	verbose := fs.Bool("v", false, "Log per-channel statistics for every frame")
	showVersion := fs.Bool("version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: video-histogram [-mode color|gray] [-image] [-v] <video file | device index>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitFailure
	}
	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", appTitle, version.String())
		return 0
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Wrong parameters")
		fs.Usage()
		return exitFailure
	}

	mode, err := histogram.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintf(stderr, "Wrong parameters: %v\n", err)
		return exitFailure
	}
	hist, err := histogram.New(mode)
	if err != nil {
		fmt.Fprintf(stderr, "Wrong parameters: %v\n", err)
		return exitFailure
	}

	path := fs.Arg(0)
	var src capture.Source
	if *still {
		src, err = capture.OpenImage(path)
	} else {
		src, err = capture.OpenVideo(path)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Can't read %s video file: %v\n", path, err)
		return exitFailure
	}
	defer src.Close()

	log.Printf("Starting %s v%s (%s histogram, %.2f fps)", appTitle, version.Version, mode, src.FPS())

	windows := capture.NewWindows()
	defer windows.Close()

	player := &app.Player{
		Source:    src,
		Display:   windows,
		Histogram: hist,
		Options: app.Options{
			ConvertGray: mode == histogram.ModeGray,
			Hold:        *still,
			Verbose:     *verbose,
		},
	}
	stats := player.Run()

	log.Printf("Processed %d frames (%d histograms, %d skipped)", stats.Frames, stats.Rendered, stats.Skipped)
	return 0
}
