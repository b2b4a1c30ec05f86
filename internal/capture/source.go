// Package capture provides frame sources and display windows backed by
// OpenCV's videoio and highgui modules.
package capture

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// ErrSourceUnreadable is returned when a video source cannot be opened.
var ErrSourceUnreadable = errors.New("video source unreadable")

// Source yields frames in sequence.
type Source interface {
	// Read decodes the next frame into frame. It returns false once the
	// source is exhausted.
	Read(frame *gocv.Mat) bool
	// FPS returns the frame rate reported by the source, or 0 if unknown.
	FPS() float64
	Close() error
}

// VideoSource reads frames from a video file, stream URL or capture device.
type VideoSource struct {
	Path string
	cap  *gocv.VideoCapture
}

// OpenVideo opens a video source. A numeric path such as "0" selects a
// capture device by index.
func OpenVideo(path string) (*VideoSource, error) {
	vc, err := gocv.OpenVideoCapture(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("%w: %s", ErrSourceUnreadable, path)
	}
	return &VideoSource{Path: path, cap: vc}, nil
}

// Read decodes the next frame. Some backends report success with an empty
// frame at end of stream; that is treated as exhaustion too.
func (s *VideoSource) Read(frame *gocv.Mat) bool {
	return s.cap.Read(frame) && !frame.Empty()
}

// FPS returns the source's reported frame rate.
func (s *VideoSource) FPS() float64 {
	return s.cap.Get(gocv.VideoCaptureFPS)
}

// Close releases the capture handle.
func (s *VideoSource) Close() error {
	return s.cap.Close()
}
