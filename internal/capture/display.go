package capture

import (
	"math"
	"time"

	"gocv.io/x/gocv"
)

// DefaultFPS paces playback when a source does not report its frame rate.
const DefaultFPS = 30

// Display shows images in named windows.
type Display interface {
	Show(window string, img gocv.Mat)
	// Wait processes window events for d. A zero d blocks until a key is
	// pressed.
	Wait(d time.Duration)
}

// Windows is a highgui Display. Windows are created the first time a name
// is shown and stay open until Close.
type Windows struct {
	windows map[string]*gocv.Window
	order   []string
}

// NewWindows creates an empty window set.
func NewWindows() *Windows {
	return &Windows{windows: make(map[string]*gocv.Window)}
}

// Show displays img in the named window, creating it if needed.
func (w *Windows) Show(name string, img gocv.Mat) {
	win, ok := w.windows[name]
	if !ok {
		win = gocv.NewWindow(name)
		w.windows[name] = win
		w.order = append(w.order, name)
	}
	win.IMShow(img)
}

// Wait pumps highgui events. The pressed key, if any, is ignored.
func (w *Windows) Wait(d time.Duration) {
	if len(w.order) == 0 {
		return
	}
	w.windows[w.order[0]].WaitKey(int(d.Milliseconds()))
}

// Close destroys all windows.
func (w *Windows) Close() error {
	var firstErr error
	for _, name := range w.order {
		if err := w.windows[name].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	w.windows = make(map[string]*gocv.Window)
	w.order = nil
	return firstErr
}

// FrameDelay returns the display pause per frame for a source reporting
// fps frames per second, truncated to whole milliseconds. Unknown rates fall
// back to DefaultFPS and the result is never below 1ms, since a zero wait
// blocks in highgui.
func FrameDelay(fps float64) time.Duration {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		fps = DefaultFPS
	}
	ms := int64(1000 / fps)
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}
