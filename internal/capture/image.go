package capture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"
	_ "golang.org/x/image/tiff"
)

// ImageSource yields a single still image as one BGR frame.
type ImageSource struct {
	Path   string
	Format string
	frame  gocv.Mat
	done   bool
}

// OpenImage decodes a still image (TIFF, PNG or JPEG) for use as a
// one-frame source.
func OpenImage(path string) (*ImageSource, error) {
	img, format, err := LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	return &ImageSource{
		Path:   path,
		Format: format,
		frame:  ImageToMat(img),
	}, nil
}

// Read copies the image into frame on the first call and reports
// exhaustion afterwards.
func (s *ImageSource) Read(frame *gocv.Mat) bool {
	if s.done {
		return false
	}
	s.frame.CopyTo(frame)
	s.done = true
	return true
}

// FPS returns 0; still images have no frame rate.
func (s *ImageSource) FPS() float64 { return 0 }

// Close frees the decoded frame.
func (s *ImageSource) Close() error {
	return s.frame.Close()
}

// LoadImage decodes an image file and returns it with its format name.
func LoadImage(path string) (image.Image, string, error) {
	if !IsSupportedImage(path) {
		return nil, "", fmt.Errorf("unsupported image format: %s", filepath.Ext(path))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// ImageToMat converts a Go image into an 8-bit BGR mat. Alpha is dropped.
func ImageToMat(img image.Image) gocv.Mat {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// 16-bit to 8-bit, BGR order for OpenCV
			mat.SetUCharAt(y, x*3+0, uint8(b>>8))
			mat.SetUCharAt(y, x*3+1, uint8(g>>8))
			mat.SetUCharAt(y, x*3+2, uint8(r>>8))
		}
	}
	return mat
}

// SupportedImageFormats returns the file extensions OpenImage accepts.
func SupportedImageFormats() []string {
	return []string{".tiff", ".tif", ".png", ".jpg", ".jpeg"}
}

// IsSupportedImage reports whether path has a supported image extension.
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedImageFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
