// Package preview produces thumbnail images for minimized windows. The
// screenshot itself comes from grim; the resize and crop happen in-process.
package preview

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// Thumbnails are sized for the picker preview pane.
const (
	thumbWidth  = 200
	thumbHeight = 150
)

// Capturer produces a thumbnail for a screen region and returns its path.
type Capturer interface {
	Capture(address, geometry string) (string, error)
}

// Grim captures with the grim screenshot tool and writes thumbnails into Dir.
// Output paths are deterministic: <Dir>/<address>.thumb.png.
type Grim struct {
	Dir string
}

var _ Capturer = Grim{}

// Capture screenshots the given "x,y wxh" region, scales and center-crops it
// to thumbnail size, and removes the intermediate full-size capture.
func (g Grim) Capture(address, geometry string) (string, error) {
	fullPath := filepath.Join(g.Dir, address+".png")
	thumbPath := filepath.Join(g.Dir, address+".thumb.png")

	cmd := exec.Command("grim", "-g", geometry, fullPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("grim -g %s: %v: %s", geometry, err, strings.TrimSpace(string(out)))
	}
	defer os.Remove(fullPath)

	src, err := readPNG(fullPath)
	if err != nil {
		return "", err
	}
	if err := writePNG(thumbPath, Thumbnail(src)); err != nil {
		return "", err
	}
	return thumbPath, nil
}

// Thumbnail scales src to cover the thumbnail rectangle and crops the excess
// around the center, so the result is always exactly 200x150 regardless of
// the window's aspect ratio.
func Thumbnail(src image.Image) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, thumbWidth, thumbHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, coverRect(src.Bounds()), draw.Src, nil)
	return dst
}

// coverRect returns the centered sub-rectangle of b with the thumbnail's
// aspect ratio.
func coverRect(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return b
	}
	if w*thumbHeight > h*thumbWidth {
		// Wider than 4:3, trim the sides.
		cropW := h * thumbWidth / thumbHeight
		x0 := b.Min.X + (w-cropW)/2
		return image.Rect(x0, b.Min.Y, x0+cropW, b.Max.Y)
	}
	// Taller than 4:3, trim top and bottom.
	cropH := w * thumbHeight / thumbWidth
	y0 := b.Min.Y + (h-cropH)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+cropH)
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capture: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode capture: %w", err)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return nil
}
