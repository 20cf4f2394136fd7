// Package render draws a derived icon: a foreground disc with the 19
// colored dots on top, written out as PNG.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/image/vector"

	"identicon/internal/dot"
)

var log = logging.Logger("render")

var ErrBadSize = errors.New("icon size must be positive")

// kappa places cubic Bézier control points for a quarter circle.
const kappa = 0.5522847498

// Image rasterizes icon on a transparent size×size canvas.
func Image(icon dot.Icon, size int) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	z := vector.NewRasterizer(size, size)

	c := float32(size) / 2
	fillCircle(z, img, c, c, c, icon.Foreground)

	radius := float32(DotRadius(size))
	for i, p := range Layout(size) {
		fillCircle(z, img, float32(p.X), float32(p.Y), radius, icon.Colors[i])
	}
	return img, nil
}

func fillCircle(z *vector.Rasterizer, dst *image.RGBA, cx, cy, r float32, c color.Color) {
	b := dst.Bounds()
	z.Reset(b.Dx(), b.Dy())
	k := kappa * r
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// Encode writes icon to w as PNG.
func Encode(w io.Writer, icon dot.Icon, size int) error {
	img, err := Image(icon, size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

// WriteFile writes icon as a PNG file at path. Nothing is created when
// size is invalid.
func WriteFile(path string, icon dot.Icon, size int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, icon, size); err != nil {
		return err
	}
	log.Debugf("wrote %dx%d icon to %s", size, size, path)
	return f.Close()
}
