// Package coverage rasterizes single-channel coverage images, the input of
// the vector shader, from vector paths.
package coverage

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic control points to approximate a quarter circle.
const kappa = 0.5522847498

// Glyph draws a ring crossed by a vertical bar into a size x size image, a
// stand-in for a rasterized vector glyph with both solid areas and
// antialiased edges.
func Glyph(size int) *image.Alpha {
	s := float32(size)
	z := vector.NewRasterizer(size, size)
	c := s / 2

	// The inner circle winds the other way to cut a hole.
	circle(z, c, c, s*0.42, false)
	circle(z, c, c, s*0.27, true)

	bar := s * 0.08
	rect(z, c-bar, s*0.1, c+bar, s*0.9)

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// Solid returns a fully covered image.
func Solid(size int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.Opaque, image.Point{}, draw.Src)
	return dst
}

func circle(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	if !reverse {
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	z.ClosePath()
}

func rect(z *vector.Rasterizer, x0, y0, x1, y1 float32) {
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
}
