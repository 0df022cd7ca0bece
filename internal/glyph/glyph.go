/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

// Package glyph rasterizes debug panel text with the 7x13 basic font so
// frontends without a text renderer can plot it point by point.
package glyph

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Size of a single character cell.
const (
	Width  = 7
	Height = 13
)

// maxCached bounds the memo of rasterized strings.
const maxCached = 512

var (
	mu    sync.Mutex
	cache = make(map[string][]image.Point)
)

// Rasterize draws s into an alpha mask one cell high.
func Rasterize(s string) *image.Alpha {
	face := basicfont.Face7x13

	w := font.MeasureString(face, s).Ceil()
	img := image.NewAlpha(image.Rect(0, 0, w, Height))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	return img
}

// Points returns the lit pixels of s relative to its top-left corner.
// Results are memoized since panels redraw the same text every frame.
func Points(s string) []image.Point {
	mu.Lock()
	defer mu.Unlock()

	if pts, ok := cache[s]; ok {
		return pts
	}

	img := Rasterize(s)
	b := img.Bounds()

	var pts []image.Point
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.AlphaAt(x, y).A >= 0x80 {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}

	if len(cache) >= maxCached {
		cache = make(map[string][]image.Point)
	}
	cache[s] = pts

	return pts
}
