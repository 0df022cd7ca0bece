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

package main

import (
	"github.com/massung/CHIP-8/internal/glyph"
	"github.com/veandco/go-sdl2/sdl"
)

/// drawText plots s with the basic font, its top-left corner at x, y.
///
func (w *window) drawText(s string, x, y int32) {
	pts := glyph.Points(s)
	if len(pts) == 0 {
		return
	}

	w.points = w.points[:0]
	for _, p := range pts {
		w.points = append(w.points, sdl.Point{X: x + int32(p.X), Y: y + int32(p.Y)})
	}

	_ = w.renderer.SetDrawColor(214, 220, 222, 255)
	_ = w.renderer.DrawPoints(w.points)
}
