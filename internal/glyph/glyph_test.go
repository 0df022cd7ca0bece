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

package glyph

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestRasterizeSize(t *testing.T) {
	img := Rasterize("PC - #0200")

	assert.Equal(t, 10*Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())
}

func TestPoints(t *testing.T) {
	assert.Equal(t, 0, len(Points("   ")))

	pts := Points("I")
	assert.True(t, len(pts) > 0)

	for _, p := range pts {
		assert.True(t, p.X >= 0 && p.X < Width)
		assert.True(t, p.Y >= 0 && p.Y < Height)
	}

	// memoized
	again := Points("I")
	assert.Equal(t, len(pts), len(again))
	assert.True(t, &pts[0] == &again[0])
}
