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
	"testing"

	"github.com/massung/CHIP-8/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLayout(t *testing.T) {
	for _, scale := range []int32{1, 5, 10} {
		l := newLayout(scale)

		assert.Equal(t, int32(chip8.Width)*scale+2, l.screen.W)
		assert.Equal(t, int32(chip8.Height)*scale+2, l.screen.H)

		// panels stay inside the window without overlapping
		assert.True(t, l.code.X >= l.screen.X+l.screen.W)
		assert.True(t, l.code.X+l.code.W <= l.w)
		assert.True(t, l.regs.Y >= l.screen.Y+l.screen.H)
		assert.True(t, l.log.X >= l.regs.X+l.regs.W)
		assert.True(t, l.log.X+l.log.W <= l.w)
		assert.True(t, l.log.W >= minLogW)
		assert.Equal(t, l.regs.Y+l.regs.H+margin, l.h)
	}
}

func TestKeyMapCoversKeypad(t *testing.T) {
	var seen [chip8.KeyCount]bool
	for _, key := range KeyMap {
		seen[key] = true
	}

	for _, ok := range seen {
		assert.True(t, ok)
	}
	assert.Equal(t, chip8.KeyCount, len(KeyMap))
}
