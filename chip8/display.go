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

package chip8

import (
	"strings"
	"sync"
)

const (
	/// Width of the display in pixels.
	///
	Width = 64

	/// Height of the display in pixels.
	///
	Height = 32
)

/// Display is the 64x32 monochrome video memory. Each row is a 64-bit
/// mask stored MSB first: pixel <0,y> is bit 63 of row y.
///
/// The engine is the only writer; renderers read it concurrently. A frame
/// may be read in the middle of a sprite being drawn, which is harmless.
///
type Display struct {
	mu   sync.RWMutex
	rows [Height]uint64
}

/// NewDisplay returns a cleared display.
///
func NewDisplay() *Display {
	return &Display{}
}

func mask(x uint) uint64 {
	return 1 << (Width - 1 - x)
}

/// Clear turns all the pixels off.
///
func (d *Display) Clear() {
	d.mu.Lock()
	d.rows = [Height]uint64{}
	d.mu.Unlock()
}

/// Toggle flips the pixel at <x,y> and returns true if the pixel was on
/// (and is now off), which is a collision. Pixels off the display are
/// clipped.
///
func (d *Display) Toggle(x, y uint) bool {
	if x >= Width || y >= Height {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.toggle(x, y)
}

func (d *Display) toggle(x, y uint) bool {
	m := mask(x)
	d.rows[y] ^= m

	return d.rows[y]&m == 0
}

/// Draw XORs an 8-pixel wide sprite onto the display with its top-left
/// corner at <x,y>. Pixels past the right or bottom edge are clipped,
/// not wrapped. Returns true if any pixel was turned off.
///
func (d *Display) Draw(x, y uint, sprite []byte) bool {
	c := false

	d.mu.Lock()
	defer d.mu.Unlock()

	for row, s := range sprite {
		py := y + uint(row)
		if py >= Height {
			break
		}

		for bit := uint(0); bit < 8; bit++ {
			px := x + bit
			if px >= Width {
				break
			}

			if s&(0x80>>bit) != 0 && d.toggle(px, py) {
				c = true
			}
		}
	}

	return c
}

/// Pixel returns true if the pixel at <x,y> is on.
///
func (d *Display) Pixel(x, y uint) bool {
	if x >= Width || y >= Height {
		return false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.rows[y]&mask(x) != 0
}

/// Rows returns a copy of the video memory.
///
func (d *Display) Rows() [Height]uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.rows
}

/// String renders the display as text, one line per row.
///
func (d *Display) String() string {
	rows := d.Rows()

	var sb strings.Builder
	sb.Grow(Height * (Width + 1))

	for _, r := range rows {
		for x := uint(0); x < Width; x++ {
			if r&mask(x) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
