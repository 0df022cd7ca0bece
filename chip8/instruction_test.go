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
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	inst := Decode(0x12, 0x34)

	op, x, y, n := inst.Nibbles()
	assert.Equal(t, byte(0x1), op)
	assert.Equal(t, byte(0x2), x)
	assert.Equal(t, byte(0x3), y)
	assert.Equal(t, byte(0x4), n)

	assert.Equal(t, uint(0x234), inst.Address())
	assert.Equal(t, byte(0x34), inst.Byte())
	assert.Equal(t, "1234", inst.String())
}

func TestDecodeHighNibbles(t *testing.T) {
	inst := Decode(0xFA, 0xCE)

	assert.Equal(t, byte(0xF), inst.Op())
	assert.Equal(t, byte(0xA), inst.X())
	assert.Equal(t, byte(0xC), inst.Y())
	assert.Equal(t, byte(0xE), inst.N())
	assert.Equal(t, uint(0xACE), inst.Address())
}
