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

func TestKeypadUpdate(t *testing.T) {
	k := NewKeypad()

	var down [KeyCount]bool
	down[0x5] = true
	down[0xA] = true

	pressed := k.Update(down)
	assert.True(t, pressed[0x5])
	assert.True(t, pressed[0xA])

	// still held isn't a fresh press
	down[0x1] = true
	pressed = k.Update(down)
	assert.False(t, pressed[0x5])
	assert.True(t, pressed[0x1])
	assert.Equal(t, down, k.State())
}

func TestKeypadIsDownModulo(t *testing.T) {
	k := NewKeypad()

	var down [KeyCount]bool
	down[0x3] = true
	k.Update(down)

	assert.True(t, k.IsDown(0x03))
	assert.True(t, k.IsDown(0x13))
	assert.True(t, k.IsDown(0xF3))
	assert.False(t, k.IsDown(0x04))
}

func TestKeypadFirstDown(t *testing.T) {
	k := NewKeypad()

	_, ok := k.FirstDown()
	assert.False(t, ok)

	var down [KeyCount]bool
	down[0xE] = true
	down[0x7] = true
	k.Update(down)

	key, ok := k.FirstDown()
	assert.True(t, ok)
	assert.Equal(t, byte(0x7), key)
}
