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
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewMemoryFont(t *testing.T) {
	m := NewMemory()

	assert.Equal(t, byte(0xF0), m[FontAddress])
	assert.Equal(t, byte(0x80), m[FontAddress+len(Font)-1])
	assert.Equal(t, byte(0), m[ProgramAddress])
	assert.Equal(t, uint(0x82), GlyphAddress(0x1A))
}

func TestMemoryLoad(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		address uint
		err     error
	}{
		{"fits exactly", MemorySize - ProgramAddress, ProgramAddress, nil},
		{"one byte too many", MemorySize - ProgramAddress + 1, ProgramAddress, ErrProgramTooLarge},
		{"eti address", 16, 0x600, nil},
		{"over the font", 16, FontAddress, ErrLoadAddress},
		{"past memory", 0, MemorySize, ErrLoadAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory()
			err := m.Load(make([]byte, tt.size), tt.address)

			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.err))
			}

			// glyphs are never overwritten
			assert.True(t, bytes.Equal(Font[:], m[FontAddress:FontAddress+len(Font)]))
		})
	}
}

func TestMemorySlice(t *testing.T) {
	m := NewMemory()

	b, err := m.Slice(0xFFD, 3)
	assert.NoError(t, err)
	assert.Len(t, b, 3)

	_, err = m.Slice(0xFFE, 3)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	_, err = m.Slice(0x1001, 0)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}
