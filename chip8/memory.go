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
	"errors"
	"fmt"
)

const (
	/// MemorySize is the number of addressable bytes.
	///
	MemorySize = 0x1000

	/// FontAddress is where the hexadecimal digit glyphs live.
	///
	FontAddress = 0x050

	/// FontGlyphSize is the number of bytes (rows) per glyph.
	///
	FontGlyphSize = 5

	/// ProgramAddress is the conventional program load address and entry point.
	///
	ProgramAddress = 0x200
)

var (
	/// ErrProgramTooLarge is returned when a program doesn't fit in memory.
	///
	ErrProgramTooLarge = errors.New("program too large to fit in memory")

	/// ErrLoadAddress is returned when a program would be loaded outside
	/// of memory or on top of the font glyphs.
	///
	ErrLoadAddress = errors.New("invalid program load address")
)

/// Font is the conventional 4x5 hexadecimal digit glyph set, MSB first.
///
var Font = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

/// Memory is the 4K address space of the CHIP-8.
///
type Memory [MemorySize]byte

/// NewMemory returns an address space with the font glyphs written.
///
func NewMemory() *Memory {
	m := &Memory{}
	copy(m[FontAddress:], Font[:])
	return m
}

/// GlyphAddress returns the address of the glyph for the low nibble of d.
///
func GlyphAddress(d byte) uint {
	return FontAddress + uint(d&0xF)*FontGlyphSize
}

/// Load copies a program into memory at address.
///
func (m *Memory) Load(program []byte, address uint) error {
	if address >= MemorySize || address < FontAddress+uint(len(Font)) {
		return fmt.Errorf("%w: #%04X", ErrLoadAddress, address)
	}

	if uint(len(program)) > MemorySize-address {
		return fmt.Errorf("%w: %d bytes at #%04X, %d available", ErrProgramTooLarge, len(program), address, MemorySize-address)
	}

	copy(m[address:], program)
	return nil
}

/// Slice returns n bytes starting at address, or an error if the range
/// runs past the end of memory.
///
func (m *Memory) Slice(address, n uint) ([]byte, error) {
	if address > MemorySize || n > MemorySize-address {
		return nil, fmt.Errorf("%w: #%04X+%d", ErrAddressOutOfRange, address, n)
	}

	return m[address : address+n], nil
}
