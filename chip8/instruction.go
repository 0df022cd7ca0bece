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

import "fmt"

/// Instruction is a single, big-endian 16-bit CHIP-8 instruction word.
/// The nibbles are laid out as [op:4][x:4][y:4][n:4].
///
type Instruction uint16

/// Decode two consecutive program bytes into an instruction. Decoding
/// never fails; unknown patterns are rejected when executed.
///
func Decode(b1, b2 byte) Instruction {
	return Instruction(uint16(b1)<<8 | uint16(b2))
}

/// Nibbles returns the four 4-bit fields, most significant first.
///
func (inst Instruction) Nibbles() (op, x, y, n byte) {
	return inst.Op(), inst.X(), inst.Y(), inst.N()
}

/// Op is the opcode class (high nibble).
///
func (inst Instruction) Op() byte {
	return byte(inst >> 12)
}

/// X is the first register operand.
///
func (inst Instruction) X() byte {
	return byte(inst>>8) & 0xF
}

/// Y is the second register operand.
///
func (inst Instruction) Y() byte {
	return byte(inst>>4) & 0xF
}

/// N is the low nibble (sub-operation or sprite height).
///
func (inst Instruction) N() byte {
	return byte(inst) & 0xF
}

/// Byte is the 8-bit immediate operand.
///
func (inst Instruction) Byte() byte {
	return byte(inst)
}

/// Address is the 12-bit address operand.
///
func (inst Instruction) Address() uint {
	return uint(inst) & 0xFFF
}

func (inst Instruction) String() string {
	return fmt.Sprintf("%04X", uint16(inst))
}
