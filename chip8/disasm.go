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

/// Disassemble the instruction in memory at address i.
///
func (vm *CHIP_8) Disassemble(i uint) string {
	if i >= MemorySize-1 {
		return ""
	}

	return DisassembleAt(i, Decode(vm.Memory[i], vm.Memory[i+1]), vm.Quirks)
}

/// DisassembleAt formats an instruction with its address.
///
func DisassembleAt(address uint, inst Instruction, quirks Quirks) string {
	// end of program memory?
	if inst == 0 {
		return fmt.Sprintf("%04X -", address)
	}

	return fmt.Sprintf("%04X - %s", address, DisassembleInstruction(inst, quirks))
}

/// DisassembleInstruction returns the assembly mnemonic and operands for
/// a single instruction, or "??" if it isn't valid.
///
func DisassembleInstruction(inst Instruction, quirks Quirks) string {
	op, x, y, n := inst.Nibbles()

	// 12-bit literal address and byte literal
	a := inst.Address()
	b := inst.Byte()

	switch op {
	case 0x0:
		switch inst {
		case 0x00E0:
			return "CLS"
		case 0x00EE:
			return "RET"
		}
		return fmt.Sprintf("SYS    #%04X", a)
	case 0x1:
		return fmt.Sprintf("JP     #%04X", a)
	case 0x2:
		return fmt.Sprintf("CALL   #%04X", a)
	case 0x3:
		return fmt.Sprintf("SE     V%X, #%02X", x, b)
	case 0x4:
		return fmt.Sprintf("SNE    V%X, #%02X", x, b)
	case 0x5:
		if n == 0 {
			return fmt.Sprintf("SE     V%X, V%X", x, y)
		}
	case 0x6:
		return fmt.Sprintf("LD     V%X, #%02X", x, b)
	case 0x7:
		return fmt.Sprintf("ADD    V%X, #%02X", x, b)
	case 0x8:
		switch n {
		case 0x0:
			return fmt.Sprintf("LD     V%X, V%X", x, y)
		case 0x1:
			return fmt.Sprintf("OR     V%X, V%X", x, y)
		case 0x2:
			return fmt.Sprintf("AND    V%X, V%X", x, y)
		case 0x3:
			return fmt.Sprintf("XOR    V%X, V%X", x, y)
		case 0x4:
			return fmt.Sprintf("ADD    V%X, V%X", x, y)
		case 0x5:
			return fmt.Sprintf("SUB    V%X, V%X", x, y)
		case 0x6:
			if quirks.ShiftCopiesY {
				return fmt.Sprintf("SHR    V%X, V%X", x, y)
			}
			return fmt.Sprintf("SHR    V%X", x)
		case 0x7:
			return fmt.Sprintf("SUBN   V%X, V%X", x, y)
		case 0xE:
			if quirks.ShiftCopiesY {
				return fmt.Sprintf("SHL    V%X, V%X", x, y)
			}
			return fmt.Sprintf("SHL    V%X", x)
		}
	case 0x9:
		if n == 0 {
			return fmt.Sprintf("SNE    V%X, V%X", x, y)
		}
	case 0xA:
		return fmt.Sprintf("LD     I, #%04X", a)
	case 0xB:
		if quirks.JumpUsesX {
			return fmt.Sprintf("JP     V%X, #%04X", x, a)
		}
		return fmt.Sprintf("JP     V0, #%04X", a)
	case 0xC:
		return fmt.Sprintf("RND    V%X, #%02X", x, b)
	case 0xD:
		return fmt.Sprintf("DRW    V%X, V%X, %d", x, y, n)
	case 0xE:
		switch b {
		case 0x9E:
			return fmt.Sprintf("SKP    V%X", x)
		case 0xA1:
			return fmt.Sprintf("SKNP   V%X", x)
		}
	case 0xF:
		switch b {
		case 0x07:
			return fmt.Sprintf("LD     V%X, DT", x)
		case 0x0A:
			return fmt.Sprintf("LD     V%X, K", x)
		case 0x15:
			return fmt.Sprintf("LD     DT, V%X", x)
		case 0x18:
			return fmt.Sprintf("LD     ST, V%X", x)
		case 0x1E:
			return fmt.Sprintf("ADD    I, V%X", x)
		case 0x29:
			return fmt.Sprintf("LD     F, V%X", x)
		case 0x33:
			return fmt.Sprintf("LD     B, V%X", x)
		case 0x55:
			return fmt.Sprintf("LD     [I], V%X", x)
		case 0x65:
			return fmt.Sprintf("LD     V%X, [I]", x)
		}
	}

	// unknown instruction
	return "??"
}
