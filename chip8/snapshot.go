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

/// CodeWindow is the number of memory bytes copied into a Snapshot.
///
const CodeWindow = 32

/// Snapshot is a copy of the machine registers that can be read from
/// another goroutine, for debuggers and status displays.
///
type Snapshot struct {
	PC     uint
	I      uint
	V      Registers
	Depth  int
	Cycles int64
	State  State
	Fault  error
	Quirks Quirks

	/// Code holds CodeWindow bytes of memory starting at CodeBase, which
	/// is a few instructions before PC.
	///
	CodeBase uint
	Code     [CodeWindow]byte
}

/// Disassemble the instruction at address if it lies inside the code window.
///
func (s *Snapshot) Disassemble(address uint) string {
	if address < s.CodeBase || address+1 >= s.CodeBase+CodeWindow {
		return ""
	}

	i := address - s.CodeBase
	return DisassembleAt(address, Decode(s.Code[i], s.Code[i+1]), s.Quirks)
}

/// Snapshot returns the registers as of the last executed instruction.
///
func (vm *CHIP_8) Snapshot() Snapshot {
	vm.snapMu.Lock()
	defer vm.snapMu.Unlock()

	return vm.snap
}

/// publish copies the registers into the snapshot.
///
func (vm *CHIP_8) publish() {
	s := Snapshot{
		PC:     vm.PC,
		I:      vm.I,
		V:      vm.V,
		Depth:  len(vm.Stack),
		Cycles: vm.Cycles,
		State:  vm.State,
		Quirks: vm.Quirks,
	}

	if vm.Fault != nil {
		s.Fault = vm.Fault
	}

	// keep the window even aligned, starting a few instructions back
	base := vm.PC &^ 1
	if base >= 8 {
		base -= 8
	} else {
		base = 0
	}
	if base > MemorySize-CodeWindow {
		base = MemorySize - CodeWindow
	}

	s.CodeBase = base
	copy(s.Code[:], vm.Memory[base:])

	vm.snapMu.Lock()
	vm.snap = s
	vm.snapMu.Unlock()
}
