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

var (
	/// ErrInvalidOpcode is a fault for an unrecognized instruction.
	///
	ErrInvalidOpcode = errors.New("invalid opcode")

	/// ErrStackUnderflow is a fault for a return with an empty call stack.
	///
	ErrStackUnderflow = errors.New("stack underflow")

	/// ErrMachineCode is a fault for 0NNN, which would call a native RCA
	/// 1802 routine.
	///
	ErrMachineCode = errors.New("machine code routines are not supported")

	/// ErrAddressOutOfRange is a fault for a memory access past #0FFF.
	///
	ErrAddressOutOfRange = errors.New("address out of range")
)

/// Fault is a fatal program error. Once a fault occurs the virtual machine
/// halts until it is reset; faults are never retried.
///
type Fault struct {
	/// Address of the faulting instruction.
	///
	Address uint

	/// Instruction that faulted.
	///
	Instruction Instruction

	/// Err is one of the fault sentinel errors.
	///
	Err error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%04X: %s (%s)", f.Address, f.Err, f.Instruction)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
