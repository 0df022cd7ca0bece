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

/// Quirks select between behaviors that differ across historical CHIP-8
/// interpreters. They are fixed when the virtual machine is created.
///
type Quirks struct {
	/// ShiftCopiesY copies VY into VX before 8XY6 and 8XYE shift.
	///
	ShiftCopiesY bool

	/// JumpUsesX makes BNNN jump to NNN + VX instead of NNN + V0.
	///
	JumpUsesX bool

	/// IndexIncrement advances I by X+1 after FX55 and FX65.
	///
	IndexIncrement bool

	/// Trace logs every executed instruction (diagnostic only).
	///
	Trace bool
}

var (
	/// COSMAC are the quirks of the original RCA COSMAC VIP interpreter.
	///
	COSMAC = Quirks{ShiftCopiesY: true, IndexIncrement: true}

	/// Modern are the quirks most CHIP-48 and SUPER-CHIP era games expect.
	///
	Modern = Quirks{JumpUsesX: true}
)

/// QuirksPreset looks up a named set of quirks.
///
func QuirksPreset(name string) (Quirks, error) {
	switch name {
	case "", "default":
		return Quirks{}, nil
	case "cosmac", "vip":
		return COSMAC, nil
	case "modern", "chip48", "schip":
		return Modern, nil
	}

	return Quirks{}, fmt.Errorf("unknown quirks preset %q", name)
}
