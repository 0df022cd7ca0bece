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

/// execute a decoded instruction. The program counter has already been
/// advanced past it.
///
func (vm *CHIP_8) execute(inst Instruction) error {
	op, x, y, n := inst.Nibbles()

	// 12-bit address and byte operands
	a := inst.Address()
	b := inst.Byte()

	switch op {
	case 0x0:
		switch inst {
		case 0x00E0:
			vm.cls()
		case 0x00EE:
			return vm.ret()
		default:
			return ErrMachineCode
		}
	case 0x1:
		vm.jump(a)
	case 0x2:
		vm.call(a)
	case 0x3:
		vm.skipIf(x, b)
	case 0x4:
		vm.skipIfNot(x, b)
	case 0x5:
		if n != 0 {
			return ErrInvalidOpcode
		}
		vm.skipIfXY(x, y)
	case 0x6:
		vm.loadX(x, b)
	case 0x7:
		vm.addX(x, b)
	case 0x8:
		switch n {
		case 0x0:
			vm.loadXY(x, y)
		case 0x1:
			vm.or(x, y)
		case 0x2:
			vm.and(x, y)
		case 0x3:
			vm.xor(x, y)
		case 0x4:
			vm.addXY(x, y)
		case 0x5:
			vm.subXY(x, y)
		case 0x6:
			vm.shr(x, y)
		case 0x7:
			vm.subYX(x, y)
		case 0xE:
			vm.shl(x, y)
		default:
			return ErrInvalidOpcode
		}
	case 0x9:
		if n != 0 {
			return ErrInvalidOpcode
		}
		vm.skipIfNotXY(x, y)
	case 0xA:
		vm.loadI(a)
	case 0xB:
		vm.jumpOffset(a, x)
	case 0xC:
		vm.rnd(x, b)
	case 0xD:
		return vm.drw(x, y, n)
	case 0xE:
		switch b {
		case 0x9E:
			vm.skipIfPressed(x)
		case 0xA1:
			vm.skipIfNotPressed(x)
		default:
			return ErrInvalidOpcode
		}
	case 0xF:
		switch b {
		case 0x07:
			vm.loadXDT(x)
		case 0x0A:
			vm.loadXK(x)
		case 0x15:
			vm.loadDTX(x)
		case 0x18:
			vm.loadSTX(x)
		case 0x1E:
			vm.addIX(x)
		case 0x29:
			vm.loadF(x)
		case 0x33:
			return vm.loadB(x)
		case 0x55:
			return vm.saveRegs(x)
		case 0x65:
			return vm.loadRegs(x)
		default:
			return ErrInvalidOpcode
		}
	}

	return nil
}

/// Clear the video display memory.
///
func (vm *CHIP_8) cls() {
	vm.Video.Clear()
}

/// return from subroutine.
///
func (vm *CHIP_8) ret() error {
	if len(vm.Stack) == 0 {
		return ErrStackUnderflow
	}

	// pop the return address
	vm.PC = vm.Stack[len(vm.Stack)-1]
	vm.Stack = vm.Stack[:len(vm.Stack)-1]

	return nil
}

/// jump to address.
///
func (vm *CHIP_8) jump(address uint) {
	vm.PC = address
}

/// call a subroutine at address.
///
func (vm *CHIP_8) call(address uint) {
	vm.Stack = append(vm.Stack, vm.PC)
	vm.PC = address
}

/// jump to address + v0 (or vx when quirked).
///
func (vm *CHIP_8) jumpOffset(address uint, x byte) {
	if !vm.Quirks.JumpUsesX {
		x = 0
	}

	vm.PC = address + uint(vm.V[x])
}

/// skip next instruction if vx == n.
///
func (vm *CHIP_8) skipIf(x, b byte) {
	if vm.V[x] == b {
		vm.PC += 2
	}
}

/// skip next instruction if vx != n.
///
func (vm *CHIP_8) skipIfNot(x, b byte) {
	if vm.V[x] != b {
		vm.PC += 2
	}
}

/// skip next instruction if vx == vy.
///
func (vm *CHIP_8) skipIfXY(x, y byte) {
	if vm.V[x] == vm.V[y] {
		vm.PC += 2
	}
}

/// skip next instruction if vx != vy.
///
func (vm *CHIP_8) skipIfNotXY(x, y byte) {
	if vm.V[x] != vm.V[y] {
		vm.PC += 2
	}
}

/// skip next instruction if key(vx) is pressed.
///
func (vm *CHIP_8) skipIfPressed(x byte) {
	if vm.Keys.IsDown(vm.V[x]) {
		vm.PC += 2
	}
}

/// skip next instruction if key(vx) is not pressed.
///
func (vm *CHIP_8) skipIfNotPressed(x byte) {
	if !vm.Keys.IsDown(vm.V[x]) {
		vm.PC += 2
	}
}

/// load n into vx.
///
func (vm *CHIP_8) loadX(x, b byte) {
	vm.V[x] = b
}

/// load y into vx.
///
func (vm *CHIP_8) loadXY(x, y byte) {
	vm.V[x] = vm.V[y]
}

/// load delay timer into vx.
///
func (vm *CHIP_8) loadXDT(x byte) {
	vm.V[x] = vm.Timers.Delay()
}

/// load vx into delay timer.
///
func (vm *CHIP_8) loadDTX(x byte) {
	vm.Timers.SetDelay(vm.V[x])
}

/// load vx into sound timer.
///
func (vm *CHIP_8) loadSTX(x byte) {
	vm.Timers.SetSound(vm.V[x])
}

/// load vx with next key hit. If no key is down, the program counter is
/// held on this instruction until one is.
///
func (vm *CHIP_8) loadXK(x byte) {
	if key, ok := vm.Keys.FirstDown(); ok {
		vm.V[x] = key
		return
	}

	vm.PC -= 2
	vm.W = x
	vm.State = AwaitingKey
}

/// load address register.
///
func (vm *CHIP_8) loadI(address uint) {
	vm.I = address
}

/// load address with BCD of vx.
///
func (vm *CHIP_8) loadB(x byte) error {
	mem, err := vm.Memory.Slice(vm.I, 3)
	if err != nil {
		return err
	}

	n := vm.V[x]

	mem[0] = n / 100
	mem[1] = n / 10 % 10
	mem[2] = n % 10

	return nil
}

/// load font sprite for vx into I.
///
func (vm *CHIP_8) loadF(x byte) {
	vm.I = GlyphAddress(vm.V[x])
}

/// or vx with vy into vx.
///
func (vm *CHIP_8) or(x, y byte) {
	vm.V[x] |= vm.V[y]
	vm.V[VF] = 0
}

/// and vx with vy into vx.
///
func (vm *CHIP_8) and(x, y byte) {
	vm.V[x] &= vm.V[y]
	vm.V[VF] = 0
}

/// xor vx with vy into vx.
///
func (vm *CHIP_8) xor(x, y byte) {
	vm.V[x] ^= vm.V[y]
	vm.V[VF] = 0
}

/// shl vx 1 bit, set carry to MSB of vx before shift.
///
func (vm *CHIP_8) shl(x, y byte) {
	if vm.Quirks.ShiftCopiesY {
		vm.V[x] = vm.V[y]
	}

	n := vm.V[x]

	vm.V[x] = n << 1
	vm.V[VF] = n >> 7
}

/// shr vx 1 bit, set carry to LSB of vx before shift.
///
func (vm *CHIP_8) shr(x, y byte) {
	if vm.Quirks.ShiftCopiesY {
		vm.V[x] = vm.V[y]
	}

	n := vm.V[x]

	vm.V[x] = n >> 1
	vm.V[VF] = n & 1
}

/// add n to vx.
///
func (vm *CHIP_8) addX(x, b byte) {
	vm.V[x] += b
}

/// add vy to vx and set carry.
///
func (vm *CHIP_8) addXY(x, y byte) {
	sum := uint(vm.V[x]) + uint(vm.V[y])

	vm.V[x] = byte(sum)
	vm.V.Flag(sum > 0xFF)
}

/// subtract vy from vx, set carry if no borrow.
///
func (vm *CHIP_8) subXY(x, y byte) {
	a, b := vm.V[x], vm.V[y]

	vm.V[x] = a - b
	vm.V.Flag(a >= b)
}

/// subtract vx from vy and store in vx, set carry if no borrow.
///
func (vm *CHIP_8) subYX(x, y byte) {
	a, b := vm.V[x], vm.V[y]

	vm.V[x] = b - a
	vm.V.Flag(b >= a)
}

/// add vx to i. On overflow I wraps and the carry is set; otherwise the
/// carry is left alone.
///
func (vm *CHIP_8) addIX(x byte) {
	vm.I += uint(vm.V[x])

	if vm.I >= MemorySize {
		vm.I %= MemorySize
		vm.V[VF] = 1
	}
}

/// load a random number & n into vx.
///
func (vm *CHIP_8) rnd(x, b byte) {
	vm.V[x] = byte(vm.rng.Intn(0x100)) & b
}

/// draw a sprite at I to video memory at vx, vy.
///
func (vm *CHIP_8) drw(x, y, n byte) error {
	sprite, err := vm.Memory.Slice(vm.I, uint(n))
	if err != nil {
		return err
	}

	// the origin wraps, but the sprite itself is clipped
	px := uint(vm.V[x]) % Width
	py := uint(vm.V[y]) % Height

	vm.V[VF] = 0

	if vm.Video.Draw(px, py, sprite) {
		vm.V[VF] = 1
	}

	return nil
}

/// save registers v0..vx to I.
///
func (vm *CHIP_8) saveRegs(x byte) error {
	mem, err := vm.Memory.Slice(vm.I, uint(x)+1)
	if err != nil {
		return err
	}

	copy(mem, vm.V[:x+1])

	vm.advanceI(x)
	return nil
}

/// load registers v0..vx from I.
///
func (vm *CHIP_8) loadRegs(x byte) error {
	mem, err := vm.Memory.Slice(vm.I, uint(x)+1)
	if err != nil {
		return err
	}

	copy(vm.V[:x+1], mem)

	vm.advanceI(x)
	return nil
}

/// advanceI applies the index increment quirk after a bulk load or store.
///
func (vm *CHIP_8) advanceI(x byte) {
	if vm.Quirks.IndexIncrement {
		vm.I = (vm.I + uint(x) + 1) % MemorySize
	}
}
