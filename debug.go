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

package main

import (
	"fmt"

	"github.com/massung/CHIP-8/internal/glyph"
	"github.com/massung/CHIP-8/internal/present"
	"github.com/veandco/go-sdl2/sdl"
)

/// debugAssembly renders the disassembled instructions around the
/// CHIP-8 program counter.
///
func (w *window) debugAssembly(f *present.Frame) {
	area := w.layout.code
	snap := &f.Machine

	x := area.X + 4
	y := area.Y + 3
	lines := (area.H - 6) / lineH

	// start a couple of instructions before the PC
	address := snap.PC &^ 1
	if address >= snap.CodeBase+4 {
		address -= 4
	} else {
		address = snap.CodeBase
	}

	for i := int32(0); i < lines; i++ {
		s := snap.Disassemble(address)
		if s == "" {
			break
		}

		if address == snap.PC {
			switch {
			case snap.Fault != nil:
				_ = w.renderer.SetDrawColor(176, 32, 57, 255)
			case f.Paused:
				_ = w.renderer.SetDrawColor(176, 120, 32, 255)
			default:
				_ = w.renderer.SetDrawColor(57, 102, 176, 255)
			}

			// highlight the current instruction
			_ = w.renderer.FillRect(&sdl.Rect{X: area.X + 1, Y: y - 1, W: area.W - 2, H: lineH})
		}

		w.drawText(s, x, y)

		y += lineH
		address += 2
	}
}

/// debugRegisters shows the current value of all the CHIP-8 registers,
/// the timers and the keypad.
///
func (w *window) debugRegisters(f *present.Frame) {
	area := w.layout.regs
	snap := &f.Machine

	x := area.X + 4
	y := area.Y + 3

	for i, v := range snap.V {
		w.drawText(fmt.Sprintf("V%X - #%02X", i, v), x, y+int32(i)*lineH)
	}

	// shift over for the other registers
	x += 10 * glyph.Width

	status := []string{
		fmt.Sprintf("PC - #%04X", snap.PC),
		fmt.Sprintf("SP - #%02X", snap.Depth),
		fmt.Sprintf("I  - #%04X", snap.I),
		"",
		fmt.Sprintf("IPS  %.0f", f.Throughput),
		fmt.Sprintf("RATE %.0f", f.Rate),
		snap.State.String(),
	}

	switch {
	case f.FastForward:
		status = append(status, "FAST")
	case f.Paused:
		status = append(status, "PAUSED")
	}

	for i, s := range status {
		w.drawText(s, x, y+int32(i)*lineH)
	}

	w.debugKeys(f, x, y+10*lineH)
}

/// debugKeys draws the keypad in its physical layout with held keys lit.
///
func (w *window) debugKeys(f *present.Frame, x, y int32) {
	layout := [4][4]byte{
		{0x1, 0x2, 0x3, 0xC},
		{0x4, 0x5, 0x6, 0xD},
		{0x7, 0x8, 0x9, 0xE},
		{0xA, 0x0, 0xB, 0xF},
	}

	const size = glyph.Height + 1

	for row, keys := range layout {
		for col, key := range keys {
			kx := x + int32(col)*size
			ky := y + int32(row)*size

			if f.Keys[key] {
				_ = w.renderer.SetDrawColor(57, 102, 176, 255)
				_ = w.renderer.FillRect(&sdl.Rect{X: kx - 3, Y: ky - 1, W: size - 1, H: size - 1})
			}

			w.drawText(fmt.Sprintf("%X", key), kx, ky)
		}
	}

	if f.Sounding {
		w.drawText("BEEP", x+4*size+4, y)
	}
}

/// debugLog shows the visible window of the on-screen log.
///
func (w *window) debugLog(lines []string) {
	area := w.layout.log

	x := area.X + 4
	y := area.Y + 3
	cols := int((area.W - 8) / glyph.Width)

	if len(lines) > w.layout.logLines {
		lines = lines[len(lines)-w.layout.logLines:]
	}

	for _, s := range lines {
		if len(s) > cols && cols > 3 {
			s = s[:cols-3] + "..."
		}

		w.drawText(s, x, y)
		y += lineH
	}
}
