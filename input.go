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
	"errors"
	"fmt"

	"github.com/massung/CHIP-8/chip8"
	"github.com/massung/CHIP-8/internal/present"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

// KeyMap maps keyboard scancodes to CHIP-8 keys.
var KeyMap = map[sdl.Scancode]byte{
	sdl.SCANCODE_X: 0x0,
	sdl.SCANCODE_1: 0x1,
	sdl.SCANCODE_2: 0x2,
	sdl.SCANCODE_3: 0x3,
	sdl.SCANCODE_Q: 0x4,
	sdl.SCANCODE_W: 0x5,
	sdl.SCANCODE_E: 0x6,
	sdl.SCANCODE_A: 0x7,
	sdl.SCANCODE_S: 0x8,
	sdl.SCANCODE_D: 0x9,
	sdl.SCANCODE_Z: 0xA,
	sdl.SCANCODE_C: 0xB,
	sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_V: 0xF,
}

// CommandMap maps keyboard scancodes to emulator commands.
var CommandMap = map[sdl.Scancode]present.Command{
	sdl.SCANCODE_LEFTBRACKET:  present.SpeedDown,
	sdl.SCANCODE_RIGHTBRACKET: present.SpeedUp,
	sdl.SCANCODE_TAB:          present.FastForward,
	sdl.SCANCODE_F5:           present.Pause,
	sdl.SCANCODE_SPACE:        present.Pause,
	sdl.SCANCODE_F6:           present.Step,
	sdl.SCANCODE_F10:          present.Step,
	sdl.SCANCODE_BACKSPACE:    present.Reset,
	sdl.SCANCODE_F3:           present.Load,
	sdl.SCANCODE_UP:           present.ScrollUp,
	sdl.SCANCODE_PAGEUP:       present.ScrollUp,
	sdl.SCANCODE_DOWN:         present.ScrollDown,
	sdl.SCANCODE_PAGEDOWN:     present.ScrollDown,
	sdl.SCANCODE_HOME:         present.ScrollHome,
	sdl.SCANCODE_END:          present.ScrollEnd,
	sdl.SCANCODE_H:            present.Help,
	sdl.SCANCODE_F1:           present.Help,
}

// Poll implements present.Frontend.
func (w *window) Poll() present.Input {
	var in present.Input

	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			in.Quit = true
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}

			if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				in.Quit = true
			} else if c, ok := CommandMap[ev.Keysym.Scancode]; ok {
				in.Commands = append(in.Commands, c)
			}
		}
	}

	// the keypad is sampled once per frame
	state := sdl.GetKeyboardState()
	for sc, key := range KeyMap {
		if int(sc) < len(state) && state[sc] != 0 {
			in.Keys[key] = true
		}
	}

	select {
	case err := <-w.faults:
		w.showFault(err)
	default:
	}

	return in
}

// Help implements present.Frontend.
func (w *window) Help() []string {
	return []string{
		"ESC      - Quit",
		"BS       - Reboot",
		"F3       - Load ROM",
		"Pg Up/Dn - Scroll log",
		"Home/End - Log start/end",
		"[ ]      - Speed down/up",
		"TAB      - Fast forward",
		"F5/SPACE - Pause",
		"F6/F10   - Step",
		"F1/H     - Help",
	}
}

// LoadDialog asks the user for a ROM file.
func (w *window) LoadDialog() (string, bool) {
	file, err := dialog.File().
		Filter("CHIP-8 ROMs", "ch8", "c8", "rom").
		Filter("All Files", "*").
		Title("Load ROM").
		Load()

	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			w.showFault(fmt.Errorf("choosing file: %w", err))
		}
		return "", false
	}

	return file, true
}

// showFault pops up an error box.
func (w *window) showFault(err error) {
	var fault *chip8.Fault
	if errors.As(err, &fault) {
		dialog.Message("The program halted at #%04X:\n\n%s", fault.Address, fault.Err).Title("CHIP-8").Error()
		return
	}

	dialog.Message("%s", err).Title("CHIP-8").Error()
}
