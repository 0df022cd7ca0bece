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

// Package term is a CHIP-8 frontend that draws to an ANSI terminal and
// reads the keypad from stdin.
package term

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/massung/CHIP-8/chip8"
	"github.com/massung/CHIP-8/internal/present"
	"golang.org/x/term"
)

const (
	// MinWidth and MinHeight are the terminal size the frame needs.
	MinWidth  = chip8.Width + 2
	MinHeight = chip8.Height/2 + 2 + 1 + logLines

	// HoldFrames is how long a key stays down after a keystroke, since
	// terminals don't report key releases.
	HoldFrames = 6

	logLines = 3
)

// KeyMap maps keyboard characters to CHIP-8 keys.
var KeyMap = map[byte]byte{
	'x': 0x0,
	'1': 0x1,
	'2': 0x2,
	'3': 0x3,
	'q': 0x4,
	'w': 0x5,
	'e': 0x6,
	'a': 0x7,
	's': 0x8,
	'd': 0x9,
	'z': 0xA,
	'c': 0xB,
	'4': 0xC,
	'r': 0xD,
	'f': 0xE,
	'v': 0xF,
}

// Frontend renders with block characters, two pixel rows per line.
type Frontend struct {
	out io.Writer

	fd       int
	oldState *term.State

	input chan []byte
	held  [chip8.KeyCount]int

	buf bytes.Buffer
}

// Open puts the terminal into raw mode and starts reading stdin.
func Open() (*Frontend, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}

	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return nil, fmt.Errorf("getting terminal size: %w", err)
	}
	if w < MinWidth || h < MinHeight {
		return nil, fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, MinWidth, MinHeight)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting raw mode: %w", err)
	}

	fe := New(os.Stdin, os.Stdout)
	fe.fd = fd
	fe.oldState = oldState

	// clear and hide the cursor
	fmt.Fprint(fe.out, "\x1b[2J\x1b[?25l")

	return fe, nil
}

// New returns a frontend reading keystrokes from r and drawing to w,
// without touching terminal modes.
func New(r io.Reader, w io.Writer) *Frontend {
	fe := &Frontend{
		out:   w,
		input: make(chan []byte, 64),
	}

	go fe.read(r)
	return fe
}

// read forwards keystrokes until r fails. Stdin can't be interrupted, so
// this goroutine ends with the process.
func (fe *Frontend) read(r io.Reader) {
	buf := make([]byte, 32)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			fe.input <- append([]byte(nil), buf[:n]...)
		}
		if err != nil {
			close(fe.input)
			return
		}
	}
}

// Poll implements present.Frontend.
func (fe *Frontend) Poll() present.Input {
	var in present.Input

	for i := range fe.held {
		if fe.held[i] > 0 {
			fe.held[i]--
		}
	}

	for done := false; !done; {
		select {
		case b, ok := <-fe.input:
			if !ok {
				in.Quit = true
				done = true
				break
			}
			fe.keystrokes(b, &in)
		default:
			done = true
		}
	}

	for i, n := range fe.held {
		in.Keys[i] = n > 0
	}

	return in
}

// keystrokes decodes a chunk of raw input.
func (fe *Frontend) keystrokes(b []byte, in *present.Input) {
	for i := 0; i < len(b); i++ {
		c := b[i]

		if key, ok := KeyMap[c|0x20]; ok && c >= '0' {
			fe.held[key] = HoldFrames
			continue
		}

		switch c {
		case 0x03:
			in.Quit = true
		case 0x1B:
			// cursor keys scroll the log, a lone escape quits
			if n := escapeSequence(b[i:], in); n > 0 {
				i += n - 1
				continue
			}
			in.Quit = true
		case '[':
			in.Commands = append(in.Commands, present.SpeedDown)
		case ']':
			in.Commands = append(in.Commands, present.SpeedUp)
		case '\t':
			in.Commands = append(in.Commands, present.FastForward)
		case ' ', 'p':
			in.Commands = append(in.Commands, present.Pause)
		case 'n':
			in.Commands = append(in.Commands, present.Step)
		case 0x7F, 0x08:
			in.Commands = append(in.Commands, present.Reset)
		case 'h':
			in.Commands = append(in.Commands, present.Help)
		}
	}
}

// escapeSequence decodes a CSI (ESC [) or SS3 (ESC O) sequence at the
// start of b and returns its length, or 0 if b holds a lone escape.
// Cursor and paging keys become log commands, anything else is ignored.
func escapeSequence(b []byte, in *present.Input) int {
	if len(b) < 3 || (b[1] != '[' && b[1] != 'O') {
		return 0
	}

	// CSI parameter bytes, e.g. the 5 in ESC [ 5 ~
	j := 2
	if b[1] == '[' {
		for j < len(b) && b[j] >= 0x30 && b[j] <= 0x3F {
			j++
		}
	}
	if j >= len(b) {
		return 0
	}

	final := b[j]
	if final == '~' {
		switch string(b[2:j]) {
		case "5":
			final = 'A'
		case "6":
			final = 'B'
		case "1", "7":
			final = 'H'
		case "4", "8":
			final = 'F'
		}
	}

	switch final {
	case 'A':
		in.Commands = append(in.Commands, present.ScrollUp)
	case 'B':
		in.Commands = append(in.Commands, present.ScrollDown)
	case 'H':
		in.Commands = append(in.Commands, present.ScrollHome)
	case 'F':
		in.Commands = append(in.Commands, present.ScrollEnd)
	}

	return j + 1
}

// Render implements present.Frontend.
func (fe *Frontend) Render(f *present.Frame) error {
	fe.buf.Reset()

	// home the cursor, then draw over the previous frame
	fe.buf.WriteString("\x1b[H")

	border := "+" + strings.Repeat("-", chip8.Width) + "+\x1b[K\r\n"
	fe.buf.WriteString(border)

	for y := 0; y < chip8.Height; y += 2 {
		fe.buf.WriteByte('|')
		for x := uint(0); x < chip8.Width; x++ {
			m := uint64(1) << (chip8.Width - 1 - x)
			top := f.Rows[y]&m != 0
			bottom := f.Rows[y+1]&m != 0

			switch {
			case top && bottom:
				fe.buf.WriteString("█")
			case top:
				fe.buf.WriteString("▀")
			case bottom:
				fe.buf.WriteString("▄")
			default:
				fe.buf.WriteByte(' ')
			}
		}
		fe.buf.WriteString("|\x1b[K\r\n")
	}

	fe.buf.WriteString(border)
	fe.buf.WriteString(Status(f))
	fe.buf.WriteString("\x1b[K\r\n")

	lines := f.Log
	if len(lines) > logLines {
		lines = lines[len(lines)-logLines:]
	}
	for i := 0; i < logLines; i++ {
		if i < len(lines) {
			fe.buf.WriteString(lines[i])
		}
		fe.buf.WriteString("\x1b[K\r\n")
	}

	_, err := fe.out.Write(fe.buf.Bytes())
	return err
}

// Status formats the one line machine summary under the screen.
func Status(f *present.Frame) string {
	mode := ""
	switch {
	case f.Machine.Fault != nil:
		mode = " HALTED"
	case f.Paused:
		mode = " PAUSED"
	case f.FastForward:
		mode = " >>"
	}

	sound := ""
	if f.Sounding {
		sound = " BEEP"
	}

	return fmt.Sprintf("%4.0f/%4.0f ips  PC #%04X  I #%04X  %s%s%s",
		f.Throughput, f.Rate, f.Machine.PC, f.Machine.I, f.Machine.State, mode, sound)
}

// Help implements present.Frontend.
func (fe *Frontend) Help() []string {
	return []string{
		"ESC      - Quit",
		"BS       - Reboot",
		"Up/Down  - Scroll log",
		"Home/End - Log start/end",
		"[ ]      - Speed down/up",
		"TAB      - Fast forward",
		"SPACE    - Pause",
		"N        - Step",
		"H        - Help",
	}
}

// Close restores the terminal.
func (fe *Frontend) Close() error {
	fmt.Fprint(fe.out, "\x1b[?25h\r\n")

	if fe.oldState != nil {
		if err := term.Restore(fe.fd, fe.oldState); err != nil {
			return fmt.Errorf("restoring terminal: %w", err)
		}
		fe.oldState = nil
	}

	return nil
}
