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

package term

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/massung/CHIP-8/chip8"
	"github.com/massung/CHIP-8/internal/present"
	"github.com/retroenv/retrogolib/assert"
)

func newFrontend(t *testing.T) (*Frontend, *io.PipeWriter, *bytes.Buffer) {
	t.Helper()

	r, w := io.Pipe()
	out := &bytes.Buffer{}
	fe := New(r, out)

	t.Cleanup(func() {
		_ = w.Close()
	})
	return fe, w, out
}

func TestKeystrokeHold(t *testing.T) {
	fe, _, _ := newFrontend(t)

	var in present.Input
	fe.keystrokes([]byte("wV"), &in)
	assert.Empty(t, in.Commands)

	for frame := 0; frame < HoldFrames-1; frame++ {
		in = fe.Poll()
		assert.True(t, in.Keys[0x5])
		assert.True(t, in.Keys[0xF])
		assert.False(t, in.Keys[0x0])
	}

	in = fe.Poll()
	assert.False(t, in.Keys[0x5])
	assert.False(t, in.Keys[0xF])
}

func TestKeystrokeCommands(t *testing.T) {
	fe, _, _ := newFrontend(t)

	var in present.Input
	fe.keystrokes([]byte("[]\t pnh\x7f\x1b[A\x1b[B"), &in)

	expected := []present.Command{
		present.SpeedDown,
		present.SpeedUp,
		present.FastForward,
		present.Pause,
		present.Pause,
		present.Step,
		present.Help,
		present.Reset,
		present.ScrollUp,
		present.ScrollDown,
	}

	assert.Len(t, in.Commands, len(expected))
	for i, c := range expected {
		assert.Equal(t, c, in.Commands[i])
	}
	assert.False(t, in.Quit)
}

func TestKeystrokeEscapeSequences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []present.Command
	}{
		{"csi arrows", "\x1b[A\x1b[B", []present.Command{present.ScrollUp, present.ScrollDown}},
		{"application arrows", "\x1bOA\x1bOB", []present.Command{present.ScrollUp, present.ScrollDown}},
		{"home end", "\x1b[H\x1bOF", []present.Command{present.ScrollHome, present.ScrollEnd}},
		{"paging", "\x1b[5~\x1b[6~", []present.Command{present.ScrollUp, present.ScrollDown}},
		{"vt home end", "\x1b[1~\x1b[4~", []present.Command{present.ScrollHome, present.ScrollEnd}},
		{"ignored", "\x1bOP\x1b[1;5C", nil},
		{"followed by key", "\x1bOAp", []present.Command{present.ScrollUp, present.Pause}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe, _, _ := newFrontend(t)

			var in present.Input
			fe.keystrokes([]byte(tt.input), &in)

			assert.False(t, in.Quit)
			assert.Len(t, in.Commands, len(tt.expected))
			for i, c := range tt.expected {
				assert.Equal(t, c, in.Commands[i])
			}
		})
	}
}

func TestKeystrokeQuit(t *testing.T) {
	fe, _, _ := newFrontend(t)

	var in present.Input
	fe.keystrokes([]byte{0x1B}, &in)
	assert.True(t, in.Quit)

	in = present.Input{}
	fe.keystrokes([]byte{0x03}, &in)
	assert.True(t, in.Quit)
}

func TestPollReadsInput(t *testing.T) {
	fe, w, _ := newFrontend(t)

	go func() {
		_, _ = w.Write([]byte("1"))
	}()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if in := fe.Poll(); in.Keys[0x1] {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("key 1 was never reported")
}

func TestPollQuitsAtEOF(t *testing.T) {
	fe := New(strings.NewReader(""), io.Discard)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if in := fe.Poll(); in.Quit {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("end of input did not quit")
}

func TestRender(t *testing.T) {
	fe, _, out := newFrontend(t)

	d := chip8.NewDisplay()
	d.Toggle(0, 0)
	d.Toggle(1, 1)
	d.Toggle(2, 0)
	d.Toggle(2, 1)

	f := &present.Frame{
		Rows: d.Rows(),
		Rate: 700,
		Log:  []string{"one", "two", "three", "four"},
	}
	f.Machine.PC = 0x202

	assert.NoError(t, fe.Render(f))

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "\x1b[H+"))

	lines := strings.Split(s, "\r\n")
	assert.Equal(t, chip8.Height/2+2+1+logLines+1, len(lines))
	assert.True(t, strings.HasPrefix(lines[1], "|▀▄█ "))
	assert.Contains(t, lines[chip8.Height/2+2], "PC #0202")
	assert.Contains(t, s, "four")
	assert.False(t, strings.Contains(s, "one"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRenderError(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() {
		_ = w.Close()
	})

	fe := New(r, failingWriter{})
	assert.Error(t, fe.Render(&present.Frame{}))
}

func TestStatus(t *testing.T) {
	f := &present.Frame{Rate: 700, Throughput: 698, Paused: true, Sounding: true}
	f.Machine.PC = 0x200
	f.Machine.I = 0x300

	s := Status(f)
	assert.Contains(t, s, "698/ 700 ips")
	assert.Contains(t, s, "I #0300")
	assert.Contains(t, s, "PAUSED")
	assert.Contains(t, s, "BEEP")

	f.Machine.Fault = errors.New("boom")
	assert.Contains(t, Status(f), "HALTED")
}

func TestClose(t *testing.T) {
	fe, _, out := newFrontend(t)

	assert.NoError(t, fe.Close())
	assert.Contains(t, out.String(), "\x1b[?25h")
}
