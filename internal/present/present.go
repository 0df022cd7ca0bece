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

// Package present implements the presentation loop that sits between a
// frontend (window or terminal) and the CHIP-8 virtual machine: it feeds
// the keypad, applies user commands to the throttle and renders frames.
package present

import (
	"context"
	"fmt"
	"time"

	"github.com/massung/CHIP-8/chip8"
	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the default presentation cadence.
const FrameRate = time.Second / 60

// LogLines is how many lines of the log a frame carries.
const LogLines = 16

// Command is a user interface action, separate from the 16 CHIP-8 keys.
type Command int

// Commands understood by the loop.
const (
	SpeedUp Command = iota + 1
	SpeedDown
	FastForward
	Pause
	Step
	Reset
	Load
	ScrollUp
	ScrollDown
	ScrollHome
	ScrollEnd
	Help
)

var commandNames = map[Command]string{
	SpeedUp:     "speed up",
	SpeedDown:   "speed down",
	FastForward: "fast forward",
	Pause:       "pause",
	Step:        "step",
	Reset:       "reset",
	Load:        "load",
	ScrollUp:    "scroll up",
	ScrollDown:  "scroll down",
	ScrollHome:  "scroll home",
	ScrollEnd:   "scroll end",
	Help:        "help",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Input is what a frontend collected for one frame.
type Input struct {
	// Keys are the CHIP-8 keys currently held down.
	Keys [chip8.KeyCount]bool

	// Commands issued since the last poll.
	Commands []Command

	// Quit is set when the user closed the window or hit escape.
	Quit bool
}

// Frame is everything a frontend needs to draw one frame.
type Frame struct {
	Rows    [chip8.Height]uint64
	Machine chip8.Snapshot

	Keys    [chip8.KeyCount]bool
	Pressed [chip8.KeyCount]bool

	Rate        float64
	Throughput  float64
	FastForward bool
	Paused      bool
	Sounding    bool

	Log []string
}

// Frontend is a physical display and keyboard.
type Frontend interface {
	// Poll returns the input state for this frame.
	Poll() Input

	// Render draws a frame.
	Render(frame *Frame) error

	// Help returns lines describing the frontend's controls.
	Help() []string

	Close() error
}

// Machine is the running virtual machine as seen by the loop.
type Machine interface {
	Snapshot() chip8.Snapshot
}

// Loop drives a frontend. The Display, Keypad, Timers and Throttle must
// be the ones shared with the virtual machine.
type Loop struct {
	Frontend Frontend
	Machine  Machine
	Display  *chip8.Display
	Keypad   *chip8.Keypad
	Timers   *chip8.Timers
	Throttle *chip8.Throttle

	// Log is the on-screen scrollback.
	Log *Logger

	Logger *log.Logger

	// OnLoad is called for the Load command, if set.
	OnLoad func()

	// FrameRate defaults to 60 Hz.
	FrameRate time.Duration
}

// Run polls, updates and renders until ctx is done or the user quits.
func (l *Loop) Run(ctx context.Context) error {
	period := l.FrameRate
	if period <= 0 {
		period = FrameRate
	}

	next := time.Now()

	for ctx.Err() == nil {
		in := l.Frontend.Poll()
		if in.Quit {
			l.Logger.Info("Quit requested")
			return nil
		}

		pressed := l.Keypad.Update(in.Keys)
		for k, down := range pressed {
			if down {
				l.Logger.Debug("Key pressed", log.Hex("key", uint8(k)))
			}
		}

		for _, c := range in.Commands {
			l.apply(c)
		}

		frame := l.frame(in.Keys, pressed)
		if err := l.Frontend.Render(&frame); err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}

		next = next.Add(period)
		if now := time.Now(); now.After(next.Add(period)) {
			next = now
		}

		t := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			t.Stop()
			return nil
		case <-t.C:
		}
	}

	return nil
}

// apply a user command to the shared runtime state.
func (l *Loop) apply(c Command) {
	switch c {
	case SpeedUp:
		l.note(fmt.Sprintf("Speed %.0f ips", l.Throttle.IncSpeed()))
	case SpeedDown:
		l.note(fmt.Sprintf("Speed %.0f ips", l.Throttle.DecSpeed()))
	case FastForward:
		if l.Throttle.ToggleFastForward() {
			l.note("Fast forward on")
		} else {
			l.note("Fast forward off")
		}
	case Pause:
		if l.Throttle.TogglePause() {
			l.note("Paused")
		} else {
			l.note("Resumed")
		}
	case Step:
		l.Throttle.RequestStep()
	case Reset:
		l.Throttle.RequestReset()
		l.note("Reset")
	case Load:
		if l.OnLoad != nil {
			l.OnLoad()
		}
	case ScrollUp:
		l.Log.ScrollUp()
	case ScrollDown:
		l.Log.ScrollDown(LogLines)
	case ScrollHome:
		l.Log.Home()
	case ScrollEnd:
		l.Log.End()
	case Help:
		l.Log.Logln("Virtual keys:")
		l.Log.Log("  1-2-3-4")
		l.Log.Log("  Q-W-E-R")
		l.Log.Log("  A-S-D-F")
		l.Log.Log("  Z-X-C-V")
		l.Log.Log("")
		l.Log.Log("Emulation keys:")
		for _, s := range l.Frontend.Help() {
			l.Log.Log("  " + s)
		}
	}
}

// note writes a status message to both logs.
func (l *Loop) note(s string) {
	l.Log.Log(s)
	l.Logger.Debug(s)
}

func (l *Loop) frame(keys, pressed [chip8.KeyCount]bool) Frame {
	f := Frame{
		Rows:        l.Display.Rows(),
		Keys:        keys,
		Pressed:     pressed,
		Rate:        l.Throttle.Rate(),
		Throughput:  l.Throttle.Throughput(),
		FastForward: l.Throttle.FastForward(),
		Paused:      l.Throttle.Paused(),
		Sounding:    l.Timers.Sounding(),
		Log:         l.Log.Window(LogLines),
	}

	if l.Machine != nil {
		f.Machine = l.Machine.Snapshot()
	}

	return f
}
