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
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/massung/CHIP-8/chip8"
	"github.com/massung/CHIP-8/internal/config"
	"github.com/massung/CHIP-8/internal/present"
	"github.com/massung/CHIP-8/internal/term"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	ctx := app.Context()

	opts, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if err := run(ctx, opts); err != nil {
		config.CreateLogger(opts).Fatal("Emulator failed", log.Err(err))
	}
}

// run wires the shared machine state to a frontend and blocks until the
// user quits or ctx is cancelled.
func run(ctx context.Context, opts config.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screenLog := present.NewLog()
	faults := make(chan error, 1)

	fe, err := openFrontend(opts, faults)
	if err != nil {
		return err
	}

	// the terminal is the screen, so log output goes to the on-screen log
	if opts.Frontend == config.FrontendTerminal {
		restore, err := captureOutput(screenLog)
		if err != nil {
			_ = fe.Close()
			return err
		}
		defer restore()
	}

	logger := config.CreateLogger(opts)
	defer func() {
		if err := fe.Close(); err != nil {
			logger.Error("Closing frontend failed", log.Err(err))
		}
	}()

	video := chip8.NewDisplay()
	timers := chip8.NewTimers()
	keys := chip8.NewKeypad()
	throttle := chip8.NewThrottle(opts.Rate)

	s := newSession(opts.Quirks, throttle, logger, screenLog, faults,
		chip8.WithDisplay(video),
		chip8.WithTimers(timers),
		chip8.WithKeypad(keys),
	)

	screenLog.Log("CHIP-8, by Jeffrey Massung")
	screenLog.Log("Press H for help")

	if err := s.Load(ctx, opts.ROM); err != nil {
		logger.Error("Loading program failed", log.String("file", opts.ROM), log.Err(err))
		screenLog.Logln(err.Error())

		if err := s.Load(ctx, ""); err != nil {
			return fmt.Errorf("booting: %w", err)
		}
	}
	defer s.Stop()

	go timers.Run(ctx)

	loop := &present.Loop{
		Frontend: fe,
		Machine:  s,
		Display:  video,
		Keypad:   keys,
		Timers:   timers,
		Throttle: throttle,
		Log:      screenLog,
		Logger:   logger,
	}

	if w, ok := fe.(*window); ok {
		loop.OnLoad = func() {
			file, ok := w.LoadDialog()
			if !ok {
				return
			}
			if err := s.Load(ctx, file); err != nil {
				logger.Error("Loading program failed", log.String("file", file), log.Err(err))
				screenLog.Logln(err.Error())
			}
		}
	}

	return loop.Run(ctx)
}

func openFrontend(opts config.Options, faults <-chan error) (present.Frontend, error) {
	switch opts.Frontend {
	case config.FrontendTerminal:
		fe, err := term.Open()
		if err != nil {
			return nil, fmt.Errorf("opening terminal: %w", err)
		}
		return fe, nil
	default:
		w, err := openWindow(int32(opts.Scale), faults)
		if err != nil {
			return nil, fmt.Errorf("opening window: %w", err)
		}
		return w, nil
	}
}
