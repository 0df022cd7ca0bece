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
	"path/filepath"
	"sync"
	"time"

	"github.com/massung/CHIP-8/chip8"
	"github.com/massung/CHIP-8/internal/present"
	"github.com/retroenv/retrogolib/log"
)

// resetPoll is how often a halted session checks for a reset request.
const resetPoll = 50 * time.Millisecond

// session owns the running virtual machine. Loading a program replaces
// the machine while the display, timers, keypad and throttle are shared.
type session struct {
	quirks    chip8.Quirks
	options   []chip8.Option
	throttle  *chip8.Throttle
	logger    *log.Logger
	screenLog *present.Logger
	faults    chan<- error

	mu     sync.Mutex
	vm     *chip8.CHIP_8
	file   string
	cancel context.CancelFunc
	done   chan struct{}
}

func newSession(quirks chip8.Quirks, throttle *chip8.Throttle, logger *log.Logger,
	screenLog *present.Logger, faults chan<- error, opts ...chip8.Option) *session {

	return &session{
		quirks:    quirks,
		options:   append(opts, chip8.WithThrottle(throttle), chip8.WithLogger(logger)),
		throttle:  throttle,
		logger:    logger,
		screenLog: screenLog,
		faults:    faults,
	}
}

// Snapshot implements present.Machine.
func (s *session) Snapshot() chip8.Snapshot {
	s.mu.Lock()
	vm := s.vm
	s.mu.Unlock()

	if vm == nil {
		return chip8.Snapshot{}
	}
	return vm.Snapshot()
}

// File is the program currently running, empty for the boot program.
func (s *session) File() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.file
}

// Load replaces the running program with file, or the boot program if
// file is empty. If file can't be loaded the current program restarts.
func (s *session) Load(ctx context.Context, file string) error {
	// stop the old machine before the new one resets the shared state
	s.Stop()

	var vm *chip8.CHIP_8
	var err error

	if file == "" {
		vm, err = chip8.LoadROM(chip8.BootROM, s.quirks, s.options...)
	} else {
		vm, err = chip8.LoadFile(file, s.quirks, s.options...)
	}

	if err != nil {
		s.mu.Lock()
		prev, prevFile := s.vm, s.file
		s.mu.Unlock()

		if prev != nil {
			prev.Reset()
			s.start(ctx, prev, prevFile)
		}
		return err
	}

	s.start(ctx, vm, file)

	name := "boot"
	if file != "" {
		name = filepath.Base(file)
	}

	s.screenLog.Logln("Loaded", name)
	s.logger.Info("Program loaded", log.String("file", name))

	return nil
}

// start runs vm in the background as the current program.
func (s *session) start(ctx context.Context, vm *chip8.CHIP_8, file string) {
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.mu.Lock()
	s.vm = vm
	s.file = file
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	go s.supervise(runCtx, vm, done)
}

// Stop halts the running machine and waits for it to return.
func (s *session) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// supervise runs vm until ctx is done. A fault halts the machine until
// the user asks for a reset.
func (s *session) supervise(ctx context.Context, vm *chip8.CHIP_8, done chan<- struct{}) {
	defer close(done)

	for {
		err := vm.Run(ctx)
		if err == nil {
			return
		}

		s.logger.Error("Program halted", log.Err(err))
		s.screenLog.Logln(err.Error())
		s.screenLog.Log("Press BACKSPACE to reset")

		select {
		case s.faults <- err:
		default:
		}

		if !s.waitReset(ctx) {
			return
		}
	}
}

// waitReset blocks until a reset is requested or ctx is done.
func (s *session) waitReset(ctx context.Context) bool {
	ticker := time.NewTicker(resetPoll)
	defer ticker.Stop()

	for !s.throttle.ResetPending() {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
	return true
}
