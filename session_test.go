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
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/massung/CHIP-8/chip8"
	"github.com/massung/CHIP-8/internal/present"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestSession(t *testing.T) (*session, chan error, *chip8.Throttle) {
	t.Helper()

	faults := make(chan error, 1)
	throttle := chip8.NewThrottle(chip8.DefaultRate)
	throttle.SetFastForward(true)

	s := newSession(chip8.Quirks{}, throttle, faultLogger(), present.NewLog(), faults)
	t.Cleanup(s.Stop)

	return s, faults, throttle
}

// faultLogger only writes errors. Sessions log program faults from the
// engine goroutine, where the test logger can't fail the test.
func faultLogger() *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	return log.NewWithConfig(cfg)
}

func writeROM(t *testing.T, program ...byte) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(file, program, 0o600))
	return file
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timed out")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSessionBoot(t *testing.T) {
	s, _, _ := newTestSession(t)

	assert.NoError(t, s.Load(context.Background(), ""))
	assert.Equal(t, "", s.File())

	// the boot program ends up waiting for a key
	waitFor(t, func() bool {
		return s.Snapshot().State == chip8.AwaitingKey
	})
	assert.Equal(t, uint(0x214), s.Snapshot().PC)
}

func TestSessionLoadMissing(t *testing.T) {
	s, _, _ := newTestSession(t)

	assert.NoError(t, s.Load(context.Background(), ""))
	err := s.Load(context.Background(), filepath.Join(t.TempDir(), "missing.ch8"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// the boot program is restarted
	assert.Equal(t, "", s.File())
	waitFor(t, func() bool {
		return s.Snapshot().State == chip8.AwaitingKey
	})
}

func TestSessionLoadTooLarge(t *testing.T) {
	s, _, _ := newTestSession(t)

	file := writeROM(t, make([]byte, chip8.MemorySize)...)
	err := s.Load(context.Background(), file)
	assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
	assert.Equal(t, chip8.Snapshot{}, s.Snapshot())
}

func TestSessionLoadReplaces(t *testing.T) {
	s, _, _ := newTestSession(t)

	assert.NoError(t, s.Load(context.Background(), ""))

	// LD V5, #77 then spin
	file := writeROM(t, 0x65, 0x77, 0x12, 0x02)
	assert.NoError(t, s.Load(context.Background(), file))
	assert.Equal(t, file, s.File())

	waitFor(t, func() bool {
		return s.Snapshot().V[5] == 0x77
	})
	assert.Equal(t, chip8.Running, s.Snapshot().State)
}

func TestSessionFaultAndReset(t *testing.T) {
	s, faults, throttle := newTestSession(t)

	// LD V0, #01 then a machine code call
	file := writeROM(t, 0x60, 0x01, 0x01, 0x23)
	assert.NoError(t, s.Load(context.Background(), file))
	assert.Equal(t, file, s.File())

	select {
	case err := <-faults:
		assert.True(t, errors.Is(err, chip8.ErrMachineCode))
	case <-time.After(2 * time.Second):
		t.Fatal("no fault reported")
	}

	snap := s.Snapshot()
	assert.Equal(t, chip8.Halted, snap.State)
	assert.NotNil(t, snap.Fault)

	throttle.RequestReset()

	select {
	case err := <-faults:
		assert.True(t, errors.Is(err, chip8.ErrMachineCode))
	case <-time.After(2 * time.Second):
		t.Fatal("reset did not rerun the program")
	}
}

func TestSessionStop(t *testing.T) {
	s, _, _ := newTestSession(t)

	assert.NoError(t, s.Load(context.Background(), ""))
	s.Stop()
	s.Stop()

	cycles := s.Snapshot().Cycles
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, cycles, s.Snapshot().Cycles)
}
