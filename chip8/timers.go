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

import (
	"context"
	"sync"
	"time"
)

/// TimerRate is how often the delay and sound timers count down.
///
const TimerRate = time.Second / 60

/// Timers holds the delay and sound timer registers. They are decremented
/// by Run at 60 Hz and read or written by the engine, so every access is
/// locked.
///
type Timers struct {
	mu    sync.Mutex
	delay uint8
	sound uint8
}

/// NewTimers returns stopped (zeroed) timers.
///
func NewTimers() *Timers {
	return &Timers{}
}

/// Delay returns the current delay timer value.
///
func (t *Timers) Delay() uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.delay
}

/// Sound returns the current sound timer value.
///
func (t *Timers) Sound() uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.sound
}

/// SetDelay loads the delay timer.
///
func (t *Timers) SetDelay(v uint8) {
	t.mu.Lock()
	t.delay = v
	t.mu.Unlock()
}

/// SetSound loads the sound timer.
///
func (t *Timers) SetSound(v uint8) {
	t.mu.Lock()
	t.sound = v
	t.mu.Unlock()
}

/// Sounding is true while the sound timer is non-zero.
///
func (t *Timers) Sounding() bool {
	return t.Sound() > 0
}

/// Reset zeroes both timers.
///
func (t *Timers) Reset() {
	t.mu.Lock()
	t.delay, t.sound = 0, 0
	t.mu.Unlock()
}

/// Tick counts both timers down by one, stopping at zero.
///
func (t *Timers) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
}

/// Run ticks the timers at 60 Hz until ctx is cancelled. Deadlines are
/// accumulated from the start time so sleep overhead doesn't drift.
///
func (t *Timers) Run(ctx context.Context) {
	next := time.Now().Add(TimerRate)

	for ctx.Err() == nil {
		t.Tick()

		if !sleepUntil(ctx, next) {
			return
		}

		next = next.Add(TimerRate)
	}
}
