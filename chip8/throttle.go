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
	"sync"
	"time"
)

const (
	/// DefaultRate is the default number of instructions executed per second.
	///
	DefaultRate = 700.0

	/// MinRate and MaxRate bound the instruction rate.
	///
	MinRate = 1.0
	MaxRate = 100000.0

	/// SpeedStep is the factor IncSpeed and DecSpeed change the rate by.
	///
	SpeedStep = 1.25
)

/// Throttle is the runtime state shared between the engine and the
/// frontend: the target instruction rate, fast-forward, a rolling
/// throughput counter, and debugger requests (pause, step, reset).
///
/// Every method locks, but no two fields are updated as a transaction.
///
type Throttle struct {
	mu sync.Mutex

	rate        float64
	fastForward bool

	// rolling instruction count and when counting began
	count uint
	start time.Time

	paused bool
	steps  int
	reset  bool

	now func() time.Time
}

/// NewThrottle returns a throttle running at rate instructions per second.
///
func NewThrottle(rate float64) *Throttle {
	t := &Throttle{now: time.Now}
	t.rate = clampRate(rate)
	t.start = t.now()

	return t
}

func clampRate(rate float64) float64 {
	if rate < MinRate {
		return MinRate
	}
	if rate > MaxRate {
		return MaxRate
	}
	return rate
}

/// Rate returns the target instructions per second.
///
func (t *Throttle) Rate() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.rate
}

/// Period is the time budget of a single instruction at the target rate.
///
func (t *Throttle) Period() time.Duration {
	return time.Duration(float64(time.Second) / t.Rate())
}

/// SetRate changes the target instructions per second.
///
func (t *Throttle) SetRate(rate float64) {
	t.mu.Lock()
	t.rate = clampRate(rate)
	t.mu.Unlock()
}

/// IncSpeed raises the instruction rate one step.
///
func (t *Throttle) IncSpeed() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rate = clampRate(t.rate * SpeedStep)
	return t.rate
}

/// DecSpeed lowers the instruction rate one step.
///
func (t *Throttle) DecSpeed() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rate = clampRate(t.rate / SpeedStep)
	return t.rate
}

/// FastForward is true when instructions run without any delay.
///
func (t *Throttle) FastForward() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.fastForward
}

/// SetFastForward turns fast-forward on or off.
///
func (t *Throttle) SetFastForward(on bool) {
	t.mu.Lock()
	t.fastForward = on
	t.mu.Unlock()
}

/// ToggleFastForward flips fast-forward and returns the new setting.
///
func (t *Throttle) ToggleFastForward() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.fastForward = !t.fastForward
	return t.fastForward
}

/// Count records one executed instruction. Once the count exceeds the
/// target rate it starts over along with the measurement window.
///
func (t *Throttle) Count() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.count++

	if float64(t.count) > t.rate {
		t.count = 0
		t.start = t.now()
	}
}

/// Throughput is the measured instructions per second over the current
/// counting window.
///
func (t *Throttle) Throughput() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	elapsed := t.now().Sub(t.start).Seconds()
	if elapsed <= 0 {
		return 0
	}

	return float64(t.count) / elapsed
}

/// Paused is true while single stepping.
///
func (t *Throttle) Paused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.paused
}

/// SetPaused pauses or resumes execution.
///
func (t *Throttle) SetPaused(paused bool) {
	t.mu.Lock()
	t.paused = paused
	t.steps = 0
	t.mu.Unlock()
}

/// TogglePause flips the paused state and returns it.
///
func (t *Throttle) TogglePause() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.paused = !t.paused
	t.steps = 0
	return t.paused
}

/// RequestStep asks a paused engine to execute one instruction.
///
func (t *Throttle) RequestStep() {
	t.mu.Lock()
	if t.paused {
		t.steps++
	}
	t.mu.Unlock()
}

/// takeStep consumes a pending single step request.
///
func (t *Throttle) takeStep() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.steps == 0 {
		return false
	}

	t.steps--
	return true
}

/// RequestReset asks the engine to reboot the program between instructions.
///
func (t *Throttle) RequestReset() {
	t.mu.Lock()
	t.reset = true
	t.mu.Unlock()
}

/// ResetPending is true if a reset was requested but not yet served.
///
func (t *Throttle) ResetPending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.reset
}

/// takeReset consumes a pending reset request.
///
func (t *Throttle) takeReset() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := t.reset
	t.reset = false
	return r
}

/// restartCount begins a new measurement window.
///
func (t *Throttle) restartCount() {
	t.mu.Lock()
	t.count = 0
	t.start = t.now()
	t.mu.Unlock()
}
