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
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimersTick(t *testing.T) {
	timers := NewTimers()
	timers.SetDelay(3)
	timers.SetSound(1)

	assert.True(t, timers.Sounding())

	// each tick counts down by exactly one
	for want := 2; want >= 0; want-- {
		timers.Tick()
		assert.Equal(t, uint8(want), timers.Delay())
	}

	assert.Equal(t, uint8(0), timers.Sound())
	assert.False(t, timers.Sounding())

	// never below zero
	timers.Tick()
	assert.Equal(t, uint8(0), timers.Delay())
	assert.Equal(t, uint8(0), timers.Sound())
}

func TestTimersReset(t *testing.T) {
	timers := NewTimers()
	timers.SetDelay(9)
	timers.SetSound(9)
	timers.Reset()

	assert.Equal(t, uint8(0), timers.Delay())
	assert.Equal(t, uint8(0), timers.Sound())
}

func TestTimersRun(t *testing.T) {
	timers := NewTimers()
	timers.SetDelay(255)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	timers.Run(ctx)
	elapsed := time.Since(start)

	// one tick immediately, then one every 1/60th of a second
	ticks := 255 - int(timers.Delay())
	want := int(elapsed/TimerRate) + 1

	assert.True(t, ticks >= want-3 && ticks <= want+1)
	assert.Equal(t, uint8(0), timers.Sound())
}
