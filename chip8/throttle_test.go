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
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestThrottleCountWindow(t *testing.T) {
	now := time.Unix(1000, 0)

	th := NewThrottle(10)
	th.now = func() time.Time { return now }
	th.restartCount()

	for i := 0; i < 10; i++ {
		th.Count()
	}

	now = now.Add(2 * time.Second)
	assert.Equal(t, 5.0, th.Throughput())

	// exceeding the rate starts a new window
	th.Count()
	assert.Equal(t, 0.0, th.Throughput())

	now = now.Add(time.Second)
	th.Count()
	assert.Equal(t, 1.0, th.Throughput())
}

func TestThrottleRate(t *testing.T) {
	th := NewThrottle(DefaultRate)

	assert.Equal(t, DefaultRate, th.Rate())
	assert.Equal(t, time.Second/700, th.Period())

	assert.Equal(t, DefaultRate*SpeedStep, th.IncSpeed())
	th.SetRate(DefaultRate)
	assert.Equal(t, DefaultRate/SpeedStep, th.DecSpeed())

	th.SetRate(0)
	assert.Equal(t, MinRate, th.Rate())
	th.SetRate(1e9)
	assert.Equal(t, MaxRate, th.Rate())
}

func TestThrottleFastForward(t *testing.T) {
	th := NewThrottle(DefaultRate)

	assert.False(t, th.FastForward())
	assert.True(t, th.ToggleFastForward())
	th.SetFastForward(false)
	assert.False(t, th.FastForward())
}

func TestThrottleStepRequests(t *testing.T) {
	th := NewThrottle(DefaultRate)

	// steps only count while paused
	th.RequestStep()
	assert.False(t, th.takeStep())

	assert.True(t, th.TogglePause())
	th.RequestStep()
	th.RequestStep()
	assert.True(t, th.takeStep())
	assert.True(t, th.takeStep())
	assert.False(t, th.takeStep())

	th.RequestStep()
	th.SetPaused(false)
	assert.False(t, th.takeStep())
}

func TestThrottleResetRequest(t *testing.T) {
	th := NewThrottle(DefaultRate)

	assert.False(t, th.ResetPending())
	th.RequestReset()
	assert.True(t, th.ResetPending())
	assert.True(t, th.takeReset())
	assert.False(t, th.takeReset())
}
