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
	"math/rand"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// program assembles instruction words into big-endian program bytes.
func program(words ...uint16) []byte {
	b := make([]byte, 0, len(words)*2)
	for _, w := range words {
		b = append(b, byte(w>>8), byte(w))
	}
	return b
}

// newVM returns a machine with the words loaded at #0200.
func newVM(t *testing.T, quirks Quirks, words ...uint16) *CHIP_8 {
	t.Helper()

	vm, err := LoadROM(program(words...), quirks,
		WithLogger(log.NewTestLogger(t)),
		WithRand(rand.New(rand.NewSource(1))))
	assert.NoError(t, err)

	return vm
}

// newFaultVM is newVM for programs expected to fault. Faults are logged
// as errors, which the test logger fails on.
func newFaultVM(t *testing.T, quirks Quirks, words ...uint16) *CHIP_8 {
	t.Helper()

	vm, err := LoadROM(program(words...), quirks,
		WithLogger(faultLogger()),
		WithRand(rand.New(rand.NewSource(1))))
	assert.NoError(t, err)

	return vm
}

// faultLogger only writes errors and never fails the test.
func faultLogger() *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	return log.NewWithConfig(cfg)
}

// steps executes n instructions, failing on any fault.
func steps(t *testing.T, vm *CHIP_8, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		assert.NoError(t, vm.Step())
	}
}
