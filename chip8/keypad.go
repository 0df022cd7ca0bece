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

import "sync"

/// KeyCount is the number of keys on the hex keypad.
///
const KeyCount = 16

/// Keypad holds which of the 16 keys are currently down. The frontend
/// replaces the whole state once per frame; the engine only reads it.
///
type Keypad struct {
	mu   sync.Mutex
	keys [KeyCount]bool
}

/// NewKeypad returns a keypad with no keys down.
///
func NewKeypad() *Keypad {
	return &Keypad{}
}

/// Update replaces the key state and returns which keys went down since
/// the previous update.
///
func (k *Keypad) Update(down [KeyCount]bool) (pressed [KeyCount]bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for i := range down {
		pressed[i] = down[i] && !k.keys[i]
	}

	k.keys = down
	return
}

/// IsDown returns true if the key is down. The key index is taken
/// modulo 16 since it usually comes from a register.
///
func (k *Keypad) IsDown(key byte) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.keys[key%KeyCount]
}

/// FirstDown returns the lowest numbered key that is down.
///
func (k *Keypad) FirstDown() (byte, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for i, down := range k.keys {
		if down {
			return byte(i), true
		}
	}

	return 0, false
}

/// State returns a copy of all the keys.
///
func (k *Keypad) State() [KeyCount]bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.keys
}
