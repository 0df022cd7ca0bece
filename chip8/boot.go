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

/// BootROM is run when no program is given. It draws "C8" in the middle
/// of the screen using the font glyphs and then waits on the keypad.
///
var BootROM = []byte{
	0x00, 0xE0, // CLS
	0x6A, 0x18, // LD     VA, #18
	0x6B, 0x0D, // LD     VB, #0D
	0x6C, 0x0C, // LD     VC, #0C
	0xFC, 0x29, // LD     F, VC
	0xDA, 0xB5, // DRW    VA, VB, 5
	0x7A, 0x06, // ADD    VA, #06
	0x6C, 0x08, // LD     VC, #08
	0xFC, 0x29, // LD     F, VC
	0xDA, 0xB5, // DRW    VA, VB, 5
	0xF0, 0x0A, // LD     V0, K
	0x12, 0x14, // JP     #0214
}
