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
	"fmt"

	"github.com/massung/CHIP-8/chip8"
	"github.com/massung/CHIP-8/internal/glyph"
	"github.com/massung/CHIP-8/internal/present"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	margin    = 8
	lineH     = glyph.Height + 1
	codeW     = 28 * glyph.Width
	registerW = 24 * glyph.Width
	minLogW   = 32 * glyph.Width
)

// layout positions the panels of the window for a screen scale.
type layout struct {
	screen   sdl.Rect
	code     sdl.Rect
	regs     sdl.Rect
	log      sdl.Rect
	w, h     int32
	logLines int
}

func newLayout(scale int32) layout {
	var l layout

	l.screen = sdl.Rect{X: margin, Y: margin, W: chip8.Width*scale + 2, H: chip8.Height*scale + 2}
	l.code = sdl.Rect{X: l.screen.X + l.screen.W + margin, Y: margin, W: codeW, H: l.screen.H}

	top := l.screen.Y + l.screen.H + margin
	l.regs = sdl.Rect{X: margin, Y: top, W: registerW, H: present.LogLines*lineH + 4}

	l.w = l.code.X + l.code.W + margin
	if least := l.regs.W + minLogW + 3*margin; l.w < least {
		l.w = least
	}

	logX := l.regs.X + l.regs.W + margin
	l.log = sdl.Rect{X: logX, Y: top, W: l.w - logX - margin, H: l.regs.H}
	l.logLines = present.LogLines

	l.h = l.regs.Y + l.regs.H + margin
	return l
}

// window is the SDL frontend: the CHIP-8 screen plus debug panels.
type window struct {
	win      *sdl.Window
	renderer *sdl.Renderer
	scale    int32
	layout   layout

	faults <-chan error
	points []sdl.Point
}

// openWindow initializes SDL and creates the main window.
func openWindow(scale int32, faults <-chan error) (*window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	w := &window{
		scale:  scale,
		layout: newLayout(scale),
		faults: faults,
	}

	var err error
	if w.win, w.renderer, err = sdl.CreateWindowAndRenderer(w.layout.w, w.layout.h, uint32(sdl.WINDOW_SHOWN)); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	w.win.SetTitle("CHIP-8")
	return w, nil
}

// Render implements present.Frontend.
func (w *window) Render(f *present.Frame) error {
	r := w.renderer

	if err := r.SetDrawColor(32, 42, 53, 255); err != nil {
		return err
	}
	if err := r.Clear(); err != nil {
		return err
	}

	// frame the various portions of the app
	w.frame(w.layout.screen)
	w.frame(w.layout.code)
	w.frame(w.layout.regs)
	w.frame(w.layout.log)

	if err := w.drawScreen(&f.Rows); err != nil {
		return err
	}

	w.debugAssembly(f)
	w.debugRegisters(f)
	w.debugLog(f.Log)

	r.Present()
	return nil
}

// frame draws a sunken border around rect.
func (w *window) frame(rect sdl.Rect) {
	x, y := rect.X, rect.Y
	x2, y2 := rect.X+rect.W-1, rect.Y+rect.H-1

	_ = w.renderer.SetDrawColor(0, 0, 0, 255)
	_ = w.renderer.DrawLine(x, y, x2, y)
	_ = w.renderer.DrawLine(x, y, x, y2)

	// highlight
	_ = w.renderer.SetDrawColor(95, 112, 120, 255)
	_ = w.renderer.DrawLine(x2, y, x2, y2)
	_ = w.renderer.DrawLine(x, y2, x2, y2)
}

// drawScreen fills in the lit pixels at the window scale.
func (w *window) drawScreen(rows *[chip8.Height]uint64) error {
	r := w.renderer
	area := w.layout.screen

	// the background color for the screen
	if err := r.SetDrawColor(143, 145, 133, 255); err != nil {
		return err
	}
	if err := r.FillRect(&sdl.Rect{X: area.X + 1, Y: area.Y + 1, W: area.W - 2, H: area.H - 2}); err != nil {
		return err
	}

	// set the pixel color
	if err := r.SetDrawColor(17, 29, 43, 255); err != nil {
		return err
	}

	for y, row := range rows {
		if row == 0 {
			continue
		}

		for x := int32(0); x < chip8.Width; x++ {
			if row&(1<<(chip8.Width-1-x)) == 0 {
				continue
			}

			err := r.FillRect(&sdl.Rect{
				X: area.X + 1 + x*w.scale,
				Y: area.Y + 1 + int32(y)*w.scale,
				W: w.scale,
				H: w.scale,
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// Close implements present.Frontend.
func (w *window) Close() error {
	var err error
	if w.renderer != nil {
		err = w.renderer.Destroy()
	}
	if w.win != nil {
		if werr := w.win.Destroy(); err == nil {
			err = werr
		}
	}

	sdl.Quit()
	return err
}
