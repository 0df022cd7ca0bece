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

// Package config handles command line options and logger setup.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/massung/CHIP-8/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Frontend names.
const (
	FrontendSDL      = "sdl"
	FrontendTerminal = "term"
)

// ErrUsage is returned when the command line can't be parsed.
var ErrUsage = errors.New("invalid usage")

// Options are the settings for a single run of the emulator.
type Options struct {
	ROM      string
	Frontend string
	Rate     float64
	Scale    int
	Quirks   chip8.Quirks

	Debug bool
	Quiet bool
}

// Parse reads the options from the command line arguments (without the
// program name). Usage and errors are written to output.
func Parse(args []string, output io.Writer) (Options, error) {
	opts := Options{}
	flags := flag.NewFlagSet("chip8", flag.ContinueOnError)
	flags.SetOutput(output)

	var preset string
	var shiftY, jumpX, indexInc bool

	flags.StringVar(&opts.Frontend, "frontend", FrontendSDL, "frontend to use: sdl, term")
	flags.Float64Var(&opts.Rate, "rate", chip8.DefaultRate, "instructions executed per second")
	flags.IntVar(&opts.Scale, "scale", 5, "window pixels per CHIP-8 pixel (sdl)")
	flags.StringVar(&preset, "quirks", "default", "quirks preset: default, cosmac, modern")
	flags.BoolVar(&shiftY, "shift-y", false, "8XY6/8XYE copy VY into VX before shifting")
	flags.BoolVar(&jumpX, "jump-x", false, "BNNN jumps to NNN + VX instead of NNN + V0")
	flags.BoolVar(&indexInc, "index-inc", false, "FX55/FX65 advance I past the registers")
	flags.BoolVar(&opts.Quirks.Trace, "trace", false, "log every executed instruction")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "q", false, "only log errors")

	flags.Usage = func() {
		fmt.Fprintf(output, "usage: chip8 [options] [rom file]\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return opts, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	switch flags.NArg() {
	case 0:
	case 1:
		opts.ROM = flags.Arg(0)
	default:
		flags.Usage()
		return opts, fmt.Errorf("%w: too many arguments", ErrUsage)
	}

	if opts.Frontend != FrontendSDL && opts.Frontend != FrontendTerminal {
		return opts, fmt.Errorf("%w: unknown frontend %q", ErrUsage, opts.Frontend)
	}

	if opts.Rate < chip8.MinRate || opts.Rate > chip8.MaxRate {
		return opts, fmt.Errorf("%w: rate must be between %g and %g", ErrUsage, chip8.MinRate, chip8.MaxRate)
	}

	if opts.Scale < 1 {
		opts.Scale = 1
	}

	quirks, err := chip8.QuirksPreset(preset)
	if err != nil {
		return opts, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	// individual flags add to the preset
	quirks.ShiftCopiesY = quirks.ShiftCopiesY || shiftY
	quirks.JumpUsesX = quirks.JumpUsesX || jumpX
	quirks.IndexIncrement = quirks.IndexIncrement || indexInc
	quirks.Trace = opts.Quirks.Trace
	opts.Quirks = quirks

	return opts, nil
}

// CreateLogger creates a logger with appropriate settings. Tracing
// instructions needs debug level.
func CreateLogger(opts Options) *log.Logger {
	cfg := log.DefaultConfig()
	if opts.Debug || opts.Quirks.Trace {
		cfg.Level = log.DebugLevel
	} else if opts.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
