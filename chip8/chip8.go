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
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/retroenv/retrogolib/log"
)

const (
	/// maxLag is how far behind schedule the engine may fall before it
	/// stops trying to catch up and restarts its deadlines from now.
	///
	maxLag = time.Second / 4

	/// idle is how long a paused or halted engine sleeps between polls.
	///
	idle = time.Second / 60
)

/// State is the execution state of the virtual machine.
///
type State int

const (
	/// Running fetches and executes instructions.
	///
	Running State = iota

	/// AwaitingKey is blocked in FX0A until a key is down.
	///
	AwaitingKey

	/// Halted stopped on a fault and needs a reset.
	///
	Halted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingKey:
		return "waiting for key"
	case Halted:
		return "halted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

/// CHIP_8 virtual machine emulator.
///
type CHIP_8 struct {
	/// ROM is the pristine memory image (font and program) that Memory
	/// is restored from on reset.
	///
	ROM Memory

	/// Memory addressable by CHIP-8. The font glyphs are at #0050 and
	/// the program begins at Base.
	///
	Memory Memory

	/// Base is the address the program was loaded to and its entry point.
	///
	Base uint

	/// PC is the program counter.
	///
	PC uint

	/// I is the address register.
	///
	I uint

	/// V are the 16 virtual registers.
	///
	V Registers

	/// Stack of return addresses. It has no fixed depth.
	///
	Stack []uint

	/// Cycles is how many instructions have been processed since reset.
	///
	Cycles int64

	/// State is running, waiting on a key, or halted.
	///
	State State

	/// W is the register FX0A stores the key into while AwaitingKey.
	///
	W byte

	/// Fault is the error that halted the machine.
	///
	Fault *Fault

	/// Quirks the machine was created with. Never changed afterwards.
	///
	Quirks Quirks

	/// Shared with the timer driver and the frontend.
	///
	Video    *Display
	Timers   *Timers
	Keys     *Keypad
	Throttle *Throttle

	logger *log.Logger
	rng    *rand.Rand

	snapMu sync.Mutex
	snap   Snapshot
}

/// Option customizes a virtual machine created with New.
///
type Option func(*CHIP_8)

/// WithDisplay shares an existing display.
///
func WithDisplay(d *Display) Option {
	return func(vm *CHIP_8) { vm.Video = d }
}

/// WithTimers shares existing timers.
///
func WithTimers(t *Timers) Option {
	return func(vm *CHIP_8) { vm.Timers = t }
}

/// WithKeypad shares an existing keypad.
///
func WithKeypad(k *Keypad) Option {
	return func(vm *CHIP_8) { vm.Keys = k }
}

/// WithThrottle shares an existing throttle.
///
func WithThrottle(t *Throttle) Option {
	return func(vm *CHIP_8) { vm.Throttle = t }
}

/// WithLogger sets the logger used for faults and instruction tracing.
///
func WithLogger(logger *log.Logger) Option {
	return func(vm *CHIP_8) { vm.logger = logger }
}

/// WithRand sets the random source used by CXNN.
///
func WithRand(rng *rand.Rand) Option {
	return func(vm *CHIP_8) { vm.rng = rng }
}

/// New creates a CHIP-8 virtual machine with only the font loaded.
///
func New(quirks Quirks, opts ...Option) *CHIP_8 {
	vm := &CHIP_8{
		ROM:    *NewMemory(),
		Base:   ProgramAddress,
		Quirks: quirks,
	}

	for _, opt := range opts {
		opt(vm)
	}

	if vm.Video == nil {
		vm.Video = NewDisplay()
	}
	if vm.Timers == nil {
		vm.Timers = NewTimers()
	}
	if vm.Keys == nil {
		vm.Keys = NewKeypad()
	}
	if vm.Throttle == nil {
		vm.Throttle = NewThrottle(DefaultRate)
	}
	if vm.logger == nil {
		vm.logger = log.NewWithConfig(log.DefaultConfig())
	}
	if vm.rng == nil {
		vm.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	vm.Reset()
	return vm
}

/// LoadROM creates a new virtual machine with program loaded at #0200.
///
func LoadROM(program []byte, quirks Quirks, opts ...Option) (*CHIP_8, error) {
	vm := New(quirks, opts...)

	if err := vm.Load(program, ProgramAddress); err != nil {
		return nil, err
	}

	return vm, nil
}

/// LoadFile reads a ROM file and returns a new virtual machine running it.
///
func LoadFile(file string, quirks Quirks, opts ...Option) (*CHIP_8, error) {
	program, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	vm, err := LoadROM(program, quirks, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", file, err)
	}

	return vm, nil
}

/// Load copies a program into the ROM at address, makes it the entry
/// point and resets the machine.
///
func (vm *CHIP_8) Load(program []byte, address uint) error {
	rom := *NewMemory()
	if err := rom.Load(program, address); err != nil {
		return err
	}

	vm.ROM = rom
	vm.Base = address
	vm.Reset()

	vm.logger.Debug("Program loaded",
		log.Hex("address", uint16(address)),
		log.Int("size", len(program)))

	return nil
}

/// Reset the CHIP-8 virtual machine to the state right after loading.
/// The keypad belongs to the frontend and is left alone.
///
func (vm *CHIP_8) Reset() {
	vm.Memory = vm.ROM
	vm.Video.Clear()
	vm.Timers.Reset()

	vm.PC = vm.Base
	vm.I = 0
	vm.V = Registers{}
	vm.Stack = vm.Stack[:0]

	vm.Cycles = 0
	vm.State = Running
	vm.W = 0
	vm.Fault = nil

	vm.publish()
}

/// Run executes instructions at the throttle's rate until ctx is
/// cancelled (returning nil) or the program faults (returning the fault).
///
/// Deadlines accumulate from a single reference time so sleep overhead
/// doesn't slow the machine down. Fast-forward skips sleeping entirely.
///
func (vm *CHIP_8) Run(ctx context.Context) error {
	vm.Throttle.restartCount()
	next := time.Now()

	for ctx.Err() == nil {
		if vm.Throttle.takeReset() {
			vm.Reset()
			vm.logger.Info("Reset", log.Hex("pc", uint16(vm.PC)))
			next = time.Now()
		}

		if vm.Throttle.Paused() {
			if vm.Throttle.takeStep() {
				if err := vm.Step(); err != nil {
					return err
				}
				continue
			}

			if !sleepUntil(ctx, time.Now().Add(idle)) {
				return nil
			}

			next = time.Now()
			continue
		}

		if err := vm.Step(); err != nil {
			return err
		}

		if vm.Throttle.FastForward() {
			next = time.Now()
			continue
		}

		next = next.Add(vm.Throttle.Period())

		// don't try to catch up after a long stall
		if now := time.Now(); now.Sub(next) > maxLag {
			next = now
		}

		if !sleepUntil(ctx, next) {
			return nil
		}
	}

	return nil
}

/// Step the CHIP-8 virtual machine a single instruction.
///
func (vm *CHIP_8) Step() error {
	if vm.State == Halted {
		return vm.Fault
	}

	vm.Throttle.Count()
	vm.Cycles++

	defer vm.publish()

	if vm.State == AwaitingKey {
		vm.awaitKey()
		return nil
	}

	if vm.PC > MemorySize-2 {
		return vm.halt(vm.PC, 0, ErrAddressOutOfRange)
	}

	pc := vm.PC
	inst := vm.fetch()

	if vm.Quirks.Trace {
		vm.logger.Debug("Execute",
			log.Hex("pc", uint16(pc)),
			log.String("inst", inst.String()),
			log.String("asm", DisassembleInstruction(inst, vm.Quirks)))
	}

	if err := vm.execute(inst); err != nil {
		return vm.halt(pc, inst, err)
	}

	return nil
}

/// Fetch the next 16-bit instruction to execute.
///
func (vm *CHIP_8) fetch() Instruction {
	i := vm.PC

	// advance the program counter
	vm.PC += 2

	return Decode(vm.Memory[i], vm.Memory[i+1])
}

/// halt stops the machine on a fault.
///
func (vm *CHIP_8) halt(address uint, inst Instruction, err error) error {
	vm.Fault = &Fault{
		Address:     address,
		Instruction: inst,
		Err:         err,
	}
	vm.State = Halted

	vm.logger.Error("Program fault",
		log.Hex("address", uint16(address)),
		log.String("inst", inst.String()),
		log.Err(err))

	return vm.Fault
}

/// awaitKey completes a pending FX0A once any key is down.
///
func (vm *CHIP_8) awaitKey() {
	key, ok := vm.Keys.FirstDown()
	if !ok {
		return
	}

	vm.V[vm.W] = key
	vm.PC += 2
	vm.State = Running
}
