// Package cpu implements the CHIP-8 register file, timers and the instruction
// decoder and executor. A Machine owns all emulated state, independent
// machines share nothing.
package cpu

import (
	"github.com/beanboi7/chyp8/emu/gfx"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/beanboi7/chyp8/emu/memory"
	"github.com/retroenv/retrogolib/log"
)

const (
	Registers = 16
	StackSize = 16

	// F is the index of the flag register VF.
	F = 0xF

	instructionSize = 2
)

type Machine struct {
	memory *memory.Memory

	V     [Registers]uint8
	I     uint16 //address register
	pc    uint16
	sp    uint8
	stack [StackSize]uint16

	delayTimer uint8
	soundTimer uint8 //nonzero means the host should be beeping

	display gfx.Framebuffer
	keys    keypad.Keypad
	random  Random

	logger *log.Logger
	trace  bool
}

// Option configures a Machine at construction.
type Option func(*Machine)

// WithRandom replaces the random source used by the RND instruction.
func WithRandom(random Random) Option {
	return func(m *Machine) {
		m.random = random
	}
}

// WithLogger sets the logger, trace enables logging of every executed
// instruction at debug level.
func WithLogger(logger *log.Logger, trace bool) Option {
	return func(m *Machine) {
		m.logger = logger
		m.trace = trace && logger != nil
	}
}

// New returns a booted machine: font table installed, registers and timers
// zeroed and the program counter on the program origin.
func New(options ...Option) *Machine {
	m := &Machine{
		memory: memory.New(),
		pc:     memory.ProgramStart,
	}
	for _, option := range options {
		option(m)
	}
	if m.random == nil {
		m.random = NewRandom(0)
	}
	return m
}

// Reset returns the machine to its boot state, the loaded program is lost.
func (m *Machine) Reset() {
	m.memory.Reset()
	m.V = [Registers]uint8{}
	m.I = 0
	m.pc = memory.ProgramStart
	m.sp = 0
	m.stack = [StackSize]uint16{}
	m.delayTimer = 0
	m.soundTimer = 0
	m.display.Clear()
	m.keys.Reset()
}

// LoadProgram copies a program image to the program origin and points the
// program counter at it.
func (m *Machine) LoadProgram(program []uint8) error {
	if err := m.memory.LoadProgram(program); err != nil {
		return err
	}
	m.pc = memory.ProgramStart
	return nil
}

// Step fetches, decodes and executes one instruction, then counts both timers
// down by one. Unknown instructions are skipped over. The returned error is
// always a *Fault and only occurs for out of range memory, stack or key
// accesses.
func (m *Machine) Step() error {
	pc := m.pc
	word, err := m.fetch()
	if err != nil {
		return &Fault{PC: pc, Err: err}
	}
	m.pc += instructionSize

	ins := Decode(word)
	if m.trace {
		m.logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.Hex("opcode", word),
			log.String("instruction", ins.String()))
	}

	if err := m.execute(ins); err != nil {
		return &Fault{PC: pc, Word: word, Fetched: true, Err: err}
	}

	m.tickTimers()
	return nil
}

func (m *Machine) fetch() (uint16, error) {
	hi, err := m.memory.Read(m.pc)
	if err != nil {
		return 0, err
	}
	lo, err := m.memory.Read(m.pc + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (m *Machine) tickTimers() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
}

func (m *Machine) PC() uint16 {
	return m.pc
}

// StackDepth returns the number of return addresses on the call stack.
func (m *Machine) StackDepth() int {
	return int(m.sp)
}

func (m *Machine) DelayTimer() uint8 {
	return m.delayTimer
}

func (m *Machine) SoundTimer() uint8 {
	return m.soundTimer
}

// SoundActive reports whether the host should be playing the tone.
func (m *Machine) SoundActive() bool {
	return m.soundTimer > 0
}

// Keypad is the input latch, hosts write it between steps.
func (m *Machine) Keypad() *keypad.Keypad {
	return &m.keys
}

// Display returns the framebuffer. Hosts must treat it as read only.
func (m *Machine) Display() *gfx.Framebuffer {
	return &m.display
}

func (m *Machine) Memory() *memory.Memory {
	return m.memory
}
