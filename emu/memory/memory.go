// Package memory implements the 4K byte address space of the interpreter.
package memory

import (
	"errors"
	"fmt"
)

const (
	Size = 4096

	// ProgramStart is where program images are loaded and execution begins.
	ProgramStart = 0x200
	// ProgramEnd is the top of memory usable by a program image, the byte at
	// ProgramEnd itself stays reserved.
	ProgramEnd = 0xFFF

	MaxProgramSize = ProgramEnd - ProgramStart
)

var (
	ErrOutOfSpace        = errors.New("program image exceeds usable memory")
	ErrAddressOutOfRange = errors.New("address out of range")
)

// Memory is a flat byte array with the font table at FontBase and the program
// image at ProgramStart. Every access is bounds checked.
type Memory struct {
	data [Size]uint8
}

// New returns memory with the font table installed.
func New() *Memory {
	m := &Memory{}
	m.loadFont()
	return m
}

//wipes everything and re-installs the font table
func (m *Memory) Reset() {
	m.data = [Size]uint8{}
	m.loadFont()
}

func (m *Memory) loadFont() {
	copy(m.data[FontBase:], FontSet[:])
}

func (m *Memory) Read(addr uint16) (uint8, error) {
	if int(addr) >= Size {
		return 0, fmt.Errorf("%w: read at 0x%04X", ErrAddressOutOfRange, addr)
	}
	return m.data[addr], nil
}

func (m *Memory) Write(addr uint16, value uint8) error {
	if int(addr) >= Size {
		return fmt.Errorf("%w: write at 0x%04X", ErrAddressOutOfRange, addr)
	}
	m.data[addr] = value
	return nil
}

// ReadBlock copies length bytes starting at addr. The whole range is checked
// before anything is copied.
func (m *Memory) ReadBlock(addr uint16, length int) ([]uint8, error) {
	if int(addr)+length > Size {
		return nil, fmt.Errorf("%w: read of %d bytes at 0x%04X", ErrAddressOutOfRange, length, addr)
	}
	block := make([]uint8, length)
	copy(block, m.data[int(addr):int(addr)+length])
	return block, nil
}

// WriteBlock stores values starting at addr. The whole range is checked before
// anything is written.
func (m *Memory) WriteBlock(addr uint16, values []uint8) error {
	if int(addr)+len(values) > Size {
		return fmt.Errorf("%w: write of %d bytes at 0x%04X", ErrAddressOutOfRange, len(values), addr)
	}
	copy(m.data[addr:], values)
	return nil
}

// LoadProgram copies a program image to ProgramStart. An image that would not
// fit below ProgramEnd is rejected and memory is left untouched.
func (m *Memory) LoadProgram(program []uint8) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, can't cross %d bytes", ErrOutOfSpace, len(program), MaxProgramSize)
	}

	//otherwise it fits, copy it over
	copy(m.data[ProgramStart:], program)
	return nil
}
