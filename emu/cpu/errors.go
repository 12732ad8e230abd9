package cpu

import (
	"errors"
	"fmt"
)

var (
	ErrStackOverflow  = errors.New("call stack overflow")
	ErrStackUnderflow = errors.New("return with empty call stack")
	ErrKeyOutOfRange  = errors.New("key index out of range")
)

// Fault stops execution of a program that accessed memory, the call stack or
// the keypad outside of their bounds. The reference hardware does not check
// these accesses at all.
type Fault struct {
	PC      uint16
	Word    uint16
	Fetched bool // Word holds the instruction being executed
	Err     error
}

func (f *Fault) Error() string {
	if !f.Fetched {
		return fmt.Sprintf("fault at 0x%04X fetching instruction: %v", f.PC, f.Err)
	}
	return fmt.Sprintf("fault at 0x%04X executing %04X: %v", f.PC, f.Word, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
