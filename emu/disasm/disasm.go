// Package disasm lists a program image as one instruction per line.
package disasm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/memory"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Line is one listed word of the image.
type Line struct {
	Address     uint16
	Data        []uint8
	Instruction cpu.Instruction
	// IsData is set for words that no CHIP-8 instruction matches and for a
	// trailing odd byte.
	IsData bool
}

func (l Line) String() string {
	if len(l.Data) == 1 {
		return fmt.Sprintf("%03X: %02X    DB 0x%02X ; data", l.Address, l.Data[0], l.Data[0])
	}

	s := fmt.Sprintf("%03X: %02X%02X  %s", l.Address, l.Data[0], l.Data[1], l.Instruction)
	if l.IsData {
		s += " ; data"
	}
	return s
}

// Lines decodes every word of image as it would be laid out from the program
// origin.
func Lines(image []uint8) []Line {
	lines := make([]Line, 0, len(image)/2+1)
	address := uint16(memory.ProgramStart)

	for i := 0; i < len(image); i += 2 {
		if i+1 == len(image) {
			lines = append(lines, Line{Address: address, Data: image[i : i+1], IsData: true})
			break
		}

		word := uint16(image[i])<<8 | uint16(image[i+1])
		ins := cpu.Decode(word)
		lines = append(lines, Line{
			Address:     address,
			Data:        image[i : i+2],
			Instruction: ins,
			IsData:      ins.Op == cpu.OpUnknown || !Known(word),
		})
		address += 2
	}
	return lines
}

// Known reports whether word matches an instruction of the reference CHIP-8
// opcode table.
func Known(word uint16) bool {
	for _, op := range chip8.Opcodes[int(word>>12)] {
		if op.Info.Mask&word == op.Info.Value && op.Instruction != nil {
			return true
		}
	}
	return false
}

// Write lists image to w.
func Write(w io.Writer, image []uint8) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(image) {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}
