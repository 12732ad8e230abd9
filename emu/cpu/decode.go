package cpu

// Op identifies one behavior of the instruction set.
type Op uint8

const (
	OpUnknown Op = iota
	OpSys        // 0nnn
	OpCls        // 00E0
	OpRet        // 00EE
	OpJp         // 1nnn
	OpCall       // 2nnn
	OpSeImm      // 3xkk
	OpSneImm     // 4xkk
	OpSeReg      // 5xy0
	OpLdImm      // 6xkk
	OpAddImm     // 7xkk
	OpLdReg      // 8xy0
	OpOr         // 8xy1
	OpAnd        // 8xy2
	OpXor        // 8xy3
	OpAddReg     // 8xy4
	OpSub        // 8xy5
	OpShr        // 8xy6
	OpSubn       // 8xy7
	OpShl        // 8xyE
	OpSneReg     // 9xy0
	OpLdI        // Annn
	OpJpV0       // Bnnn
	OpRnd        // Cxkk
	OpDrw        // Dxyn
	OpSkp        // Ex9E
	OpSknp       // ExA1
	OpLdVxDT     // Fx07
	OpLdVxK      // Fx0A
	OpLdDTVx     // Fx15
	OpLdSTVx     // Fx18
	OpAddI       // Fx1E
	OpLdF        // Fx29
	OpLdB        // Fx33
	OpLdIVx      // Fx55
	OpLdVxI      // Fx65
)

// Instruction is a decoded instruction word with all operand fields split out.
// Which fields are meaningful depends on Op.
type Instruction struct {
	Op   Op
	Word uint16

	X   uint8  // bits 8-11
	Y   uint8  // bits 4-7
	N   uint8  // bits 0-3
	KK  uint8  // bits 0-7
	NNN uint16 // bits 0-11
}

// Decode classifies an instruction word. The high nibble selects the family,
// the 0, 8 and E families are split further on the low nibble and the F family
// on the low byte. Words matching no behavior decode to OpUnknown.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word: word,
		X:    uint8((word & 0x0F00) >> 8),
		Y:    uint8((word & 0x00F0) >> 4),
		N:    uint8(word & 0x000F),
		KK:   uint8(word & 0x00FF),
		NNN:  word & 0x0FFF,
	}
	ins.Op = decodeOp(word, ins.N, ins.KK)
	return ins
}

func decodeOp(word uint16, n, kk uint8) Op {
	switch word >> 12 {
	case 0x0:
		switch n {
		case 0x0:
			return OpCls
		case 0xE:
			return OpRet
		default:
			return OpSys
		}
	case 0x1:
		return OpJp
	case 0x2:
		return OpCall
	case 0x3:
		return OpSeImm
	case 0x4:
		return OpSneImm
	case 0x5:
		return OpSeReg
	case 0x6:
		return OpLdImm
	case 0x7:
		return OpAddImm
	case 0x8:
		return decodeALU(n)
	case 0x9:
		return OpSneReg
	case 0xA:
		return OpLdI
	case 0xB:
		return OpJpV0
	case 0xC:
		return OpRnd
	case 0xD:
		return OpDrw
	case 0xE:
		switch n {
		case 0xE:
			return OpSkp
		case 0x1:
			return OpSknp
		}
	case 0xF:
		return decodeMisc(kk)
	}
	return OpUnknown
}

func decodeALU(n uint8) Op {
	switch n {
	case 0x0:
		return OpLdReg
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddReg
	case 0x5:
		return OpSub
	case 0x6:
		return OpShr
	case 0x7:
		return OpSubn
	case 0xE:
		return OpShl
	default:
		return OpUnknown
	}
}

func decodeMisc(kk uint8) Op {
	switch kk {
	case 0x07:
		return OpLdVxDT
	case 0x0A:
		return OpLdVxK
	case 0x15:
		return OpLdDTVx
	case 0x18:
		return OpLdSTVx
	case 0x1E:
		return OpAddI
	case 0x29:
		return OpLdF
	case 0x33:
		return OpLdB
	case 0x55:
		return OpLdIVx
	case 0x65:
		return OpLdVxI
	default:
		return OpUnknown
	}
}
