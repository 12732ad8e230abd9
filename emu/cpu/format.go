package cpu

import "fmt"

var mnemonics = map[Op]string{
	OpSys:    "SYS",
	OpCls:    "CLS",
	OpRet:    "RET",
	OpJp:     "JP",
	OpCall:   "CALL",
	OpSeImm:  "SE",
	OpSneImm: "SNE",
	OpSeReg:  "SE",
	OpLdImm:  "LD",
	OpAddImm: "ADD",
	OpLdReg:  "LD",
	OpOr:     "OR",
	OpAnd:    "AND",
	OpXor:    "XOR",
	OpAddReg: "ADD",
	OpSub:    "SUB",
	OpShr:    "SHR",
	OpSubn:   "SUBN",
	OpShl:    "SHL",
	OpSneReg: "SNE",
	OpLdI:    "LD",
	OpJpV0:   "JP",
	OpRnd:    "RND",
	OpDrw:    "DRW",
	OpSkp:    "SKP",
	OpSknp:   "SKNP",
	OpLdVxDT: "LD",
	OpLdVxK:  "LD",
	OpLdDTVx: "LD",
	OpLdSTVx: "LD",
	OpAddI:   "ADD",
	OpLdF:    "LD",
	OpLdB:    "LD",
	OpLdIVx:  "LD",
	OpLdVxI:  "LD",
}

// Mnemonic returns the assembler name of the operation, empty for OpUnknown.
func (op Op) Mnemonic() string {
	return mnemonics[op]
}

// String renders the instruction in the usual CHIP-8 assembler syntax, for
// example "LD V1, 0x2A". Unknown words render as a data word.
func (ins Instruction) String() string {
	name := ins.Op.Mnemonic()

	switch ins.Op {
	case OpUnknown:
		return fmt.Sprintf("DW 0x%04X", ins.Word)
	case OpCls, OpRet:
		return name
	case OpSys, OpJp, OpCall:
		return fmt.Sprintf("%s 0x%03X", name, ins.NNN)
	case OpSeImm, OpSneImm, OpLdImm, OpAddImm, OpRnd:
		return fmt.Sprintf("%s V%X, 0x%02X", name, ins.X, ins.KK)
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpSubn:
		return fmt.Sprintf("%s V%X, V%X", name, ins.X, ins.Y)
	case OpShr, OpShl, OpSkp, OpSknp:
		return fmt.Sprintf("%s V%X", name, ins.X)
	case OpLdI:
		return fmt.Sprintf("LD I, 0x%03X", ins.NNN)
	case OpJpV0:
		return fmt.Sprintf("JP V0, 0x%03X", ins.NNN)
	case OpDrw:
		return fmt.Sprintf("DRW V%X, V%X, %d", ins.X, ins.Y, ins.N)
	case OpLdVxDT:
		return fmt.Sprintf("LD V%X, DT", ins.X)
	case OpLdVxK:
		return fmt.Sprintf("LD V%X, K", ins.X)
	case OpLdDTVx:
		return fmt.Sprintf("LD DT, V%X", ins.X)
	case OpLdSTVx:
		return fmt.Sprintf("LD ST, V%X", ins.X)
	case OpAddI:
		return fmt.Sprintf("ADD I, V%X", ins.X)
	case OpLdF:
		return fmt.Sprintf("LD F, V%X", ins.X)
	case OpLdB:
		return fmt.Sprintf("LD B, V%X", ins.X)
	case OpLdIVx:
		return fmt.Sprintf("LD [I], V%X", ins.X)
	case OpLdVxI:
		return fmt.Sprintf("LD V%X, [I]", ins.X)
	}
	return name
}
