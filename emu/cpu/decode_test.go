package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeOperands(t *testing.T) {
	ins := Decode(0xD2A5)

	assert.Equal(t, OpDrw, ins.Op)
	assert.Equal(t, uint16(0xD2A5), ins.Word)
	assert.Equal(t, uint8(0x2), ins.X)
	assert.Equal(t, uint8(0xA), ins.Y)
	assert.Equal(t, uint8(0x5), ins.N)
	assert.Equal(t, uint8(0xA5), ins.KK)
	assert.Equal(t, uint16(0x2A5), ins.NNN)
}

func TestDecodeOp(t *testing.T) {
	tests := []struct {
		word uint16
		op   Op
	}{
		{0x00E0, OpCls},
		{0x00EE, OpRet},
		{0x0123, OpSys},
		{0x1ABC, OpJp},
		{0x2ABC, OpCall},
		{0x3122, OpSeImm},
		{0x4122, OpSneImm},
		{0x5120, OpSeReg},
		{0x6122, OpLdImm},
		{0x7122, OpAddImm},
		{0x8120, OpLdReg},
		{0x8121, OpOr},
		{0x8122, OpAnd},
		{0x8123, OpXor},
		{0x8124, OpAddReg},
		{0x8125, OpSub},
		{0x8126, OpShr},
		{0x8127, OpSubn},
		{0x812E, OpShl},
		{0x9120, OpSneReg},
		{0xA123, OpLdI},
		{0xB123, OpJpV0},
		{0xC1FF, OpRnd},
		{0xD125, OpDrw},
		{0xE19E, OpSkp},
		{0xE1A1, OpSknp},
		{0xF107, OpLdVxDT},
		{0xF10A, OpLdVxK},
		{0xF115, OpLdDTVx},
		{0xF118, OpLdSTVx},
		{0xF11E, OpAddI},
		{0xF129, OpLdF},
		{0xF133, OpLdB},
		{0xF155, OpLdIVx},
		{0xF165, OpLdVxI},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.op, Decode(tt.word).Op, "word %04X", tt.word)
	}
}

func TestDecodeSecondaryKeyOnly(t *testing.T) {
	// the 0, 8 and E families only look at the low nibble
	assert.Equal(t, OpCls, Decode(0x0120).Op)
	assert.Equal(t, OpRet, Decode(0x034E).Op)
	assert.Equal(t, OpSkp, Decode(0xE10E).Op)
	assert.Equal(t, OpSknp, Decode(0xE1F1).Op)
	assert.Equal(t, OpShl, Decode(0x80FE).Op)
}

func TestDecodeUnknown(t *testing.T) {
	for _, word := range []uint16{0x8008, 0x800F, 0xE19F, 0xE1A2, 0xF100, 0xF1FF, 0xF166} {
		assert.Equal(t, OpUnknown, Decode(word).Op, "word %04X", word)
	}
}

func TestDecodeEveryWordTerminates(t *testing.T) {
	for w := 0; w <= 0xFFFF; w++ {
		ins := Decode(uint16(w))
		assert.True(t, ins.Op <= OpLdVxI)
	}
}
