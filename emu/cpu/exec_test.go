package cpu

import (
	"errors"
	"testing"

	"github.com/beanboi7/chyp8/emu/memory"
	"github.com/retroenv/retrogolib/assert"
)

type fixedRandom uint8

func (r fixedRandom) Byte() uint8 {
	return uint8(r)
}

func exec(t *testing.T, m *Machine, word uint16) {
	t.Helper()
	assert.NoError(t, m.execute(Decode(word)))
}

func TestAddRegisterCarry(t *testing.T) {
	m := New()

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			m.V[1], m.V[2] = uint8(a), uint8(b)
			exec(t, m, 0x8124)

			assert.Equal(t, uint8((a+b)%256), m.V[1])
			assert.Equal(t, flag(a+b > 255), m.V[F])
		}
	}
}

func TestSubtractNotBorrow(t *testing.T) {
	m := New()

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			m.V[3], m.V[4] = uint8(a), uint8(b)
			exec(t, m, 0x8345)

			assert.Equal(t, uint8(a-b), m.V[3])
			assert.Equal(t, flag(a > b), m.V[F])

			m.V[3], m.V[4] = uint8(a), uint8(b)
			exec(t, m, 0x8347)

			assert.Equal(t, uint8(b-a), m.V[3])
			assert.Equal(t, flag(b > a), m.V[F])
		}
	}
}

func TestShifts(t *testing.T) {
	m := New()

	for v := 0; v < 256; v++ {
		m.V[5] = uint8(v)
		exec(t, m, 0x8506)
		assert.Equal(t, uint8(v>>1), m.V[5])
		assert.Equal(t, uint8(v&1), m.V[F])

		m.V[5] = uint8(v)
		exec(t, m, 0x850E)
		assert.Equal(t, uint8(v<<1), m.V[5])
		assert.Equal(t, uint8(v>>7), m.V[F])
	}
}

func TestAddImmediateWrapsWithoutFlag(t *testing.T) {
	m := New()
	m.V[0] = 0xFF
	m.V[F] = 7

	exec(t, m, 0x7002)

	assert.Equal(t, uint8(0x01), m.V[0])
	assert.Equal(t, uint8(7), m.V[F])
}

func TestLogicLeavesFlag(t *testing.T) {
	m := New()
	m.V[F] = 9

	m.V[1], m.V[2] = 0xF0, 0x3C
	exec(t, m, 0x8121)
	assert.Equal(t, uint8(0xFC), m.V[1])

	m.V[1] = 0xF0
	exec(t, m, 0x8122)
	assert.Equal(t, uint8(0x30), m.V[1])

	m.V[1] = 0xF0
	exec(t, m, 0x8123)
	assert.Equal(t, uint8(0xCC), m.V[1])

	exec(t, m, 0x8120)
	assert.Equal(t, uint8(0x3C), m.V[1])

	assert.Equal(t, uint8(9), m.V[F])
}

func TestSkips(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		vx   uint8
		vy   uint8
		skip bool
	}{
		{"SE imm equal", 0x3142, 0x42, 0, true},
		{"SE imm different", 0x3142, 0x41, 0, false},
		{"SNE imm equal", 0x4142, 0x42, 0, false},
		{"SNE imm different", 0x4142, 0x41, 0, true},
		{"SE reg equal", 0x5120, 9, 9, true},
		{"SE reg different", 0x5120, 9, 8, false},
		{"SNE reg equal", 0x9120, 9, 9, false},
		{"SNE reg different", 0x9120, 9, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.V[1], m.V[2] = tt.vx, tt.vy
			pc := m.PC()

			exec(t, m, tt.word)

			expected := pc
			if tt.skip {
				expected += 2
			}
			assert.Equal(t, expected, m.PC())
		})
	}
}

func TestJumpWithOffset(t *testing.T) {
	m := New()
	m.V[0] = 0x10

	exec(t, m, 0xB300)

	assert.Equal(t, uint16(0x310), m.PC())
}

func TestRandomMasked(t *testing.T) {
	m := New(WithRandom(fixedRandom(0xAB)))

	exec(t, m, 0xC70F)

	assert.Equal(t, uint8(0x0B), m.V[7])
}

func TestAddressRegister(t *testing.T) {
	m := New()

	exec(t, m, 0xA123)
	assert.Equal(t, uint16(0x123), m.I)

	m.V[4] = 0xFF
	m.V[F] = 3
	exec(t, m, 0xF41E)
	assert.Equal(t, uint16(0x222), m.I)
	assert.Equal(t, uint8(3), m.V[F])

	m.V[4] = 0xB
	exec(t, m, 0xF429)
	assert.Equal(t, memory.GlyphAddress(0xB), m.I)
}

func TestBCD(t *testing.T) {
	tests := []struct {
		value    uint8
		expected [3]uint8
	}{
		{255, [3]uint8{2, 5, 5}},
		{7, [3]uint8{0, 0, 7}},
		{100, [3]uint8{1, 0, 0}},
		{42, [3]uint8{0, 4, 2}},
		{0, [3]uint8{0, 0, 0}},
	}

	for _, tt := range tests {
		m := New()
		m.I = 0x300
		m.V[6] = tt.value

		exec(t, m, 0xF633)

		block, err := m.memory.ReadBlock(0x300, 3)
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, [3]uint8{block[0], block[1], block[2]})
	}
}

func TestStoreLoadRoundTrip(t *testing.T) {
	for x := 0; x < Registers; x++ {
		m := New()
		m.I = 0x400
		for i := range m.V {
			m.V[i] = uint8(i*17 + 3)
		}
		saved := m.V

		exec(t, m, 0xF055|uint16(x)<<8)
		m.V = [Registers]uint8{}
		exec(t, m, 0xF065|uint16(x)<<8)

		for i := 0; i < Registers; i++ {
			if i <= x {
				assert.Equal(t, saved[i], m.V[i])
			} else {
				assert.Equal(t, uint8(0), m.V[i])
			}
		}
		assert.Equal(t, uint16(0x400), m.I)
	}
}

func TestStoreIsInclusive(t *testing.T) {
	m := New()
	m.I = 0x500
	m.V[0], m.V[1], m.V[2] = 1, 2, 3

	exec(t, m, 0xF155)

	block, _ := m.memory.ReadBlock(0x500, 3)
	assert.Equal(t, [3]uint8{1, 2, 0}, [3]uint8{block[0], block[1], block[2]})
}

func TestTimerInstructions(t *testing.T) {
	m := New()
	m.V[2] = 30

	exec(t, m, 0xF215)
	exec(t, m, 0xF218)
	assert.Equal(t, uint8(30), m.DelayTimer())
	assert.Equal(t, uint8(30), m.SoundTimer())
	assert.True(t, m.SoundActive())

	m.delayTimer = 12
	exec(t, m, 0xF307)
	assert.Equal(t, uint8(12), m.V[3])
}

func TestKeySkips(t *testing.T) {
	m := New()
	m.V[1] = 0xA
	m.Keypad().Set(0xA, true)

	pc := m.PC()
	exec(t, m, 0xE19E)
	assert.Equal(t, pc+2, m.PC())

	pc = m.PC()
	exec(t, m, 0xE1A1)
	assert.Equal(t, pc, m.PC())

	m.Keypad().Set(0xA, false)
	exec(t, m, 0xE1A1)
	assert.Equal(t, pc+2, m.PC())
}

func TestKeyOutOfRange(t *testing.T) {
	m := New()
	m.V[1] = 0x10

	err := m.execute(Decode(0xE19E))
	assert.True(t, errors.Is(err, ErrKeyOutOfRange))
}

func TestDrawCollision(t *testing.T) {
	m := New()
	m.V[0], m.V[1] = 4, 6
	m.V[2] = 0
	exec(t, m, 0xF229) //I = glyph 0

	exec(t, m, 0xD015)
	assert.Equal(t, uint8(0), m.V[F])
	assert.True(t, m.Display().Pixel(4, 6))

	exec(t, m, 0xD015)
	assert.Equal(t, uint8(1), m.V[F])
	assert.False(t, m.Display().Pixel(4, 6))

	exec(t, m, 0xD015)
	exec(t, m, 0x00E0)
	assert.False(t, m.Display().Pixel(4, 6))
}

func TestDrawUsesCoordinatesBeforeFlagReset(t *testing.T) {
	m := New()
	m.V[F] = 10
	m.V[1] = 3
	exec(t, m, 0xF129)

	exec(t, m, 0xDF15)

	assert.True(t, m.Display().Pixel(10, 3))
	assert.Equal(t, uint8(0), m.V[F])
}

func TestMemoryFaults(t *testing.T) {
	m := New()
	m.I = 0xFFE

	err := m.execute(Decode(0xF033))
	assert.True(t, errors.Is(err, memory.ErrAddressOutOfRange))

	err = m.execute(Decode(0xF355))
	assert.True(t, errors.Is(err, memory.ErrAddressOutOfRange))

	err = m.execute(Decode(0xF365))
	assert.True(t, errors.Is(err, memory.ErrAddressOutOfRange))

	err = m.execute(Decode(0xD003))
	assert.True(t, errors.Is(err, memory.ErrAddressOutOfRange))
}

func TestUnknownIsNoop(t *testing.T) {
	m := New()
	m.V[3] = 5
	before := *m

	exec(t, m, 0x800F)
	exec(t, m, 0xF0FF)
	exec(t, m, 0x0123)

	assert.Equal(t, before.V, m.V)
	assert.Equal(t, before.pc, m.pc)
	assert.Equal(t, before.I, m.I)
}
