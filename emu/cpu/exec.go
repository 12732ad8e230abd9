package cpu

import (
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/beanboi7/chyp8/emu/memory"
)

// execute runs one decoded instruction. The program counter already points
// past the instruction.
func (m *Machine) execute(ins Instruction) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpUnknown, OpSys:
		//permissive like the hardware, nothing happens

	case OpCls:
		m.display.Clear()

	case OpRet:
		if m.sp == 0 {
			return ErrStackUnderflow
		}
		m.sp--
		m.pc = m.stack[m.sp]

	case OpJp:
		m.pc = ins.NNN

	case OpCall:
		if int(m.sp) >= StackSize {
			return ErrStackOverflow
		}
		m.stack[m.sp] = m.pc
		m.sp++
		m.pc = ins.NNN

	case OpSeImm:
		m.skipIf(m.V[x] == ins.KK)

	case OpSneImm:
		m.skipIf(m.V[x] != ins.KK)

	case OpSeReg:
		m.skipIf(m.V[x] == m.V[y])

	case OpSneReg:
		m.skipIf(m.V[x] != m.V[y])

	case OpLdImm:
		m.V[x] = ins.KK

	case OpAddImm:
		m.V[x] += ins.KK

	case OpLdReg:
		m.V[x] = m.V[y]

	case OpOr:
		m.V[x] |= m.V[y]

	case OpAnd:
		m.V[x] &= m.V[y]

	case OpXor:
		m.V[x] ^= m.V[y]

	case OpAddReg:
		sum := uint16(m.V[x]) + uint16(m.V[y])
		m.V[x] = uint8(sum)
		m.V[F] = flag(sum > 0xFF)

	case OpSub:
		vx, vy := m.V[x], m.V[y]
		m.V[x] = vx - vy
		m.V[F] = flag(vx > vy)

	case OpSubn:
		vx, vy := m.V[x], m.V[y]
		m.V[x] = vy - vx
		m.V[F] = flag(vy > vx)

	case OpShr:
		vx := m.V[x]
		m.V[x] = vx >> 1
		m.V[F] = vx & 0x01

	case OpShl:
		vx := m.V[x]
		m.V[x] = vx << 1
		m.V[F] = vx >> 7

	case OpLdI:
		m.I = ins.NNN

	case OpJpV0:
		m.pc = uint16(m.V[0]) + ins.NNN

	case OpRnd:
		m.V[x] = m.random.Byte() & ins.KK

	case OpDrw:
		return m.draw(m.V[x], m.V[y], ins.N)

	case OpSkp:
		pressed, err := m.keyPressed(m.V[x])
		if err != nil {
			return err
		}
		m.skipIf(pressed)

	case OpSknp:
		pressed, err := m.keyPressed(m.V[x])
		if err != nil {
			return err
		}
		m.skipIf(!pressed)

	case OpLdVxK:
		key, ok := m.keys.FirstPressed()
		if !ok {
			//run this instruction again on the next step
			m.pc -= instructionSize
			return nil
		}
		m.V[x] = key

	case OpLdVxDT:
		m.V[x] = m.delayTimer

	case OpLdDTVx:
		m.delayTimer = m.V[x]

	case OpLdSTVx:
		m.soundTimer = m.V[x]

	case OpAddI:
		m.I += uint16(m.V[x])

	case OpLdF:
		m.I = memory.GlyphAddress(m.V[x])

	case OpLdB:
		v := m.V[x]
		return m.memory.WriteBlock(m.I, []uint8{v / 100, (v / 10) % 10, v % 10})

	case OpLdIVx:
		return m.memory.WriteBlock(m.I, m.V[:int(x)+1])

	case OpLdVxI:
		block, err := m.memory.ReadBlock(m.I, int(x)+1)
		if err != nil {
			return err
		}
		copy(m.V[:], block)
	}

	return nil
}

func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += instructionSize
	}
}

func (m *Machine) keyPressed(key uint8) (bool, error) {
	if int(key) >= keypad.Keys {
		return false, ErrKeyOutOfRange
	}
	return m.keys.Pressed(key), nil
}

// draw XORs a height row sprite from I into the framebuffer at (x, y), VF
// reports whether a lit pixel was switched off.
func (m *Machine) draw(x, y, height uint8) error {
	sprite, err := m.memory.ReadBlock(m.I, int(height))
	if err != nil {
		return err
	}
	m.V[F] = flag(m.display.DrawSprite(x, y, sprite))
	return nil
}

func flag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
