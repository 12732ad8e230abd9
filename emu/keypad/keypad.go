// Package keypad holds the 16 key latch written by the host input frontend.
package keypad

const Keys = 16

// Keypad stores one pressed flag per hexadecimal key 0x0-0xF.
type Keypad struct {
	state [Keys]bool
}

func (k *Keypad) Set(key uint8, pressed bool) {
	if int(key) < Keys {
		k.state[key] = pressed
	}
}

func (k *Keypad) Pressed(key uint8) bool {
	return int(key) < Keys && k.state[key]
}

// Update replaces the whole latch, frontends call it once per driver iteration.
func (k *Keypad) Update(state [Keys]bool) {
	k.state = state
}

func (k *Keypad) Reset() {
	k.state = [Keys]bool{}
}

func (k *Keypad) State() [Keys]bool {
	return k.state
}

// FirstPressed returns the lowest numbered key that is held down.
func (k *Keypad) FirstPressed() (uint8, bool) {
	for i, pressed := range k.state {
		if pressed {
			return uint8(i), true
		}
	}
	return 0, false
}
