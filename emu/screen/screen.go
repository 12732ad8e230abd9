// Package screen holds the host frontends that show the framebuffer and feed
// the key latch: a pixelgl window and a raw mode terminal.
package screen

import (
	"strings"
	"time"

	"github.com/beanboi7/chyp8/emu/gfx"
	"github.com/beanboi7/chyp8/emu/keypad"
)

const (
	Title = "Chyp8"

	// terminals only report key presses, a key counts as held for this long
	keyRepeatDuration = time.Second / 5
)

// KeyLayout maps every keypad key to the host key on the left side of a
// QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var KeyLayout = [keypad.Keys]rune{
	0x0: 'x',
	0x1: '1', 0x2: '2', 0x3: '3', 0xC: '4',
	0x4: 'q', 0x5: 'w', 0x6: 'e', 0xD: 'r',
	0x7: 'a', 0x8: 's', 0x9: 'd', 0xE: 'f',
	0xA: 'z', 0xB: 'c', 0xF: 'v',
}

// KeyForRune returns the keypad key bound to the host key r.
func KeyForRune(r rune) (uint8, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	for key, bound := range KeyLayout {
		if bound == r {
			return uint8(key), true
		}
	}
	return 0, false
}

// RenderText draws the framebuffer with half block glyphs, two pixel rows per
// text line, each line terminated by CR LF for raw mode terminals.
func RenderText(fb *gfx.Framebuffer) string {
	var sb strings.Builder
	sb.Grow(gfx.Height / 2 * (gfx.Width*3 + 2))

	for y := 0; y < gfx.Height; y += 2 {
		for x := 0; x < gfx.Width; x++ {
			top, bottom := fb.Pixel(x, y), fb.Pixel(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
