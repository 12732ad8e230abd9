package screen

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu/gfx"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

// cellSize is the fixed size of one framebuffer cell in window pixels.
const cellSize = 10

var buttons = map[rune]pixelgl.Button{
	'1': pixelgl.Key1, '2': pixelgl.Key2, '3': pixelgl.Key3, '4': pixelgl.Key4,
	'q': pixelgl.KeyQ, 'w': pixelgl.KeyW, 'e': pixelgl.KeyE, 'r': pixelgl.KeyR,
	'a': pixelgl.KeyA, 's': pixelgl.KeyS, 'd': pixelgl.KeyD, 'f': pixelgl.KeyF,
	'z': pixelgl.KeyZ, 'x': pixelgl.KeyX, 'c': pixelgl.KeyC, 'v': pixelgl.KeyV,
}

// Window is a pixelgl window frontend. It has to be created and used from
// within pixelgl.Run.
type Window struct {
	*pixelgl.Window
	KeyMap map[uint16]pixelgl.Button

	imd *imdraw.IMDraw
}

func NewWindow() (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  Title,
		Bounds: pixel.R(0, 0, gfx.Width*cellSize, gfx.Height*cellSize),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	keyMap := make(map[uint16]pixelgl.Button, keypad.Keys)
	for key, r := range KeyLayout {
		keyMap[uint16(key)] = buttons[r]
	}

	return &Window{
		Window: win,
		KeyMap: keyMap,
		imd:    imdraw.New(nil),
	}, nil
}

// Poll copies the held keys into the latch, closing the window or pressing
// escape quits.
func (w *Window) Poll(keys *keypad.Keypad) bool {
	if w.Closed() || w.Pressed(pixelgl.KeyEscape) {
		return true
	}

	var state [keypad.Keys]bool
	for key, button := range w.KeyMap {
		state[key] = w.Pressed(button)
	}
	keys.Update(state)
	return false
}

// Render draws every lit cell as a white square and swaps buffers, which also
// processes the pending window events.
func (w *Window) Render(fb *gfx.Framebuffer) {
	w.imd.Clear()
	w.imd.Color = colornames.White

	for y := 0; y < gfx.Height; y++ {
		//pixel's origin is the bottom left corner
		top := float64((gfx.Height - y) * cellSize)
		for x := 0; x < gfx.Width; x++ {
			if !fb.Pixel(x, y) {
				continue
			}
			left := float64(x * cellSize)
			w.imd.Push(pixel.V(left, top-cellSize), pixel.V(left+cellSize, top))
			w.imd.Rectangle(0)
		}
	}

	w.Clear(colornames.Black)
	w.imd.Draw(w)
	w.Update()
}
