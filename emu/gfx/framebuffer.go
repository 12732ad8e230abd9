// Package gfx holds the monochrome framebuffer the draw instructions write to.
package gfx

const (
	Width  = 64
	Height = 32

	spriteWidth = 8
)

// Framebuffer is a Width x Height grid of on/off cells stored row major.
// Hosts read it through Pixel, Row and Pitch, only Clear and DrawSprite mutate it.
type Framebuffer struct {
	cells [Width * Height]bool
}

func (fb *Framebuffer) Clear() {
	fb.cells = [Width * Height]bool{}
}

// Pitch is the row stride of the cell grid.
func (fb *Framebuffer) Pitch() int {
	return Width
}

func (fb *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return fb.cells[y*Width+x]
}

// Row returns a copy of row y.
func (fb *Framebuffer) Row(y int) [Width]bool {
	var row [Width]bool
	copy(row[:], fb.cells[y*Width:(y+1)*Width])
	return row
}

// DrawSprite XORs the sprite rows into the grid with the origin wrapped onto
// the screen. Pixels that fall past the right or bottom edge are clipped.
// It reports whether any lit cell was switched off.
func (fb *Framebuffer) DrawSprite(x, y uint8, sprite []uint8) bool {
	xPos := int(x) % Width
	yPos := int(y) % Height
	collision := false

	for row, spriteByte := range sprite {
		py := yPos + row
		if py >= Height {
			break
		}

		for col := 0; col < spriteWidth; col++ {
			if spriteByte&(0x80>>col) == 0 {
				continue
			}
			px := xPos + col
			if px >= Width {
				break
			}

			cell := &fb.cells[py*Width+px]
			if *cell {
				collision = true
			}
			*cell = !*cell
		}
	}

	return collision
}
