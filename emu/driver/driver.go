// Package driver runs a machine at a fixed instruction rate and connects it
// to the host frontend and beeper.
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/gfx"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/retroenv/retrogolib/log"
)

// Frontend is the host side of the machine: it fills the key latch and shows
// the framebuffer.
type Frontend interface {
	// Poll updates keys from host input and reports whether the user asked to quit.
	Poll(keys *keypad.Keypad) bool
	Render(fb *gfx.Framebuffer)
}

// Beeper plays a tone while active.
type Beeper interface {
	SetActive(active bool)
}

type Driver struct {
	Machine  *cpu.Machine
	Frontend Frontend
	Beeper   Beeper
	Logger   *log.Logger

	Clock   int // instruction steps per second
	Refresh int // frames per second

	// clock ticks carried over to the next frame
	carry int
}

var errInvalidRate = errors.New("clock and refresh rate must be positive")

// nextSteps returns how many instructions the next frame runs. The remainder
// of Clock/Refresh is carried over, so every Refresh frames run exactly Clock
// steps.
func (d *Driver) nextSteps() int {
	d.carry += d.Clock
	steps := d.carry / d.Refresh
	d.carry -= steps * d.Refresh
	return steps
}

// Run executes frames until the frontend reports quit or ctx is cancelled.
// A machine fault stops the loop and is returned.
func (d *Driver) Run(ctx context.Context) error {
	if d.Clock <= 0 || d.Refresh <= 0 {
		return fmt.Errorf("%w: clock %d, refresh %d", errInvalidRate, d.Clock, d.Refresh)
	}

	d.Logger.Debug("Starting emulation",
		log.Int("clock", d.Clock),
		log.Int("refresh", d.Refresh))

	ticker := time.NewTicker(time.Second / time.Duration(d.Refresh))
	defer ticker.Stop()
	defer d.setBeeper(false)

	for {
		select {
		case <-ctx.Done():
			d.Logger.Info("Emulation cancelled")
			return nil
		case <-ticker.C:
		}

		quit, err := d.Frame()
		if err != nil {
			return err
		}
		if quit {
			d.Logger.Info("Quit requested")
			return nil
		}
	}
}

// Frame runs one driver iteration: poll input, execute a frame worth of
// instructions, update the beeper and render.
func (d *Driver) Frame() (bool, error) {
	if d.Frontend.Poll(d.Machine.Keypad()) {
		return true, nil
	}

	steps := d.nextSteps()
	for i := 0; i < steps; i++ {
		if err := d.Machine.Step(); err != nil {
			return false, fmt.Errorf("executing instruction: %w", err)
		}
	}

	d.setBeeper(d.Machine.SoundActive())
	d.Frontend.Render(d.Machine.Display())
	return false, nil
}

func (d *Driver) setBeeper(active bool) {
	if d.Beeper != nil {
		d.Beeper.SetActive(active)
	}
}
