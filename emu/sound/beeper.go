// Package sound plays a tone while the sound timer of the machine is running.
package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	frequency  = 440
	volume     = 0.2
)

// Beeper gates a square tone on the speaker.
type Beeper struct {
	ctrl   *beep.Ctrl
	active bool
}

// NewBeeper initializes the speaker and starts the paused tone.
func NewBeeper() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	b := &Beeper{
		ctrl: &beep.Ctrl{Streamer: SquareWave(sampleRate, frequency), Paused: true},
	}
	speaker.Play(b.ctrl)
	return b, nil
}

func (b *Beeper) SetActive(active bool) {
	if active == b.active {
		return
	}
	b.active = active

	speaker.Lock()
	b.ctrl.Paused = !active
	speaker.Unlock()
}

// Close silences the tone.
func (b *Beeper) Close() {
	b.SetActive(false)
	speaker.Clear()
}

// SquareWave returns an endless square tone of the given frequency.
func SquareWave(sr beep.SampleRate, freq int) beep.Streamer {
	period := sr.N(time.Second) / freq
	position := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := volume
			if position >= period/2 {
				v = -volume
			}
			samples[i][0], samples[i][1] = v, v
			position = (position + 1) % period
		}
		return len(samples), true
	})
}

// Mute is a Beeper that never makes a sound.
type Mute struct{}

func (Mute) SetActive(bool) {}
