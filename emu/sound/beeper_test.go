package sound

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/retroenv/retrogolib/assert"
)

func TestSquareWave(t *testing.T) {
	sr := beep.SampleRate(800)
	streamer := SquareWave(sr, 100) // 8 samples per period

	samples := make([][2]float64, 16)
	n, ok := streamer.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, 16, n)

	for i, s := range samples {
		expected := volume
		if i%8 >= 4 {
			expected = -volume
		}
		assert.Equal(t, expected, s[0])
		assert.Equal(t, expected, s[1])
	}
}

func TestSquareWaveContinuesAcrossCalls(t *testing.T) {
	streamer := SquareWave(beep.SampleRate(800), 100)

	first := make([][2]float64, 3)
	streamer.Stream(first)
	second := make([][2]float64, 2)
	streamer.Stream(second)

	assert.Equal(t, volume, second[0][0])
	assert.Equal(t, -volume, second[1][0])
}
