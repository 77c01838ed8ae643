package haptic

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// Speaker defaults.
const (
	DefaultSampleRate = beep.SampleRate(44100)
	DefaultFrequency  = 880.0
)

// SpeakerConfig configures the audio buzzer.
type SpeakerConfig struct {
	// SampleRate of the output device. Zero selects DefaultSampleRate.
	SampleRate beep.SampleRate

	// Frequency of the tone in Hz. Zero selects DefaultFrequency.
	Frequency float64

	// Volume in beep's logarithmic base-2 scale; 0 is unchanged, -1 halves.
	Volume float64
}

// Speaker is a Buzzer that plays a square-wave tone on the default audio
// device. Only one Speaker should exist per process.
type Speaker struct {
	sampleRate beep.SampleRate
	frequency  float64
	volume     float64
}

// NewSpeaker initializes the audio device.
func NewSpeaker(cfg SpeakerConfig) (*Speaker, error) {
	s := &Speaker{
		sampleRate: cfg.SampleRate,
		frequency:  cfg.Frequency,
		volume:     cfg.Volume,
	}
	if s.sampleRate == 0 {
		s.sampleRate = DefaultSampleRate
	}
	if s.frequency <= 0 {
		s.frequency = DefaultFrequency
	}

	if err := speaker.Init(s.sampleRate, s.sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return s, nil
}

// Buzz plays the tone for d without blocking.
func (s *Speaker) Buzz(d time.Duration) {
	speaker.Play(s.tone(d))
}

func (s *Speaker) tone(d time.Duration) beep.Streamer {
	return &effects.Volume{
		Streamer: beep.Take(s.sampleRate.N(d), squareWave(s.sampleRate, s.frequency)),
		Base:     2,
		Volume:   s.volume,
	}
}

// squareWave returns an endless square wave at freq Hz.
func squareWave(sr beep.SampleRate, freq float64) beep.Streamer {
	period := float64(sr) / freq
	var pos float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := 0.5
			if math.Mod(pos, period) >= period/2 {
				v = -0.5
			}
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}
