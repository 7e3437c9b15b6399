package hum

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/antenna-logo/internal/config"
)

const (
	minPulse = 0.8
	maxPulse = 1.2
)

// Tone is a beep.Streamer producing a sine hum whose loudness follows the
// antenna tip pulse. The renderer sets the pulse while the speaker pulls
// samples from its own goroutine.
type Tone struct {
	sampleRate beep.SampleRate
	freq       float64
	volume     float64
	phase      float64

	mu   sync.RWMutex
	gain float64
}

// NewTone returns a silent tone; volume is clamped to [0, 1].
func NewTone(sr beep.SampleRate, freq, volume float64) *Tone {
	return &Tone{
		sampleRate: sr,
		freq:       freq,
		volume:     clamp01(volume),
	}
}

// SetPulse maps a tip scale factor in [0.8, 1.2] onto the tone gain.
func (t *Tone) SetPulse(scale float64) {
	g := clamp01((scale - minPulse) / (maxPulse - minPulse))
	t.mu.Lock()
	t.gain = g
	t.mu.Unlock()
}

func (t *Tone) Gain() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.gain
}

func (t *Tone) Stream(samples [][2]float64) (int, bool) {
	amp := t.Gain() * t.volume
	step := 2 * math.Pi * t.freq / float64(t.sampleRate)
	for i := range samples {
		v := amp * math.Sin(t.phase)
		samples[i][0] = v
		samples[i][1] = v
		t.phase += step
		if t.phase >= 2*math.Pi {
			t.phase -= 2 * math.Pi
		}
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }

// Player owns the speaker while the hum is playing.
type Player struct {
	Tone *Tone
	ctrl *beep.Ctrl
}

// Start initializes the speaker and begins playing the hum.
func Start(cfg config.Hum) (*Player, error) {
	sr := beep.SampleRate(config.HumSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	tone := NewTone(sr, cfg.Frequency, cfg.Volume)
	ctrl := &beep.Ctrl{Streamer: tone}
	speaker.Play(ctrl)
	return &Player{Tone: tone, ctrl: ctrl}, nil
}

// SetPulse forwards the tip scale factor to the playing tone.
func (p *Player) SetPulse(scale float64) { p.Tone.SetPulse(scale) }

// Stop silences the hum and drops it from the speaker.
func (p *Player) Stop() {
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
