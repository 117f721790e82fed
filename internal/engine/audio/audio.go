// Package audio plays short tones as feedback when demo actions fire.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Cue is a tone played when an action fires.
type Cue struct {
	Freq     float64
	Duration time.Duration
}

// Manager mixes cues onto the speaker.
type Manager struct {
	mu  sync.RWMutex
	log *zap.Logger

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64 // 0.0 to 1.0
	cues        map[string]Cue

	// Mixer for overlapping cues
	mixer *beep.Mixer
}

// New creates a manager. log may be nil.
func New(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		log:    log,
		volume: 1.0,
		cues:   make(map[string]Cue),
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	m.log.Info("audio initialized", zap.Int("sample_rate", int(m.sampleRate)))
	return nil
}

// Close stops playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the speaker is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the cue volume, clamped to [0, 1].
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the cue volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// SetCue assigns a tone to an action. A zero frequency or duration removes it.
func (m *Manager) SetCue(action string, c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.Freq <= 0 || c.Duration <= 0 {
		delete(m.cues, action)
		return
	}
	m.cues[action] = c
}

// CueFor returns the tone assigned to action.
func (m *Manager) CueFor(action string) (Cue, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.cues[action]
	return c, ok
}

// Play sounds the cue for action. Actions without a cue and an uninitialized
// speaker are ignored.
func (m *Manager) Play(action string) error {
	m.mu.RLock()
	initialized := m.initialized
	sr := m.sampleRate
	vol := m.volume
	c, ok := m.cues[action]
	m.mu.RUnlock()

	if !initialized || !ok || vol <= 0 {
		return nil
	}

	tone, err := generators.SineTone(sr, c.Freq)
	if err != nil {
		return fmt.Errorf("cue %q: %w", action, err)
	}

	m.mixer.Add(&effects.Volume{
		Streamer: beep.Take(sr.N(c.Duration), tone),
		Base:     2,
		Volume:   volumeToDb(vol),
	})
	return nil
}

// volumeToDb converts a 0-1 volume to decibels.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // silent
	}
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
