package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// SoundManager plays editor cues through a single mixer on the speaker.
// Every method is safe to call before Initialize or after Cleanup; cues are
// then dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
	logger      *zap.Logger

	// play hands a streamer to the output; replaced in tests
	play func(beep.Streamer)
}

// Option configures a SoundManager
type Option func(*SoundManager)

// WithLogger sets the logger; the default discards
func WithLogger(l *zap.Logger) Option {
	return func(sm *SoundManager) { sm.logger = l.Named("audio") }
}

// WithVolume sets the master volume, clamped to [0, 1]
func WithVolume(v float64) Option {
	return func(sm *SoundManager) { sm.volume = min(max(v, 0), 1) }
}

// NewSoundManager creates a new sound manager
func NewSoundManager(opts ...Option) *SoundManager {
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(sampleRate),
		volume: defaultVolume,
		logger: zap.NewNop(),
	}
	sm.play = sm.mixer.Add
	for _, opt := range opts {
		opt(sm)
	}
	return sm
}

// Initialize opens the speaker. It fails on hosts without an audio device;
// callers treat that as "run silent".
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(speakerBufferLength)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("speaker initialized", zap.Int("sample_rate", int(sm.rate)))
	return nil
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// Initialized reports whether cues reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues cue c on the mixer
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := CueStreamer(c, sm.rate, sm.volume)
	if err != nil {
		sm.logger.Warn("cue unavailable", zap.Stringer("cue", c), zap.Error(err))
		return
	}

	speaker.Lock()
	sm.play(s)
	speaker.Unlock()
}

// PlaySplit plays the region-created cue
func (sm *SoundManager) PlaySplit() { sm.Play(CueSplit) }

// PlayMerge plays the edge-removed cue
func (sm *SoundManager) PlayMerge() { sm.Play(CueMerge) }

// PlayReject plays the refused-command buzz
func (sm *SoundManager) PlayReject() { sm.Play(CueReject) }
