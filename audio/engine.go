package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/termgreet/constants"
)

// Engine manages the speaker lifecycle for chime playback. A speaker that
// cannot be acquired flips the engine to silent mode instead of failing;
// the greeting still renders without sound.
type Engine struct {
	config  *Config
	started bool
	silent  bool
}

// NewEngine creates a playback engine for the given config
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{config: cfg}
}

// Start initializes the speaker. Speaker failure is not an error: the
// engine enters silent mode and Play becomes a no-op.
func (e *Engine) Start() error {
	if e.started {
		return nil
	}

	rate := beep.SampleRate(e.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		e.silent = true
		e.started = true
		return nil
	}

	e.started = true
	return nil
}

// Play queues a streamer on the speaker. No-op before Start, in silent
// mode, or when the chime is disabled.
func (e *Engine) Play(s beep.Streamer) {
	if !e.started || e.silent || !e.config.Enabled || s == nil {
		return
	}
	speaker.Play(s)
}

// Silent reports whether the engine fell back to silent mode on Start
func (e *Engine) Silent() bool {
	return e.silent
}

// Stop closes the speaker
func (e *Engine) Stop() {
	if !e.started || e.silent {
		return
	}
	speaker.Close()
	e.started = false
}
