package audio

import (
	"testing"
)

// TestNewEngine verifies engine construction
func TestNewEngine(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	if engine == nil {
		t.Fatal("Expected non-nil engine")
	}

	if engine.Silent() {
		t.Error("Expected engine to not be silent before Start")
	}
}

// TestNewEngineNilConfig verifies a nil config falls back to defaults
func TestNewEngineNilConfig(t *testing.T) {
	engine := NewEngine(nil)
	if engine == nil {
		t.Fatal("Expected non-nil engine")
	}

	if engine.config == nil {
		t.Fatal("Expected engine to carry a config")
	}
	if engine.config.SampleRate != DefaultConfig().SampleRate {
		t.Errorf("Expected default sample rate, got %d", engine.config.SampleRate)
	}
}

// TestEnginePlayBeforeStart verifies Play is a safe no-op on an unstarted engine
func TestEnginePlayBeforeStart(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	engine := NewEngine(cfg)

	// Must not panic or touch the speaker
	engine.Play(GreetingChime(cfg))
	engine.Play(nil)
}

// TestEngineStopBeforeStart verifies Stop is a safe no-op on an unstarted engine
func TestEngineStopBeforeStart(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	engine.Stop()
	engine.Stop()
}
