package audio

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// Config holds chime playback settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
}

// DefaultConfig returns the chime defaults: disabled, half volume, 44.1 kHz
func DefaultConfig() *Config {
	return &Config{
		Enabled:      false,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
}
