package constants

import "time"

// Speaker Setup
const (
	// SpeakerBufferDuration is the playback buffer handed to speaker.Init
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Chime Note Timing
const (
	ChimeNote1Duration = 180 * time.Millisecond
	ChimeNote2Duration = 450 * time.Millisecond
	ChimeAttack        = 10 * time.Millisecond
	ChimeNote1Release  = 120 * time.Millisecond
	ChimeNote2Release  = 350 * time.Millisecond
)

// Chime Note Frequencies (Hz)
const (
	ChimeNote1Freq    = 523.25  // C5
	ChimeNote2Freq    = 783.99  // G5
	ChimeOvertoneFreq = 1567.98 // G6, octave above note 2
)
