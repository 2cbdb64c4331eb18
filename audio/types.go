package audio

import "time"

// Cue identifies an editor sound
type Cue int

const (
	CueSplit  Cue = iota // Region created
	CueMerge             // Edge removed
	CueReject            // Command refused
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueSplit:
		return "split"
	case CueMerge:
		return "merge"
	case CueReject:
		return "reject"
	}
	return "unknown"
}

const (
	sampleRate          = 48000
	speakerBufferLength = 100 * time.Millisecond

	noteDuration = 60 * time.Millisecond
	noteAttack   = 5 * time.Millisecond
	noteRelease  = 30 * time.Millisecond
	noteLowHz    = 660.0
	noteHighHz   = 880.0

	rejectDuration = 150 * time.Millisecond
	rejectAttack   = 10 * time.Millisecond
	rejectRelease  = 60 * time.Millisecond
	rejectHz       = 120.0
	rejectGain     = 0.35

	defaultVolume = 0.5
)
