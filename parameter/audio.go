package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume is the default master gain in [0, 1]
	AudioMasterVolume = 0.6

	// MinCueGap suppresses repeats of the same cue closer than this in sim time
	MinCueGap = 100 * time.Millisecond
)

// Shake Rumble
const (
	RumbleDuration = 400 * time.Millisecond
	RumbleAttack   = 60 * time.Millisecond
	RumbleRelease  = 200 * time.Millisecond
	RumbleFreq     = 55.0
)

// Forced Detach Buzz
const (
	SlipDuration = 120 * time.Millisecond
	SlipAttack   = 5 * time.Millisecond
	SlipRelease  = 40 * time.Millisecond
	SlipFreq     = 110.0
)

// Weak Point Chime
const (
	ChimeNote1Duration = 80 * time.Millisecond
	ChimeNote2Duration = 240 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 180 * time.Millisecond
	ChimeNote1Freq     = 987.77
	ChimeNote2Freq     = 1318.51
)

// Host Death Toll
const (
	TollDuration = 900 * time.Millisecond
	TollFreq     = 146.83
)
