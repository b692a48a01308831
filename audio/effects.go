package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/colossus/parameter"
	"github.com/lixenwraith/colossus/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a wave source of the given length
// Noise is drawn from a fixed seed so the same cue always renders the same samples
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream of known length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// rumble is low noise mixed under a sub tone, for shake start
func rumble(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, parameter.RumbleDuration, WaveNoise, rate),
		parameter.RumbleDuration, parameter.RumbleAttack, parameter.RumbleRelease, rate)
	sub := NewEnvelope(NewOscillator(parameter.RumbleFreq, parameter.RumbleDuration, WaveSine, rate),
		parameter.RumbleDuration, parameter.RumbleAttack, parameter.RumbleRelease, rate)
	return beep.Mix(newVolume(noise, 0.3), newVolume(sub, 0.7))
}

// slip is a short saw buzz for a forced detach
func slip(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.SlipFreq, parameter.SlipDuration, WaveSaw, rate)
	return NewEnvelope(osc, parameter.SlipDuration, parameter.SlipAttack, parameter.SlipRelease, rate)
}

// chime is a rising two-note square for a weak point hit
func chime(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(parameter.ChimeNote1Freq, parameter.ChimeNote1Duration, WaveSquare, rate),
		parameter.ChimeNote1Duration, parameter.ChimeAttack, parameter.ChimeNote1Release, rate)
	n2 := NewEnvelope(NewOscillator(parameter.ChimeNote2Freq, parameter.ChimeNote2Duration, WaveSquare, rate),
		parameter.ChimeNote2Duration, parameter.ChimeAttack, parameter.ChimeNote2Release, rate)
	return beep.Seq(n1, n2)
}

// toll is a long decaying sine for host death
func toll(rate beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, parameter.TollFreq)
	if err != nil {
		return nil, fmt.Errorf("creating toll tone: %w", err)
	}
	n := rate.N(parameter.TollDuration)
	return NewEnvelope(beep.Take(n, tone), parameter.TollDuration, 10*time.Millisecond, parameter.TollDuration*2/3, rate), nil
}

// CueSound renders a cue at the configured master volume
func CueSound(c Cue, cfg Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch c {
	case CueShake:
		s = rumble(rate)
	case CueSlip:
		s = slip(rate)
	case CueWeakPointHit:
		s = chime(rate)
	case CueHostDeath:
		var err error
		if s, err = toll(rate); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("no sound for cue %v", c)
	}
	return newVolume(s, cfg.MasterVolume), nil
}
