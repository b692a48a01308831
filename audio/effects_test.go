package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/colossus/parameter"
)

const testRate = beep.SampleRate(44100)

// drain streams s to exhaustion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorWaves(t *testing.T) {
	tests := []struct {
		name  string
		wave  WaveType
		check func(v float64) bool
	}{
		{"sine", WaveSine, func(v float64) bool { return v >= -1 && v <= 1 }},
		{"square", WaveSquare, func(v float64) bool { return v == -1 || v == 1 }},
		{"saw", WaveSaw, func(v float64) bool { return v >= -1 && v < 1 }},
		{"noise", WaveNoise, func(v float64) bool { return v >= -1 && v <= 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(220, 50*time.Millisecond, tt.wave, testRate)
			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Stream = (%d, %v), want (100, true)", n, ok)
			}
			for i := 0; i < n; i++ {
				if !tt.check(samples[i][0]) {
					t.Fatalf("sample %d = %f out of shape", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Fatalf("sample %d channels differ", i)
				}
			}
		})
	}
}

func TestOscillatorNoiseDeterministic(t *testing.T) {
	a := drain(NewOscillator(0, 10*time.Millisecond, WaveNoise, testRate))
	b := drain(NewOscillator(0, 10*time.Millisecond, WaveNoise, testRate))
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between renders", i)
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	d := 100 * time.Millisecond
	got := len(drain(NewOscillator(440, d, WaveSine, testRate)))
	if got != testRate.N(d) {
		t.Errorf("samples = %d, want %d", got, testRate.N(d))
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	src := NewOscillator(0, d, WaveSquare, testRate) // phase stays 0, constant +1
	out := drain(NewEnvelope(src, d, 10*time.Millisecond, 20*time.Millisecond, testRate))

	if out[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at attack start", out[0][0])
	}
	mid := len(out) / 2
	if out[mid][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", out[mid][0])
	}
	last := out[len(out)-1][0]
	if last <= 0 || last > 0.01 {
		t.Errorf("last sample = %f, want small positive tail", last)
	}
}

func TestNewVolumeZero(t *testing.T) {
	out := drain(newVolume(NewOscillator(440, 10*time.Millisecond, WaveSquare, testRate), 0))
	for i, s := range out {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
}

func TestCueSound(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		cue  Cue
		want time.Duration
	}{
		{CueShake, parameter.RumbleDuration},
		{CueSlip, parameter.SlipDuration},
		{CueWeakPointHit, parameter.ChimeNote1Duration + parameter.ChimeNote2Duration},
		{CueHostDeath, parameter.TollDuration},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s, err := CueSound(tt.cue, cfg)
			if err != nil {
				t.Fatalf("CueSound: %v", err)
			}
			out := drain(s)
			wantN := testRate.N(tt.want)
			if tt.cue == CueWeakPointHit {
				wantN = testRate.N(parameter.ChimeNote1Duration) + testRate.N(parameter.ChimeNote2Duration)
			}
			if len(out) != wantN {
				t.Errorf("samples = %d, want %d", len(out), wantN)
			}
			peak := 0.0
			for _, s := range out {
				peak = math.Max(peak, math.Abs(s[0]))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %f, want in (0, 1]", peak)
			}
		})
	}

	if _, err := CueSound(CueNone, cfg); err == nil {
		t.Error("CueNone rendered a sound")
	}
}
