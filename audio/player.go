package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/colossus/event"
	"github.com/lixenwraith/colossus/parameter"
)

// Output receives rendered cue streams; the speaker mixer in production, a recorder in tests
type Output interface {
	Play(s beep.Streamer)
}

// speakerOutput plays into a mixer registered with the speaker once
type speakerOutput struct {
	mixer *beep.Mixer
}

func (o *speakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// CuePlayer is an observer that turns simulation events into short synthesized sounds
// Repeats of one cue inside MinCueGap of sim time are dropped
type CuePlayer struct {
	mu          sync.Mutex
	cfg         Config
	out         Output
	log         zerolog.Logger
	lastPlayed  [cueCount]time.Duration
	played      [cueCount]bool
	counts      [cueCount]int
	initialized bool
}

// PlayerOption configures a CuePlayer
type PlayerOption func(*CuePlayer)

// WithOutput replaces the speaker; Initialize then skips device setup
func WithOutput(out Output) PlayerOption {
	return func(p *CuePlayer) { p.out = out }
}

func WithLogger(l zerolog.Logger) PlayerOption {
	return func(p *CuePlayer) { p.log = l }
}

func NewCuePlayer(cfg Config, opts ...PlayerOption) *CuePlayer {
	p := &CuePlayer{cfg: cfg, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Initialize opens the speaker; a disabled config is a no-op
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	if err := p.cfg.Validate(); err != nil {
		return err
	}

	if p.out == nil {
		rate := beep.SampleRate(p.cfg.SampleRate)
		if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
			return fmt.Errorf("initializing speaker: %w", err)
		}
		mixer := &beep.Mixer{}
		speaker.Play(mixer)
		p.out = &speakerOutput{mixer: mixer}
	}
	p.initialized = true
	return nil
}

// Close silences pending cues and releases the speaker
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if so, ok := p.out.(*speakerOutput); ok {
		speaker.Lock()
		so.mixer.Clear()
		speaker.Unlock()
		speaker.Close()
		p.out = nil
	}
	p.initialized = false
}

// Count returns how many times a cue was played
func (p *CuePlayer) Count(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c <= CueNone || c >= cueCount {
		return 0
	}
	return p.counts[c]
}

func (p *CuePlayer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventHostShakeStart,
		event.EventGripEnd,
		event.EventHostDamaged,
		event.EventHostDeath,
	}
}

func (p *CuePlayer) HandleEvent(ev event.GameEvent) {
	cue, ok := CueFor(ev)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if p.played[cue] && ev.Time-p.lastPlayed[cue] < parameter.MinCueGap {
		return
	}

	s, err := CueSound(cue, p.cfg)
	if err != nil {
		p.log.Warn().Err(err).Str("cue", cue.String()).Msg("cue render failed")
		return
	}
	p.out.Play(s)
	p.played[cue] = true
	p.lastPlayed[cue] = ev.Time
	p.counts[cue]++
}
