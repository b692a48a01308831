package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/colossus/audio"
	"github.com/lixenwraith/colossus/config"
	"github.com/lixenwraith/colossus/core"
	"github.com/lixenwraith/colossus/engine"
	"github.com/lixenwraith/colossus/host"
	"github.com/lixenwraith/colossus/logging"
	"github.com/lixenwraith/colossus/parameter"
	"github.com/lixenwraith/colossus/status"
	"github.com/lixenwraith/colossus/traction"
	"github.com/lixenwraith/colossus/vmath"
)

var (
	configDir = flag.String("config", ".", "Directory containing colossus.toml")
	headless  = flag.Bool("headless", false, "Run the scripted scenario without a terminal")
	duration  = flag.Duration("duration", 0, "Headless run length in sim time (overrides config)")
	seed      = flag.Uint64("seed", 0, "Host shake seed (overrides config)")
	withAudio = flag.Bool("audio", false, "Enable audio cues (overrides config)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *headless {
		cfg.Sim.Headless = true
	}
	if *duration > 0 {
		cfg.Sim.Duration = *duration
	}
	if *seed != 0 {
		cfg.Sim.Seed = *seed
	}
	if *withAudio {
		cfg.Audio.Enabled = true
	}

	// The interactive screen owns the terminal, so logs go to a file or nowhere
	var logOut io.Writer = os.Stderr
	if !cfg.Sim.Headless && cfg.Logging.File == "" {
		logOut = io.Discard
	}
	log, closer, err := logging.New(cfg.Logging, logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	reg := status.NewRegistry()
	world := engine.NewWorld(engine.WithWorldLogger(log), engine.WithStatus(reg))
	log = world.Logger()

	metrics, err := engine.NewMetrics(world.SessionID(), nil)
	if err != nil {
		log.Error().Err(err).Msg("metrics disabled")
	} else {
		world.Register(metrics)
	}
	world.Register(logging.NewEventLogger(log))

	player := audio.NewCuePlayer(cfg.Audio, audio.WithLogger(log))
	if err := player.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
	} else {
		world.Register(player)
		defer player.Close()
	}

	h, actor := buildScene(world, cfg)
	log.Info().
		Bool("headless", cfg.Sim.Headless).
		Dur("tick", cfg.Sim.TickInterval).
		Int("points", h.PointCount()).
		Msg("scene ready")

	if cfg.Sim.Headless {
		runHeadless(world, h, actor.ID(), cfg.Sim.Duration, cfg.Sim.TickInterval, metrics, log)
		return
	}

	game, err := NewGame(world, h, actor, reg, cfg.Sim.TickInterval, metrics, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()
	game.run()
}

// Game is the interactive terminal front end over a running world
type Game struct {
	screen    tcell.Screen
	world     *engine.World
	host      *host.Host
	actor     *traction.Controller
	reg       *status.Registry
	clock     *engine.PausableClock
	scheduler *engine.ClockScheduler
	updates   <-chan struct{}
	log       zerolog.Logger
}

func NewGame(w *engine.World, h *host.Host, a *traction.Controller, reg *status.Registry,
	interval time.Duration, m *engine.Metrics, log zerolog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	core.SetCrashCleanup(screen.Fini)

	var opts []engine.SchedulerOption
	if m != nil {
		opts = append(opts, engine.WithStepHook(m.RecordStep))
	}
	clock := engine.NewPausableClock(nil)
	scheduler, updates := engine.NewClockScheduler(w, clock, interval, opts...)

	return &Game{
		screen:    screen,
		world:     w,
		host:      h,
		actor:     a,
		reg:       reg,
		clock:     clock,
		scheduler: scheduler,
		updates:   updates,
		log:       log,
	}, nil
}

// inputFor maps a key to an actor command; false for keys the game handles itself
func inputFor(ev *tcell.EventKey) (traction.Input, bool) {
	var in traction.Input
	switch ev.Key() {
	case tcell.KeyUp:
		in.Move = vmath.V3FUp
	case tcell.KeyDown:
		in.Move = vmath.Vec3F{Y: -1}
	case tcell.KeyLeft:
		in.Move = vmath.Vec3F{X: -1}
	case tcell.KeyRight:
		in.Move = vmath.V3FRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'g':
			in.GripPressed = true
		case 'r':
			in.GripReleased = true
		case ' ':
			in.JumpPressed = true
		case 'c':
			in.ChargePressed = true
		case 'x':
			in.ChargeReleased = true
		case 'w':
			in.Move = vmath.V3FUp
		case 's':
			in.Move = vmath.Vec3F{Y: -1}
		case 'a':
			in.Move = vmath.Vec3F{X: -1}
		case 'd':
			in.Move = vmath.V3FRight
		default:
			return in, false
		}
	default:
		return in, false
	}
	return in, true
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if in, ok := inputFor(ev); ok {
			g.world.Submit(g.actor.ID(), in)
			return true
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'k':
				g.world.Exec(func() {
					if !g.host.ForceShake() {
						g.log.Info().Msg("shake not available")
					}
				})
			case 'p':
				if g.clock.IsPaused() {
					g.clock.Resume()
				} else {
					g.clock.Pause()
				}
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) draw() {
	g.screen.Clear()
	g.world.RunSafe(func() {
		drawScene(g.screen, g.world, g.host)
		drawHUD(g.screen, g.actor, g.host, g.reg, g.clock.IsPaused())
	})
	g.screen.Show()
}

func (g *Game) run() {
	g.scheduler.Start()
	defer g.scheduler.Stop()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	dirty := true
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
			dirty = true
		case <-g.updates:
			dirty = true
		case <-frameTicker.C:
			if dirty {
				g.draw()
				dirty = false
			}
		}
	}
}

func (g *Game) cleanup() {
	g.screen.Fini()
	g.log.Info().Uint64("ticks", g.scheduler.TickCount()).Msg("session ended")
}
