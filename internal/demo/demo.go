// Package demo runs an interactive window that visualises the input layer:
// a marker follows the resolved movement direction and changes color while
// actions are held.
package demo

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-input/internal/config"
	"github.com/Faultbox/midgard-input/internal/engine/audio"
	"github.com/Faultbox/midgard-input/internal/engine/renderer"
	"github.com/Faultbox/midgard-input/internal/engine/window"
	"github.com/Faultbox/midgard-input/internal/input"
	"github.com/Faultbox/midgard-input/internal/input/sdlinput"
	"github.com/Faultbox/midgard-input/internal/logger"
	"github.com/Faultbox/midgard-input/pkg/math"
)

// Action names the demo reads.
const (
	ActionUp    = "up"
	ActionRight = "right"
	ActionDown  = "down"
	ActionLeft  = "left"
	ActionJump  = "jump"
	ActionFire  = "fire"
	ActionQuit  = "quit"
)

// App is the demo instance.
type App struct {
	cfg      *config.Config
	log      *zap.Logger
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	backend  *sdlinput.Backend
	input    *input.Context
	audio    *audio.Manager
}

// Cues played when the matching action is just pressed.
var defaultCues = map[string]audio.Cue{
	ActionJump: {Freq: 660, Duration: 80 * time.Millisecond},
	ActionFire: {Freq: 440, Duration: 50 * time.Millisecond},
}

// New opens the window and binds the configured actions.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("demo"),
	}

	ctx, err := NewInputContext(cfg, logger.Named("input"))
	if err != nil {
		return nil, err
	}
	a.input = ctx

	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context created by the window
	width, height := a.window.Size()
	a.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.backend = sdlinput.New(logger.Named("sdl"))

	a.audio = audio.New(logger.Named("audio"))
	if cfg.Audio.Enabled {
		a.audio.SetVolume(cfg.Audio.Volume)
		for action, cue := range defaultCues {
			a.audio.SetCue(action, cue)
		}
		// Run silent when no output device is available
		if err := a.audio.Init(); err != nil {
			a.log.Warn("audio disabled", zap.Error(err))
		}
	}

	a.log.Info("demo initialized", zap.Strings("actions", a.input.Actions()))
	return a, nil
}

// NewInputContext builds an input context from the configured deadzones and
// bindings.
func NewInputContext(cfg *config.Config, log *zap.Logger) (*input.Context, error) {
	dz := cfg.Input.Deadzone
	ctx := input.New(input.Config{
		Deadzone: &dz,
		Logger:   log,
	})
	for pad, dz := range cfg.Input.PadDeadzones {
		ctx.State().SetDeadzone(pad, dz)
	}

	bindings, err := cfg.InputBindings()
	if err != nil {
		return nil, fmt.Errorf("invalid bindings: %w", err)
	}
	if err := ctx.BindAll(bindings); err != nil {
		return nil, fmt.Errorf("binding actions: %w", err)
	}
	return ctx, nil
}

// Run starts the main loop and returns when the window closes or the quit
// action fires.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting loop")

	for a.running {
		// 1. Poll platform events, then refresh input once for this frame
		if a.backend.Pump() {
			break
		}
		for _, ev := range a.backend.Events() {
			switch ev.Type {
			case sdlinput.EventWindowResize:
				a.renderer.Resize(ev.Width, ev.Height)
			case sdlinput.EventPadAdded, sdlinput.EventPadRemoved:
				a.log.Debug("pad slots changed", zap.Ints("connected", a.backend.ConnectedPads()))
			}
		}
		a.input.Update(a.backend)

		// 2. Resolve actions
		f := Step(a.input)
		if f.Quit {
			a.running = false
		}
		if f.Jumped {
			a.log.Info("jump")
			a.cue(ActionJump)
		}
		if f.Fired {
			a.cue(ActionFire)
		}

		// 3. Render and present
		a.renderer.Begin()
		a.renderer.DrawDirection(f.Direction, f.Color)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Stringer("direction", f.Direction))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases the window and devices.
func (a *App) Close() {
	a.log.Info("closing demo")

	if a.audio != nil {
		a.audio.Close()
	}
	if a.backend != nil {
		a.backend.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) cue(action string) {
	if err := a.audio.Play(action); err != nil {
		a.log.Debug("cue failed", zap.String("action", action), zap.Error(err))
	}
}

// Input returns the demo's input context.
func (a *App) Input() *input.Context {
	return a.input
}

// Frame is what one frame of the demo resolved from input.
type Frame struct {
	Direction math.Vec2
	Color     renderer.Color
	Jumped    bool
	Fired     bool
	Quit      bool
}

// Step resolves the demo actions from ctx. It is free of SDL and GL calls.
func Step(ctx *input.Context) Frame {
	f := Frame{
		Direction: ctx.Direction(ActionUp, ActionRight, ActionDown, ActionLeft),
		Jumped:    ctx.JustPressed(ActionJump),
		Fired:     ctx.JustPressed(ActionFire),
		Quit:      ctx.JustPressed(ActionQuit),
		Color:     renderer.ColorIdle,
	}
	switch {
	case ctx.Pressed(ActionJump) || ctx.Pressed(ActionFire):
		f.Color = renderer.ColorAction
	case !f.Direction.IsZero():
		f.Color = renderer.ColorMoving
	}
	return f
}
