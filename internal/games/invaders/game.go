// Package invaders implements a Space Invaders-style game.
// The player moves a ship along the bottom of the field and shoots at a
// formation of invaders that sweeps side to side and descends.
package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// State is the top-level game state.
type State int

const (
	StateStartScreen State = iota // Title screen, waiting for confirm
	StatePlaying                  // Session in progress
	StateGameOver                 // Session ended, showing the score
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStartScreen:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Outcome records how the last session ended.
type Outcome int

const (
	OutcomeNone      Outcome = iota
	OutcomeCleared           // Every invader destroyed
	OutcomeDestroyed         // Ship destroyed
)

// EventKind identifies a death notification.
type EventKind int

const (
	EventInvaderDestroyed EventKind = iota
	EventShipDestroyed
)

// Event is a death notification queued during the collision pass and
// applied once per frame.
type Event struct {
	Kind     EventKind
	Position core.Vec
}

// Game implements the game loop and state machine.
type Game struct {
	cfg    config.InvadersConfig
	bounds core.Bounds

	state           State
	outcome         Outcome
	score           int
	kills           int
	ship            *Ship
	formation       *Formation
	events          []Event
	showControls    bool
	lastStateChange time.Time
	lastFrame       time.Time
	frames          int // Gameplay frames run this session
}

// New creates a game on the start screen.
func New(cfg config.InvadersConfig) *Game {
	g := &Game{}
	g.Reset(cfg)
	return g
}

// Reset returns the game to the start screen with a fresh configuration.
// The field takes the configured size.
func (g *Game) Reset(cfg config.InvadersConfig) {
	*g = Game{
		cfg:       cfg,
		bounds:    core.Bounds{W: cfg.Field.Width, H: cfg.Field.Height},
		state:     StateStartScreen,
		formation: &Formation{},
	}
}

// SetBounds updates the field size used by later frames.
func (g *Game) SetBounds(b core.Bounds) {
	if b.W <= 0 || b.H <= 0 {
		return
	}
	g.bounds = b
}

// Tick runs one frame at time now with the held controls in.
//
// When a frame-rate cap is configured and less than one frame period has
// passed since the last processed frame, Tick does nothing and returns false.
func (g *Game) Tick(now time.Time, in core.InputState) bool {
	if period := g.cfg.Timing.FramePeriod(); period > 0 && !g.lastFrame.IsZero() && now.Sub(g.lastFrame) < period {
		return false
	}
	g.lastFrame = now

	switch g.state {
	case StateStartScreen:
		if in.Held(core.ControlConfirm) && g.StartReady(now) {
			g.startSession(now)
		}
	case StateGameOver:
		if in.Held(core.ControlConfirm) {
			g.setState(StateStartScreen, now)
		}
	case StatePlaying:
		if now.Sub(g.lastStateChange) >= g.cfg.Timing.SettleDelay {
			g.play(now, in)
		}
	}
	return true
}

// startSession builds a fresh ship and formation and enters play.
func (g *Game) startSession(now time.Time) {
	spawn := core.Vec{X: g.bounds.W / 2, Y: g.bounds.H - g.cfg.Ship.BottomOffset}
	g.ship = NewShip(spawn, g.cfg, g.emitter(EventShipDestroyed))
	g.formation = NewFormation(g.cfg.Invaders.Count, g.bounds.W, g.cfg.Invaders, g.emitter(EventInvaderDestroyed))
	g.events = g.events[:0]
	g.score = 0
	g.kills = 0
	g.frames = 0
	g.outcome = OutcomeNone
	g.showControls = true
	g.setState(StatePlaying, now)
}

// play runs the gameplay body of one frame.
func (g *Game) play(now time.Time, in core.InputState) {
	if g.formation.Len() == 0 {
		g.outcome = OutcomeCleared
		g.setState(StateGameOver, now)
		return
	}

	if in.Any(core.ControlFire, core.ControlLeft, core.ControlRight) {
		g.showControls = false
	}

	ships := []*Ship{g.ship}
	ResolveCollisions(g.ship.Bullets, g.formation.Invaders)
	ResolveCollisions(ships, g.formation.Invaders)
	for _, inv := range g.formation.Invaders {
		ResolveCollisions(inv.Bullets, ships)
	}
	if g.formation.Landed(g.bounds) {
		g.ship.Die()
	}

	if g.drainEvents(now) {
		return
	}

	g.ship.Update(in, now)
	g.ship.Wrap(g.bounds)
	g.ship.UpdateBullets(g.bounds)
	g.formation.Update(g.bounds)
	g.frames++
}

// emitter returns a death handler that queues an event of the given kind.
func (g *Game) emitter(kind EventKind) DeathHandler {
	return func(e *Entity) {
		g.events = append(g.events, Event{Kind: kind, Position: e.Position})
	}
}

// drainEvents applies queued death notifications and reports whether the
// session ended.
func (g *Game) drainEvents(now time.Time) bool {
	lost := false
	for _, ev := range g.events {
		switch ev.Kind {
		case EventInvaderDestroyed:
			g.score += g.cfg.Invaders.Points
			g.kills++
		case EventShipDestroyed:
			lost = true
		}
	}
	g.events = g.events[:0]

	if !lost {
		return false
	}
	g.ship = nil
	g.formation = &Formation{}
	g.outcome = OutcomeDestroyed
	g.setState(StateGameOver, now)
	return true
}

func (g *Game) setState(s State, now time.Time) {
	g.state = s
	g.lastStateChange = now
}

// State returns the current top-level state.
func (g *Game) State() State {
	return g.state
}

// Outcome returns how the last session ended.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Score returns the score of the current or last session.
func (g *Game) Score() int {
	return g.score
}

// Kills returns the number of invaders destroyed in the current or last session.
func (g *Game) Kills() int {
	return g.kills
}

// StartReady reports whether a confirm at time now would start a session.
func (g *Game) StartReady(now time.Time) bool {
	return g.state == StateStartScreen && now.Sub(g.lastStateChange) >= g.cfg.Timing.StartDelay
}

// Ship returns the player ship, or nil outside a live session.
func (g *Game) Ship() *Ship {
	return g.ship
}

// Invaders returns the invaders still in the formation.
func (g *Game) Invaders() []*Invader {
	return g.formation.Invaders
}

// Bounds returns the current field size.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// ShowControls reports whether the control hint should be displayed.
// It is set when a session starts and cleared once the player moves or fires.
func (g *Game) ShowControls() bool {
	return g.state == StatePlaying && g.showControls
}

// Frames returns the number of gameplay frames run in the current session.
func (g *Game) Frames() int {
	return g.frames
}
