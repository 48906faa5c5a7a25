package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Snapshot contains the observable game state, used for determinism checks
// and debugging.
type Snapshot struct {
	State       string
	Score       int
	Frames      int
	HasShip     bool
	Ship        core.Vec
	ShipBullets []core.Vec
	Invaders    []core.Vec
	MovingRight bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:       g.state.String(),
		Score:       g.score,
		Frames:      g.frames,
		MovingRight: g.formation.MovingRight(),
	}

	if g.ship != nil {
		snap.HasShip = true
		snap.Ship = g.ship.Position
		for _, b := range g.ship.Bullets {
			snap.ShipBullets = append(snap.ShipBullets, b.Position)
		}
	}
	for _, inv := range g.formation.Invaders {
		snap.Invaders = append(snap.Invaders, inv.Position)
	}
	return snap
}
