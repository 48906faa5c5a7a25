package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Invader is a single member of the formation.
// Bullets is kept so invaders can be given fire without touching collisions.
type Invader struct {
	Entity
	Bullets []*Bullet
}

// Formation is the set of live invaders. They share one horizontal
// direction and descend together.
type Formation struct {
	Invaders []*Invader

	direction float64 // +1 moving right, -1 moving left
	descent   float64
}

// Layout returns the deterministic start positions for count invaders.
//
// Invaders are placed left to right starting at (StartX, StartY), one
// diameter plus Gap apart. When the next position would come within
// radius+RightMargin of the right edge a new row starts one step lower,
// alternating its first column between AltStartX and StartX.
func Layout(count int, fieldWidth float64, cfg config.InvaderConfig) []core.Vec {
	if count <= 0 {
		return nil
	}

	positions := make([]core.Vec, 0, count)
	step := cfg.Radius*2 + cfg.Gap
	pos := core.Vec{X: cfg.StartX, Y: cfg.StartY}
	useAlt := true

	for range count {
		positions = append(positions, pos)

		pos.X += step
		if pos.X+cfg.Radius+cfg.RightMargin >= fieldWidth {
			if useAlt {
				pos.X = cfg.AltStartX
			} else {
				pos.X = cfg.StartX
			}
			useAlt = !useAlt
			pos.Y += step
		}
	}
	return positions
}

// NewFormation lays out count invaders for a field of the given width.
// onDeath is attached to every invader.
func NewFormation(count int, fieldWidth float64, cfg config.InvaderConfig, onDeath DeathHandler) *Formation {
	f := &Formation{
		direction: 1,
		descent:   cfg.Descent,
	}
	for _, pos := range Layout(count, fieldWidth, cfg) {
		f.Invaders = append(f.Invaders, &Invader{
			Entity: newEntity(KindInvader, pos, cfg.Radius, cfg.Speed, onDeath),
		})
	}
	return f
}

// Len returns the number of invaders still in the formation.
func (f *Formation) Len() int {
	return len(f.Invaders)
}

// MovingRight reports the shared horizontal direction.
func (f *Formation) MovingRight() bool {
	return f.direction > 0
}

// Update runs one frame of formation housekeeping.
//
// Dead invaders are removed first. Every survivor touching the edge the
// formation is heading toward holds still; the rest move one step. If any
// invader touched the edge, the whole formation reverses and descends once.
func (f *Formation) Update(bounds core.Bounds) {
	f.Invaders = compact(f.Invaders)

	reverse := false
	for _, inv := range f.Invaders {
		if f.atLeadingEdge(inv, bounds) {
			reverse = true
			continue
		}
		inv.Position.X += f.direction * inv.speed
	}

	for _, inv := range f.Invaders {
		inv.Bullets = updateBullets(inv.Bullets, bounds)
	}

	if reverse {
		f.reverse()
	}
}

// atLeadingEdge reports whether inv touches the edge in the current direction.
func (f *Formation) atLeadingEdge(inv *Invader, bounds core.Bounds) bool {
	if f.direction > 0 {
		return inv.Position.X+inv.radius >= bounds.W
	}
	return inv.Position.X-inv.radius <= 0
}

func (f *Formation) reverse() {
	f.direction = -f.direction
	for _, inv := range f.Invaders {
		inv.Position.Y += f.descent
	}
}

// Landed reports whether any live invader has reached the bottom of the field.
func (f *Formation) Landed(bounds core.Bounds) bool {
	for _, inv := range f.Invaders {
		if inv.Alive() && inv.Position.Y+inv.radius >= bounds.H {
			return true
		}
	}
	return false
}
