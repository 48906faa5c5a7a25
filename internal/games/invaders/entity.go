package invaders

import (
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Kind identifies which variant an entity belongs to.
type Kind uint8

const (
	KindShip Kind = iota
	KindInvader
	KindBullet
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindInvader:
		return "invader"
	case KindBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// DeathHandler is notified when an entity dies.
type DeathHandler func(e *Entity)

// Entity is the state shared by every simulated object.
// Radius and speed are fixed at construction; death is terminal.
type Entity struct {
	Kind     Kind
	Position core.Vec

	radius  float64
	speed   float64
	dead    bool
	onDeath DeathHandler
}

func newEntity(kind Kind, pos core.Vec, radius, speed float64, onDeath DeathHandler) Entity {
	return Entity{
		Kind:     kind,
		Position: pos,
		radius:   radius,
		speed:    speed,
		onDeath:  onDeath,
	}
}

// Body returns the shared entity state. Promoted to every variant that
// embeds Entity, which makes them all Colliders.
func (e *Entity) Body() *Entity {
	return e
}

// Radius returns the collision radius.
func (e *Entity) Radius() float64 {
	return e.radius
}

// Speed returns the movement per frame.
func (e *Entity) Speed() float64 {
	return e.speed
}

// Alive reports whether the entity has not died yet.
func (e *Entity) Alive() bool {
	return !e.dead
}

// Die marks the entity dead and notifies its handler.
// Only the first call has any effect; it reports whether this call killed the entity.
func (e *Entity) Die() bool {
	if e.dead {
		return false
	}
	e.dead = true
	if e.onDeath != nil {
		e.onDeath(e)
	}
	return true
}

// discard marks the entity dead without notifying its handler.
func (e *Entity) discard() {
	e.dead = true
}

// Collider is anything that carries an Entity.
type Collider interface {
	Body() *Entity
}

// compact drops dead entities, keeping the order of the survivors.
func compact[T Collider](items []T) []T {
	return slices.DeleteFunc(items, func(it T) bool {
		return !it.Body().Alive()
	})
}
