package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Direction is the vertical travel direction of a bullet.
type Direction int8

const (
	DirectionUp   Direction = -1
	DirectionDown Direction = 1
)

// Bullet is a projectile owned by whoever fired it.
type Bullet struct {
	Entity
	Direction Direction
}

// NewBullet creates a bullet at pos travelling in dir.
func NewBullet(pos core.Vec, dir Direction, cfg config.BulletConfig) *Bullet {
	return &Bullet{
		Entity:    newEntity(KindBullet, pos, cfg.Radius, cfg.Speed, nil),
		Direction: dir,
	}
}

// Update moves the bullet and retires it once it leaves the field.
func (b *Bullet) Update(bounds core.Bounds) {
	b.Position = b.Position.Add(core.Vec{Y: float64(b.Direction) * b.speed})
	if b.Position.Y < 0 || b.Position.Y > bounds.H {
		b.discard()
	}
}

// updateBullets advances every live bullet, then drops the dead ones.
func updateBullets(bullets []*Bullet, bounds core.Bounds) []*Bullet {
	for _, b := range bullets {
		if b.Alive() {
			b.Update(bounds)
		}
	}
	return compact(bullets)
}
