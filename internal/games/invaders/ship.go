package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Ship is the player-controlled ship.
type Ship struct {
	Entity
	Bullets []*Bullet

	lastShot     time.Time
	cooldown     time.Duration
	muzzleOffset float64
	bullet       config.BulletConfig
}

// NewShip creates a ship at pos. onDeath fires when the ship is destroyed.
func NewShip(pos core.Vec, cfg config.InvadersConfig, onDeath DeathHandler) *Ship {
	return &Ship{
		Entity:       newEntity(KindShip, pos, cfg.Ship.Radius, cfg.Ship.Speed, onDeath),
		cooldown:     cfg.Ship.FireCooldown,
		muzzleOffset: cfg.Ship.MuzzleOffset,
		bullet:       cfg.Bullet,
	}
}

// Update moves the ship from the held controls and fires when allowed.
// Right is checked first, so holding both directions moves right.
func (s *Ship) Update(in core.InputState, now time.Time) {
	if in.Held(core.ControlRight) {
		s.Position.X += s.speed
	} else if in.Held(core.ControlLeft) {
		s.Position.X -= s.speed
	}

	if in.Held(core.ControlFire) && s.canFire(now) {
		muzzle := s.Position.Add(core.Vec{Y: -s.muzzleOffset})
		s.Bullets = append(s.Bullets, NewBullet(muzzle, DirectionUp, s.bullet))
		s.lastShot = now
	}
}

// canFire reports whether the cooldown since the last shot has elapsed.
func (s *Ship) canFire(now time.Time) bool {
	return s.lastShot.IsZero() || now.Sub(s.lastShot) >= s.cooldown
}

// Wrap teleports the ship to the opposite edge when it leaves the field.
func (s *Ship) Wrap(bounds core.Bounds) {
	if s.Position.X > bounds.W {
		s.Position.X = 0
	} else if s.Position.X < 0 {
		s.Position.X = bounds.W
	}
	if s.Position.Y > bounds.H {
		s.Position.Y = 0
	} else if s.Position.Y < 0 {
		s.Position.Y = bounds.H
	}
}

// UpdateBullets advances the ship's bullets and removes dead ones.
func (s *Ship) UpdateBullets(bounds core.Bounds) {
	s.Bullets = updateBullets(s.Bullets, bounds)
}
