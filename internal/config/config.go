// Package config provides YAML-based configuration loading for the
// invaders game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// InvadersConfig contains all configuration for the game.
type InvadersConfig struct {
	Field    FieldConfig   `yaml:"field"`
	Timing   TimingConfig  `yaml:"timing"`
	Ship     ShipConfig    `yaml:"ship"`
	Invaders InvaderConfig `yaml:"invaders"`
	Bullet   BulletConfig  `yaml:"bullet"`
	Input    InputConfig   `yaml:"input"`
}

// FieldConfig defines the play field size in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig defines frame pacing and state machine gates.
type TimingConfig struct {
	FPSLimit    int           `yaml:"fps_limit"`
	StartDelay  time.Duration `yaml:"start_delay"`
	SettleDelay time.Duration `yaml:"settle_delay"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Speed        float64       `yaml:"speed"`
	Radius       float64       `yaml:"radius"`
	FireCooldown time.Duration `yaml:"fire_cooldown"`
	BottomOffset float64       `yaml:"bottom_offset"`
	MuzzleOffset float64       `yaml:"muzzle_offset"`
}

// InvaderConfig defines the invader formation.
type InvaderConfig struct {
	Count       int     `yaml:"count"`
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`
	StartX      float64 `yaml:"start_x"`
	AltStartX   float64 `yaml:"alt_start_x"`
	StartY      float64 `yaml:"start_y"`
	Gap         float64 `yaml:"gap"`
	RightMargin float64 `yaml:"right_margin"`
	Descent     float64 `yaml:"descent"`
	Points      int     `yaml:"points"`
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// InputConfig defines terminal input handling.
// A first press holds its control for RepeatDelay, each auto-repeat after
// it for HoldWindow. Keys replaces the default keys of the named controls.
type InputConfig struct {
	RepeatDelay time.Duration       `yaml:"repeat_delay"`
	HoldWindow  time.Duration       `yaml:"hold_window"`
	Keys        map[string][]string `yaml:"keys,omitempty"`
}

// FramePeriod returns the minimum time between processed frames,
// or zero when the frame-rate cap is disabled.
func (c TimingConfig) FramePeriod() time.Duration {
	if c.FPSLimit <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPSLimit)
}

// Validate checks that every size, speed and count is usable.
func (c InvadersConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("ship.speed", c.Ship.Speed)
	positive("ship.radius", c.Ship.Radius)
	positive("invaders.radius", c.Invaders.Radius)
	positive("invaders.speed", c.Invaders.Speed)
	positive("bullet.speed", c.Bullet.Speed)
	positive("bullet.radius", c.Bullet.Radius)

	if c.Invaders.Count < 0 {
		errs = append(errs, fmt.Errorf("invaders.count must not be negative, got %d", c.Invaders.Count))
	}
	if c.Timing.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("timing.fps_limit must not be negative, got %d", c.Timing.FPSLimit))
	}
	if c.Ship.FireCooldown < 0 || c.Timing.StartDelay < 0 || c.Timing.SettleDelay < 0 {
		errs = append(errs, errors.New("timing values must not be negative"))
	}

	if c.Input.RepeatDelay <= 0 {
		errs = append(errs, fmt.Errorf("input.repeat_delay must be positive, got %v", c.Input.RepeatDelay))
	}
	if c.Input.HoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("input.hold_window must be positive, got %v", c.Input.HoldWindow))
	}
	for name, keys := range c.Input.Keys {
		if _, ok := core.ParseControl(name); !ok {
			errs = append(errs, fmt.Errorf("input.keys: unknown control %q", name))
		} else if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("input.keys.%s: no keys given", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
