package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default game configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Timing: TimingConfig{
			FPSLimit:    30,
			StartDelay:  2 * time.Second,
			SettleDelay: 500 * time.Millisecond,
		},
		Ship: ShipConfig{
			Speed:        2.5,
			Radius:       15,
			FireCooldown: 250 * time.Millisecond,
			BottomOffset: 50,
			MuzzleOffset: 5,
		},
		Invaders: InvaderConfig{
			Count:       27,
			Radius:      15,
			Speed:       1,
			StartX:      100,
			AltStartX:   110,
			StartY:      20,
			Gap:         20,
			RightMargin: 50,
			Descent:     50,
			Points:      500,
		},
		Bullet: BulletConfig{
			Speed:  5,
			Radius: 2,
		},
		Input: InputConfig{
			RepeatDelay: 550 * time.Millisecond,
			HoldWindow:  180 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
