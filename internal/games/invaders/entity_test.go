package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestEntityDieNotifiesOnce(t *testing.T) {
	var got []*Entity
	e := newEntity(KindInvader, core.Vec{X: 1, Y: 2}, 15, 1, func(e *Entity) {
		got = append(got, e)
	})

	if !e.Alive() {
		t.Fatal("new entity should be alive")
	}
	if !e.Die() {
		t.Error("first Die() should report true")
	}
	if e.Die() {
		t.Error("second Die() should report false")
	}
	if e.Alive() {
		t.Error("entity should stay dead")
	}
	if len(got) != 1 || got[0] != &e {
		t.Errorf("expected one notification with the entity, got %d", len(got))
	}
}

func TestEntityKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindShip, "ship"},
		{KindInvader, "invader"},
		{KindBullet, "bullet"},
		{Kind(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.expected {
			t.Errorf("Kind(%d).String() = %q, expected %q", tc.kind, got, tc.expected)
		}
	}
}

func TestBulletLeavesField(t *testing.T) {
	bounds := core.Bounds{W: 800, H: 600}
	cfg := config.BulletConfig{Speed: 5, Radius: 2}

	tests := []struct {
		name  string
		pos   core.Vec
		dir   Direction
		alive bool
		y     float64
	}{
		{"up inside", core.Vec{Y: 100}, DirectionUp, true, 95},
		{"up past top", core.Vec{Y: 4}, DirectionUp, false, -1},
		{"down inside", core.Vec{Y: 100}, DirectionDown, true, 105},
		{"down onto bottom", core.Vec{Y: 595}, DirectionDown, true, 600},
		{"down past bottom", core.Vec{Y: 597}, DirectionDown, false, 602},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBullet(tc.pos, tc.dir, cfg)
			b.Update(bounds)

			if b.Alive() != tc.alive {
				t.Errorf("expected alive=%v, got %v", tc.alive, b.Alive())
			}
			if b.Position.Y != tc.y {
				t.Errorf("expected y=%v, got %v", tc.y, b.Position.Y)
			}
		})
	}
}

func TestBulletDiscardDoesNotNotify(t *testing.T) {
	notified := false
	b := &Bullet{Entity: newEntity(KindBullet, core.Vec{Y: 1}, 2, 5, func(*Entity) { notified = true })}
	b.Direction = DirectionUp

	b.Update(core.Bounds{W: 10, H: 10})

	if b.Alive() {
		t.Error("bullet leaving the field should be dead")
	}
	if notified {
		t.Error("leaving the field is not a death notification")
	}
}
