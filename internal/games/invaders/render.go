package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Sprites, centered on the entity position.
const (
	ShipSprite       = "◢▲◣"
	InvaderSprite    = "<O>"
	InvaderSpriteAlt = ">O<"
	BulletUpChar     = '|'
	BulletDownChar   = '!'
	GroundChar       = '▔'
)

// invaderAnimFrames is how many gameplay frames each invader sprite is shown.
const invaderAnimFrames = 15

// viewport maps world coordinates onto the screen rows below the HUD.
type viewport struct {
	sx, sy     float64
	top        int
	cols, rows int
}

func newViewport(b core.Bounds, cols, rows, top int) viewport {
	return viewport{
		sx:   float64(cols) / b.W,
		sy:   float64(rows) / b.H,
		top:  top,
		cols: cols,
		rows: rows,
	}
}

// cell returns the screen cell for a world position, clamped to the field.
func (v viewport) cell(p core.Vec) (int, int) {
	x := core.Clamp(int(math.Floor(p.X*v.sx)), 0, v.cols-1)
	y := core.Clamp(int(math.Floor(p.Y*v.sy)), 0, v.rows-1)
	return x, v.top + y
}

// Render draws the field into dst: a HUD line, the ground, then the
// invaders, bullets and ship scaled from world units to screen cells.
// Outside play a centered status line is drawn over the field.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 1 || dst.Height() < 2 {
		return
	}

	hud := fmt.Sprintf(" SCORE %d", g.score)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	remaining := fmt.Sprintf("INVADERS %d ", g.formation.Len())
	dst.DrawTextColored(dst.Width()-len(remaining), 0, remaining, core.ColorGray)

	v := newViewport(g.bounds, dst.Width(), dst.Height()-1, 1)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGray)

	sprite := InvaderSprite
	if (g.frames/invaderAnimFrames)%2 == 1 {
		sprite = InvaderSpriteAlt
	}
	for _, inv := range g.formation.Invaders {
		if inv.Alive() {
			drawSprite(dst, v, inv.Position, sprite, core.ColorBrightGreen)
		}
		drawBullets(dst, v, inv.Bullets, core.ColorBrightRed)
	}

	if g.ship != nil {
		drawBullets(dst, v, g.ship.Bullets, core.ColorBrightYellow)
		if g.ship.Alive() {
			drawSprite(dst, v, g.ship.Position, ShipSprite, core.ColorCyan)
		}
	}

	switch g.state {
	case StateStartScreen:
		dst.DrawTextCentered(dst.Height()/2, "PRESS ENTER TO START")
	case StateGameOver:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("GAME OVER - SCORE %d", g.score))
	}
}

// drawSprite writes sprite centered on the cell containing pos.
func drawSprite(dst *core.Screen, v viewport, pos core.Vec, sprite string, c core.Color) {
	x, y := v.cell(pos)
	dst.DrawTextColored(x-len([]rune(sprite))/2, y, sprite, c)
}

func drawBullets(dst *core.Screen, v viewport, bullets []*Bullet, c core.Color) {
	for _, b := range bullets {
		if !b.Alive() {
			continue
		}
		ch := BulletUpChar
		if b.Direction == DirectionDown {
			ch = BulletDownChar
		}
		x, y := v.cell(b.Position)
		dst.SetColored(x, y, ch, c)
	}
}
