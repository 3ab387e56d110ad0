package rustle

import (
	"math"

	"github.com/vovakirdan/bubble-rustle/internal/assets"
	"github.com/vovakirdan/bubble-rustle/internal/config"
	"github.com/vovakirdan/bubble-rustle/internal/core"
	"github.com/vovakirdan/bubble-rustle/internal/world"
)

// Visual characters for rendering
const (
	WallChar   = '█'
	BubbleChar = 'O'
	DotChar    = '●'
	RewardChar = '$'
	CursorMark = "> "
)

// Render draws the splash and the game screens. Menus are left blank: the
// platform lays them out from Buttons, Cursor and TopScores.
func (a *App) Render(s *core.Screen) {
	s.Clear()
	if a.ctx == nil {
		return
	}
	switch a.machine.App() {
	case StateSplash:
		a.renderSplash(s)
	case StateGame:
		a.renderGame(s)
	case StateMenu:
	}
}

func (a *App) renderSplash(s *core.Screen) {
	logo, ok := a.ctx.Arena.First(world.RoleLogo)
	if !ok {
		return
	}
	sprite, ok := a.ctx.Assets.Sprite(logo.Sprite)
	if !ok || sprite.Width > s.Width() {
		s.DrawTextCenteredColor(s.Height()/2, a.Title(), core.ColorCyan)
		return
	}
	top := (s.Height() - sprite.Height) / 2
	left := (s.Width() - sprite.Width) / 2
	drawSprite(s, sprite, left, top, core.ColorCyan)
}

func (a *App) renderGame(s *core.Screen) {
	ctx := a.ctx
	s.DrawTextColor(1, 0, ctx.HUD.Score, core.ColorYellow)
	s.DrawTextColor(s.Width()-len(ctx.HUD.Lives)-1, 0, ctx.HUD.Lives, core.ColorGreen)
	if a.paused {
		s.DrawTextCenteredColor(0, "PAUSED", core.ColorMagenta)
	}

	p := newProjection(ctx.Cfg.Arena, s.Width(), s.Height())
	ctx.Arena.Each(func(e *world.Entity) {
		r := p.rect(e.Box())
		switch e.Role {
		case world.RoleWall:
			s.DrawRectColor(r, WallChar, core.ColorGray)
		case world.RoleBubble:
			if r.W == 1 && r.H == 1 {
				s.SetColor(r.X, r.Y, DotChar, core.TierColor(e.Tier))
			} else {
				s.DrawRectColor(r, BubbleChar, core.TierColor(e.Tier))
			}
		case world.RoleReward:
			s.SetColor(r.X+r.W/2, r.Bottom()-1, RewardChar, core.ColorYellow)
		case world.RoleHook:
			a.drawHook(s, e, r)
		case world.RolePlayer:
			a.drawPlayer(s, e, r)
		}
	})
}

func (a *App) drawHook(s *core.Screen, e *world.Entity, r core.Rect) {
	tip, rope := '^', '|'
	if sprite, ok := a.ctx.Assets.Sprite(e.Sprite); ok && sprite.Height >= 2 {
		tip, rope = sprite.Rune(0, 0), sprite.Rune(0, 1)
	}
	x := r.X + r.W/2
	s.SetColor(x, r.Y, tip, core.ColorCyan)
	for y := r.Y + 1; y < r.Bottom(); y++ {
		s.SetColor(x, y, rope, core.ColorCyan)
	}
}

func (a *App) drawPlayer(s *core.Screen, e *world.Entity, r core.Rect) {
	sprite, ok := a.ctx.Assets.Sprite(e.Sprite)
	if !ok {
		s.DrawRectColor(r, '@', core.ColorGreen)
		return
	}
	left := r.X + r.W/2 - sprite.Width/2
	top := r.Bottom() - sprite.Height
	drawSprite(s, sprite, left, top, core.ColorGreen)
}

// drawSprite copies the non-space runes of a sprite onto the screen.
func drawSprite(s *core.Screen, sprite assets.Sprite, left, top int, c core.Color) {
	for y := 0; y < sprite.Height; y++ {
		for x := 0; x < sprite.Width; x++ {
			if r := sprite.Rune(x, y); r != ' ' {
				s.SetColor(left+x, top+y, r, c)
			}
		}
	}
}

// projection maps world units (y up) onto screen cells (y down). The top
// row is reserved for the HUD.
type projection struct {
	minX, maxY float64
	sx, sy     float64
	top        int
}

func newProjection(a config.ArenaConfig, w, h int) projection {
	half := a.WallSize / 2
	minX, maxX := a.Left-half, a.Right+half
	minY, maxY := a.Bottom-half, a.Top+half
	rows := max(h-1, 1)
	return projection{
		minX: minX,
		maxY: maxY,
		sx:   float64(w) / (maxX - minX),
		sy:   float64(rows) / (maxY - minY),
		top:  1,
	}
}

func (p projection) col(x float64) int {
	return int(math.Floor((x - p.minX) * p.sx))
}

func (p projection) row(y float64) int {
	return p.top + int(math.Floor((p.maxY-y)*p.sy))
}

// rect returns the cells covered by a box, at least one cell in each
// direction.
func (p projection) rect(b core.Box) core.Rect {
	x0 := p.col(b.MinX())
	x1 := p.col(b.MaxX())
	y0 := p.row(b.MaxY())
	y1 := p.row(b.MinY())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}
