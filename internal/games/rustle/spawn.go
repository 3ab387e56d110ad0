package rustle

import (
	"github.com/vovakirdan/bubble-rustle/internal/assets"
	"github.com/vovakirdan/bubble-rustle/internal/world"
)

// spawnWalls builds the four arena walls. Side walls are as tall as the
// arena plus one wall thickness so the corners are closed.
func spawnWalls(ctx *Context) {
	a := ctx.Cfg.Arena
	width := a.Right - a.Left
	height := a.Top - a.Bottom

	walls := []struct{ pos, size world.Vec2 }{
		{world.Vec2{X: a.Left, Y: 0}, world.Vec2{X: a.WallSize, Y: height + a.WallSize}},
		{world.Vec2{X: a.Right, Y: 0}, world.Vec2{X: a.WallSize, Y: height + a.WallSize}},
		{world.Vec2{X: 0, Y: a.Bottom}, world.Vec2{X: width + a.WallSize, Y: a.WallSize}},
		{world.Vec2{X: 0, Y: a.Top}, world.Vec2{X: width + a.WallSize, Y: a.WallSize}},
	}
	for _, w := range walls {
		ctx.Arena.Spawn(world.Template{
			Role:   world.RoleWall,
			Screen: world.ScreenGame,
			Pos:    w.pos,
			Size:   w.size,
		})
	}
}

// spawnPlayer places the player at its fixed respawn point.
func spawnPlayer(ctx *Context) world.EntityID {
	p := ctx.Cfg.Player
	return ctx.Arena.Spawn(world.Template{
		Role:   world.RolePlayer,
		Screen: world.ScreenGame,
		Pos:    world.Vec2{X: 0, Y: ctx.Cfg.PlayerY()},
		Size:   world.Vec2{X: p.Width, Y: p.Height},
		Scale:  world.Vec2{X: p.Scale, Y: p.Scale},
		Sprite: assets.Player,
	})
}

// spawnHook fires a hook from the given position.
func spawnHook(ctx *Context, pos world.Vec2) world.EntityID {
	h := ctx.Cfg.Hook
	return ctx.Arena.Spawn(world.Template{
		Role:   world.RoleHook,
		Screen: world.ScreenGame,
		Pos:    pos,
		Vel:    world.Vec2{X: 0, Y: h.Speed},
		Size:   world.Vec2{X: h.Width, Y: h.Height},
		Scale:  world.Vec2{X: h.WidthScale, Y: ctx.Cfg.HookInitialScaleY()},
		Sprite: assets.Hook,
	})
}

// spawnBubble creates a bubble moving horizontally at dir*speed_x and
// launched upward with its bounce speed.
func spawnBubble(ctx *Context, pos world.Vec2, dir float64, tier int) world.EntityID {
	b := ctx.Cfg.Bubble
	side := b.Radius * float64(tier)
	return ctx.Arena.Spawn(world.Template{
		Role:   world.RoleBubble,
		Screen: world.ScreenGame,
		Pos:    pos,
		Vel:    world.Vec2{X: dir * b.SpeedX, Y: bounceSpeed(ctx, tier)},
		Accel:  world.Vec2{X: 0, Y: -b.Slowdown},
		Size:   world.Vec2{X: side, Y: side},
		Tier:   tier,
	})
}

// spawnReward drops a reward worth max/tier points.
func spawnReward(ctx *Context, pos world.Vec2, tier int) world.EntityID {
	r := ctx.Cfg.Reward
	return ctx.Arena.Spawn(world.Template{
		Role:   world.RoleReward,
		Screen: world.ScreenGame,
		Pos:    pos,
		Vel:    world.Vec2{X: 0, Y: -r.Speed},
		Size:   world.Vec2{X: r.Size, Y: r.Size},
		Reward: rewardValue(r.Max, tier),
	})
}

// spawnRootBubble creates the single bubble a run starts with.
func spawnRootBubble(ctx *Context) world.EntityID {
	return spawnBubble(ctx, world.Vec2{}, 1, ctx.Cfg.Bubble.InitialTier)
}

// spawnLogo creates the splash screen logo.
func spawnLogo(ctx *Context) world.EntityID {
	return ctx.Arena.Spawn(world.Template{
		Role:   world.RoleLogo,
		Screen: world.ScreenSplash,
		Sprite: assets.Logo,
	})
}

func bounceSpeed(ctx *Context, tier int) float64 {
	return ctx.Cfg.Bubble.SpeedX * float64(tier)
}

func rewardValue(maxReward, tier int) int {
	if tier <= 0 {
		return maxReward
	}
	return maxReward / tier
}
