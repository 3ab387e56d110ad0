package rustle

import (
	"github.com/vovakirdan/bubble-rustle/internal/core"
	"github.com/vovakirdan/bubble-rustle/internal/world"
)

// respawnSystem brings the player back while lives remain.
func respawnSystem(ctx *Context, _ core.InputFrame) {
	if ctx.Player.Alive || ctx.Run.Lives <= 0 {
		return
	}
	spawnPlayer(ctx)
	ctx.Player.Alive = true
}

// movePlayerSystem walks the player along the floor while left or right is
// held, keeping the sprite between the side walls.
func movePlayerSystem(ctx *Context, in core.InputFrame) {
	player, ok := ctx.Arena.First(world.RolePlayer)
	if !ok {
		return
	}

	dir := 0.0
	if in.IsHeld(core.ActionLeft) {
		dir--
	}
	if in.IsHeld(core.ActionRight) {
		dir++
	}

	half := player.Size.X * player.Scale.X / 2
	a := ctx.Cfg.Arena
	left := a.Left + half + a.WallSize/2
	right := a.Right - half - a.WallSize/2

	x := player.Pos.X + dir*ctx.Cfg.Player.Speed*ctx.DT
	player.Pos.X = core.ClampF(x, left, right)
}

// fireSystem shoots a hook from the player when fire is pressed and no hook
// is in flight. Repeated presses are not queued.
func fireSystem(ctx *Context, in core.InputFrame) {
	if !in.Has(core.ActionFire) || ctx.Player.HookActive {
		return
	}
	player, ok := ctx.Arena.First(world.RolePlayer)
	if !ok {
		return
	}
	spawnHook(ctx, *player.Pos)
	ctx.Player.HookActive = true
}
