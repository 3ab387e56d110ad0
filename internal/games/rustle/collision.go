package rustle

import (
	"github.com/vovakirdan/bubble-rustle/internal/core"
	"github.com/vovakirdan/bubble-rustle/internal/world"
)

// Collision systems run in a fixed order each tick. Despawns are immediate,
// so an entity removed by one test is skipped by every later one.

// hookWallSystem removes a hook that reached any wall.
func hookWallSystem(ctx *Context, _ core.InputFrame) {
	walls := ctx.Arena.Query(world.RoleWall)
	for _, hid := range ctx.Arena.Query(world.RoleHook) {
		hook, ok := ctx.Arena.Get(hid)
		if !ok {
			continue
		}
		for _, wid := range walls {
			wall, ok := ctx.Arena.Get(wid)
			if !ok {
				continue
			}
			if _, hit := core.Collide(hook.Box(), wall.Box()); hit {
				ctx.Arena.Despawn(hid)
				ctx.Player.HookActive = false
				break
			}
		}
	}
}

// bubbleWallSystem bounces bubbles off the walls. Side faces reflect the
// horizontal velocity and the ceiling reflects the vertical one. Landing on
// the floor resets the vertical speed to the tier's bounce speed, whatever
// the impact speed was.
func bubbleWallSystem(ctx *Context, _ core.InputFrame) {
	walls := ctx.Arena.Query(world.RoleWall)
	for _, bid := range ctx.Arena.Query(world.RoleBubble) {
		bubble, ok := ctx.Arena.Get(bid)
		if !ok {
			continue
		}
		for _, wid := range walls {
			wall, ok := ctx.Arena.Get(wid)
			if !ok {
				continue
			}
			side, hit := core.Collide(bubble.Box(), wall.Box())
			if !hit {
				continue
			}
			switch side {
			case core.SideLeft, core.SideRight:
				bubble.Vel.X = -bubble.Vel.X
			case core.SideTop:
				bubble.Vel.Y = bounceSpeed(ctx, bubble.Tier)
			case core.SideBottom:
				bubble.Vel.Y = -bubble.Vel.Y
			case core.SideInside:
			}
		}
	}
}

// bubbleHookSystem pops the first bubble each hook touches.
func bubbleHookSystem(ctx *Context, _ core.InputFrame) {
	bubbles := ctx.Arena.Query(world.RoleBubble)
	for _, hid := range ctx.Arena.Query(world.RoleHook) {
		for _, bid := range bubbles {
			hook, ok := ctx.Arena.Get(hid)
			if !ok {
				break
			}
			bubble, ok := ctx.Arena.Get(bid)
			if !ok {
				continue
			}
			if bubble.Box().Intersects(hook.Box()) {
				ctx.Arena.Despawn(hid)
				popBubble(ctx, bubble)
				ctx.Player.HookActive = false
			}
		}
	}
}

// popBubble removes a bubble, splits it if it is large enough and drops a
// reward where it was.
func popBubble(ctx *Context, bubble *world.Entity) {
	pos, tier := *bubble.Pos, bubble.Tier
	ctx.Arena.Despawn(bubble.ID)
	ctx.Run.Bubbles--

	if tier > ctx.Cfg.Bubble.MinSplitTier {
		child := tier - 1
		spawnBubble(ctx, pos, -1, child)
		spawnBubble(ctx, pos, 1, child)
		ctx.Run.Bubbles += 2
	}
	spawnReward(ctx, pos, tier)
}

// bubblePlayerSystem kills the player on contact with any bubble. Losing the
// last life ends the run.
func bubblePlayerSystem(ctx *Context, _ core.InputFrame) {
	if !ctx.Player.Alive {
		return
	}
	player, ok := ctx.Arena.First(world.RolePlayer)
	if !ok {
		return
	}
	pbox := player.Box()
	for _, bid := range ctx.Arena.Query(world.RoleBubble) {
		bubble, ok := ctx.Arena.Get(bid)
		if !ok || !pbox.Intersects(bubble.Box()) {
			continue
		}
		ctx.killPlayer(player.ID)
		if ctx.Run.Lives == 0 {
			ctx.finishRun("out of lives")
		}
		return
	}
}

// rewardPlayerSystem collects at most one reward per tick.
func rewardPlayerSystem(ctx *Context, _ core.InputFrame) {
	if !ctx.Player.Alive {
		return
	}
	player, ok := ctx.Arena.First(world.RolePlayer)
	if !ok {
		return
	}
	pbox := player.Box()
	for _, rid := range ctx.Arena.Query(world.RoleReward) {
		reward, ok := ctx.Arena.Get(rid)
		if !ok || !pbox.Intersects(reward.Box()) {
			continue
		}
		ctx.Run.Score += reward.Reward
		ctx.Arena.Despawn(rid)
		return
	}
}

// rewardWallSystem drops rewards nobody caught.
func rewardWallSystem(ctx *Context, _ core.InputFrame) {
	walls := ctx.Arena.Query(world.RoleWall)
	for _, rid := range ctx.Arena.Query(world.RoleReward) {
		reward, ok := ctx.Arena.Get(rid)
		if !ok {
			continue
		}
		for _, wid := range walls {
			wall, ok := ctx.Arena.Get(wid)
			if ok && reward.Box().Intersects(wall.Box()) {
				ctx.Arena.Despawn(rid)
				break
			}
		}
	}
}

// winSystem ends the run once every bubble is gone.
func winSystem(ctx *Context, _ core.InputFrame) {
	if ctx.Run.Bubbles <= 0 {
		ctx.finishRun("all bubbles popped")
	}
}

// hudSystem rewrites the score and lives texts.
func hudSystem(ctx *Context, _ core.InputFrame) {
	ctx.refreshHUD()
}
