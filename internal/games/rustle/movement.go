package rustle

import (
	"github.com/vovakirdan/bubble-rustle/internal/core"
	"github.com/vovakirdan/bubble-rustle/internal/world"
)

// integrateSystem moves every free body: position by velocity, velocity by
// acceleration. The hook has its own rule and walls never move.
func integrateSystem(ctx *Context, _ core.InputFrame) {
	dt := ctx.DT
	ctx.Arena.Each(func(e *world.Entity) {
		if e.Role != world.RoleBubble && e.Role != world.RoleReward {
			return
		}
		e.Pos.X += e.Vel.X * dt
		e.Pos.Y += e.Vel.Y * dt
		e.Vel.X += e.Accel.X * dt
		e.Vel.Y += e.Accel.Y * dt
	})
}

// hookSystem raises the hook and stretches it so its bottom stays where it
// was fired from.
func hookSystem(ctx *Context, _ core.InputFrame) {
	hook, ok := ctx.Arena.First(world.RoleHook)
	if !ok {
		return
	}
	step := hook.Vel.Y * ctx.DT
	hook.Pos.Y += step

	height := hook.Scale.Y * hook.Size.Y
	if height <= 0 {
		return
	}
	hook.Scale.Y *= (height + 2*step) / height
}
