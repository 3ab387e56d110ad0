package rustle

import (
	"math"

	"github.com/vovakirdan/bubble-rustle/internal/world"
)

// entityFields is the number of ints stored per entity in Snapshot.Entities.
const entityFields = 7

// Snapshot contains the observable game state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	App        int
	Menu       int
	Score      int
	Lives      int
	Bubbles    int
	Alive      bool
	HookActive bool
	Paused     bool

	// Each live entity is 7 ints: Role, X, Y, VX, VY (world units x100),
	// Tier, Reward.
	EntityCount int
	Entities    []int
}

// Snapshot returns the current game state as a Snapshot.
func (a *App) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   a.tick,
		App:    int(a.machine.App()),
		Menu:   int(a.machine.Menu()),
		Paused: a.paused,
	}
	if a.ctx == nil {
		return snap
	}
	snap.Score = a.ctx.Run.Score
	snap.Lives = a.ctx.Run.Lives
	snap.Bubbles = a.ctx.Run.Bubbles
	snap.Alive = a.ctx.Player.Alive
	snap.HookActive = a.ctx.Player.HookActive
	snap.EntityCount = a.ctx.Arena.Len()

	a.ctx.Arena.Each(func(e *world.Entity) {
		snap.Entities = append(snap.Entities,
			int(e.Role),
			fixed(e.Pos.X), fixed(e.Pos.Y),
			fixed(e.Vel.X), fixed(e.Vel.Y),
			e.Tier, e.Reward,
		)
	})
	return snap
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.App)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Menu)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bubbles) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Alive)
	h = h*31 + boolBit(snap.HookActive)
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + uint64(snap.EntityCount) //#nosec G115 -- hash computation
	for _, v := range snap.Entities {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
