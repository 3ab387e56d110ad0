// Package world stores the simulation's entities.
//
// An Arena wraps an ark ECS world. Every entity carries the same core
// components (serial, role, owning screen, motion and body); bubbles, rewards
// and sprites add optional ones. Queries return snapshots of live IDs so
// systems can despawn while iterating.
package world

import (
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/bubble-rustle/internal/core"
)

// EntityID identifies an entity in an Arena. IDs are never reused, unlike
// ark's own entity handles.
type EntityID uint32

// Role tags what kind of thing an entity is.
type Role int

const (
	RoleNone Role = iota
	RoleWall
	RolePlayer
	RoleHook
	RoleBubble
	RoleReward
	RoleLogo
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleWall:
		return "Wall"
	case RolePlayer:
		return "Player"
	case RoleHook:
		return "Hook"
	case RoleBubble:
		return "Bubble"
	case RoleReward:
		return "Reward"
	case RoleLogo:
		return "Logo"
	default:
		return "None"
	}
}

// ScreenTag names the top-level screen that owns an entity.
// Leaving a screen tears down everything tagged with it.
type ScreenTag int

const (
	ScreenNone ScreenTag = iota
	ScreenSplash
	ScreenMenu
	ScreenGame
)

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Template describes an entity to spawn.
type Template struct {
	Role   Role
	Screen ScreenTag

	Pos   Vec2 // centre, y up
	Vel   Vec2 // units per second
	Accel Vec2 // units per second squared

	Size  Vec2 // unscaled extent
	Scale Vec2 // multiplier applied to Size, zero means (1, 1)

	Tier   int    // bubbles only
	Reward int    // rewards only
	Sprite string // asset name, empty for plain boxes
}

// Entity is a view of one live entity. Pos, Vel, Accel and Scale point into
// component storage, so writes through them update the world. A view stays
// valid until the next Spawn or Compact.
type Entity struct {
	ID     EntityID
	Role   Role
	Screen ScreenTag

	Pos   *Vec2
	Vel   *Vec2
	Accel *Vec2
	Scale *Vec2
	Size  Vec2

	Tier   int
	Reward int
	Sprite string
}

// Box returns the collision box of the entity.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.Pos.X, e.Pos.Y, e.Size.X*e.Scale.X, e.Size.Y*e.Scale.Y)
}

// Arena owns every entity of the simulation.
type Arena struct {
	world *ecs.World

	bodies  *ecs.Map7[Serial, Kind, Owner, Position, Velocity, Acceleration, Body]
	tiers   *ecs.Map[Tier]
	rewards *ecs.Map[Reward]
	sprites *ecs.Map[Sprite]

	byRole   *ecs.Filter2[Serial, Kind]
	byScreen *ecs.Filter2[Serial, Owner]

	index  map[EntityID]ecs.Entity
	nextID EntityID
	dead   []ecs.Entity
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	w := ecs.NewWorld()
	return &Arena{
		world:    w,
		bodies:   ecs.NewMap7[Serial, Kind, Owner, Position, Velocity, Acceleration, Body](w),
		tiers:    ecs.NewMap[Tier](w),
		rewards:  ecs.NewMap[Reward](w),
		sprites:  ecs.NewMap[Sprite](w),
		byRole:   ecs.NewFilter2[Serial, Kind](w),
		byScreen: ecs.NewFilter2[Serial, Owner](w),
		index:    make(map[EntityID]ecs.Entity),
		nextID:   1,
	}
}

// Spawn creates an entity from t and returns its new ID.
func (a *Arena) Spawn(t Template) EntityID {
	id := a.nextID
	a.nextID++

	scale := t.Scale
	if scale == (Vec2{}) {
		scale = Vec2{X: 1, Y: 1}
	}
	e := a.bodies.NewEntity(
		&Serial{ID: id},
		&Kind{Role: t.Role},
		&Owner{Screen: t.Screen},
		(*Position)(&t.Pos),
		(*Velocity)(&t.Vel),
		(*Acceleration)(&t.Accel),
		&Body{Size: t.Size, Scale: scale},
	)
	switch t.Role {
	case RoleBubble:
		a.tiers.Add(e, &Tier{Value: t.Tier})
	case RoleReward:
		a.rewards.Add(e, &Reward{Value: t.Reward})
	}
	if t.Sprite != "" {
		a.sprites.Add(e, &Sprite{Name: t.Sprite})
	}
	a.index[id] = e
	return id
}

// Despawn removes an entity immediately. It returns false if the ID is
// unknown or already gone, so a second despawn in the same tick is a no-op.
// Storage is released by Compact.
func (a *Arena) Despawn(id EntityID) bool {
	e, ok := a.index[id]
	if !ok {
		return false
	}
	delete(a.index, id)
	a.dead = append(a.dead, e)
	return true
}

// Get returns a view of the live entity with the given ID.
func (a *Arena) Get(id EntityID) (*Entity, bool) {
	e, ok := a.index[id]
	if !ok {
		return nil, false
	}
	serial, kind, owner, pos, vel, acc, body := a.bodies.Get(e)
	v := &Entity{
		ID:     serial.ID,
		Role:   kind.Role,
		Screen: owner.Screen,
		Pos:    (*Vec2)(pos),
		Vel:    (*Vec2)(vel),
		Accel:  (*Vec2)(acc),
		Scale:  &body.Scale,
		Size:   body.Size,
	}
	if a.tiers.Has(e) {
		v.Tier = a.tiers.Get(e).Value
	}
	if a.rewards.Has(e) {
		v.Reward = a.rewards.Get(e).Value
	}
	if a.sprites.Has(e) {
		v.Sprite = a.sprites.Get(e).Name
	}
	return v, true
}

// Query returns the IDs of all live entities with the given role, in spawn
// order. The result is a snapshot: entities spawned later are not included.
func (a *Arena) Query(role Role) []EntityID {
	var ids []EntityID
	q := a.byRole.Query()
	for q.Next() {
		serial, kind := q.Get()
		if kind.Role == role && a.live(serial.ID) {
			ids = append(ids, serial.ID)
		}
	}
	slices.Sort(ids)
	return ids
}

// First returns the earliest spawned live entity with the given role.
func (a *Arena) First(role Role) (*Entity, bool) {
	ids := a.Query(role)
	if len(ids) == 0 {
		return nil, false
	}
	return a.Get(ids[0])
}

// Count returns the number of live entities with the given role.
func (a *Arena) Count(role Role) int {
	return len(a.Query(role))
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return len(a.index)
}

// Each calls fn for every live entity in spawn order. fn must not spawn.
func (a *Arena) Each(fn func(*Entity)) {
	ids := make([]EntityID, 0, len(a.index))
	for id := range a.index {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if e, ok := a.Get(id); ok {
			fn(e)
		}
	}
}

// DespawnScreen removes every entity owned by the given screen and returns
// how many were removed.
func (a *Arena) DespawnScreen(tag ScreenTag) int {
	var ids []EntityID
	q := a.byScreen.Query()
	for q.Next() {
		serial, owner := q.Get()
		if owner.Screen == tag && a.live(serial.ID) {
			ids = append(ids, serial.ID)
		}
	}
	for _, id := range ids {
		a.Despawn(id)
	}
	return len(ids)
}

// Compact removes despawned entities from the ECS world.
func (a *Arena) Compact() {
	for _, e := range a.dead {
		a.world.RemoveEntity(e)
	}
	a.dead = a.dead[:0]
}

func (a *Arena) live(id EntityID) bool {
	_, ok := a.index[id]
	return ok
}
