package world

// Serial holds the arena-wide ID of an entity.
type Serial struct {
	ID EntityID
}

// Kind holds the role of an entity.
type Kind struct {
	Role Role
}

// Owner holds the screen an entity belongs to.
type Owner struct {
	Screen ScreenTag
}

// Position is the centre of an entity, y up.
type Position Vec2

// Velocity in units per second.
type Velocity Vec2

// Acceleration in units per second squared.
type Acceleration Vec2

// Body is the unscaled extent of an entity and the scale applied to it.
type Body struct {
	Size  Vec2
	Scale Vec2
}

// Tier is the size class of a bubble.
type Tier struct {
	Value int
}

// Reward is the score a reward is worth.
type Reward struct {
	Value int
}

// Sprite names the asset an entity is drawn with.
type Sprite struct {
	Name string
}
