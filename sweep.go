package collide

// Sweep is the result of moving a shape along a straight path towards a
// target position while colliding against another shape.
type Sweep struct {
	// Position is where the moving shape ended up. For circles this is the
	// center, for rectangles the top-left corner.
	Position Vec2
	// Normal is the collision normal. It is zero when the move completed,
	// when the shapes already overlapped at the start and, for circles,
	// always.
	Normal Vec2
	// Point is the contact point. Only rectangle-line sweeps report it.
	Point Vec2
	// Complete reports whether the shape reached the target position
	// without colliding.
	Complete bool
}
