package flap

import "github.com/vovakirdan/flap/internal/core"

// PlayfieldBound is the extent of the playfield on each axis: [-1, 1].
const PlayfieldBound = 1.0

// PhysObj is a moving, sized entity. The flyer, rocks and coins all use it;
// what an entity means is decided by which collection holds it.
type PhysObj struct {
	X, Y   float64 // Center position
	VX, VY float64 // Velocity, playfield units per second
	halfW  float64
	halfH  float64
}

// NewPhysObj creates a square entity with the given half extent.
func NewPhysObj(x, y, size float64) PhysObj {
	return NewPhysObjRect(x, y, size, size)
}

// NewPhysObjRect creates an entity with independent half extents.
// Negative extents are treated as zero.
func NewPhysObjRect(x, y, halfW, halfH float64) PhysObj {
	return PhysObj{
		X:     x,
		Y:     y,
		halfW: max(halfW, 0),
		halfH: max(halfH, 0),
	}
}

// HalfW returns the horizontal half extent.
func (o PhysObj) HalfW() float64 {
	return o.halfW
}

// HalfH returns the vertical half extent.
func (o PhysObj) HalfH() float64 {
	return o.halfH
}

// Box returns the entity's bounding box.
func (o PhysObj) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.halfW, o.halfH)
}

// Overlaps reports whether the bounding boxes of o and other overlap.
func (o PhysObj) Overlaps(other PhysObj) bool {
	return o.Box().Overlaps(other.Box())
}
