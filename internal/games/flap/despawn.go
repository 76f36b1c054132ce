package flap

import "math"

// despawn removes entities that have traveled farther than distance from the
// playfield center vertically. The slice is filtered in place.
func despawn(objs []PhysObj, distance float64) []PhysObj {
	kept := objs[:0]
	for _, o := range objs {
		if math.Abs(o.Y) <= distance {
			kept = append(kept, o)
		}
	}
	return kept
}
