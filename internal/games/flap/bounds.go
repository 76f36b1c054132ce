package flap

// resolveBounds keeps o inside the playfield. Side and top walls only clamp;
// the floor also reflects vertical velocity scaled by bounce.
func resolveBounds(o *PhysObj, bounce float64) {
	if o.X-o.halfW < -PlayfieldBound {
		o.X = -PlayfieldBound + o.halfW
	}
	if o.X+o.halfW > PlayfieldBound {
		o.X = PlayfieldBound - o.halfW
	}
	if o.Y-o.halfH < -PlayfieldBound {
		o.Y = -PlayfieldBound + o.halfH
		o.VY *= bounce
	}
	if o.Y+o.halfH > PlayfieldBound {
		o.Y = PlayfieldBound - o.halfH
	}
}
