package component

// Direction is the movement intent of an actor. Each axis is in [-1,1] and
// the vector is not normalized, so diagonals reach a length of √2. +Y is up.
type Direction struct {
	X float64
	Y float64
}

func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

var DirectionComponent = NewComponent[Direction]()

type facingRule struct {
	facing Facing
	match  func(d Direction) bool
}

// facingRules is evaluated top to bottom; the first match wins. Zero and
// diagonal directions match nothing.
var facingRules = [...]facingRule{
	{FacingUp, func(d Direction) bool { return d.Y > 0 && d.X == 0 }},
	{FacingDown, func(d Direction) bool { return d.Y < 0 && d.X == 0 }},
	{FacingRight, func(d Direction) bool { return d.Y == 0 && d.X > 0 }},
	{FacingLeft, func(d Direction) bool { return d.Y == 0 && d.X < 0 }},
}

// Cardinal returns the facing d points along, if d is strictly axial.
func (d Direction) Cardinal() (Facing, bool) {
	for _, rule := range facingRules {
		if rule.match(d) {
			return rule.facing, true
		}
	}
	return FacingUp, false
}

// ResolveFacing returns the facing after observing d: the cardinal
// direction of d, or prev when d is zero or diagonal.
func ResolveFacing(prev Facing, d Direction) Facing {
	if f, ok := d.Cardinal(); ok {
		return f
	}
	return prev
}

// MirrorX reports whether a sprite moving along d is drawn flipped. Only
// cardinal left movement flips; it is recomputed every tick.
func MirrorX(d Direction) bool {
	f, ok := d.Cardinal()
	return ok && f == FacingLeft
}
