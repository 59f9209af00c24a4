package component

// Facing is an actor's last cardinal orientation. The zero value is
// FacingUp, so a Facing always holds one of the four directions.
type Facing int

const (
	FacingUp Facing = iota
	FacingDown
	FacingLeft
	FacingRight
)

const facingCount = 4

// Facings lists every facing in declaration order.
var Facings = [facingCount]Facing{FacingUp, FacingDown, FacingLeft, FacingRight}

var facingNames = [facingCount]string{"up", "down", "left", "right"}

func (f Facing) String() string {
	if f < 0 || int(f) >= facingCount {
		return "unknown"
	}
	return facingNames[f]
}

// Valid reports whether f is one of the four facings.
func (f Facing) Valid() bool {
	return f >= 0 && int(f) < facingCount
}

// ParseFacing maps "up", "down", "left" or "right" to a Facing.
func ParseFacing(s string) (Facing, bool) {
	for i, name := range facingNames {
		if name == s {
			return Facing(i), true
		}
	}
	return FacingUp, false
}

var FacingComponent = NewComponent[Facing]()
