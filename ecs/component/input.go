package component

// Input stores per-tick intent for an actor. MoveX/MoveY are the raw axis in
// [-1,1] with +Y meaning up; AttackPressed is true only on the tick the
// attack control goes down.
type Input struct {
	MoveX         float64
	MoveY         float64
	AttackHeld    bool
	AttackPressed bool
}

var InputComponent = NewComponent[Input]()
