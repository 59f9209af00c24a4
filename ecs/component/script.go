package component

// ScriptInput drives an actor's Input from a tengo script instead of a
// device.
type ScriptInput struct {
	Path string
	Tick int

	// AttackHeld is the script's attack output on the previous tick, used for
	// edge detection.
	AttackHeld bool
}

var ScriptInputComponent = NewComponent[ScriptInput]()
