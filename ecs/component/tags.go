package component

// PlayerTag marks actors driven by the local keyboard/gamepad.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
