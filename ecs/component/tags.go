package component

// PlayerTag marks the airplane steered by keyboard input.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
