package component

// Airplane holds the controller state of a player airplane.
type Airplane struct {
	ShotCooldownFrames int
	Cooldown           int
	ShotScript         string
}

var AirplaneComponent = NewComponent[Airplane]()
