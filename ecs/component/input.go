package component

// Input stores per-frame steering state for an entity.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	LeftReleased  bool
	RightReleased bool
	UpReleased    bool
	DownReleased  bool

	ShootPressed bool
}

var InputComponent = NewComponent[Input]()
