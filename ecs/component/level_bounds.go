package component

import "github.com/jakecoffman/cp"

// LevelBounds stores the playfield rectangle objects are contained in.
// Position is the top-left corner.
type LevelBounds struct {
	Position cp.Vector
	Width    float64
	Height   float64
}

func (b LevelBounds) BB() cp.BB {
	return cp.NewBB(b.Position.X, b.Position.Y, b.Position.X+b.Width, b.Position.Y+b.Height)
}

var LevelBoundsComponent = NewComponent[LevelBounds]()

// Contained marks entities that Movement keeps inside the level bounds.
type Contained struct{}

var ContainedComponent = NewComponent[Contained]()
