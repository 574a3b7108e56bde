package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// AttributesProps describes the initial physical state of an object.
type AttributesProps struct {
	Velocity    cp.Vector
	MaxVelocity float64
	Mass        float64
	Friction    float64
	Restitution float64
}

// Attributes holds an object's velocity and physical constants.
//
// Velocity only changes through SetVelocity, which keeps each axis within
// [-MaxVelocity, MaxVelocity]. Mass, friction and restitution are carried as
// data for a collision resolver (see movement.Resolver); nothing in the core
// applies friction decay or restitution bounce.
type Attributes struct {
	velocity    cp.Vector
	maxVelocity float64
	mass        float64
	friction    float64
	restitution float64
}

func NewAttributes(props AttributesProps) *Attributes {
	a := &Attributes{
		mass:        props.Mass,
		friction:    clampUnit(props.Friction),
		restitution: clampUnit(props.Restitution),
	}
	if !(a.mass > 0) {
		a.mass = 1
	}
	a.SetMaxVelocity(props.MaxVelocity)
	a.SetVelocity(props.Velocity)
	return a
}

func (a *Attributes) Velocity() cp.Vector {
	return a.velocity
}

// SetVelocity clamps each axis of v independently before storing it.
func (a *Attributes) SetVelocity(v cp.Vector) {
	a.velocity = cp.Vector{
		X: clampAxis(v.X, a.maxVelocity),
		Y: clampAxis(v.Y, a.maxVelocity),
	}
}

func (a *Attributes) MaxVelocity() float64 {
	return a.maxVelocity
}

// SetMaxVelocity changes the per-axis limit and re-clamps the current
// velocity against it.
func (a *Attributes) SetMaxVelocity(m float64) {
	if !(m >= 0) {
		m = 0
	}
	a.maxVelocity = m
	a.SetVelocity(a.velocity)
}

func (a *Attributes) Mass() float64 {
	return a.mass
}

func (a *Attributes) Friction() float64 {
	return a.friction
}

func (a *Attributes) Restitution() float64 {
	return a.restitution
}

func clampAxis(v, limit float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return cp.Clamp(v, -limit, limit)
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return cp.Clamp(v, 0, 1)
}

var AttributesComponent = NewComponent[Attributes]()
