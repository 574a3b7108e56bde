package component

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVelocityClampsPerAxis(t *testing.T) {
	cases := []struct {
		name string
		max  float64
		in   cp.Vector
		want cp.Vector
	}{
		{"clamp_negative_x", 15, cp.Vector{X: -50, Y: 0}, cp.Vector{X: -15, Y: 0}},
		{"clamp_both", 15, cp.Vector{X: 30, Y: -30}, cp.Vector{X: 15, Y: -15}},
		{"axes_independent", 15, cp.Vector{X: 3, Y: 99}, cp.Vector{X: 3, Y: 15}},
		{"within_limit", 15, cp.Vector{X: -7.5, Y: 15}, cp.Vector{X: -7.5, Y: 15}},
		{"zero_max", 0, cp.Vector{X: 4, Y: -4}, cp.Vector{X: 0, Y: 0}},
		{"nan_axis", 15, cp.Vector{X: math.NaN(), Y: 2}, cp.Vector{X: 0, Y: 2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAttributes(AttributesProps{MaxVelocity: c.max, Mass: 1})
			a.SetVelocity(c.in)
			assert.Equal(t, c.want, a.Velocity())
		})
	}
}

func TestSetVelocityInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		m := rng.Float64() * 40
		v := cp.Vector{X: rng.NormFloat64() * 50, Y: rng.NormFloat64() * 50}
		a := NewAttributes(AttributesProps{MaxVelocity: m, Mass: 1})

		a.SetVelocity(v)

		got := a.Velocity()
		require.LessOrEqual(t, math.Abs(got.X), m)
		require.LessOrEqual(t, math.Abs(got.Y), m)
		if math.Abs(v.X) <= m && math.Abs(v.Y) <= m {
			require.Equal(t, v, got)
		}
	}
}

func TestNewAttributesNormalizesProps(t *testing.T) {
	a := NewAttributes(AttributesProps{
		Velocity:    cp.Vector{X: 0, Y: -30},
		MaxVelocity: 15,
		Mass:        1,
		Friction:    0.996,
		Restitution: 1,
	})
	assert.Equal(t, cp.Vector{X: 0, Y: -15}, a.Velocity())
	assert.Equal(t, 15.0, a.MaxVelocity())
	assert.Equal(t, 1.0, a.Mass())
	assert.Equal(t, 0.996, a.Friction())
	assert.Equal(t, 1.0, a.Restitution())

	b := NewAttributes(AttributesProps{MaxVelocity: -3, Mass: 0, Friction: 2, Restitution: -1})
	assert.Equal(t, 0.0, b.MaxVelocity())
	assert.Equal(t, 1.0, b.Mass())
	assert.Equal(t, 1.0, b.Friction())
	assert.Equal(t, 0.0, b.Restitution())
}

func TestSetMaxVelocityReclamps(t *testing.T) {
	a := NewAttributes(AttributesProps{Velocity: cp.Vector{X: 10, Y: -10}, MaxVelocity: 15, Mass: 1})

	a.SetMaxVelocity(4)

	assert.Equal(t, cp.Vector{X: 4, Y: -4}, a.Velocity())
}
