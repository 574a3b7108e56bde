package main

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/ecs/entity"
	"github.com/milk9111/arcade/ecs/system"
	"github.com/milk9111/arcade/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReloadGame(t *testing.T) *Game {
	t.Helper()
	w := ecs.NewWorld()
	spec := &prefabs.GameSpec{Width: 320, Height: 240, BaseScale: 1}
	_, err := entity.NewPlayfield(w, spec)
	require.NoError(t, err)
	player, err := entity.NewAirplane(w, &prefabs.AirplaneSpec{
		Radius:          16,
		ScaleMultiplier: 4,
		Attributes:      prefabs.AttributesSpec{MaxVelocity: 50, Mass: 1},
	}, component.TransformProps{Position: cp.Vector{X: 100, Y: 100}, Scale: 1})
	require.NoError(t, err)

	shots := system.NewShotScripts()
	return &Game{
		logger:  zap.NewNop(),
		spec:    spec,
		world:   w,
		control: system.NewAirplaneControlSystem(nil, shots, nil),
		shots:   shots,
		player:  player,
	}
}

func TestReloadGameSpecResizesPlayfield(t *testing.T) {
	g := newReloadGame(t)

	require.NoError(t, g.reload(prefabs.GameFile))

	e, ok := g.world.First(component.LevelBoundsComponent.Kind())
	require.True(t, ok)
	bounds, _ := ecs.Get(g.world, e, component.LevelBoundsComponent.Kind())
	assert.Equal(t, g.spec.Width, bounds.Width)
	assert.Equal(t, g.spec.Height, bounds.Height)
	assert.NotEqual(t, 320.0, bounds.Width)
}

func TestReloadAirplaneSpecUpdatesPlayer(t *testing.T) {
	g := newReloadGame(t)
	attrs, _ := ecs.Get(g.world, g.player, component.AttributesComponent.Kind())
	attrs.SetVelocity(cp.Vector{X: 40, Y: -40})

	require.NoError(t, g.reload(prefabs.AirplaneFile))

	spec, err := prefabs.LoadAirplaneSpec()
	require.NoError(t, err)
	assert.Equal(t, spec.Attributes.MaxVelocity, attrs.MaxVelocity())
	assert.LessOrEqual(t, attrs.Velocity().X, spec.Attributes.MaxVelocity)

	plane, _ := ecs.Get(g.world, g.player, component.AirplaneComponent.Kind())
	assert.Equal(t, spec.ShotCooldownFrames, plane.ShotCooldownFrames)
	assert.Equal(t, spec.ShotScript, plane.ShotScript)
}

func TestReloadOtherFiles(t *testing.T) {
	g := newReloadGame(t)

	assert.NoError(t, g.reload(prefabs.BulletFile))
	assert.NoError(t, g.reload("airplane_shot.tengo"))
	assert.ErrorIs(t, g.reload("unknown.yaml"), errUnknownPrefab)
}

func TestNonZero(t *testing.T) {
	assert.Equal(t, 1.0, nonZero(0))
	assert.Equal(t, 2.5, nonZero(2.5))
}
