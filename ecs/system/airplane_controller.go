package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/ecs/entity"
	"github.com/milk9111/arcade/prefabs"
	"go.uber.org/zap"
)

// Animation ids set on the airplane sprite.
const (
	AnimWalkLeft  = "walk-left"
	AnimWalkRight = "walk-right"
	AnimWalkUp    = "walk-up"
	AnimWalkDown  = "walk-down"
	AnimIdleLeft  = "idle-left"
	AnimIdleRight = "idle-right"
	AnimIdleUp    = "idle-up"
	AnimIdleDown  = "idle-down"
)

// AirplaneControlSystem turns Input into airplane velocity, sprite animation
// and bullets.
//
// Holding a direction drives that axis at full max velocity. Releasing a
// direction stops the airplane only if it is still moving that way (or not
// moving on that axis); releases are applied before holds so a still-held
// direction keeps its speed.
type AirplaneControlSystem struct {
	bullet *prefabs.BulletSpec
	shots  *ShotScripts
	logger *zap.Logger
}

func NewAirplaneControlSystem(bullet *prefabs.BulletSpec, shots *ShotScripts, logger *zap.Logger) *AirplaneControlSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AirplaneControlSystem{bullet: bullet, shots: shots, logger: logger}
}

// SetBulletSpec swaps the projectile prefab, e.g. after a hot reload.
func (s *AirplaneControlSystem) SetBulletSpec(spec *prefabs.BulletSpec) {
	s.bullet = spec
}

func (s *AirplaneControlSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.AirplaneComponent.Kind(), component.InputComponent.Kind(), component.AttributesComponent.Kind(),
		func(e ecs.Entity, plane *component.Airplane, input *component.Input, attrs *component.Attributes) {
			sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
			steer(input, attrs, sprite)

			if plane.Cooldown > 0 {
				plane.Cooldown--
			}
			if input.ShootPressed && plane.Cooldown == 0 {
				s.shoot(w, e, plane)
				plane.Cooldown = plane.ShotCooldownFrames
			}
		})
}

func steer(input *component.Input, attrs *component.Attributes, sprite *component.Sprite) {
	v := attrs.Velocity()
	if input.LeftReleased && v.X <= 0 {
		sprite.SetCurrentAnimationID(AnimIdleLeft)
		stop(attrs)
	}
	v = attrs.Velocity()
	if input.RightReleased && v.X >= 0 {
		sprite.SetCurrentAnimationID(AnimIdleRight)
		stop(attrs)
	}
	v = attrs.Velocity()
	if input.UpReleased && v.Y <= 0 {
		sprite.SetCurrentAnimationID(AnimIdleUp)
		stop(attrs)
	}
	v = attrs.Velocity()
	if input.DownReleased && v.Y >= 0 {
		sprite.SetCurrentAnimationID(AnimIdleDown)
		stop(attrs)
	}

	limit := attrs.MaxVelocity()
	if input.Left {
		sprite.SetCurrentAnimationID(AnimWalkLeft)
		attrs.SetVelocity(cp.Vector{X: -limit, Y: attrs.Velocity().Y})
	}
	if input.Right {
		sprite.SetCurrentAnimationID(AnimWalkRight)
		attrs.SetVelocity(cp.Vector{X: limit, Y: attrs.Velocity().Y})
	}
	if input.Up {
		sprite.SetCurrentAnimationID(AnimWalkUp)
		attrs.SetVelocity(cp.Vector{X: attrs.Velocity().X, Y: -limit})
	}
	if input.Down {
		sprite.SetCurrentAnimationID(AnimWalkDown)
		attrs.SetVelocity(cp.Vector{X: attrs.Velocity().X, Y: limit})
	}
}

func stop(attrs *component.Attributes) {
	attrs.SetVelocity(cp.Vector{})
}

func (s *AirplaneControlSystem) shoot(w *ecs.World, e ecs.Entity, plane *component.Airplane) {
	if s.bullet == nil {
		return
	}
	body, ok := ecs.Get(w, e, component.ShapeComponent.Kind())
	if !ok || body.Shape == nil {
		return
	}

	origin := body.Shape.Transform().Position()
	radius := 0.0
	if c, ok := body.Shape.(*component.Circle); ok {
		radius = c.Radius()
	}

	offsets := []cp.Vector{{}}
	if s.shots != nil {
		got, err := s.shots.Offsets(plane.ShotScript, radius)
		if err != nil {
			s.logger.Warn("shot script failed, firing from center",
				zap.String("script", plane.ShotScript),
				zap.Error(err))
		} else {
			offsets = got
		}
	}

	for _, off := range offsets {
		b, err := entity.NewBullet(w, s.bullet, origin.Add(off), e)
		if err != nil {
			s.logger.Error("spawn bullet", zap.Stringer("owner", e), zap.Error(err))
			continue
		}
		w.Events().Push(ecs.Event{Type: ecs.EventShotFired, Entity: b, Data: e})
	}
}
