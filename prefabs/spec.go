package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arcade/ecs/component"
	"gopkg.in/yaml.v3"
)

const (
	GameFile     = "game.yaml"
	AirplaneFile = "airplane.yaml"
	BulletFile   = "bullet.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec configures the playfield.
type GameSpec struct {
	Title     string  `yaml:"title"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BaseScale float64 `yaml:"base_scale"`
	Debug     bool    `yaml:"debug"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameFile)
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: playfield must have positive size, got %gx%g", GameFile, spec.Width, spec.Height)
	}
	if spec.BaseScale <= 0 {
		spec.BaseScale = 1
	}
	return &spec, nil
}

// AirplaneSpec describes the player airplane prefab.
type AirplaneSpec struct {
	Name               string         `yaml:"name"`
	Radius             float64        `yaml:"radius"`
	ScaleMultiplier    float64        `yaml:"scale_multiplier"`
	Transform          TransformSpec  `yaml:"transform"`
	Attributes         AttributesSpec `yaml:"attributes"`
	Sprite             SpriteSpec     `yaml:"sprite"`
	ShotCooldownFrames int            `yaml:"shot_cooldown_frames"`
	ShotScript         string         `yaml:"shot_script"`
}

func LoadAirplaneSpec() (*AirplaneSpec, error) {
	spec, err := LoadSpec[AirplaneSpec](AirplaneFile)
	if err != nil {
		return nil, err
	}
	if spec.ScaleMultiplier <= 0 {
		spec.ScaleMultiplier = 1
	}
	return &spec, nil
}

// BulletSpec describes the projectile an airplane fires.
type BulletSpec struct {
	Name       string         `yaml:"name"`
	Shape      ShapeSpec      `yaml:"shape"`
	Scale      float64        `yaml:"scale"`
	Attributes AttributesSpec `yaml:"attributes"`
	Sprite     SpriteSpec     `yaml:"sprite"`
	TTLFrames  int            `yaml:"ttl_frames"`
}

func LoadBulletSpec() (*BulletSpec, error) {
	spec, err := LoadSpec[BulletSpec](BulletFile)
	if err != nil {
		return nil, err
	}
	if spec.Scale <= 0 {
		spec.Scale = 1
	}
	return &spec, nil
}

type TransformSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

func (s TransformSpec) Props() component.TransformProps {
	return component.TransformProps{Position: cp.Vector{X: s.X, Y: s.Y}, Scale: s.Scale}
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type AttributesSpec struct {
	Velocity    VectorSpec `yaml:"velocity"`
	MaxVelocity float64    `yaml:"max_velocity"`
	Mass        float64    `yaml:"mass"`
	Friction    float64    `yaml:"friction"`
	Restitution float64    `yaml:"restitution"`
}

func (s AttributesSpec) Props() component.AttributesProps {
	return component.AttributesProps{
		Velocity:    cp.Vector{X: s.Velocity.X, Y: s.Velocity.Y},
		MaxVelocity: s.MaxVelocity,
		Mass:        s.Mass,
		Friction:    s.Friction,
		Restitution: s.Restitution,
	}
}

// ShapeSpec selects a shape variant: type "circle" uses Radius, type "rect"
// uses Width and Height.
type ShapeSpec struct {
	Type   component.ShapeType `yaml:"type"`
	Radius float64             `yaml:"radius"`
	Width  float64             `yaml:"width"`
	Height float64             `yaml:"height"`
}

// Build creates the shape with its own Transform built from t.
func (s ShapeSpec) Build(t component.TransformProps) (component.Shape, error) {
	switch s.Type {
	case component.ShapeCircle, "":
		return component.NewCircle(component.CircleProps{Radius: s.Radius, Transform: t}), nil
	case component.ShapeRect:
		return component.NewRect(component.RectProps{Width: s.Width, Height: s.Height, Transform: t}), nil
	default:
		return nil, fmt.Errorf("prefabs: unknown shape type %q", s.Type)
	}
}

// SpriteSpec describes a placeholder sprite image.
type SpriteSpec struct {
	Width   int        `yaml:"width"`
	Height  int        `yaml:"height"`
	Color   *YAMLColor `yaml:"color"`
	OriginX float64    `yaml:"origin_x"`
	OriginY float64    `yaml:"origin_y"`
	Layer   int        `yaml:"layer"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
