package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arcade/prefabs"
)

// ShotScripts compiles and caches the tengo scripts that decide where an
// airplane's bullets spawn. A script receives `radius` (the effective shape
// radius) and must define `offsets`, an array of {x, y} maps relative to the
// shape position.
type ShotScripts struct {
	load  func(name string) ([]byte, error)
	cache map[string]*tengo.Compiled
}

func NewShotScripts() *ShotScripts {
	return newShotScripts(prefabs.LoadScript)
}

func newShotScripts(load func(string) ([]byte, error)) *ShotScripts {
	return &ShotScripts{load: load, cache: map[string]*tengo.Compiled{}}
}

// Offsets runs the named script. An empty name yields a single shot from the
// shape position.
func (s *ShotScripts) Offsets(name string, radius float64) ([]cp.Vector, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []cp.Vector{{}}, nil
	}

	compiled, err := s.compiled(name)
	if err != nil {
		return nil, err
	}

	run := compiled.Clone()
	if err := run.Set("radius", radius); err != nil {
		return nil, fmt.Errorf("shot script %s: %w", name, err)
	}
	if err := run.Run(); err != nil {
		return nil, fmt.Errorf("shot script %s: %w", name, err)
	}
	if !run.IsDefined("offsets") {
		return nil, fmt.Errorf("shot script %s: offsets not defined", name)
	}

	raw := run.Get("offsets").Array()
	out := make([]cp.Vector, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("shot script %s: offsets[%d] is %T, want map", name, i, item)
		}
		x, okX := toFloat(m["x"])
		y, okY := toFloat(m["y"])
		if !okX || !okY {
			return nil, fmt.Errorf("shot script %s: offsets[%d] needs numeric x and y", name, i)
		}
		out = append(out, cp.Vector{X: x, Y: y})
	}
	return out, nil
}

// Invalidate drops the cached compile of name, or of every script when name
// is empty, so the next shot reloads it.
func (s *ShotScripts) Invalidate(name string) {
	if name == "" {
		clear(s.cache)
		return
	}
	delete(s.cache, name)
}

func (s *ShotScripts) compiled(name string) (*tengo.Compiled, error) {
	if c, ok := s.cache[name]; ok {
		return c, nil
	}
	src, err := s.load(name)
	if err != nil {
		return nil, fmt.Errorf("shot script %s: %w", name, err)
	}
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	_ = script.Add("radius", 0.0)
	c, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("shot script %s: %w", name, err)
	}
	s.cache[name] = c
	return c, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
