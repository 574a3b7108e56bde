package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/ecs/entity"
	"github.com/milk9111/arcade/ecs/system"
	"github.com/milk9111/arcade/prefabs"
	"go.uber.org/zap"
)

const prefabsDir = "prefabs"

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool

	logger *zap.Logger
	spec   *prefabs.GameSpec

	world     *ecs.World
	scheduler *ecs.Scheduler
	control   *system.AirplaneControlSystem
	shots     *system.ShotScripts
	renderer  *system.RenderSystem
	player    ecs.Entity

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
}

func NewGame(logger *zap.Logger, debug, watch bool) (*Game, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	planeSpec, err := prefabs.LoadAirplaneSpec()
	if err != nil {
		return nil, err
	}
	bulletSpec, err := prefabs.LoadBulletSpec()
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	if _, err := entity.NewPlayfield(w, spec); err != nil {
		return nil, err
	}
	player, err := entity.NewAirplane(w, planeSpec, component.TransformProps{
		Position: cp.Vector{X: planeSpec.Transform.X, Y: planeSpec.Transform.Y},
		Scale:    spec.BaseScale * nonZero(planeSpec.Transform.Scale),
	})
	if err != nil {
		return nil, err
	}

	shots := system.NewShotScripts()
	control := system.NewAirplaneControlSystem(bulletSpec, shots, logger)

	g := &Game{
		debug:  debug || spec.Debug,
		logger: logger,
		spec:   spec,
		world:  w,
		scheduler: ecs.NewScheduler(
			system.NewInputSystem(),
			control,
			system.NewMovementSystem(),
			system.NewTTLSystem(),
			system.NewBulletCleanupSystem(),
		),
		control:  control,
		shots:    shots,
		renderer: system.NewRenderSystem(true),
		player:   player,
	}
	g.pauseUI = NewPauseUI(g)

	if watch {
		if err := g.startWatcher(); err != nil {
			logger.Warn("prefab hot reload disabled", zap.Error(err))
		}
	}

	logger.Info("game ready",
		zap.Float64("width", spec.Width),
		zap.Float64("height", spec.Height),
		zap.Stringer("player", player))
	return g, nil
}

func (g *Game) startWatcher() error {
	if _, err := os.Stat(prefabsDir); err != nil {
		return fmt.Errorf("watch %s: %w", prefabsDir, err)
	}
	w, err := prefabs.NewWatcher(prefabsDir, filepath.Join(prefabsDir, "scripts"))
	if err != nil {
		return fmt.Errorf("watch %s: %w", prefabsDir, err)
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollReloads()
	g.scheduler.Update(g.world)

	for _, evt := range g.world.Events().Drain() {
		g.logger.Debug("world event",
			zap.String("type", string(evt.Type)),
			zap.Stringer("entity", evt.Entity),
			zap.Any("data", evt.Data))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Entities: %d",
			g.frames, ebiten.ActualFPS(), len(ecs.Entities(g.world))))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.spec.Width, g.spec.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// pollReloads applies every prefab change the watcher has reported since the
// last frame without blocking.
func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.reload(name); err != nil {
				g.logger.Warn("prefab reload failed", zap.String("file", name), zap.Error(err))
				continue
			}
			g.logger.Info("prefab reloaded", zap.String("file", name))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("prefab watcher", zap.Error(err))
		default:
			return
		}
	}
}

var errUnknownPrefab = errors.New("no reload handler")

func (g *Game) reload(name string) error {
	switch {
	case filepath.Ext(name) == ".tengo":
		g.shots.Invalidate(name)
		return nil
	case name == prefabs.GameFile:
		spec, err := prefabs.LoadGameSpec()
		if err != nil {
			return err
		}
		g.spec = spec
		g.debug = g.debug || spec.Debug
		return entity.ResizePlayfield(g.world, spec)
	case name == prefabs.BulletFile:
		spec, err := prefabs.LoadBulletSpec()
		if err != nil {
			return err
		}
		g.control.SetBulletSpec(spec)
		return nil
	case name == prefabs.AirplaneFile:
		spec, err := prefabs.LoadAirplaneSpec()
		if err != nil {
			return err
		}
		if attrs, ok := ecs.Get(g.world, g.player, component.AttributesComponent.Kind()); ok {
			attrs.SetMaxVelocity(spec.Attributes.MaxVelocity)
		}
		if plane, ok := ecs.Get(g.world, g.player, component.AirplaneComponent.Kind()); ok {
			plane.ShotCooldownFrames = spec.ShotCooldownFrames
			plane.ShotScript = spec.ShotScript
		}
		return nil
	default:
		return errUnknownPrefab
	}
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
