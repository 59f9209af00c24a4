package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/adventurer/common"
	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
	"github.com/milk9111/adventurer/ecs/entity"
	"github.com/milk9111/adventurer/ecs/render"
	"github.com/milk9111/adventurer/ecs/system"
	"github.com/milk9111/adventurer/prefabs"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 480
	baseHeight = 270

	wandererArchetype = "wanderer"
	wandererRing      = 90.0
)

type gameOptions struct {
	Archetype string
	Wanderers int
	Physics   bool
	Watch     bool
	Debug     bool
	Scale     float64
}

type Game struct {
	world      *ecs.World
	archetypes *entity.Archetypes
	scripts    *system.ScriptInputSystem
	render     *system.RenderSystem
	watcher    *prefabs.Watcher
	player     ecs.Entity
	debug      bool
}

func NewGame(opts gameOptions) (*Game, error) {
	archetypes := entity.NewArchetypes(render.NewAnimationLibrary())
	world := ecs.NewWorld()
	if opts.Physics {
		world.SetPhysicsWorld(ecs.NewPhysicsWorld())
	}

	scripts := system.NewScriptInputSystem()
	world.AddSystem(system.NewInputSystem())
	world.AddSystem(scripts)
	world.AddSystem(system.NewActorStateSystem())
	world.AddSystem(system.NewFacingSystem())
	world.AddSystem(system.NewAnimationSelectSystem())
	world.AddSystem(system.NewAnimationSystem(archetypes.Library()))
	world.AddSystem(system.NewMotionSystem())
	world.AddSystem(system.NewPhysicsSystem())

	g := &Game{
		world:      world,
		archetypes: archetypes,
		scripts:    scripts,
		render:     system.NewRenderSystem(),
		debug:      opts.Debug,
	}

	cx, cy := baseWidth/2.0, baseHeight/2.0
	arch, err := archetypes.Get(opts.Archetype)
	if err != nil {
		return nil, err
	}
	g.player, err = entity.SpawnActor(world, arch, cx, cy)
	if err != nil {
		return nil, err
	}

	if opts.Wanderers > 0 {
		wanderer, err := archetypes.Get(wandererArchetype)
		if err != nil {
			return nil, err
		}
		for i := 0; i < opts.Wanderers; i++ {
			angle := 2 * math.Pi * float64(i) / float64(opts.Wanderers)
			x := cx + wandererRing*math.Cos(angle)
			y := cy + wandererRing*math.Sin(angle)
			if _, err := entity.SpawnActor(world, wanderer, x, y); err != nil {
				return nil, err
			}
		}
	}

	if opts.Watch {
		g.watcher = startWatcher()
	}

	log.Info("game ready", "archetype", opts.Archetype, "wanderers", opts.Wanderers, "physics", opts.Physics, "watch", g.watcher != nil)
	return g, nil
}

func startWatcher() *prefabs.Watcher {
	if !isDir(prefabs.Dir) {
		log.Warn("prefab watch disabled", "dir", prefabs.Dir, "err", "not a directory")
		return nil
	}
	dirs := []string{prefabs.Dir}
	if scripts := filepath.Join(prefabs.Dir, "scripts"); isDir(scripts) {
		dirs = append(dirs, scripts)
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Warn("prefab watch disabled", "dir", prefabs.Dir, "err", err)
		return nil
	}
	return w
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (g *Game) Update() error {
	g.applyReloads()
	g.world.Update()
	return nil
}

// applyReloads drains the watcher without blocking the frame.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Warn("prefab watch", "err", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	if filepath.Ext(path) == ".tengo" {
		g.scripts.Invalidate(path)
		log.Info("script reloaded", "path", path)
		return
	}

	name := prefabs.ArchetypeName(path)
	if name == "" || !g.archetypes.Loaded(name) {
		return
	}
	arch, err := g.archetypes.Reload(name)
	if err != nil {
		log.Warn("archetype reload failed", "name", name, "err", err)
		return
	}
	for _, e := range entity.ActorsOf(g.world, name) {
		if err := entity.Rebind(g.world, e, arch); err != nil {
			log.Warn("archetype rebind failed", "name", name, "entity", e, "err", err)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	g.render.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
}

func (g *Game) debugText() string {
	text := fmt.Sprintf("TPS: %.1f  FPS: %.1f  tick: %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.world.Tick())
	actor, ok := ecs.Get(g.world, g.player, component.ActorComponent.Kind())
	if !ok {
		return text
	}
	facing, _ := ecs.Get(g.world, g.player, component.FacingComponent.Kind())
	anim, _ := ecs.Get(g.world, g.player, component.AnimationComponent.Kind())
	dir, _ := ecs.Get(g.world, g.player, component.DirectionComponent.Kind())
	group, clipFacing, _ := anim.Set.Lookup(anim.Current)
	return fmt.Sprintf("%s\nstate: %s  facing: %s  dir: %.2f,%.2f\nclip: %d %s-%s frame %d",
		text, actor.State, *facing, dir.X, dir.Y, anim.Current, group, clipFacing, anim.Frame)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func ebitenRun(g *Game, scale float64) {
	ebiten.SetWindowSize(int(baseWidth*scale), int(baseHeight*scale))
	ebiten.SetWindowTitle("adventurer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("run", "err", err)
	}
}
