package system

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/adventurer/common"
	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
	"github.com/milk9111/adventurer/prefabs"
)

// ScriptInputSystem fills the Input of scripted actors by running their
// tengo script once per tick. A script sees the globals tick, facing and
// attacking and sets move_x, move_y and attack.
type ScriptInputSystem struct {
	// Load returns the source of a script path. Defaults to prefabs.LoadScript.
	Load func(path string) ([]byte, error)

	compiled map[string]*tengo.Compiled
	runtimes map[ecs.Entity]*scriptRuntime
	failed   map[string]error
	warned   map[string]bool
}

type scriptRuntime struct {
	path     string
	compiled *tengo.Compiled
}

func NewScriptInputSystem() *ScriptInputSystem {
	return &ScriptInputSystem{Load: prefabs.LoadScript}
}

func (s *ScriptInputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for e := range s.runtimes {
		if !w.IsAlive(e) {
			delete(s.runtimes, e)
		}
	}

	ecs.ForEach2(w, component.ScriptInputComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, script *component.ScriptInput, input *component.Input) {
		*input = component.Input{}

		rt, err := s.runtime(e, script.Path)
		if err != nil {
			s.warnOnce(script.Path, err)
			return
		}

		facing := component.FacingUp
		if f, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok {
			facing = *f
		}
		actor, _ := ecs.Get(w, e, component.ActorComponent.Kind())

		out, err := rt.run(script.Tick, facing, actor.Attacking())
		script.Tick++
		if err != nil {
			log.Warn("script input", "entity", e, "path", script.Path, "err", err)
			script.AttackHeld = false
			return
		}

		input.MoveX = common.Clamp(out.MoveX, -1, 1)
		input.MoveY = common.Clamp(out.MoveY, -1, 1)
		input.AttackHeld = out.AttackHeld
		input.AttackPressed = out.AttackHeld && !script.AttackHeld
		script.AttackHeld = out.AttackHeld
	})
}

// Invalidate drops the compiled copy of path so the next tick reloads it.
// path may be a watcher path or a prefab script path.
func (s *ScriptInputSystem) Invalidate(path string) {
	if s == nil {
		return
	}
	name := prefabs.ScriptName(path)
	same := func(p string) bool { return prefabs.ScriptName(p) == name }

	for p := range s.compiled {
		if same(p) {
			delete(s.compiled, p)
		}
	}
	for p := range s.failed {
		if same(p) {
			delete(s.failed, p)
			delete(s.warned, p)
		}
	}
	for e, rt := range s.runtimes {
		if same(rt.path) {
			delete(s.runtimes, e)
		}
	}
}

func (s *ScriptInputSystem) runtime(e ecs.Entity, path string) (*scriptRuntime, error) {
	if rt, ok := s.runtimes[e]; ok && rt.path == path {
		return rt, nil
	}
	if err, ok := s.failed[path]; ok {
		return nil, err
	}

	base, ok := s.compiled[path]
	if !ok {
		var err error
		base, err = s.compile(path)
		if err != nil {
			if s.failed == nil {
				s.failed = make(map[string]error)
			}
			s.failed[path] = err
			return nil, err
		}
		if s.compiled == nil {
			s.compiled = make(map[string]*tengo.Compiled)
		}
		s.compiled[path] = base
	}

	// Each actor runs its own clone so script globals never leak between
	// actors sharing a path.
	rt := &scriptRuntime{path: path, compiled: base.Clone()}
	if s.runtimes == nil {
		s.runtimes = make(map[ecs.Entity]*scriptRuntime)
	}
	s.runtimes[e] = rt
	return rt, nil
}

func (s *ScriptInputSystem) compile(path string) (*tengo.Compiled, error) {
	load := s.Load
	if load == nil {
		load = prefabs.LoadScript
	}
	src, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("script %s: load: %w", path, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("facing", "")
	_ = script.Add("attacking", false)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %s: compile: %w", path, err)
	}
	return compiled, nil
}

func (s *ScriptInputSystem) warnOnce(path string, err error) {
	if s.warned[path] {
		return
	}
	if s.warned == nil {
		s.warned = make(map[string]bool)
	}
	s.warned[path] = true
	log.Warn("script input", "path", path, "err", err)
}

type scriptOutput struct {
	MoveX      float64
	MoveY      float64
	AttackHeld bool
}

func (rt *scriptRuntime) run(tick int, facing component.Facing, attacking bool) (scriptOutput, error) {
	c := rt.compiled
	if err := c.Set("tick", tick); err != nil {
		return scriptOutput{}, err
	}
	if err := c.Set("facing", facing.String()); err != nil {
		return scriptOutput{}, err
	}
	if err := c.Set("attacking", attacking); err != nil {
		return scriptOutput{}, err
	}
	if err := c.Run(); err != nil {
		return scriptOutput{}, err
	}

	var out scriptOutput
	if c.IsDefined("move_x") {
		out.MoveX = c.Get("move_x").Float()
	}
	if c.IsDefined("move_y") {
		out.MoveY = c.Get("move_y").Float()
	}
	if c.IsDefined("attack") {
		out.AttackHeld = c.Get("attack").Bool()
	}
	return out, nil
}
