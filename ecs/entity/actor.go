package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
	"github.com/milk9111/adventurer/prefabs"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, arch *Archetype) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"physics_body": addPhysicsBody,
	"script":       addScript,
}

var componentBuildOrder = []string{
	"player_tag",
	"physics_body",
	"script",
}

// SpawnActor creates an actor of arch at (x, y): in locomotion, facing the
// archetype's default facing and playing its idle clip.
func SpawnActor(w *ecs.World, arch *Archetype, x, y float64) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("spawn actor: world is nil")
	}
	if arch == nil || arch.Set == nil || arch.Spec == nil {
		return 0, fmt.Errorf("spawn actor: archetype is not built")
	}

	e := ecs.CreateEntity(w)
	if err := addCore(w, e, arch, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("spawn actor %s: %w", arch.Name, err)
	}

	remaining := make(map[string]any, len(arch.Spec.Components))
	for k, v := range arch.Spec.Components {
		remaining[k] = v
	}
	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, arch); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("spawn actor %s: add %q: %w", arch.Name, name, err)
		}
		delete(remaining, name)
	}
	if len(remaining) > 0 {
		ecs.DestroyEntity(w, e)
		unknown := make([]string, 0, len(remaining))
		for name := range remaining {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		return 0, fmt.Errorf("spawn actor %s: unsupported components %v", arch.Name, unknown)
	}

	return e, nil
}

func addCore(w *ecs.World, e ecs.Entity, arch *Archetype, x, y float64) error {
	facing := arch.DefaultFacing
	anim := &component.Animation{Set: arch.Set}
	anim.Play(arch.Set.Idle(facing))

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   arch.Image,
		OriginX: float64(arch.Sheet.FrameW) / 2,
		OriginY: float64(arch.Sheet.FrameH) / 2,
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{
		Archetype:    arch.Name,
		MoveSpeed:    arch.Spec.MoveSpeed,
		State:        component.StateLocomotion,
		AttackFacing: facing,
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.DirectionComponent.Kind(), &component.Direction{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.FacingComponent.Kind(), &facing); err != nil {
		return err
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
}

// Rebind points an existing actor at a rebuilt archetype. The actor drops
// back to locomotion and plays the idle clip of the facing it has.
func Rebind(w *ecs.World, e ecs.Entity, arch *Archetype) error {
	if arch == nil || arch.Set == nil || arch.Spec == nil {
		return fmt.Errorf("rebind %v: archetype is not built", e)
	}
	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	if !ok {
		return fmt.Errorf("rebind %v: not an actor", e)
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return fmt.Errorf("rebind %v: no animation", e)
	}

	facing := arch.DefaultFacing
	if f, ok := ecs.Get(w, e, component.FacingComponent.Kind()); ok {
		facing = *f
	}

	actor.Archetype = arch.Name
	actor.MoveSpeed = arch.Spec.MoveSpeed
	actor.State = component.StateLocomotion
	actor.AttackFacing = facing
	if dir, ok := ecs.Get(w, e, component.DirectionComponent.Kind()); ok {
		*dir = component.Direction{}
	}

	anim.Set = arch.Set
	anim.Play(arch.Set.Idle(facing))

	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Image = arch.Image
		sprite.OriginX = float64(arch.Sheet.FrameW) / 2
		sprite.OriginY = float64(arch.Sheet.FrameH) / 2
	}
	return nil
}

// ActorsOf returns the living actors built from the named archetype.
func ActorsOf(w *ecs.World, name string) []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, actor *component.Actor) {
		if actor.Archetype == name {
			out = append(out, e)
		}
	})
	return out
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *Archetype) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, arch *Archetype) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return err
	}
	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = float64(arch.Sheet.FrameW)
	}
	if height <= 0 {
		height = float64(arch.Sheet.FrameH)
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height})
}

func addScript(w *ecs.World, e ecs.Entity, raw any, _ *Archetype) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ScriptComponentSpec](raw)
	if err != nil {
		return err
	}
	if spec.Path == "" {
		return fmt.Errorf("script: missing path")
	}
	return ecs.Add(w, e, component.ScriptInputComponent.Kind(), &component.ScriptInput{Path: spec.Path})
}
