package system

import (
	"testing"

	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
	"github.com/milk9111/adventurer/ecs/entity"
	"github.com/milk9111/adventurer/ecs/render"
)

// actorWorld is a world running the full actor pipeline against one
// adventurer whose input comes from in.
type actorWorld struct {
	w     *ecs.World
	lib   *render.AnimationLibrary
	arch  *entity.Archetype
	actor ecs.Entity
	in    component.Input
}

func newActorWorld(t *testing.T) *actorWorld {
	t.Helper()

	archetypes := entity.NewArchetypes(render.NewAnimationLibrary())
	archetypes.LoadImage = nil
	arch, err := archetypes.Get("adventurer")
	if err != nil {
		t.Fatalf("archetype: %v", err)
	}

	aw := &actorWorld{w: ecs.NewWorld(), lib: archetypes.Library(), arch: arch}
	aw.actor, err = entity.SpawnActor(aw.w, arch, 100, 100)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}

	input := NewInputSystem()
	input.Poll = func() component.Input { return aw.in }
	aw.w.AddSystem(input)
	aw.w.AddSystem(NewActorStateSystem())
	aw.w.AddSystem(NewFacingSystem())
	aw.w.AddSystem(NewAnimationSelectSystem())
	aw.w.AddSystem(NewAnimationSystem(aw.lib))
	aw.w.AddSystem(NewMotionSystem())
	aw.w.AddSystem(NewPhysicsSystem())
	return aw
}

func (aw *actorWorld) step(n int) {
	for i := 0; i < n; i++ {
		aw.w.Update()
	}
}

func (aw *actorWorld) state() *component.Actor {
	v, _ := ecs.Get(aw.w, aw.actor, component.ActorComponent.Kind())
	return v
}

func (aw *actorWorld) facing() *component.Facing {
	v, _ := ecs.Get(aw.w, aw.actor, component.FacingComponent.Kind())
	return v
}

func (aw *actorWorld) anim() *component.Animation {
	v, _ := ecs.Get(aw.w, aw.actor, component.AnimationComponent.Kind())
	return v
}

func (aw *actorWorld) dir() *component.Direction {
	v, _ := ecs.Get(aw.w, aw.actor, component.DirectionComponent.Kind())
	return v
}

func (aw *actorWorld) transform() *component.Transform {
	v, _ := ecs.Get(aw.w, aw.actor, component.TransformComponent.Kind())
	return v
}

// face puts the actor at rest looking at f.
func (aw *actorWorld) face(f component.Facing) {
	*aw.facing() = f
	aw.anim().Play(aw.arch.Set.Idle(f))
}

func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q", want)
		}
		if msg, _ := r.(string); msg != want {
			t.Fatalf("panic = %v, want %q", r, want)
		}
	}()
	fn()
}
