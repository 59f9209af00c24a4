package entity

import (
	"testing"

	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
)

func TestSpawnActor(t *testing.T) {
	a := newTestArchetypes()

	tests := []struct {
		name      string
		archetype string
		facing    component.Facing
		speed     float64
		player    bool
		script    string
	}{
		{"adventurer", "adventurer", component.FacingUp, 100, true, ""},
		{"wanderer", "wanderer", component.FacingDown, 60, false, "wanderer.tengo"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			arch, err := a.Get(tc.archetype)
			if err != nil {
				t.Fatalf("archetype: %v", err)
			}
			w := ecs.NewWorld()
			e, err := SpawnActor(w, arch, 10, 20)
			if err != nil {
				t.Fatalf("spawn: %v", err)
			}

			actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
			if !ok || actor.State != component.StateLocomotion || actor.MoveSpeed != tc.speed || actor.Archetype != tc.archetype {
				t.Fatalf("unexpected actor %+v", actor)
			}
			facing, _ := ecs.Get(w, e, component.FacingComponent.Kind())
			if *facing != tc.facing {
				t.Fatalf("facing = %v, want %v", *facing, tc.facing)
			}
			anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
			if anim.Set != arch.Set || anim.Current != arch.Set.Idle(tc.facing) || !anim.Playing {
				t.Fatalf("expected idle %v playing, got %+v", tc.facing, anim)
			}
			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			if tr.X != 10 || tr.Y != 20 {
				t.Fatalf("unexpected transform %+v", tr)
			}
			sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
			if sprite.OriginX != 24 || sprite.OriginY != 24 {
				t.Fatalf("sprite origin should be the frame center, got %v,%v", sprite.OriginX, sprite.OriginY)
			}
			if !ecs.Has(w, e, component.InputComponent.Kind()) || !ecs.Has(w, e, component.DirectionComponent.Kind()) {
				t.Fatalf("actor should carry input and direction")
			}
			if got := ecs.Has(w, e, component.PlayerTagComponent.Kind()); got != tc.player {
				t.Fatalf("player tag = %v, want %v", got, tc.player)
			}
			body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if !ok || body.Width != 16 || body.Height != 20 || body.Body != nil {
				t.Fatalf("unexpected physics body %+v", body)
			}
			script, ok := ecs.Get(w, e, component.ScriptInputComponent.Kind())
			if tc.script == "" {
				if ok {
					t.Fatalf("unexpected script component")
				}
			} else if !ok || script.Path != tc.script {
				t.Fatalf("script = %+v, want path %s", script, tc.script)
			}
		})
	}
}

func TestSpawnActorRejectsUnknownComponents(t *testing.T) {
	a := newTestArchetypes()
	arch, err := a.Get("adventurer")
	if err != nil {
		t.Fatal(err)
	}
	bad := *arch
	specCopy := *arch.Spec
	specCopy.Components = map[string]any{"player_tag": map[string]any{}, "jetpack": map[string]any{}}
	bad.Spec = &specCopy

	w := ecs.NewWorld()
	if _, err := SpawnActor(w, &bad, 0, 0); err == nil {
		t.Fatalf("expected an error for an unsupported component")
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("failed spawn should leave no entity, found %d", n)
	}
	if _, err := SpawnActor(w, nil, 0, 0); err == nil {
		t.Fatalf("expected an error for a nil archetype")
	}
}

func TestRebind(t *testing.T) {
	a := newTestArchetypes()
	arch, err := a.Get("adventurer")
	if err != nil {
		t.Fatal(err)
	}
	w := ecs.NewWorld()
	e, err := SpawnActor(w, arch, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	actor, _ := ecs.Get(w, e, component.ActorComponent.Kind())
	actor.State = component.StateAttacking
	facing, _ := ecs.Get(w, e, component.FacingComponent.Kind())
	*facing = component.FacingLeft
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	anim.Play(arch.Set.Attack(component.FacingLeft))

	rebuilt, err := a.Reload("adventurer")
	if err != nil {
		t.Fatal(err)
	}
	if got := ActorsOf(w, "adventurer"); len(got) != 1 || got[0] != e {
		t.Fatalf("ActorsOf = %v", got)
	}
	if err := Rebind(w, e, rebuilt); err != nil {
		t.Fatalf("rebind: %v", err)
	}
	if actor.State != component.StateLocomotion {
		t.Fatalf("rebind should reset to locomotion, got %v", actor.State)
	}
	if anim.Set != rebuilt.Set || anim.Current != rebuilt.Set.Idle(component.FacingLeft) {
		t.Fatalf("expected idle left of the rebuilt set, got clip %d", anim.Current)
	}
	if *facing != component.FacingLeft {
		t.Fatalf("rebind should keep the facing")
	}

	other := ecs.CreateEntity(w)
	if err := Rebind(w, other, rebuilt); err == nil {
		t.Fatalf("rebinding a non-actor should fail")
	}
}
