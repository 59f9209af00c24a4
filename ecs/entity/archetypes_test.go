package entity

import (
	"errors"
	"reflect"
	"testing"

	"github.com/milk9111/adventurer/ecs/component"
	"github.com/milk9111/adventurer/ecs/render"
	"github.com/milk9111/adventurer/prefabs"
)

func newTestArchetypes() *Archetypes {
	a := NewArchetypes(render.NewAnimationLibrary())
	a.LoadImage = nil
	return a
}

func TestArchetypeClips(t *testing.T) {
	a := newTestArchetypes()
	arch, err := a.Get("adventurer")
	if err != nil {
		t.Fatalf("build adventurer: %v", err)
	}
	if arch.DefaultFacing != component.FacingUp {
		t.Fatalf("expected default facing up, got %v", arch.DefaultFacing)
	}

	seen := make(map[component.ClipID]bool)
	for _, g := range component.Groups {
		for _, f := range component.Facings {
			id := arch.Set.Clip(g, f)
			if id == component.NoClip || seen[id] {
				t.Fatalf("%v %v: bad or duplicate id %d", g, f, id)
			}
			seen[id] = true
		}
	}
	if len(seen) != 12 || a.Library().Len() != 12 {
		t.Fatalf("expected 12 registered clips, got %d (library %d)", len(seen), a.Library().Len())
	}

	tests := []struct {
		name       string
		id         component.ClipID
		frames     []int
		frameTicks int
		loops      bool
	}{
		{"idle_up", arch.Set.Idle(component.FacingUp), []int{12, 13, 14, 15, 16, 17}, 10, true},
		{"idle_down", arch.Set.Idle(component.FacingDown), []int{0, 1, 2, 3, 4, 5}, 10, true},
		{"run_right", arch.Set.Run(component.FacingRight), []int{24, 25, 26, 27, 28, 29}, 10, true},
		{"attack_left", arch.Set.Attack(component.FacingLeft), []int{42, 43, 44, 45}, 6, false},
		{"attack_up", arch.Set.Attack(component.FacingUp), []int{48, 49, 50, 51}, 6, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clip, ok := a.Library().Clip(tc.id)
			if !ok {
				t.Fatalf("clip %d not registered", tc.id)
			}
			if !reflect.DeepEqual(clip.Frames, tc.frames) {
				t.Fatalf("frames = %v, want %v", clip.Frames, tc.frames)
			}
			if clip.FrameTicks != tc.frameTicks {
				t.Fatalf("frame ticks = %d, want %d", clip.FrameTicks, tc.frameTicks)
			}
			if clip.Loops() != tc.loops {
				t.Fatalf("loops = %v, want %v", clip.Loops(), tc.loops)
			}
			if !tc.loops && clip.Repeat != 1 {
				t.Fatalf("attack clips repeat once, got %d", clip.Repeat)
			}
		})
	}
}

func TestArchetypesBuildOnce(t *testing.T) {
	a := newTestArchetypes()
	first, err := a.Get("adventurer")
	if err != nil {
		t.Fatal(err)
	}
	again, err := a.Get("adventurer")
	if err != nil {
		t.Fatal(err)
	}
	if first != again || first.Set != again.Set {
		t.Fatalf("expected the same archetype pointer on repeated Get")
	}
	if a.Library().Len() != 12 {
		t.Fatalf("repeated Get must not register clips, library has %d", a.Library().Len())
	}

	reloaded, err := a.Reload("adventurer")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Set == first.Set {
		t.Fatalf("reload should build a new animation set")
	}
	if reloaded.Set.Idle(component.FacingUp) == first.Set.Idle(component.FacingUp) {
		t.Fatalf("rebuilt clips must get fresh ids")
	}

	boom := errors.New("boom")
	a.LoadSpec = func(string) (*prefabs.ArchetypeSpec, error) { return nil, boom }
	if _, err := a.Reload("adventurer"); !errors.Is(err, boom) {
		t.Fatalf("expected reload error, got %v", err)
	}
	kept, err := a.Get("adventurer")
	if err != nil || kept != reloaded {
		t.Fatalf("failed reload should keep the previous build")
	}
}

func TestArchetypeErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *prefabs.ArchetypeSpec)
		wantErr error
	}{
		{"bad_default_facing", func(s *prefabs.ArchetypeSpec) { s.DefaultFacing = "sideways" }, prefabs.ErrUnknownFacing},
		{"missing_group", func(s *prefabs.ArchetypeSpec) { delete(s.Clips, "run") }, prefabs.ErrInvalidClip},
		{"missing_row", func(s *prefabs.ArchetypeSpec) { delete(s.Clips["attack"].Rows, "down") }, prefabs.ErrInvalidClip},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestArchetypes()
			a.LoadSpec = func(name string) (*prefabs.ArchetypeSpec, error) {
				spec, err := prefabs.LoadSpec[prefabs.ArchetypeSpec](prefabs.ArchetypeFile(name))
				if err != nil {
					return nil, err
				}
				tc.mutate(&spec)
				return &spec, nil
			}
			if _, err := a.Get("adventurer"); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if a.Loaded("adventurer") {
				t.Fatalf("failed build must not be cached")
			}
		})
	}
}

func TestBuildAnimationSetRepeatPolicy(t *testing.T) {
	spec, err := prefabs.LoadSpec[prefabs.ArchetypeSpec](prefabs.ArchetypeFile("adventurer"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	attack := spec.Clips["attack"]
	attack.Repeat = 0
	spec.Clips["attack"] = attack
	idle := spec.Clips["idle"]
	idle.Repeat = 3
	spec.Clips["idle"] = idle

	lib := render.NewAnimationLibrary()
	set, _, err := BuildAnimationSet(lib, &spec)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, f := range component.Facings {
		attackClip, _ := lib.Clip(set.Attack(f))
		if attackClip.Loops() || attackClip.Repeat != 1 {
			t.Fatalf("attack %s should play once, repeat=%d", f, attackClip.Repeat)
		}
		for _, id := range []component.ClipID{set.Idle(f), set.Run(f)} {
			clip, _ := lib.Clip(id)
			if !clip.Loops() {
				t.Fatalf("%s should loop, repeat=%d", clip.Name, clip.Repeat)
			}
		}
	}
}
