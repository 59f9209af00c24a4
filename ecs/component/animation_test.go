package component

import (
	"errors"
	"testing"
)

// testSet numbers clips group-major from 1: idle 1-4, run 5-8, attack 9-12,
// each block in Facings order.
func testSet(t *testing.T) *AnimationSet {
	t.Helper()
	set, err := NewAnimationSet("test", func(g BehaviorGroup, f Facing) (ClipID, error) {
		return ClipID(int(g)*facingCount + int(f) + 1), nil
	})
	if err != nil {
		t.Fatalf("build set: %v", err)
	}
	return set
}

func TestAnimationSet(t *testing.T) {
	set := testSet(t)

	if set.Name() != "test" {
		t.Fatalf("unexpected name %q", set.Name())
	}
	if set.Idle(FacingUp) != 1 || set.Run(FacingDown) != 6 || set.Attack(FacingRight) != 12 {
		t.Fatalf("unexpected clip layout")
	}
	if set.Clip(BehaviorGroup(5), FacingUp) != NoClip || set.Clip(GroupIdle, Facing(-1)) != NoClip {
		t.Fatalf("unknown pairs should map to NoClip")
	}

	seen := make(map[ClipID]bool)
	for _, g := range Groups {
		for _, f := range Facings {
			id := set.Clip(g, f)
			if seen[id] {
				t.Fatalf("clip %d assigned twice", id)
			}
			seen[id] = true
			if !set.InGroup(g, id) {
				t.Fatalf("clip %d should be in group %v", id, g)
			}
			gg, ff, ok := set.Lookup(id)
			if !ok || gg != g || ff != f {
				t.Fatalf("Lookup(%d) = %v %v %v", id, gg, ff, ok)
			}
		}
	}
	if set.InGroup(GroupAttack, set.Idle(FacingLeft)) {
		t.Fatalf("idle clip should not be in the attack group")
	}
	if _, _, ok := set.Lookup(99); ok {
		t.Fatalf("unknown id should not resolve")
	}
}

func TestNewAnimationSetErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name    string
		resolve func(BehaviorGroup, Facing) (ClipID, error)
		wantErr error
	}{
		{"resolver_error", func(g BehaviorGroup, f Facing) (ClipID, error) {
			if g == GroupAttack {
				return NoClip, boom
			}
			return 1, nil
		}, boom},
		{"missing_clip", func(g BehaviorGroup, f Facing) (ClipID, error) {
			if f == FacingRight {
				return NoClip, nil
			}
			return 1, nil
		}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set, err := NewAnimationSet("bad", tc.resolve)
			if err == nil || set != nil {
				t.Fatalf("expected an error, got set %v", set)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestAnimationPlay(t *testing.T) {
	anim := &Animation{Current: 2, Frame: 3, FrameTimer: 4, Cycles: 1}
	anim.Play(7)
	if anim.Current != 7 || anim.Frame != 0 || anim.FrameTimer != 0 || anim.Cycles != 0 || !anim.Playing {
		t.Fatalf("Play should reset playback, got %+v", anim)
	}
}

func TestSelectClip(t *testing.T) {
	set := testSet(t)

	tests := []struct {
		name string
		q    ClipQuery
		want ClipID
	}{
		{
			name: "attack_uses_captured_facing",
			q:    ClipQuery{State: StateAttacking, AttackFacing: FacingLeft, Facing: FacingUp, Direction: Direction{0, 1}, Current: set.Run(FacingUp)},
			want: set.Attack(FacingLeft),
		},
		{
			name: "attack_overrides_run",
			q:    ClipQuery{State: StateAttacking, AttackFacing: FacingDown, Direction: Direction{1, 0}},
			want: set.Attack(FacingDown),
		},
		{
			name: "run_follows_direction",
			q:    ClipQuery{Direction: Direction{0, 1}, Facing: FacingDown, Current: set.Idle(FacingDown)},
			want: set.Run(FacingUp),
		},
		{
			name: "run_left",
			q:    ClipQuery{Direction: Direction{-1, 0}, Facing: FacingLeft, Current: set.Run(FacingLeft)},
			want: set.Run(FacingLeft),
		},
		{
			name: "stop_switches_to_idle",
			q:    ClipQuery{Facing: FacingUp, Current: set.Run(FacingUp)},
			want: set.Idle(FacingUp),
		},
		{
			name: "idle_is_kept",
			q:    ClipQuery{Facing: FacingRight, Current: set.Idle(FacingDown)},
			want: set.Idle(FacingDown),
		},
		{
			name: "diagonal_falls_back_to_idle",
			q:    ClipQuery{Direction: Direction{1, 1}, Facing: FacingRight, Current: set.Run(FacingRight)},
			want: set.Idle(FacingRight),
		},
		{
			name: "attack_clip_left_after_finish",
			q:    ClipQuery{Facing: FacingLeft, Current: set.Attack(FacingLeft)},
			want: set.Idle(FacingLeft),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SelectClip(set, tc.q); got != tc.want {
				t.Fatalf("SelectClip = %d, want %d", got, tc.want)
			}
		})
	}

	if got := SelectClip(nil, ClipQuery{Current: 3}); got != 3 {
		t.Fatalf("nil set should keep the current clip, got %d", got)
	}
	names := ClipRuleNames()
	if len(names) != 3 || names[0] != "attack" || names[1] != "run" || names[2] != "idle" {
		t.Fatalf("unexpected rule order %v", names)
	}
}
