package component

import "fmt"

// ClipID is an opaque handle to a registered clip. NoClip is never issued.
type ClipID uint32

const NoClip ClipID = 0

// BehaviorGroup names one of the clip families every archetype provides.
type BehaviorGroup int

const (
	GroupIdle BehaviorGroup = iota
	GroupRun
	GroupAttack
)

const groupCount = 3

var Groups = [groupCount]BehaviorGroup{GroupIdle, GroupRun, GroupAttack}

func (g BehaviorGroup) String() string {
	switch g {
	case GroupIdle:
		return "idle"
	case GroupRun:
		return "run"
	case GroupAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// AnimationSet maps every (group, facing) pair of an archetype to a clip. It
// is filled once by NewAnimationSet and only read afterwards, so one set is
// shared by pointer between all actors of the archetype.
type AnimationSet struct {
	name  string
	clips [groupCount][facingCount]ClipID
}

// NewAnimationSet asks resolve for each of the twelve clips.
func NewAnimationSet(name string, resolve func(BehaviorGroup, Facing) (ClipID, error)) (*AnimationSet, error) {
	set := &AnimationSet{name: name}
	for _, g := range Groups {
		for _, f := range Facings {
			id, err := resolve(g, f)
			if err != nil {
				return nil, fmt.Errorf("animation set %s: %s %s: %w", name, g, f, err)
			}
			if id == NoClip {
				return nil, fmt.Errorf("animation set %s: %s %s: no clip", name, g, f)
			}
			set.clips[g][f] = id
		}
	}
	return set, nil
}

func (s *AnimationSet) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Clip returns the clip for g and f, or NoClip for an unknown pair.
func (s *AnimationSet) Clip(g BehaviorGroup, f Facing) ClipID {
	if s == nil || g < 0 || int(g) >= groupCount || !f.Valid() {
		return NoClip
	}
	return s.clips[g][f]
}

func (s *AnimationSet) Idle(f Facing) ClipID   { return s.Clip(GroupIdle, f) }
func (s *AnimationSet) Run(f Facing) ClipID    { return s.Clip(GroupRun, f) }
func (s *AnimationSet) Attack(f Facing) ClipID { return s.Clip(GroupAttack, f) }

// InGroup reports whether id is one of the four clips of g.
func (s *AnimationSet) InGroup(g BehaviorGroup, id ClipID) bool {
	if s == nil || id == NoClip || g < 0 || int(g) >= groupCount {
		return false
	}
	for _, c := range s.clips[g] {
		if c == id {
			return true
		}
	}
	return false
}

// Lookup returns the group and facing id was registered under.
func (s *AnimationSet) Lookup(id ClipID) (BehaviorGroup, Facing, bool) {
	if s == nil || id == NoClip {
		return GroupIdle, FacingUp, false
	}
	for g := range s.clips {
		for f, c := range s.clips[g] {
			if c == id {
				return BehaviorGroup(g), Facing(f), true
			}
		}
	}
	return GroupIdle, FacingUp, false
}

// Animation is the playback state of the clip an entity shows.
type Animation struct {
	Set        *AnimationSet
	Current    ClipID
	Frame      int
	FrameTimer int
	Cycles     int
	Playing    bool
}

// Play restarts playback on id. Callers guard against replaying the clip
// that is already current.
func (a *Animation) Play(id ClipID) {
	a.Current = id
	a.Frame = 0
	a.FrameTimer = 0
	a.Cycles = 0
	a.Playing = true
}

var AnimationComponent = NewComponent[Animation]()
