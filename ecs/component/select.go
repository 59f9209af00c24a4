package component

// ClipQuery is what the clip selector looks at for one actor on one tick.
type ClipQuery struct {
	State        ActorState
	AttackFacing Facing
	Direction    Direction
	Facing       Facing
	Current      ClipID
}

type clipRule struct {
	name   string
	choose func(set *AnimationSet, q ClipQuery) (ClipID, bool)
}

// clipRules is evaluated top to bottom; the first rule that chooses a clip
// wins. When none does the current clip is kept.
var clipRules = [...]clipRule{
	{"attack", func(set *AnimationSet, q ClipQuery) (ClipID, bool) {
		if q.State != StateAttacking {
			return NoClip, false
		}
		return set.Attack(q.AttackFacing), true
	}},
	{"run", func(set *AnimationSet, q ClipQuery) (ClipID, bool) {
		f, ok := q.Direction.Cardinal()
		if !ok {
			return NoClip, false
		}
		return set.Run(f), true
	}},
	{"idle", func(set *AnimationSet, q ClipQuery) (ClipID, bool) {
		if set.InGroup(GroupIdle, q.Current) {
			return NoClip, false
		}
		return set.Idle(q.Facing), true
	}},
}

// ClipRuleNames returns the selector rule names in priority order.
func ClipRuleNames() []string {
	names := make([]string, len(clipRules))
	for i, r := range clipRules {
		names[i] = r.name
	}
	return names
}

// SelectClip returns the clip an actor should show. Diagonal input has no
// clip of its own and falls through to idle.
func SelectClip(set *AnimationSet, q ClipQuery) ClipID {
	if set == nil {
		return q.Current
	}
	for _, rule := range clipRules {
		if id, ok := rule.choose(set, q); ok {
			return id
		}
	}
	return q.Current
}
