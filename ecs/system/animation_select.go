package system

import (
	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
)

// AnimationSelectSystem picks each actor's clip and restarts playback only
// when the pick changes.
type AnimationSelectSystem struct{}

func NewAnimationSelectSystem() *AnimationSelectSystem {
	return &AnimationSelectSystem{}
}

func (s *AnimationSelectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, actor *component.Actor) {
		dir := mustGet(w, e, component.DirectionComponent, "animation select", "direction")
		facing := mustGet(w, e, component.FacingComponent, "animation select", "facing")
		anim := mustGet(w, e, component.AnimationComponent, "animation select", "animation")

		next := component.SelectClip(anim.Set, component.ClipQuery{
			State:        actor.State,
			AttackFacing: actor.AttackFacing,
			Direction:    *dir,
			Facing:       *facing,
			Current:      anim.Current,
		})
		if next != component.NoClip && next != anim.Current {
			anim.Play(next)
		}
	})
}
