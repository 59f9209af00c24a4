package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/adventurer/common"
	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
)

// ActorStateSystem runs the locomotion/attack state machine of every actor
// and turns its input into a movement direction.
type ActorStateSystem struct{}

func NewActorStateSystem() *ActorStateSystem {
	return &ActorStateSystem{}
}

func (s *ActorStateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	finished := w.Events().AnimationFinished()

	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, actor *component.Actor) {
		input := mustGet(w, e, component.InputComponent, "actor state", "input")
		dir := mustGet(w, e, component.DirectionComponent, "actor state", "direction")
		facing := mustGet(w, e, component.FacingComponent, "actor state", "facing")
		anim := mustGet(w, e, component.AnimationComponent, "actor state", "animation")

		switch actor.State {
		case component.StateLocomotion:
			if input.AttackPressed {
				actor.AttackFacing = *facing
				s.transition(e, actor, component.TriggerAttackPressed)
				*dir = component.Direction{}
				return
			}
			dir.X = common.Clamp(input.MoveX, -1, 1)
			dir.Y = common.Clamp(input.MoveY, -1, 1)
		case component.StateAttacking:
			*dir = component.Direction{}
			if attackFinished(e, actor, anim, finished) {
				s.transition(e, actor, component.TriggerAttackFinished)
			}
		}
	})
}

func (s *ActorStateSystem) transition(e ecs.Entity, actor *component.Actor, trigger component.Trigger) {
	from := actor.State
	actor.State = from.Next(trigger)
	if actor.State != from {
		log.Debug("actor state", "entity", e, "archetype", actor.Archetype, "from", from, "to", actor.State, "trigger", trigger)
	}
}

// attackFinished reports whether the batch holds the end of this actor's own
// attack: same entity, the attack clip of the captured facing, and an attack
// clip still current.
func attackFinished(e ecs.Entity, actor *component.Actor, anim *component.Animation, events []ecs.AnimationFinishedEvent) bool {
	set := anim.Set
	if set == nil || !set.InGroup(component.GroupAttack, anim.Current) {
		return false
	}
	want := set.Attack(actor.AttackFacing)
	for _, evt := range events {
		if evt.Entity == e && evt.Clip == want {
			return true
		}
	}
	return false
}
