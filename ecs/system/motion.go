package system

import (
	"github.com/milk9111/adventurer/common"
	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
)

// MotionSystem turns each actor's direction into movement. With a physics
// world it drives the actor's kinematic body, otherwise it moves the
// transform directly. Attacking actors do not move.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	pw := w.PhysicsWorld()

	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, actor *component.Actor) {
		dir := mustGet(w, e, component.DirectionComponent, "motion", "direction")
		vx, vy := Velocity(actor, *dir)

		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}

		if pw != nil {
			if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
				pw.EnsureBody(e, t, body)
				if body.Body != nil {
					body.Body.SetVelocity(vx, vy)
				}
				return
			}
		}

		t.X += vx * common.TickSeconds
		t.Y += vy * common.TickSeconds
	})
}

// Velocity returns the screen-space velocity of an actor in pixels per
// second. Direction +Y is up while screen y grows downward. Diagonals are
// not normalized.
func Velocity(actor *component.Actor, dir component.Direction) (float64, float64) {
	if actor == nil || actor.Attacking() {
		return 0, 0
	}
	return dir.X * actor.MoveSpeed, -dir.Y * actor.MoveSpeed
}
