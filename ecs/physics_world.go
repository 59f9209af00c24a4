package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/adventurer/ecs/component"
)

const collisionTypeActor cp.CollisionType = 1

// PhysicsWorld owns a top-down Chipmunk space. There is no gravity; actors
// are kinematic bodies driven by velocity and the space integrates them.
type PhysicsWorld struct {
	space *cp.Space

	bodyToEntity map[*cp.Body]Entity
}

// NewPhysicsWorld creates an empty zero-gravity space.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	return &PhysicsWorld{
		space:        space,
		bodyToEntity: make(map[*cp.Body]Entity),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// EnsureBody creates the kinematic body and box shape for e if pb has none,
// placing it at the transform.
func (pw *PhysicsWorld) EnsureBody(e Entity, t *component.Transform, pb *component.PhysicsBody) {
	if pw == nil || pw.space == nil || t == nil || pb == nil || pb.Body != nil {
		return
	}

	width, height := pb.Width, pb.Height
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	shape := cp.NewBox(body, width, height, 0)
	shape.SetCollisionType(collisionTypeActor)
	shape.SetSensor(true)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.bodyToEntity[body] = e

	pb.Body = body
	pb.Shape = shape
}

// RemoveBody takes pb's body and shape out of the space.
func (pw *PhysicsWorld) RemoveBody(pb *component.PhysicsBody) {
	if pw == nil || pw.space == nil || pb == nil || pb.Body == nil {
		return
	}
	if pb.Shape != nil {
		pw.space.RemoveShape(pb.Shape)
	}
	pw.space.RemoveBody(pb.Body)
	delete(pw.bodyToEntity, pb.Body)
	pb.Body = nil
	pb.Shape = nil
}

// RemoveDead drops the bodies of entities alive no longer reports as
// living, along with their shapes.
func (pw *PhysicsWorld) RemoveDead(alive func(Entity) bool) {
	if pw == nil || pw.space == nil || alive == nil {
		return
	}
	for body, e := range pw.bodyToEntity {
		if alive(e) {
			continue
		}
		var shapes []*cp.Shape
		body.EachShape(func(s *cp.Shape) { shapes = append(shapes, s) })
		for _, s := range shapes {
			pw.space.RemoveShape(s)
		}
		pw.space.RemoveBody(body)
		delete(pw.bodyToEntity, body)
	}
}

// Entity returns the entity a body was created for.
func (pw *PhysicsWorld) Entity(body *cp.Body) (Entity, bool) {
	if pw == nil || body == nil {
		return 0, false
	}
	e, ok := pw.bodyToEntity[body]
	return e, ok
}

// Bodies returns how many bodies the space holds for entities.
func (pw *PhysicsWorld) Bodies() int {
	if pw == nil {
		return 0
	}
	return len(pw.bodyToEntity)
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}
