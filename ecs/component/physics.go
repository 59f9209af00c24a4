package component

import "github.com/jakecoffman/cp"

// PhysicsBody binds an actor to a Chipmunk kinematic body. Body and Shape are
// created by the physics world on first step.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Width  float64
	Height float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
