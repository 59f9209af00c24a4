package system

import (
	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
)

// FacingSystem keeps each actor's facing in step with its direction and
// recomputes the horizontal flip of its sprite.
type FacingSystem struct{}

func NewFacingSystem() *FacingSystem {
	return &FacingSystem{}
}

func (s *FacingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, _ *component.Actor) {
		dir := mustGet(w, e, component.DirectionComponent, "facing", "direction")
		facing := mustGet(w, e, component.FacingComponent, "facing", "facing")

		*facing = component.ResolveFacing(*facing, *dir)
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.FacingLeft = component.MirrorX(*dir)
		}
	})
}
