package system

import (
	"fmt"

	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
)

// mustGet returns a component every actor is built with. A missing one is a
// wiring defect, not a runtime condition.
func mustGet[T any](w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], system, name string) *T {
	v, ok := ecs.Get(w, e, h.Kind())
	if !ok {
		panic(fmt.Sprintf("%s: entity %v missing %s", system, e, name))
	}
	return v
}
