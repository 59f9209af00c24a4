package ecs

import "github.com/milk9111/adventurer/ecs/component"

// IntersectEntities returns the entities present in every given set, in the
// dense order of the smallest set.
func IntersectEntities(sets ...*SparseSet) []Entity {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.denseEntities {
		keep := true
		for _, s := range sets {
			if s != smallest && !s.Has(e) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) intersect(ids ...component.ComponentID) []Entity {
	sets := make([]*SparseSet, len(ids))
	for i, id := range ids {
		sets[i] = w.store(id, false)
	}
	return IntersectEntities(sets...)
}
