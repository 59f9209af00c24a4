package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
)

// RenderSystem draws every sprite at its transform. Sprites lower on screen
// are drawn later so they overlap the ones behind them.
type RenderSystem struct {
	Zoom float64
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{Zoom: 1}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	zoom := r.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	type drawable struct {
		e ecs.Entity
		t *component.Transform
		s *component.Sprite
	}
	var items []drawable
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		if s.Image == nil {
			return
		}
		items = append(items, drawable{e, t, s})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].t.Y != items[j].t.Y {
			return items[i].t.Y < items[j].t.Y
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		screen.DrawImage(it.s.FrameImage(), DrawOptions(it.t, it.s, zoom))
	}
}

// DrawOptions places a sprite's origin on its transform, mirrored about the
// origin when the sprite faces left.
func DrawOptions(t *component.Transform, s *component.Sprite, zoom float64) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.OriginX, -s.OriginY)

	sx := t.ScaleX
	if sx == 0 {
		sx = 1
	}
	if s.FacingLeft {
		sx = -sx
	}
	sy := t.ScaleY
	if sy == 0 {
		sy = 1
	}

	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(t.X*zoom, t.Y*zoom)
	return op
}
