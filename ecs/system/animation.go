package system

import (
	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
	"github.com/milk9111/adventurer/ecs/render"
)

// AnimationSystem advances clip playback and points sprites at the current
// frame. A clip that runs out of cycles stops on its last frame and pushes
// an animation finished event.
type AnimationSystem struct {
	library *render.AnimationLibrary
}

func NewAnimationSystem(library *render.AnimationLibrary) *AnimationSystem {
	return &AnimationSystem{library: library}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil || a.library == nil {
		return
	}

	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		clip, ok := a.library.Clip(anim.Current)
		if !ok {
			return
		}

		if anim.Playing {
			anim.FrameTimer++
			if anim.FrameTimer >= clip.FrameTicks {
				anim.FrameTimer = 0
				anim.Frame++
				if anim.Frame >= len(clip.Frames) {
					anim.Cycles++
					if clip.Loops() || anim.Cycles < clip.Repeat {
						anim.Frame = 0
					} else {
						anim.Frame = len(clip.Frames) - 1
						anim.Playing = false
						w.Events().Push(ecs.Event{
							Type: ecs.EventAnimationFinished,
							Data: ecs.AnimationFinishedEvent{Entity: e, Clip: anim.Current},
						})
					}
				}
			}
		}

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			frame := anim.Frame
			if frame < 0 || frame >= len(clip.Frames) {
				frame = 0
			}
			sprite.Source = clip.Sheet.FrameRect(clip.Frames[frame])
			sprite.UseSource = true
		}
	})
}
