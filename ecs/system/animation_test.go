package system

import (
	"testing"

	"github.com/milk9111/adventurer/ecs"
	"github.com/milk9111/adventurer/ecs/component"
	"github.com/milk9111/adventurer/ecs/render"
)

func TestAnimationSystem(t *testing.T) {
	sheet := render.Spritesheet{Columns: 4, Rows: 2, FrameW: 8, FrameH: 8}
	lib := render.NewAnimationLibrary()
	loop, _ := lib.Register(render.Clip{Name: "loop", Sheet: sheet, Frames: []int{0, 1, 2}, FrameTicks: 2})
	twice, _ := lib.Register(render.Clip{Name: "twice", Sheet: sheet, Frames: []int{4, 5}, FrameTicks: 1, Repeat: 2})

	tests := []struct {
		name        string
		clip        component.ClipID
		ticks       int
		wantFrame   int
		wantPlaying bool
		wantFinish  bool
		wantSource  int
	}{
		{"loop_advances", loop, 3, 1, true, false, 1},
		{"loop_wraps", loop, 7, 0, true, false, 0},
		{"repeat_first_cycle", twice, 2, 0, true, false, 4},
		{"repeat_finishes", twice, 4, 1, false, true, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			w.AddSystem(NewAnimationSystem(lib))
			e := ecs.CreateEntity(w)
			anim := &component.Animation{}
			anim.Play(tc.clip)
			sprite := &component.Sprite{}
			_ = ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
			_ = ecs.Add(w, e, component.SpriteComponent.Kind(), sprite)

			for i := 0; i < tc.ticks; i++ {
				w.Update()
			}
			if anim.Frame != tc.wantFrame || anim.Playing != tc.wantPlaying {
				t.Fatalf("frame %d playing %v, want %d %v", anim.Frame, anim.Playing, tc.wantFrame, tc.wantPlaying)
			}
			fin := w.Events().AnimationFinished()
			if got := len(fin) == 1 && fin[0].Entity == e && fin[0].Clip == tc.clip; got != tc.wantFinish {
				t.Fatalf("finish events %v, want finish=%v", fin, tc.wantFinish)
			}
			if !sprite.UseSource || sprite.Source != sheet.FrameRect(tc.wantSource) {
				t.Fatalf("sprite source %v, want frame %d", sprite.Source, tc.wantSource)
			}
		})
	}

	t.Run("finished_clip_stays_quiet", func(t *testing.T) {
		w := ecs.NewWorld()
		w.AddSystem(NewAnimationSystem(lib))
		e := ecs.CreateEntity(w)
		anim := &component.Animation{}
		anim.Play(twice)
		_ = ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
		for i := 0; i < 4; i++ {
			w.Update()
		}
		w.Update()
		if len(w.Events().AnimationFinished()) != 0 || anim.Frame != 1 {
			t.Fatalf("a stopped clip must not finish again")
		}
	})
}
