package render

import (
	"fmt"

	"github.com/milk9111/adventurer/ecs/component"
)

// Clip is a playable run of spritesheet frames.
type Clip struct {
	Name       string
	Sheet      Spritesheet
	Frames     []int
	FrameTicks int
	// Repeat is the number of cycles to play; zero loops forever.
	Repeat int
}

func (c Clip) Loops() bool {
	return c.Repeat <= 0
}

// AnimationLibrary hands out clip ids for registered clips. Ids are never
// reused, so clips of an archetype that was rebuilt stay distinct from the
// new ones.
type AnimationLibrary struct {
	clips []Clip
}

// NewAnimationLibrary creates an empty library.
func NewAnimationLibrary() *AnimationLibrary {
	return &AnimationLibrary{}
}

// Register stores clip and returns its id.
func (l *AnimationLibrary) Register(clip Clip) (component.ClipID, error) {
	if l == nil {
		return component.NoClip, fmt.Errorf("animation library: nil library")
	}
	if len(clip.Frames) == 0 {
		return component.NoClip, fmt.Errorf("animation library: clip %q has no frames", clip.Name)
	}
	if clip.FrameTicks <= 0 {
		clip.FrameTicks = 1
	}
	clip.Frames = append([]int(nil), clip.Frames...)
	l.clips = append(l.clips, clip)
	return component.ClipID(len(l.clips)), nil
}

// Clip returns the clip registered under id.
func (l *AnimationLibrary) Clip(id component.ClipID) (Clip, bool) {
	if l == nil || id == component.NoClip || int(id) > len(l.clips) {
		return Clip{}, false
	}
	return l.clips[id-1], true
}

// Len returns how many clips were registered.
func (l *AnimationLibrary) Len() int {
	if l == nil {
		return 0
	}
	return len(l.clips)
}
