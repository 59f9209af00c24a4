package entity

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/adventurer/common"
	"github.com/milk9111/adventurer/ecs/component"
	"github.com/milk9111/adventurer/ecs/render"
	"github.com/milk9111/adventurer/prefabs"
)

// Archetype is a built prefab: its spec, the animation set shared by every
// actor of the kind and the sheet those clips are cut from.
type Archetype struct {
	Name          string
	Spec          *prefabs.ArchetypeSpec
	Set           *component.AnimationSet
	Sheet         render.Spritesheet
	Image         *ebiten.Image
	DefaultFacing component.Facing
}

// Archetypes builds each archetype once and hands out the same pointer
// afterwards.
type Archetypes struct {
	library *render.AnimationLibrary
	loaded  map[string]*Archetype

	// LoadSpec and LoadImage default to the prefab and asset loaders.
	LoadSpec  func(name string) (*prefabs.ArchetypeSpec, error)
	LoadImage func(key string) (*ebiten.Image, error)
}

func NewArchetypes(library *render.AnimationLibrary) *Archetypes {
	return &Archetypes{
		library:   library,
		loaded:    make(map[string]*Archetype),
		LoadSpec:  prefabs.LoadArchetypeSpec,
		LoadImage: render.LoadImage,
	}
}

// Library returns the clip library archetypes register into.
func (a *Archetypes) Library() *render.AnimationLibrary {
	return a.library
}

// Get returns the named archetype, building it on first use.
func (a *Archetypes) Get(name string) (*Archetype, error) {
	if arch, ok := a.loaded[name]; ok {
		return arch, nil
	}
	arch, err := a.build(name)
	if err != nil {
		return nil, err
	}
	a.loaded[name] = arch
	log.Info("archetype built", "name", name, "clips", a.library.Len())
	return arch, nil
}

// Reload rebuilds the named archetype from its prefab. On failure the
// previous build stays in place.
func (a *Archetypes) Reload(name string) (*Archetype, error) {
	arch, err := a.build(name)
	if err != nil {
		return nil, err
	}
	a.loaded[name] = arch
	log.Info("archetype reloaded", "name", name, "clips", a.library.Len())
	return arch, nil
}

// Loaded reports whether name has been built.
func (a *Archetypes) Loaded(name string) bool {
	_, ok := a.loaded[name]
	return ok
}

func (a *Archetypes) build(name string) (*Archetype, error) {
	if a.library == nil {
		return nil, fmt.Errorf("archetype %s: no animation library", name)
	}
	spec, err := a.LoadSpec(name)
	if err != nil {
		return nil, fmt.Errorf("archetype %s: %w", name, err)
	}

	facing := component.FacingUp
	if spec.DefaultFacing != "" {
		f, ok := component.ParseFacing(spec.DefaultFacing)
		if !ok {
			return nil, fmt.Errorf("archetype %s: default facing %q: %w", name, spec.DefaultFacing, prefabs.ErrUnknownFacing)
		}
		facing = f
	}

	var img *ebiten.Image
	if a.LoadImage != nil && spec.Sheet.Image != "" {
		img, err = a.LoadImage(spec.Sheet.Image)
		if err != nil {
			return nil, fmt.Errorf("archetype %s: sheet: %w", name, err)
		}
	}

	set, sheet, err := BuildAnimationSet(a.library, spec)
	if err != nil {
		return nil, err
	}

	return &Archetype{
		Name:          spec.Name,
		Spec:          spec,
		Set:           set,
		Sheet:         sheet,
		Image:         img,
		DefaultFacing: facing,
	}, nil
}

// BuildAnimationSet registers the twelve clips of spec in library and
// returns the set binding them to their group and facing.
func BuildAnimationSet(library *render.AnimationLibrary, spec *prefabs.ArchetypeSpec) (*component.AnimationSet, render.Spritesheet, error) {
	sheet := render.Spritesheet{
		Columns: spec.Sheet.Columns,
		Rows:    spec.Sheet.Rows,
		FrameW:  spec.Sheet.FrameW,
		FrameH:  spec.Sheet.FrameH,
	}

	set, err := component.NewAnimationSet(spec.Name, func(g component.BehaviorGroup, f component.Facing) (component.ClipID, error) {
		clipSpec, ok := spec.Clips[g.String()]
		if !ok {
			return component.NoClip, fmt.Errorf("no %s clips: %w", g, prefabs.ErrInvalidClip)
		}
		row, ok := clipSpec.Rows[f.String()]
		if !ok {
			return component.NoClip, fmt.Errorf("no row for %s: %w", f, prefabs.ErrInvalidClip)
		}
		start, end := clipSpec.Columns.Bounds(sheet.Columns)
		frames, err := sheet.RowPartial(row, start, end)
		if err != nil {
			return component.NoClip, err
		}
		return library.Register(render.Clip{
			Name:       fmt.Sprintf("%s_%s_%s", spec.Name, g, f),
			Sheet:      sheet,
			Frames:     frames,
			FrameTicks: common.MillisToTicks(clipSpec.FrameMillis(len(frames))),
			Repeat:     prefabs.GroupRepeat(g.String()),
		})
	})
	if err != nil {
		return nil, sheet, err
	}
	return set, sheet, nil
}
