package prefabs

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFacing = errors.New("prefabs: unknown facing")
	ErrInvalidClip   = errors.New("prefabs: invalid clip")
)

// Facing names accepted in archetype specs.
var FacingNames = []string{"up", "down", "left", "right"}

// Clip group names every archetype must define.
var ClipGroupNames = []string{"idle", "run", "attack"}

// GroupRepeat returns the fixed cycle count of a clip group. Attacks play
// exactly once; idle and run loop.
func GroupRepeat(group string) int {
	if group == "attack" {
		return 1
	}
	return 0
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// ArchetypeSpec describes one kind of actor: its sheet, the twelve clips of
// its animation set and optional extra components.
type ArchetypeSpec struct {
	Name          string              `yaml:"name"`
	MoveSpeed     float64             `yaml:"move_speed"`
	DefaultFacing string              `yaml:"default_facing"`
	Sheet         SheetSpec           `yaml:"sheet"`
	Clips         map[string]ClipSpec `yaml:"clips"`
	Components    map[string]any      `yaml:"components"`
}

type SheetSpec struct {
	Image   string `yaml:"image"`
	FrameW  int    `yaml:"frame_w"`
	FrameH  int    `yaml:"frame_h"`
	Columns int    `yaml:"columns"`
	Rows    int    `yaml:"rows"`
}

// ClipSpec is one behavior group: a sheet row per facing, an optional
// column range shared by the four rows, and timing.
type ClipSpec struct {
	Rows    map[string]int `yaml:"rows"`
	Columns *ColumnRange   `yaml:"columns"`
	// CycleMS is the duration of one full pass over the frames.
	CycleMS float64 `yaml:"cycle_ms"`
	// FrameMS is the duration of each frame, used when CycleMS is zero.
	FrameMS float64 `yaml:"frame_ms"`
	// Repeat is optional and must agree with GroupRepeat for the group.
	Repeat int `yaml:"repeat"`
}

// ColumnRange selects columns [Start, End). A zero End means the last column.
type ColumnRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Bounds resolves the range against a sheet with the given column count.
func (r *ColumnRange) Bounds(columns int) (int, int) {
	if r == nil {
		return 0, columns
	}
	end := r.End
	if end == 0 {
		end = columns
	}
	return r.Start, end
}

// FrameMillis returns the per-frame duration for a clip of n frames.
func (c ClipSpec) FrameMillis(n int) float64 {
	if c.CycleMS > 0 && n > 0 {
		return c.CycleMS / float64(n)
	}
	return c.FrameMS
}

type PhysicsBodyComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ScriptComponentSpec struct {
	Path string `yaml:"path"`
}

// Validate checks everything that does not need the sheet image.
func (s *ArchetypeSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("prefabs: nil archetype spec")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("prefabs: archetype has no name")
	}
	if s.MoveSpeed < 0 {
		return fmt.Errorf("prefabs: archetype %s: negative move_speed", s.Name)
	}
	if s.DefaultFacing != "" && !isFacingName(s.DefaultFacing) {
		return fmt.Errorf("prefabs: archetype %s: default_facing %q: %w", s.Name, s.DefaultFacing, ErrUnknownFacing)
	}
	sh := s.Sheet
	if sh.Columns <= 0 || sh.Rows <= 0 || sh.FrameW <= 0 || sh.FrameH <= 0 {
		return fmt.Errorf("prefabs: archetype %s: sheet grid %dx%d of %dx%d frames: %w", s.Name, sh.Columns, sh.Rows, sh.FrameW, sh.FrameH, ErrInvalidClip)
	}
	for _, group := range ClipGroupNames {
		clip, ok := s.Clips[group]
		if !ok {
			return fmt.Errorf("prefabs: archetype %s: missing %s clips: %w", s.Name, group, ErrInvalidClip)
		}
		if err := clip.validate(group, sh); err != nil {
			return fmt.Errorf("prefabs: archetype %s: %s: %w", s.Name, group, err)
		}
	}
	for group := range s.Clips {
		if !slices.Contains(ClipGroupNames, group) {
			return fmt.Errorf("prefabs: archetype %s: unknown clip group %q: %w", s.Name, group, ErrInvalidClip)
		}
	}
	return nil
}

func (c ClipSpec) validate(group string, sh SheetSpec) error {
	for name := range c.Rows {
		if !isFacingName(name) {
			return fmt.Errorf("row %q: %w", name, ErrUnknownFacing)
		}
	}
	for _, name := range FacingNames {
		row, ok := c.Rows[name]
		if !ok {
			return fmt.Errorf("no row for %s: %w", name, ErrInvalidClip)
		}
		if row < 0 || row >= sh.Rows {
			return fmt.Errorf("row %d for %s outside sheet: %w", row, name, ErrInvalidClip)
		}
	}
	start, end := c.Columns.Bounds(sh.Columns)
	if start < 0 || end > sh.Columns || start >= end {
		return fmt.Errorf("columns [%d,%d) outside sheet: %w", start, end, ErrInvalidClip)
	}
	if c.CycleMS <= 0 && c.FrameMS <= 0 {
		return fmt.Errorf("needs cycle_ms or frame_ms: %w", ErrInvalidClip)
	}
	// An omitted repeat takes the group policy; an explicit one must match it.
	if c.Repeat != 0 && c.Repeat != GroupRepeat(group) {
		return fmt.Errorf("repeat %d, %s clips repeat %d: %w", c.Repeat, group, GroupRepeat(group), ErrInvalidClip)
	}
	return nil
}

// LoadArchetypeSpec loads and validates an archetype prefab. name may omit
// the .yaml extension.
func LoadArchetypeSpec(name string) (*ArchetypeSpec, error) {
	file := ArchetypeFile(name)
	spec, err := LoadSpec[ArchetypeSpec](file)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ArchetypeFile returns the prefab file name for an archetype name.
func ArchetypeFile(name string) string {
	if isSpecFile(name) {
		return name
	}
	return name + ".yaml"
}

func isFacingName(s string) bool {
	return slices.Contains(FacingNames, s)
}
