package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/milk9111/adventurer/ecs/component"
	"github.com/milk9111/adventurer/ecs/entity"
	"github.com/milk9111/adventurer/ecs/render"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <archetype>",
	Short: "Print the clips an archetype registers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(false)
		out, err := inspectArchetype(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// inspectArchetype builds name without its sheet image and renders its
// twelve clips as a table.
func inspectArchetype(name string) (string, error) {
	archetypes := entity.NewArchetypes(render.NewAnimationLibrary())
	archetypes.LoadImage = nil
	arch, err := archetypes.Get(name)
	if err != nil {
		return "", err
	}

	rows := clipRows(archetypes.Library(), arch.Set)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("GROUP", "FACING", "ID", "FRAMES", "TICKS/FRAME", "REPEAT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	title := fmt.Sprintf("%s  speed %g  default facing %s  sheet %s", arch.Name, arch.Spec.MoveSpeed, arch.DefaultFacing, arch.Spec.Sheet.Image)
	rules := "selector rules: " + strings.Join(component.ClipRuleNames(), " > ")
	return title + "\n" + t.String() + "\n" + rules, nil
}

func clipRows(lib *render.AnimationLibrary, set *component.AnimationSet) [][]string {
	var rows [][]string
	for _, g := range component.Groups {
		for _, f := range component.Facings {
			id := set.Clip(g, f)
			clip, _ := lib.Clip(id)
			repeat := "loop"
			if !clip.Loops() {
				repeat = strconv.Itoa(clip.Repeat)
			}
			rows = append(rows, []string{
				g.String(),
				f.String(),
				strconv.Itoa(int(id)),
				frameRange(clip.Frames),
				strconv.Itoa(clip.FrameTicks),
				repeat,
			})
		}
	}
	return rows
}

func frameRange(frames []int) string {
	switch len(frames) {
	case 0:
		return "-"
	case 1:
		return strconv.Itoa(frames[0])
	default:
		return fmt.Sprintf("%d-%d", frames[0], frames[len(frames)-1])
	}
}
