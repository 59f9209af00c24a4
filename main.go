// adventurer runs a top-down character sandbox: a player and optional
// scripted wanderers sharing one sprite sheet.
//
// Usage:
//
//	adventurer [run]             - Open the game window (default)
//	adventurer inspect <name>    - Print the clips an archetype registers
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var opts gameOptions

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("adventurer", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "adventurer",
	Short:         "Top-down character sandbox",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the game window",
	Long: `Open the game window with the player archetype and optional wanderers.

Controls:
  WASD/Arrows  - Move
  J            - Attack
  Gamepad      - Left stick moves, west face button attacks`,
	Args: cobra.NoArgs,
	RunE: runGame,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, runCmd} {
		cmd.Flags().StringVar(&opts.Archetype, "archetype", "adventurer", "Player archetype prefab")
		cmd.Flags().IntVar(&opts.Wanderers, "wanderers", 0, "Number of scripted wanderers to spawn")
		cmd.Flags().BoolVar(&opts.Physics, "physics", false, "Move actors through Chipmunk kinematic bodies")
		cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload prefabs and scripts when they change on disk")
		cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Debug logging and overlay")
		cmd.Flags().Float64Var(&opts.Scale, "scale", 2, "Window scale")
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(inspectCmd)
}

func setupLogging(debug bool) {
	log.SetPrefix("adventurer")
	log.SetReportTimestamp(true)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	setupLogging(opts.Debug)

	game, err := NewGame(opts)
	if err != nil {
		log.Fatal("start", "err", err)
	}
	defer game.Close()

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebitenRun(game, scale)
	return nil
}
