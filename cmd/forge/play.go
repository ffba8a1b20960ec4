package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gameforge/internal/config"
	"gameforge/internal/core"
	"gameforge/internal/games/jumper"
	"gameforge/internal/games/shooter"
	"gameforge/internal/games/towerdef"
	"gameforge/internal/platform/tui"
	"gameforge/internal/registry"
	"gameforge/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows     - Move
  Z/X/C      - Primary / Secondary / Block
  Space      - Jump
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  forge play shooter
  forge play jumper --difficulty easy
  forge play towerdef --difficulty hard
  forge play shooter --config ./my-shooter.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// validateConfigFlag fails fast on a bad --config path before the game
// swallows the load error and falls back to defaults.
func validateConfigFlag(gameID string) error {
	if flagConfig == "" {
		return nil
	}
	var err error
	switch gameID {
	case "shooter":
		_, err = config.LoadShooter(flagConfig)
	case "towerdef":
		_, err = config.LoadTowerDef(flagConfig)
	case "jumper":
		_, err = config.LoadJumper(flagConfig)
	default:
		return fmt.Errorf("game %q does not take a config file", gameID)
	}
	return err
}

// applyGameConfig routes the --config and --difficulty flags to the games
// that load YAML tunables.
func applyGameConfig(gameID string) {
	preset := config.DifficultyPreset(flagDifficulty)
	switch gameID {
	case "shooter":
		shooter.SetConfigPath(flagConfig)
		if preset != "" {
			shooter.SetDifficultyPreset(preset)
		}
	case "towerdef":
		towerdef.SetConfigPath(flagConfig)
		if preset != "" {
			towerdef.SetDifficultyPreset(preset)
		}
	case "jumper":
		jumper.SetConfigPath(flagConfig)
		if preset != "" {
			jumper.SetDifficultyPreset(preset)
		}
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'forge list' to see available games.")
		os.Exit(1)
	}

	if err := validateConfigFlag(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyGameConfig(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Scores are not recorded but the game still works.
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
