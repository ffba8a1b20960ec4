// forge is a TUI game platform for playing generated prototype games in
// the terminal.
//
// Usage:
//
//	forge list               - List available games
//	forge play <game>        - Play a game
//	forge menu               - Start menu to pick games interactively
//	forge serve              - Start SSH server for remote play
//	forge scores <game>      - Show high scores for a game
//	forge agent <command>    - Run the LLM co-design agents
//	forge imagegen <prompt>  - Generate a pixel-art game asset
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.gameforge/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "gameforge/internal/games/artifact"
	_ "gameforge/internal/games/artifact2"
	_ "gameforge/internal/games/clicker"
	_ "gameforge/internal/games/fighter"
	_ "gameforge/internal/games/incrpg"
	_ "gameforge/internal/games/jumper"
	_ "gameforge/internal/games/rpg"
	_ "gameforge/internal/games/shooter"
	_ "gameforge/internal/games/towerdef"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "GameForge - Play generated prototype games in your terminal",
	Long: `GameForge is a terminal gaming platform that hosts a collection of
prototype games and the LLM agents that design new ones.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  agent    - Design new games with LLM agents
  imagegen - Generate pixel-art game assets

Examples:
  forge list
  forge play shooter
  forge menu
  forge serve --addr :2222
  forge scores shooter
  forge agent concept "a gravity puzzle"
  forge imagegen "red dragon"`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gameforge/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(imagegenCmd)
}
