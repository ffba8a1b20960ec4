package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/spf13/cobra"

	"gameforge/internal/agent"
	"gameforge/internal/storage"
)

var (
	flagAgentModel     string
	flagAgentTemplates string
	flagAgentWorkspace string
	flagConverseTurns  int
	flagConversePrompt string
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Design new games with LLM agents",
	Long: `Run the LLM co-design agents. Requires GEMINI_API_KEY.

Subcommands:
  concept  - Generate a structured game concept from an idea
  develop  - Turn a saved concept into a runnable game
  combine  - Merge two saved concepts into a hybrid
  converse - Let the designer and developer agents brainstorm

Examples:
  forge agent concept "a gravity puzzle in a greenhouse"
  forge agent develop gravity-garden
  forge agent combine gravity-garden space-miner
  forge agent converse --prompt "a roguelike about tax season" --turns 3`,
}

func init() {
	agentCmd.PersistentFlags().StringVar(&flagAgentModel, "model", agent.DefaultModel, "Gemini model to use")
	agentCmd.PersistentFlags().StringVar(&flagAgentTemplates, "templates", "templates", "Directory for generated concepts and code")

	agentConceptCmd.Flags().StringVar(&flagAgentWorkspace, "workspace", "", "Directory to collect source context from")

	agentConverseCmd.Flags().StringVar(&flagConversePrompt, "prompt", "Design a new terminal game.", "Initial prompt for the conversation")
	agentConverseCmd.Flags().IntVar(&flagConverseTurns, "turns", 5, "Number of conversation turns")

	agentCmd.AddCommand(agentConceptCmd)
	agentCmd.AddCommand(agentDevelopCmd)
	agentCmd.AddCommand(agentCombineCmd)
	agentCmd.AddCommand(agentConverseCmd)
}

// withSpinner runs fn while animating a spinner on stderr.
func withSpinner(label string, fn func() error) error {
	frames := spinner.Dot.Frames

	done := make(chan error, 1)
	go func() { done <- fn() }()

	ticker := time.NewTicker(spinner.Dot.FPS)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case err := <-done:
			fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(label)+4))
			return err
		case <-ticker.C:
			fmt.Fprintf(os.Stderr, "\r%s %s", frames[i%len(frames)], label)
			i++
		}
	}
}

var agentConceptCmd = &cobra.Command{
	Use:   "concept <idea>",
	Short: "Generate a game concept",
	Long: `Ask the concept agent for a structured JSON game description and
save it under the templates directory.

Examples:
  forge agent concept "a gravity puzzle in a greenhouse"
  forge agent concept "tower defense with weather" --workspace .`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAgentConcept,
}

func runAgentConcept(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	idea := strings.Join(args, " ")

	client, err := agent.NewClientFromEnv(ctx, flagAgentModel)
	if err != nil {
		return err
	}

	generator := agent.NewConceptGenerator(client)
	generator.TemplatesDir = flagAgentTemplates

	// Record concepts in the scores database when it is reachable.
	if store, err := storage.Open(flagDBPath); err == nil {
		defer store.Close()
		generator.Store = store
	}

	if flagAgentWorkspace != "" {
		wsContext, err := agent.GatherWorkspace(flagAgentWorkspace, 0, nil)
		if err != nil {
			return err
		}
		idea = wsContext + "\nThe idea to develop:\n" + idea
	}

	var path string
	err = withSpinner("Generating concept...", func() error {
		var genErr error
		path, genErr = generator.GenerateAndSave(ctx, idea)
		return genErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("Concept saved to %s\n", path)
	return nil
}

var agentDevelopCmd = &cobra.Command{
	Use:   "develop <template>",
	Short: "Generate game code from a saved concept",
	Long: `Load templates/<template>/concept.json and ask the developer agent
for a complete implementation, saved as main.go next to the concept.

Example:
  forge agent develop gravity-garden`,
	Args: cobra.ExactArgs(1),
	RunE: runAgentDevelop,
}

func runAgentDevelop(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := agent.NewClientFromEnv(ctx, flagAgentModel)
	if err != nil {
		return err
	}

	developer := agent.NewDeveloper(client)
	developer.TemplatesDir = flagAgentTemplates

	var path string
	err = withSpinner("Writing code...", func() error {
		var devErr error
		path, devErr = developer.Develop(ctx, args[0])
		return devErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("Code saved to %s\n", path)
	return nil
}

var agentCombineCmd = &cobra.Command{
	Use:   "combine <template-a> <template-b>",
	Short: "Merge two saved concepts into a hybrid",
	Long: `Load two saved concepts and ask the concept agent for a new one
combining elements of both, saved as <a>-<b>-hybrid.

Example:
  forge agent combine gravity-garden space-miner`,
	Args: cobra.ExactArgs(2),
	RunE: runAgentCombine,
}

func runAgentCombine(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := agent.NewClientFromEnv(ctx, flagAgentModel)
	if err != nil {
		return err
	}

	generator := agent.NewConceptGenerator(client)
	generator.TemplatesDir = flagAgentTemplates

	if store, err := storage.Open(flagDBPath); err == nil {
		defer store.Close()
		generator.Store = store
	}

	combiner := agent.NewCombiner(generator)

	var path string
	err = withSpinner("Combining concepts...", func() error {
		var combErr error
		path, combErr = combiner.Combine(ctx, args[0], args[1])
		return combErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("Hybrid concept saved to %s\n", path)
	return nil
}

var agentConverseCmd = &cobra.Command{
	Use:   "converse",
	Short: "Let the designer and developer agents brainstorm",
	Long: `Run a back-and-forth conversation between the designer and the
developer agent. Each turn both agents speak once, each reply feeding
the other agent. The transcript is printed and saved under
~/.gameforge/sessions.

Examples:
  forge agent converse
  forge agent converse --prompt "a roguelike about tax season" --turns 3`,
	RunE: runAgentConverse,
}

func runAgentConverse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := agent.NewClientFromEnv(ctx, flagAgentModel)
	if err != nil {
		return err
	}

	designer := agent.New("Designer", agent.DesignerSystem, client)
	developer := agent.New("Developer", agent.DeveloperSystem, client)
	conv := agent.NewConversation(designer, developer)

	if err := conv.Run(ctx, flagConversePrompt, flagConverseTurns, os.Stdout); err != nil {
		return err
	}

	sessionsDir := "sessions"
	if home, err := os.UserHomeDir(); err == nil {
		sessionsDir = filepath.Join(home, ".gameforge", "sessions")
	}

	path, err := conv.SaveTranscript(sessionsDir)
	if err != nil {
		return err
	}

	fmt.Printf("\nTranscript saved to %s\n", path)
	return nil
}
