package agent

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Turn is one utterance in a conversation transcript.
type Turn struct {
	Speaker string
	Text    string
}

// Conversation alternates between two agents, feeding each reply to the
// other.
type Conversation struct {
	First  *Agent
	Second *Agent

	Transcript []Turn
}

// NewConversation pairs two agents.
func NewConversation(first, second *Agent) *Conversation {
	return &Conversation{First: first, Second: second}
}

// Run plays the given number of turns starting from the initial prompt.
// Each turn both agents speak once. Progress is written to out as the
// conversation unfolds.
func (c *Conversation) Run(ctx context.Context, initialPrompt string, turns int, out io.Writer) error {
	current := initialPrompt

	for i := 0; i < turns; i++ {
		fmt.Fprintf(out, "\n--- Turn %d ---\n", i+1)

		reply1, err := c.First.Ask(ctx, current)
		if err != nil {
			return err
		}
		c.Transcript = append(c.Transcript, Turn{Speaker: c.First.Name, Text: reply1})
		fmt.Fprintf(out, "\n%s: %s\n", c.First.Name, reply1)

		reply2, err := c.Second.Ask(ctx, reply1)
		if err != nil {
			return err
		}
		c.Transcript = append(c.Transcript, Turn{Speaker: c.Second.Name, Text: reply2})
		fmt.Fprintf(out, "\n%s: %s\n", c.Second.Name, reply2)

		current = reply2
	}

	return nil
}

// SaveTranscript writes the transcript to <dir>/<uuid>.txt and returns
// the file path.
func (c *Conversation) SaveTranscript(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("agent: cannot create session directory: %w", err)
	}

	var sb strings.Builder
	for _, t := range c.Transcript {
		sb.WriteString(t.Speaker)
		sb.WriteString(": ")
		sb.WriteString(t.Text)
		sb.WriteString("\n\n")
	}

	path := filepath.Join(dir, uuid.NewString()+".txt")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("agent: cannot write transcript: %w", err)
	}
	return path, nil
}
