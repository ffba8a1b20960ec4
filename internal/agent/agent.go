package agent

import (
	"context"
	"fmt"
	"strings"
)

// historyDepth is how many previous exchanges an agent carries into the
// next prompt.
const historyDepth = 4

// replyTokenCap keeps conversation turns short.
const replyTokenCap = 400

// exchange is one prompt/reply pair.
type exchange struct {
	Prompt string
	Reply  string
}

// Agent is a named persona with a system prompt and a rolling memory of
// its recent exchanges.
type Agent struct {
	Name   string
	System string

	client  Client
	history []exchange
}

// New creates an agent bound to a client.
func New(name, system string, client Client) *Agent {
	return &Agent{
		Name:   name,
		System: system,
		client: client,
	}
}

// Ask sends a prompt, threading in the recent history, and records the
// exchange.
func (a *Agent) Ask(ctx context.Context, prompt string) (string, error) {
	full := a.buildPrompt(prompt)

	reply, err := a.client.CompleteCapped(ctx, a.System, full, replyTokenCap)
	if err != nil {
		return "", fmt.Errorf("agent %s: %w", a.Name, err)
	}

	a.history = append(a.history, exchange{Prompt: prompt, Reply: reply})
	if len(a.history) > historyDepth {
		a.history = a.history[len(a.history)-historyDepth:]
	}

	return reply, nil
}

// buildPrompt prefixes the prompt with the rolling conversation history.
func (a *Agent) buildPrompt(prompt string) string {
	if len(a.history) == 0 {
		return prompt
	}

	var sb strings.Builder
	sb.WriteString("Previous conversation:\n")
	for _, ex := range a.history {
		sb.WriteString("Them: ")
		sb.WriteString(ex.Prompt)
		sb.WriteString("\nYou: ")
		sb.WriteString(ex.Reply)
		sb.WriteString("\n")
	}
	sb.WriteString("\nNew message:\n")
	sb.WriteString(prompt)
	return sb.String()
}

// Reset clears the rolling history.
func (a *Agent) Reset() {
	a.history = nil
}
