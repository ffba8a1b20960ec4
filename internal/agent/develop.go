package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Developer generates a runnable prototype from a saved concept.
type Developer struct {
	client Client

	// TemplatesDir is where concepts live. Defaults to "templates".
	TemplatesDir string
}

// NewDeveloper creates a developer using the given client.
func NewDeveloper(client Client) *Developer {
	return &Developer{client: client, TemplatesDir: "templates"}
}

// GenerateCode asks the model for a complete implementation of the
// concept and extracts the source from the reply.
func (d *Developer) GenerateCode(ctx context.Context, concept json.RawMessage) (string, error) {
	reply, err := d.client.CompleteWithSystem(ctx, developSystem, fmt.Sprintf(developPrompt, string(concept)))
	if err != nil {
		return "", fmt.Errorf("agent: code generation failed: %w", err)
	}
	return ExtractGoCode(reply), nil
}

// Develop loads templates/<template>/concept.json, generates an
// implementation, and writes it as main.go next to the concept.
// Returns the file path written.
func (d *Developer) Develop(ctx context.Context, template string) (string, error) {
	dir := d.TemplatesDir
	if dir == "" {
		dir = "templates"
	}

	conceptPath := filepath.Join(dir, template, "concept.json")
	concept, err := os.ReadFile(conceptPath)
	if err != nil {
		return "", fmt.Errorf("agent: cannot load concept %s: %w", template, err)
	}

	code, err := d.GenerateCode(ctx, concept)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, template, "main.go")
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return "", fmt.Errorf("agent: cannot write implementation: %w", err)
	}

	return path, nil
}
