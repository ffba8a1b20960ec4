package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gameforge/internal/storage"
)

// ConceptGenerator turns a one-line game idea into a structured concept
// document saved under templates/<name>/concept.json.
type ConceptGenerator struct {
	client Client

	// TemplatesDir is where concept directories are created.
	// Defaults to "templates".
	TemplatesDir string

	// Store, when set, also records concepts in the database.
	Store *storage.Store
}

// NewConceptGenerator creates a generator using the given client.
func NewConceptGenerator(client Client) *ConceptGenerator {
	return &ConceptGenerator{client: client, TemplatesDir: "templates"}
}

// Generate produces a validated concept JSON document for the idea.
func (g *ConceptGenerator) Generate(ctx context.Context, idea string) (json.RawMessage, error) {
	reply, err := g.client.CompleteWithSystem(ctx, conceptSystem, fmt.Sprintf(conceptPrompt, idea))
	if err != nil {
		return nil, fmt.Errorf("agent: concept generation failed: %w", err)
	}

	raw := ExtractJSON(reply)

	// Round-trip through the decoder to validate and normalize.
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("agent: concept response is not valid JSON: %w", err)
	}
	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("agent: cannot encode concept: %w", err)
	}

	return pretty, nil
}

// Save writes the concept under templates/<sanitized-name>/concept.json
// and records it in the store when one is configured. Returns the file
// path written.
func (g *ConceptGenerator) Save(idea string, concept json.RawMessage) (string, error) {
	name := SanitizeName(idea)
	if name == "" {
		return "", fmt.Errorf("agent: concept name %q sanitizes to nothing", idea)
	}

	dir := filepath.Join(g.templatesDir(), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("agent: cannot create concept directory: %w", err)
	}

	path := filepath.Join(dir, "concept.json")
	if err := os.WriteFile(path, concept, 0o644); err != nil {
		return "", fmt.Errorf("agent: cannot write concept: %w", err)
	}

	if g.Store != nil {
		if _, err := g.Store.SaveConcept(name, string(concept)); err != nil {
			return "", fmt.Errorf("agent: cannot record concept: %w", err)
		}
	}

	return path, nil
}

// GenerateAndSave is the full concept pipeline.
func (g *ConceptGenerator) GenerateAndSave(ctx context.Context, idea string) (string, error) {
	concept, err := g.Generate(ctx, idea)
	if err != nil {
		return "", err
	}
	return g.Save(idea, concept)
}

// LoadConcept reads templates/<template>/concept.json.
func (g *ConceptGenerator) LoadConcept(template string) (json.RawMessage, error) {
	path := filepath.Join(g.templatesDir(), template, "concept.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("agent: cannot load concept %s: %w", template, err)
	}
	return data, nil
}

func (g *ConceptGenerator) templatesDir() string {
	if g.TemplatesDir == "" {
		return "templates"
	}
	return g.TemplatesDir
}
