package agent

import (
	"context"
	"encoding/json"
	"fmt"
)

// Combiner merges two saved concepts into a new hybrid concept.
type Combiner struct {
	generator *ConceptGenerator
}

// NewCombiner creates a combiner on top of a concept generator.
func NewCombiner(generator *ConceptGenerator) *Combiner {
	return &Combiner{generator: generator}
}

// Combine loads both concepts, asks the model for a hybrid, and saves
// it under templates/<a>-<b>-hybrid/. Returns the file path written.
func (c *Combiner) Combine(ctx context.Context, templateA, templateB string) (string, error) {
	conceptA, err := c.generator.LoadConcept(templateA)
	if err != nil {
		return "", err
	}
	conceptB, err := c.generator.LoadConcept(templateB)
	if err != nil {
		return "", err
	}

	idea := fmt.Sprintf(combinePrompt, string(conceptA), string(conceptB))

	reply, err := c.generator.client.CompleteWithSystem(ctx, conceptSystem, fmt.Sprintf(conceptPrompt, idea))
	if err != nil {
		return "", fmt.Errorf("agent: combination failed: %w", err)
	}

	raw := ExtractJSON(reply)
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return "", fmt.Errorf("agent: combined concept is not valid JSON: %w", err)
	}
	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("agent: cannot encode combined concept: %w", err)
	}

	name := fmt.Sprintf("%s-%s-hybrid", templateA, templateB)
	return c.generator.Save(name, pretty)
}
