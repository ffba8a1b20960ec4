// Package imagen generates pixel-art game assets through the Hugging
// Face inference API.
package imagen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultModel is a 2D game-asset LoRA tuned for the house style.
	DefaultModel = "gokaygokay/Flux-2D-Game-Assets-LoRA"

	baseURL = "https://api-inference.huggingface.co/models/"

	// promptPrefix and promptSuffix wrap every prompt so outputs match
	// the asset style the LoRA was trained on.
	promptPrefix = "GRPZA, "
	promptSuffix = ", transparent background, game asset, pixel art"

	defaultTimeout = 2 * time.Minute
)

// Generator talks to the inference endpoint.
type Generator struct {
	token string
	model string

	// AssetsDir is where generated images land. Defaults to "assets".
	AssetsDir string

	httpClient *http.Client
}

// NewGenerator creates a generator. The token comes from HF_API_TOKEN
// when empty.
func NewGenerator(token, model string) (*Generator, error) {
	if token == "" {
		token = os.Getenv("HF_API_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("imagen: set HF_API_TOKEN to generate images")
	}
	if model == "" {
		model = DefaultModel
	}

	return &Generator{
		token:      token,
		model:      model,
		AssetsDir:  "assets",
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Generate requests an image for the prompt and returns the raw bytes.
func (g *Generator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	full := promptPrefix + prompt + promptSuffix

	body, err := json.Marshal(map[string]string{"inputs": full})
	if err != nil {
		return nil, fmt.Errorf("imagen: cannot encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+g.model, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("imagen: cannot create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imagen: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("imagen: cannot read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		excerpt := string(data)
		if len(excerpt) > 200 {
			excerpt = excerpt[:200]
		}
		return nil, fmt.Errorf("imagen: endpoint returned %d: %s", resp.StatusCode, excerpt)
	}

	return data, nil
}

// Save writes the image under assets/ named after the prompt. Returns
// the file path.
func (g *Generator) Save(prompt string, image []byte) (string, error) {
	dir := g.AssetsDir
	if dir == "" {
		dir = "assets"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("imagen: cannot create assets directory: %w", err)
	}

	path := filepath.Join(dir, Filename(prompt))
	if err := os.WriteFile(path, image, 0o644); err != nil {
		return "", fmt.Errorf("imagen: cannot write image: %w", err)
	}
	return path, nil
}

// GenerateAndSave is the full pipeline. Returns the file path written.
func (g *Generator) GenerateAndSave(ctx context.Context, prompt string) (string, error) {
	image, err := g.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return g.Save(prompt, image)
}

// Filename derives the output name from the prompt: lowercased, spaces
// to underscores, capped at 50 characters before the extension.
func Filename(prompt string) string {
	name := strings.ReplaceAll(strings.ToLower(prompt), " ", "_")
	if len(name) > 50 {
		name = name[:50]
	}
	return name + ".png"
}
