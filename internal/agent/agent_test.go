package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient returns canned replies and records the prompts it saw.
type mockClient struct {
	replies []string
	calls   int

	systems []string
	prompts []string
	caps    []int32
}

func (m *mockClient) Complete(ctx context.Context, prompt string) (string, error) {
	return m.CompleteCapped(ctx, "", prompt, 0)
}

func (m *mockClient) CompleteWithSystem(ctx context.Context, system, prompt string) (string, error) {
	return m.CompleteCapped(ctx, system, prompt, 0)
}

func (m *mockClient) CompleteCapped(_ context.Context, system, prompt string, maxTokens int32) (string, error) {
	m.systems = append(m.systems, system)
	m.prompts = append(m.prompts, prompt)
	m.caps = append(m.caps, maxTokens)
	if m.calls >= len(m.replies) {
		return "", fmt.Errorf("mock: no reply %d", m.calls)
	}
	reply := m.replies[m.calls]
	m.calls++
	return reply, nil
}

func TestExtractJSON(t *testing.T) {
	fenced := "Here you go:\n```json\n{\"a\": 1}\n```\nEnjoy!"
	assert.Equal(t, `{"a": 1}`, ExtractJSON(fenced))

	bare := `Some chatter {"b": 2} trailing words`
	assert.Equal(t, `{"b": 2}`, ExtractJSON(bare))

	nested := `prefix {"c": {"d": 3}} suffix`
	assert.Equal(t, `{"c": {"d": 3}}`, ExtractJSON(nested))
}

func TestExtractGoCode(t *testing.T) {
	fenced := "Sure:\n```go\npackage main\n```\ndone"
	assert.Equal(t, "package main\n", ExtractGoCode(fenced))

	generic := "```\npackage main\n```"
	assert.Equal(t, "package main\n", ExtractGoCode(generic))

	raw := "package main"
	assert.Equal(t, "package main\n", ExtractGoCode(raw))
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"Space Miner":       "space-miner",
		"UPPER":             "upper",
		"a!b@c":             "a-b-c",
		"  trimmed  ":       "trimmed",
		"already-sanitized": "already-sanitized",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeName(in), "input %q", in)
	}
}

func TestAgentRollingHistory(t *testing.T) {
	mock := &mockClient{replies: []string{"r1", "r2", "r3", "r4", "r5", "r6"}}
	a := New("Designer", DesignerSystem, mock)

	ctx := context.Background()
	for i := 1; i <= 6; i++ {
		_, err := a.Ask(ctx, fmt.Sprintf("p%d", i))
		require.NoError(t, err)
	}

	assert.Len(t, a.history, historyDepth)

	// The last prompt should carry only the four most recent exchanges.
	last := mock.prompts[len(mock.prompts)-1]
	assert.NotContains(t, last, "p1")
	assert.Contains(t, last, "p5")
	assert.Contains(t, last, "r5")
	assert.Contains(t, last, "p6")
}

func TestAgentCapsReplyTokens(t *testing.T) {
	mock := &mockClient{replies: []string{"short"}}
	a := New("Designer", DesignerSystem, mock)

	_, err := a.Ask(context.Background(), "hello")
	require.NoError(t, err)

	require.Len(t, mock.caps, 1)
	assert.Equal(t, int32(replyTokenCap), mock.caps[0])
}

func TestAgentFirstPromptHasNoHistory(t *testing.T) {
	mock := &mockClient{replies: []string{"hello"}}
	a := New("Designer", DesignerSystem, mock)

	_, err := a.Ask(context.Background(), "start")
	require.NoError(t, err)

	assert.Equal(t, "start", mock.prompts[0])
	assert.Equal(t, DesignerSystem, mock.systems[0])
}

func TestConceptGenerateAndSave(t *testing.T) {
	reply := "Here is the concept:\n```json\n{\"gameTitle\": \"Gravity Garden\", \"genre\": \"puzzle\"}\n```"
	mock := &mockClient{replies: []string{reply}}

	g := NewConceptGenerator(mock)
	g.TemplatesDir = t.TempDir()

	path, err := g.GenerateAndSave(context.Background(), "Gravity Garden!")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(g.TemplatesDir, "gravity-garden", "concept.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Gravity Garden", doc["gameTitle"])
}

func TestConceptRejectsInvalidJSON(t *testing.T) {
	mock := &mockClient{replies: []string{"not json at all"}}
	g := NewConceptGenerator(mock)
	g.TemplatesDir = t.TempDir()

	_, err := g.Generate(context.Background(), "broken")
	assert.Error(t, err)
}

func TestDeveloperDevelop(t *testing.T) {
	dir := t.TempDir()
	conceptDir := filepath.Join(dir, "gravity-garden")
	require.NoError(t, os.MkdirAll(conceptDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(conceptDir, "concept.json"),
		[]byte(`{"gameTitle": "Gravity Garden"}`), 0o644))

	reply := "```go\npackage main\n\nfunc main() {}\n```"
	mock := &mockClient{replies: []string{reply}}

	d := NewDeveloper(mock)
	d.TemplatesDir = dir

	path, err := d.Develop(context.Background(), "gravity-garden")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(conceptDir, "main.go"), path)

	code, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(code), "package main"))

	// The concept must have been embedded in the prompt.
	assert.Contains(t, mock.prompts[0], "Gravity Garden")
}

func TestDeveloperMissingConcept(t *testing.T) {
	d := NewDeveloper(&mockClient{})
	d.TemplatesDir = t.TempDir()

	_, err := d.Develop(context.Background(), "nope")
	assert.Error(t, err)
}

func TestCombinerCombine(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"alpha", "beta"} {
		cd := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(cd, 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(cd, "concept.json"),
			[]byte(fmt.Sprintf(`{"gameTitle": %q}`, name)), 0o644))
	}

	reply := "```json\n{\"gameTitle\": \"Alpha Beta Fusion\"}\n```"
	mock := &mockClient{replies: []string{reply}}

	g := NewConceptGenerator(mock)
	g.TemplatesDir = dir
	c := NewCombiner(g)

	path, err := c.Combine(context.Background(), "alpha", "beta")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "alpha-beta-hybrid", "concept.json"), path)

	// Both source concepts feed the prompt.
	assert.Contains(t, mock.prompts[0], "alpha")
	assert.Contains(t, mock.prompts[0], "beta")
}

func TestConversationRun(t *testing.T) {
	designer := New("Designer", DesignerSystem, &mockClient{replies: []string{"idea 1", "idea 2"}})
	developer := New("Developer", DeveloperSystem, &mockClient{replies: []string{"plan 1", "plan 2"}})

	conv := NewConversation(designer, developer)

	var out bytes.Buffer
	err := conv.Run(context.Background(), "make something new", 2, &out)
	require.NoError(t, err)

	require.Len(t, conv.Transcript, 4)
	assert.Equal(t, "Designer", conv.Transcript[0].Speaker)
	assert.Equal(t, "idea 1", conv.Transcript[0].Text)
	assert.Equal(t, "Developer", conv.Transcript[1].Speaker)
	assert.Contains(t, out.String(), "--- Turn 2 ---")

	path, err := conv.SaveTranscript(t.TempDir())
	require.NoError(t, err)

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(saved), "Designer: idea 1")
	assert.Contains(t, string(saved), "Developer: plan 2")
}

func TestGatherWorkspace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.bin"), []byte{0x00, 0x01}, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "config.txt"), []byte("secret"), 0o644))

	ctxText, err := GatherWorkspace(dir, 0, nil)
	require.NoError(t, err)

	assert.Contains(t, ctxText, "File: main.go")
	assert.Contains(t, ctxText, "package main")
	assert.NotContains(t, ctxText, "secret")
	assert.NotContains(t, ctxText, "notes.bin")
}

func TestGatherWorkspaceBudget(t *testing.T) {
	dir := t.TempDir()
	big := strings.Repeat("x", 4000) // ~1000 tokens
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte(big), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.go"), []byte(big), 0o644))

	ctxText, err := GatherWorkspace(dir, 1100, nil)
	require.NoError(t, err)

	// Only one of the two files fits the budget.
	count := strings.Count(ctxText, "File: ")
	assert.Equal(t, 1, count)
}

func TestGatherWorkspacePatterns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("# hi"), 0o644))

	ctxText, err := GatherWorkspace(dir, 0, []string{"*.md"})
	require.NoError(t, err)

	assert.Contains(t, ctxText, "readme.md")
	assert.NotContains(t, ctxText, "main.go")
}
