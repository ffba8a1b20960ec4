package agent

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	// maxWorkspaceFileSize caps individual files pulled into context.
	maxWorkspaceFileSize = 100 * 1024

	// defaultWorkspaceBudget is the total context budget in estimated
	// tokens.
	defaultWorkspaceBudget = 100_000
)

// codeExtensions maps file extensions to fence languages for workspace
// context.
var codeExtensions = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".html": "html",
	".css":  "css",
	".json": "json",
	".md":   "markdown",
	".c":    "c",
	".cpp":  "cpp",
	".h":    "c",
	".rs":   "rust",
	".rb":   "ruby",
	".sh":   "bash",
	".sql":  "sql",
	".yaml": "yaml",
	".yml":  "yaml",
	".toml": "toml",
	".txt":  "text",
}

// excludedDirs are skipped while walking a workspace.
var excludedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	".cache":       true,
}

// estimateTokens is a rough count: one token per 4 characters.
func estimateTokens(text string) int {
	return len(text) / 4
}

// GatherWorkspace walks the directory collecting source files into a
// single context block, stopping once the token budget is reached.
// patterns, when non-empty, restricts collection to those extensions
// (given as ".go" or "*.go").
func GatherWorkspace(dir string, budget int, patterns []string) (string, error) {
	if budget <= 0 {
		budget = defaultWorkspaceBudget
	}

	allowed := codeExtensions
	if len(patterns) > 0 {
		allowed = make(map[string]string, len(patterns))
		for _, p := range patterns {
			ext := strings.TrimPrefix(p, "*")
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			allowed[ext] = codeExtensions[ext]
		}
	}

	var sb strings.Builder
	sb.WriteString("Here are the relevant files in the workspace:\n\n")
	total := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (excludedDirs[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		lang, ok := allowed[ext]
		if !ok {
			return nil
		}

		info, err := d.Info()
		if err != nil || info.Size() > maxWorkspaceFileSize {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil || !utf8.Valid(data) {
			return nil
		}

		content := string(data)
		cost := estimateTokens(content)
		if total+cost > budget {
			return fs.SkipAll
		}
		total += cost

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		fmt.Fprintf(&sb, "File: %s\n```%s\n%s\n```\n\n", rel, lang, content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("agent: workspace walk failed: %w", err)
	}

	return sb.String(), nil
}
