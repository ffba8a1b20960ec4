package agent

import (
	"regexp"
	"strings"
)

var (
	jsonBlockRe = regexp.MustCompile("(?s)```json\\s*\n(.*?)\n```")
	goBlockRe   = regexp.MustCompile("(?s)```go\\s*\n(.*?)\n```")
	anyBlockRe  = regexp.MustCompile("(?s)```[a-z]*\\s*\n(.*?)\n```")
	nameRe      = regexp.MustCompile(`[^a-z0-9-]`)
)

// ExtractJSON pulls the JSON payload out of a completion: a fenced
// ```json block if present, otherwise the span from the first '{' to
// the last '}'.
func ExtractJSON(content string) string {
	if m := jsonBlockRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		return strings.TrimSpace(content[start : end+1])
	}
	return strings.TrimSpace(content)
}

// ExtractGoCode pulls Go source out of a completion: a fenced ```go
// block if present, then any fenced block, then the raw text.
func ExtractGoCode(content string) string {
	if m := goBlockRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1]) + "\n"
	}
	if m := anyBlockRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1]) + "\n"
	}
	return strings.TrimSpace(content) + "\n"
}

// SanitizeName converts a concept name to a valid directory name:
// lowercase, with every other character replaced by '-' and leading or
// trailing dashes stripped.
func SanitizeName(name string) string {
	s := nameRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
