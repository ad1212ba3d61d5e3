package chat

import (
	_ "embed"
	"log/slog"
	"os"
	"strings"

	"cricket-data-service/internal/logging"
)

//go:embed prompt.txt
var defaultPrompt string

// conciseSuffix is appended when the caller asks for short answers.
const conciseSuffix = "\n\nIMPORTANT: Keep your responses extremely brief and concise. " +
	"Use 50 words or less when possible. Focus only on the most important information. " +
	"Avoid unnecessary details, greetings, or explanations."

// PromptSource resolves the system prompt: a configured file when present,
// the embedded default otherwise. The file is re-read per request so the
// prompt can be edited without a restart.
type PromptSource struct {
	path   string
	logger *slog.Logger
}

// NewPromptSource constructs a PromptSource. An empty path means the
// embedded default is always used.
func NewPromptSource(path string, logger *slog.Logger) *PromptSource {
	return &PromptSource{path: path, logger: logger}
}

// SystemPrompt returns the prompt text, with the concise suffix appended
// when requested.
func (p *PromptSource) SystemPrompt(concise bool) string {
	prompt := strings.TrimSpace(defaultPrompt)

	if p != nil && p.path != "" {
		raw, err := os.ReadFile(p.path)
		if err != nil {
			logging.Warn(p.logger, "system prompt file unreadable, using embedded default", "path", p.path, "error", err)
		} else if text := strings.TrimSpace(string(raw)); text != "" {
			prompt = text
		}
	}

	if concise {
		prompt += conciseSuffix
	}
	return prompt
}
