package generation

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// promptData represents the data passed to the prompt templates
type promptData struct {
	URL           string
	Summary       string
	QuestionCount int
}

// PromptBuilder renders the two pipeline prompts. It holds only parsed
// templates and is safe for concurrent use.
type PromptBuilder struct {
	context *template.Template
	quiz    *template.Template
}

// NewPromptBuilder parses the embedded prompt templates.
func NewPromptBuilder() (*PromptBuilder, error) {
	tmpl, err := template.ParseFS(promptFS, "prompts/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt templates: %v", ErrInvalidConfig, err)
	}

	return &PromptBuilder{
		context: tmpl.Lookup("context.tmpl"),
		quiz:    tmpl.Lookup("quiz.tmpl"),
	}, nil
}

// ContextPrompt asks the model to browse url and summarize it densely.
func (b *PromptBuilder) ContextPrompt(url string) (string, error) {
	return render(b.context, promptData{URL: url})
}

// QuizPrompt asks the model for exactly count questions built only from the
// previously fetched summary.
func (b *PromptBuilder) QuizPrompt(summary, url string, count int) (string, error) {
	if strings.TrimSpace(summary) == "" {
		return "", ErrEmptyContext
	}

	return render(b.quiz, promptData{
		URL:           url,
		Summary:       summary,
		QuestionCount: count,
	})
}

func render(tmpl *template.Template, data promptData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", tmpl.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}
