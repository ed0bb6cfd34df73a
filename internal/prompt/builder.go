// Package prompt builds the task-specific instruction text sent to the
// generation backend. Templates are embedded in the binary and rendered with
// text/template, so output depends only on the input text and target language.
package prompt

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template names, matching the files under templates/.
const (
	adviceTemplate    = "advice.tmpl"
	translateTemplate = "translate.tmpl"
	summarizeTemplate = "summarize.tmpl"
)

// ErrEmptyText is returned when a prompt is requested for empty text.
var ErrEmptyText = errors.New("prompt text cannot be empty")

// ErrEmptyLanguage is returned when a translate or summarize prompt has no target language.
var ErrEmptyLanguage = errors.New("prompt target language cannot be empty")

// promptData represents the data passed to the prompt templates
type promptData struct {
	Text     string
	Language string
}

// Builder renders prompts for the advice, translate and summarize tasks.
// A Builder is immutable after construction and safe for concurrent use.
type Builder struct {
	templates *template.Template
}

// NewBuilder parses the embedded prompt templates.
func NewBuilder() (*Builder, error) {
	tmpl, err := template.New("prompts").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt templates: %w", err)
	}

	for _, name := range []string{adviceTemplate, translateTemplate, summarizeTemplate} {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("prompt template %q not found", name)
		}
	}

	return &Builder{templates: tmpl}, nil
}

// Advice builds the health-advice prompt for an already normalized question.
func (b *Builder) Advice(question string) (string, error) {
	if question == "" {
		return "", ErrEmptyText
	}
	return b.render(adviceTemplate, promptData{Text: question})
}

// Translate builds the translation prompt for normalized text.
func (b *Builder) Translate(text, language string) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}
	if language == "" {
		return "", ErrEmptyLanguage
	}
	return b.render(translateTemplate, promptData{Text: text, Language: language})
}

// Summarize builds the medical summary prompt for normalized text.
func (b *Builder) Summarize(text, language string) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}
	if language == "" {
		return "", ErrEmptyLanguage
	}
	return b.render(summarizeTemplate, promptData{Text: text, Language: language})
}

func (b *Builder) render(name string, data promptData) (string, error) {
	var buf bytes.Buffer
	if err := b.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", name, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
