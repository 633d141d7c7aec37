package prompts

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// embeds all .yaml files in the templates folder into Go program at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

type Manager struct {
	prompts map[string]string // mode -> complete prompt template
}

// loaded prompt template
type promptTemplate struct {
	BasePrompt string `yaml:"base_prompt"`
	Template   string `yaml:"template"`
}

// NewManager loads every embedded template.
func NewManager() (*Manager, error) {
	m := &Manager{prompts: make(map[string]string)}
	if err := m.loadPrompts(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}
	return m, nil
}

// BuildExplainPrompt fills the explain template for one problem.
func (m *Manager) BuildExplainPrompt(problemName, topic, difficulty string, concepts []string) (string, error) {
	tmpl, exists := m.prompts["explain"]
	if !exists {
		return "", fmt.Errorf("template not found for mode: explain")
	}

	// Simple string replacement instead of template execution
	result := strings.ReplaceAll(tmpl, "{{.ProblemName}}", problemName)
	result = strings.ReplaceAll(result, "{{.Topic}}", topic)
	result = strings.ReplaceAll(result, "{{.Difficulty}}", difficulty)
	result = strings.ReplaceAll(result, "{{.Concepts}}", strings.Join(concepts, ", "))

	return result, nil
}

// loadPrompts loads all YAML prompt files from the embedded filesystem
func (m *Manager) loadPrompts() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var tmpl promptTemplate
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}

		var full strings.Builder
		if tmpl.BasePrompt != "" {
			full.WriteString(tmpl.BasePrompt)
			full.WriteString("\n\n")
		}
		full.WriteString(tmpl.Template)

		m.prompts[strings.TrimSuffix(entry.Name(), ".yaml")] = full.String()
	}
	return nil
}
