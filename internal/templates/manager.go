package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"sync"
)

// Manager lazily parses and caches templates from a directory.
type Manager struct {
	templatesDir string

	mu    sync.Mutex
	cache map[string]*template.Template
}

func NewManager(templatesDir string) *Manager {
	return &Manager{
		templatesDir: templatesDir,
		cache:        make(map[string]*template.Template),
	}
}

func (m *Manager) Render(templateName string, data interface{}) (string, error) {
	m.mu.Lock()
	tmpl, ok := m.cache[templateName]
	if !ok {
		path := filepath.Join(m.templatesDir, templateName)
		var err error
		tmpl, err = template.ParseFiles(path)
		if err != nil {
			m.mu.Unlock()
			return "", fmt.Errorf("failed to parse template %s: %w", templateName, err)
		}
		m.cache[templateName] = tmpl
	}
	m.mu.Unlock()

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return buf.String(), nil
}
