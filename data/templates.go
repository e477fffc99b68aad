package data

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"slices"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed monsters.yaml
var defaultMonsters []byte

// EntityTemplate describes a monster type.
type EntityTemplate struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Glyph       string `yaml:"glyph"` // single character
	Color       string `yaml:"color"` // hex, e.g. "#ff0000"
	HP          int    `yaml:"hp"`
	Defense     int    `yaml:"defense"`
	Power       int    `yaml:"power"`
	SpawnWeight int    `yaml:"spawn_weight"` // relative chance of spawning
}

// Rune returns the template's glyph.
func (t *EntityTemplate) Rune() rune {
	r, _ := utf8.DecodeRuneInString(t.Glyph)
	return r
}

// Validate checks the fields the spawner depends on.
func (t *EntityTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template missing id")
	}
	if t.Name == "" {
		return fmt.Errorf("template %q missing name", t.ID)
	}
	if utf8.RuneCountInString(t.Glyph) != 1 {
		return fmt.Errorf("template %q glyph must be one character, got %q", t.ID, t.Glyph)
	}
	if t.HP <= 0 {
		return fmt.Errorf("template %q hp must be positive", t.ID)
	}
	if t.SpawnWeight <= 0 {
		return fmt.Errorf("template %q spawn_weight must be positive", t.ID)
	}
	return nil
}

type monsterListFile struct {
	Monsters []EntityTemplate `yaml:"monsters"`
}

// EntityTemplateManager manages all entity templates
type EntityTemplateManager struct {
	Templates map[string]*EntityTemplate
	order     []string
}

// NewEntityTemplateManager creates a new template manager
func NewEntityTemplateManager() *EntityTemplateManager {
	return &EntityTemplateManager{
		Templates: make(map[string]*EntityTemplate),
	}
}

// DefaultTemplates returns the built-in monster table.
func DefaultTemplates() (*EntityTemplateManager, error) {
	m := NewEntityTemplateManager()
	if err := m.Parse(defaultMonsters); err != nil {
		return nil, fmt.Errorf("built-in monsters: %w", err)
	}
	return m, nil
}

// LoadTemplates reads a monster table from a YAML file. An empty path
// yields the built-in table.
func LoadTemplates(path string) (*EntityTemplateManager, error) {
	if path == "" {
		return DefaultTemplates()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read monsters %s: %w", path, err)
	}
	m := NewEntityTemplateManager()
	if err := m.Parse(raw); err != nil {
		return nil, fmt.Errorf("monsters %s: %w", path, err)
	}
	return m, nil
}

// Parse adds every template in a YAML document.
func (m *EntityTemplateManager) Parse(raw []byte) error {
	var f monsterListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(f.Monsters) == 0 {
		return fmt.Errorf("no monsters defined")
	}
	for i := range f.Monsters {
		t := f.Monsters[i]
		if err := t.Validate(); err != nil {
			return err
		}
		if _, dup := m.Templates[t.ID]; dup {
			return fmt.Errorf("duplicate template %q", t.ID)
		}
		m.Templates[t.ID] = &t
		m.order = append(m.order, t.ID)
	}
	return nil
}

// GetTemplate returns a template by ID
func (m *EntityTemplateManager) GetTemplate(id string) (*EntityTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// IDs returns template ids in file order.
func (m *EntityTemplateManager) IDs() []string {
	return slices.Clone(m.order)
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return color.RGBA{255, 255, 255, 255}
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}
