package presets

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
)

//go:embed assets/presets.yaml
var bundledPresets []byte

//go:embed assets/presets.schema.json
var presetsSchema string

const schemaURL = "presets.schema.json"

// File is the on-disk shape of a presets document
type File struct {
	Presets []Spec `yaml:"presets"`
}

// Spec is one preset as written in YAML
type Spec struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Progress    []string `yaml:"progress"`
	Quality     []string `yaml:"quality"`
}

// Preset is a resolved pair of action subsets
type Preset struct {
	Name        string
	Description string
	Progress    []crafting.Action
	Quality     []crafting.Action
}

// Set is a named collection of presets
type Set struct {
	byName map[string]Preset
}

// ErrUnknownPreset is returned by Get for a missing name
type ErrUnknownPreset struct {
	Name string
}

func (e *ErrUnknownPreset) Error() string {
	return fmt.Sprintf("unknown preset %q", e.Name)
}

// Load returns the bundled presets, overlaid with the file at path when path is
// non-empty. A preset in the file replaces a bundled one of the same name.
func Load(path string) (*Set, error) {
	set, err := Parse(bundledPresets)
	if err != nil {
		return nil, fmt.Errorf("bundled presets: %w", err)
	}
	if strings.TrimSpace(path) == "" {
		return set, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}
	overlay, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for name, p := range overlay.byName {
		set.byName[name] = p
	}
	return set, nil
}

// Parse validates a YAML presets document against the schema and resolves
// every action name.
func Parse(data []byte) (*Set, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	set := &Set{byName: make(map[string]Preset, len(file.Presets))}
	for _, spec := range file.Presets {
		if _, dup := set.byName[spec.Name]; dup {
			return nil, fmt.Errorf("duplicate preset %q", spec.Name)
		}
		progress, err := crafting.ParseActions(spec.Progress)
		if err != nil {
			return nil, fmt.Errorf("preset %q progress: %w", spec.Name, err)
		}
		quality, err := crafting.ParseActions(spec.Quality)
		if err != nil {
			return nil, fmt.Errorf("preset %q quality: %w", spec.Name, err)
		}
		set.byName[spec.Name] = Preset{
			Name:        spec.Name,
			Description: spec.Description,
			Progress:    progress,
			Quality:     quality,
		}
	}
	return set, nil
}

// validateDocument runs the JSON schema over a YAML-decoded document. The
// document goes through JSON first so the validator sees JSON value types.
func validateDocument(doc interface{}) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(presetsSchema)); err != nil {
		return fmt.Errorf("presets schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("presets schema: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("presets document: %w", err)
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("presets document: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("presets document does not match schema: %w", err)
	}
	return nil
}

// Get returns the named preset
func (s *Set) Get(name string) (Preset, error) {
	p, ok := s.byName[name]
	if !ok {
		return Preset{}, &ErrUnknownPreset{Name: name}
	}
	return p, nil
}

// Names lists preset names alphabetically
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every preset ordered by name
func (s *Set) All() []Preset {
	out := make([]Preset, 0, len(s.byName))
	for _, name := range s.Names() {
		out = append(out, s.byName[name])
	}
	return out
}
