// Package template loads and lists workspace templates: YAML files
// declaring the windows a workspace is made of, stored under
// ~/.config/workspacectl/templates.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmezquita/workspacectl/internal/geometry"
)

// ErrNotFound means no template file matched the requested name.
var ErrNotFound = errors.New("template not found")

// Template is one parsed workspace template.
type Template struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Windows     []Window `yaml:"windows"`
}

// Window is one window declaration inside a template.
type Window struct {
	Type        string   `yaml:"type"`
	Command     string   `yaml:"command"`
	Title       string   `yaml:"title"`
	WindowClass string   `yaml:"window_class"`
	Monitor     string   `yaml:"monitor"`
	Position    Position `yaml:"position"`
	Desktop     int      `yaml:"desktop"`
}

// Position wraps a geometry.Spec so it can be written in YAML either as
// a string ("left-third", "tl w:50% h:100%") or as a mapping with
// absolute pixel fields ({x: 10, y: 20, width: 300, height: 400}).
type Position struct {
	geometry.Spec
}

func (p *Position) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		p.Spec = geometry.Sym(s)
		return nil
	case yaml.MappingNode:
		var abs geometry.AbsoluteSpec
		if err := node.Decode(&abs); err != nil {
			return err
		}
		p.Spec = geometry.Abs(abs)
		return nil
	default:
		return fmt.Errorf("position must be a string or a mapping (line %d)", node.Line)
	}
}

func (p Position) MarshalYAML() (interface{}, error) {
	if p.Spec.Absolute != nil {
		return *p.Spec.Absolute, nil
	}
	return p.Spec.Symbolic, nil
}

// Dir returns the templates directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "templates")
	}
	return filepath.Join(home, ".config", "workspacectl", "templates")
}

// Load reads a template by name. The name resolves to <dir>/<name>.yml,
// then <dir>/<name>.yaml, then <name> taken as a literal path.
func Load(name string) (*Template, error) {
	for _, path := range []string{
		filepath.Join(Dir(), name+".yml"),
		filepath.Join(Dir(), name+".yaml"),
		name,
	} {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return LoadFile(path)
		}
	}
	return nil, fmt.Errorf("%w: %q (looked in %s)", ErrNotFound, name, Dir())
}

// LoadFile reads and strictly decodes one template file: unknown keys
// are errors so typos in templates surface instead of silently doing
// nothing.
func LoadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	tpl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	if tpl.Name == "" {
		tpl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return tpl, nil
}

// Parse decodes template YAML and validates every window entry.
func Parse(data []byte) (*Template, error) {
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	var tpl Template
	if err := dec.Decode(&tpl); err != nil {
		return nil, err
	}
	for i := range tpl.Windows {
		if err := validateWindow(&tpl.Windows[i]); err != nil {
			return nil, fmt.Errorf("windows[%d]: %w", i, err)
		}
	}
	return &tpl, nil
}

func validateWindow(w *Window) error {
	switch w.Type {
	case "kitty", "app":
	case "":
		return fmt.Errorf("missing type (kitty or app)")
	default:
		return fmt.Errorf("unknown type %q (expected kitty or app)", w.Type)
	}
	if strings.TrimSpace(w.Command) == "" {
		return fmt.Errorf("missing command")
	}
	if w.Desktop < 0 {
		return fmt.Errorf("desktop must be >= 1, got %d", w.Desktop)
	}
	// Defaults per the template contract.
	if w.Monitor == "" {
		w.Monitor = "primary"
	}
	if w.Position.Spec.Absolute == nil && w.Position.Spec.Symbolic == "" {
		w.Position.Spec = geometry.Sym("full")
	}
	if w.Desktop == 0 {
		w.Desktop = 1
	}
	return nil
}

// Info is a template listing entry.
type Info struct {
	Name        string `yaml:"name"           json:"name"`
	Description string `yaml:"description"    json:"description"`
	Path        string `yaml:"path,omitempty" json:"path,omitempty"`
	Err         string `yaml:"error,omitempty" json:"error,omitempty"`
}

// List enumerates templates in the templates directory, sorted by name.
// Unreadable templates are listed with their error rather than dropped.
func List() ([]Info, error) {
	entries, err := os.ReadDir(Dir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read templates dir: %w", err)
	}

	var infos []Info
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yml" && ext != ".yaml") {
			continue
		}
		path := filepath.Join(Dir(), e.Name())
		name := strings.TrimSuffix(e.Name(), ext)
		tpl, err := LoadFile(path)
		if err != nil {
			infos = append(infos, Info{Name: name, Path: path, Err: err.Error()})
			continue
		}
		infos = append(infos, Info{Name: name, Description: tpl.Description, Path: path})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}
