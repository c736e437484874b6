// Package metadata reads and writes the actions metadata of a project
// directory: actions.yaml and, when present, actions.graphql.
package metadata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/purush7/graphql-engine/internal/actions"
	"github.com/purush7/graphql-engine/internal/customtypes"
	"github.com/purush7/graphql-engine/internal/sdl"
)

const (
	ActionsFile = "actions.yaml"
	SDLFile     = "actions.graphql"
)

// File is the on-disk layout of actions.yaml.
type File struct {
	Actions     []Entry          `yaml:"actions"`
	CustomTypes customtypes.Wire `yaml:"custom_types"`
}

type Entry struct {
	Name       string             `yaml:"name"`
	Definition actions.Definition `yaml:"definition"`
	Comment    string             `yaml:"comment,omitempty"`
}

// Project is the loaded actions metadata.
type Project struct {
	Dir     string
	Actions []actions.Definition
	Types   []customtypes.CustomType

	comments map[string]string
}

// Load reads dir. A missing actions.yaml yields an empty project. Types and
// signatures declared in actions.graphql replace those of the same name in
// actions.yaml; kind and handler always come from actions.yaml.
func Load(dir string) (*Project, error) {
	p, err := LoadYAML(dir)
	if err != nil {
		return nil, err
	}

	src, err := os.ReadFile(filepath.Join(dir, SDLFile))
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", SDLFile, err)
	}
	if strings.TrimSpace(string(src)) == "" {
		return p, nil
	}
	doc, err := sdl.Parse(SDLFile, string(src))
	if err != nil {
		return nil, err
	}
	p.mergeDocument(doc)
	return p, nil
}

// LoadYAML reads actions.yaml only. Use it when the project is going to be
// saved, so that nothing declared in actions.graphql is copied into
// actions.yaml.
func LoadYAML(dir string) (*Project, error) {
	p := &Project{Dir: dir, comments: make(map[string]string)}

	var f File
	data, err := os.ReadFile(filepath.Join(dir, ActionsFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", ActionsFile, err)
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", ActionsFile, err)
		}
	}
	for _, e := range f.Actions {
		def := e.Definition
		def.Name = e.Name
		p.Actions = append(p.Actions, def)
		if e.Comment != "" {
			p.comments[e.Name] = e.Comment
		}
	}
	p.Types = customtypes.FromWire(f.CustomTypes)
	return p, nil
}

func (p *Project) mergeDocument(doc *sdl.Document) {
	modifying := make([]customtypes.CustomType, 0, len(doc.Types))
	for _, t := range doc.Types {
		modifying = append(modifying, customtypes.WithModifying(t, true))
	}
	merged := customtypes.Merge(modifying, p.Types).Types
	p.Types = make([]customtypes.CustomType, 0, len(merged))
	for _, t := range merged {
		p.Types = append(p.Types, customtypes.WithModifying(t, false))
	}

	for _, sig := range doc.Actions {
		i := p.index(sig.Name)
		if i < 0 {
			p.Actions = append(p.Actions, sig)
			continue
		}
		def := &p.Actions[i]
		def.Type = sig.Type
		def.Arguments = sig.Arguments
		def.OutputType = sig.OutputType
	}
}

// Save writes actions.yaml. actions.graphql is never written, so a project
// obtained from Load also persists what it merged from actions.graphql;
// save projects obtained from LoadYAML.
func (p *Project) Save() error {
	f := File{
		Actions:     make([]Entry, 0, len(p.Actions)),
		CustomTypes: customtypes.ToWire(p.Types),
	}
	for _, def := range p.Actions {
		def.Arguments = customtypes.FilterIncomplete(def.Arguments, customtypes.AttrName, customtypes.AttrType)
		f.Actions = append(f.Actions, Entry{Name: def.Name, Definition: def, Comment: p.comments[def.Name]})
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode %s: %w", ActionsFile, err)
	}
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(p.Dir, ActionsFile), data, 0o644)
}

// Action finds an action by name.
func (p *Project) Action(name string) (actions.Definition, bool) {
	if i := p.index(name); i >= 0 {
		return p.Actions[i], true
	}
	return actions.Definition{}, false
}

// ActionNames returns every action name in declaration order.
func (p *Project) ActionNames() []string {
	names := make([]string, 0, len(p.Actions))
	for _, def := range p.Actions {
		names = append(names, def.Name)
	}
	return names
}

// Catalog indexes the project's custom types.
func (p *Project) Catalog() *customtypes.Catalog { return customtypes.NewCatalog(p.Types) }

// ApplyDefaults fills the kind and handler of actions that lack them. The
// default handler is baseURL joined with the action name.
func (p *Project) ApplyDefaults(kind actions.Kind, baseURL string) {
	for i := range p.Actions {
		def := &p.Actions[i]
		if def.Kind == "" {
			def.Kind = kind
		}
		if def.Handler == "" && baseURL != "" {
			def.Handler = strings.TrimRight(baseURL, "/") + "/" + def.Name
		}
		if def.Type == "" {
			def.Type = actions.Mutation
		}
	}
}

func (p *Project) index(name string) int {
	for i, def := range p.Actions {
		if def.Name == name {
			return i
		}
	}
	return -1
}
