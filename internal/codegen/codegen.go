// Package codegen writes, for each action, the complete SDL it needs and the
// payload an external code generator consumes.
package codegen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/rs/zerolog"

	"github.com/purush7/graphql-engine/internal/actions"
	"github.com/purush7/graphql-engine/internal/config"
	"github.com/purush7/graphql-engine/internal/customtypes"
	"github.com/purush7/graphql-engine/internal/eventbus"
	"github.com/purush7/graphql-engine/internal/events"
	"github.com/purush7/graphql-engine/internal/language"
	"github.com/purush7/graphql-engine/internal/metadata"
	"github.com/purush7/graphql-engine/internal/sdl"
	"github.com/purush7/graphql-engine/internal/typewrap"
)

const PayloadFile = "payload.json"

// Payload is the request body handed to a framework code generator.
type Payload struct {
	ActionName    string               `json:"action_name"`
	SDL           PayloadSDL           `json:"sdl"`
	Derive        *Derive              `json:"derive"`
	ActionsConfig PayloadActionsConfig `json:"actions_config"`
}

type PayloadActionsConfig struct {
	Codegen config.CodegenConfig `json:"codegen"`
}

type PayloadSDL struct {
	Complete string `json:"complete"`
}

// Derive carries the GraphQL operation an action was derived from. The
// framework generator uses it to scaffold a handler that forwards to the
// operation.
type Derive struct {
	Operation string `json:"operation"`
}

// DeriveFrom checks that src holds exactly one named or anonymous operation
// and returns it as a Derive.
func DeriveFrom(name, src string) (*Derive, error) {
	doc, err := language.ParseQuery(name, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if n := len(doc.Operations); n != 1 {
		return nil, fmt.Errorf("%s must contain exactly one operation, found %d", name, n)
	}
	return &Derive{Operation: src}, nil
}

// Generator generates code for the actions of one project.
type Generator struct {
	Config     *config.Config
	ProjectDir string
	OutputDir  string
	Log        zerolog.Logger
	// Derive, when set, is attached to the payload of the single action
	// being generated.
	Derive *Derive
}

// Result describes one generated action.
type Result struct {
	Action     string
	Dir        string
	Files      []string
	Unresolved []string
}

// Run generates code for the named actions, or for every action when names
// is empty. An unknown action name fails the run before anything is written.
func (g *Generator) Run(ctx context.Context, names []string) (results []Result, err error) {
	start := time.Now()
	eventbus.Publish(ctx, events.CodegenStart{Actions: names})
	defer func() {
		files := 0
		for _, r := range results {
			files += len(r.Files)
		}
		eventbus.Publish(ctx, events.CodegenFinish{
			Actions:  names,
			Files:    files,
			Err:      err,
			Duration: time.Since(start),
		})
	}()

	proj, err := metadata.Load(g.Config.MetadataPath(g.ProjectDir))
	if err != nil {
		return nil, fmt.Errorf("load metadata: %w", err)
	}
	proj.ApplyDefaults(g.Config.Actions.Kind, g.Config.Actions.HandlerWebhookBaseURL)

	if len(names) == 0 {
		names = proj.ActionNames()
	}
	defs := make([]actions.Definition, 0, len(names))
	for _, name := range names {
		def, ok := proj.Action(name)
		if !ok {
			return nil, fmt.Errorf("action %q not found in %s", name, metadata.ActionsFile)
		}
		if err := checkDefinition(def); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	if g.Derive != nil && len(defs) != 1 {
		return nil, fmt.Errorf("a derived operation applies to exactly one action, got %d", len(defs))
	}
	if len(defs) == 0 {
		g.Log.Warn().Msg("no actions to generate")
		return nil, nil
	}

	catalog := proj.Catalog()
	for _, def := range defs {
		r, err := g.generate(ctx, def, catalog)
		if err != nil {
			return results, fmt.Errorf("codegen %s: %w", def.Name, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// CompleteSDL resolves def against catalog and renders its complete SDL.
func CompleteSDL(def actions.Definition, catalog *customtypes.Catalog) (string, actions.Resolution) {
	res := actions.Resolve(def, catalog)
	return sdl.RenderComplete(def, res.Types), res
}

func (g *Generator) generate(ctx context.Context, def actions.Definition, catalog *customtypes.Catalog) (Result, error) {
	complete, res := CompleteSDL(def, catalog)

	typeNames := make([]string, 0, len(res.Types))
	for _, t := range res.Types {
		typeNames = append(typeNames, t.TypeName())
	}
	eventbus.Publish(ctx, events.ActionResolved{
		Action:     def.Name,
		Types:      typeNames,
		Unresolved: res.Unresolved,
		Malformed:  res.Malformed,
	})
	log := g.Log.With().Str("action", def.Name).Logger()
	for _, name := range res.Unresolved {
		log.Warn().Str("type", name).Msg("referenced type is not declared")
	}
	for _, wrapped := range res.Malformed {
		log.Warn().Str("type", wrapped).Msg("malformed type reference skipped")
	}

	dir := filepath.Join(g.outputDir(), strcase.ToKebab(def.Name))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, err
	}

	payload, err := json.MarshalIndent(Payload{
		ActionName:    def.Name,
		SDL:           PayloadSDL{Complete: complete},
		Derive:        g.Derive,
		ActionsConfig: PayloadActionsConfig{Codegen: g.Config.Actions.Codegen},
	}, "", "  ")
	if err != nil {
		return Result{}, err
	}

	r := Result{Action: def.Name, Dir: dir, Unresolved: res.Unresolved}
	for _, f := range []struct {
		name string
		data []byte
	}{
		{def.Name + ".graphql", []byte(complete)},
		{PayloadFile, payload},
	} {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return r, err
		}
		eventbus.Publish(ctx, events.FileWritten{Action: def.Name, Path: path, Bytes: len(f.data)})
		r.Files = append(r.Files, path)
	}
	log.Info().Strs("types", typeNames).Str("dir", dir).Msg("generated")
	return r, nil
}

// checkDefinition rejects actions whose name cannot be used as a file name
// or whose signature would render as invalid SDL.
func checkDefinition(def actions.Definition) error {
	if !typewrap.IsValidName(def.Name) {
		return fmt.Errorf("action name %q is not a valid GraphQL name", def.Name)
	}
	if def.OutputType == "" {
		return fmt.Errorf("action %q has no output type", def.Name)
	}
	if _, err := typewrap.Base(def.OutputType); err != nil {
		return fmt.Errorf("action %q: %w", def.Name, err)
	}
	return nil
}

func (g *Generator) outputDir() string {
	out := g.OutputDir
	if out == "" {
		out = g.Config.Actions.Codegen.OutputDir
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(g.ProjectDir, out)
}
