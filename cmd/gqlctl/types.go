package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/purush7/graphql-engine/internal/customtypes"
	"github.com/purush7/graphql-engine/internal/metadata"
	"github.com/purush7/graphql-engine/internal/sdl"
	"github.com/purush7/graphql-engine/internal/typewrap"
)

func newTypesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Inspect and edit custom types",
	}
	cmd.AddCommand(
		newTypesListCmd(a),
		newTypesExportCmd(a),
		newTypesImportCmd(a),
		newTypesUnwrapCmd(),
		newTypesWrapCmd(),
	)
	return cmd
}

func newTypesListCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List custom types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := a.loadProject()
			if err != nil {
				return err
			}
			types := proj.Types
			if kind != "" {
				k, err := customtypes.ParseKind(kind)
				if err != nil {
					return err
				}
				types = proj.Catalog().OfKind(k)
			}
			for _, t := range types {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t.Kind(), t.TypeName())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "only list types of this kind (scalar, object, input_object, enum)")
	return cmd
}

func newTypesExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print custom types in the server's grouped JSON form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := a.loadProject()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(customtypes.ToWire(proj.Types))
		},
	}
}

func newTypesImportCmd(a *app) *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "import <file.graphql>",
		Short: "Merge the types declared in an SDL file into actions.yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := sdl.Parse(args[0], string(src))
			if err != nil {
				return err
			}
			if len(doc.Actions) > 0 {
				a.log.Warn().Int("count", len(doc.Actions)).Msg("root operation fields are ignored by import")
			}
			// Neither defaults nor actions.graphql declarations belong in the
			// saved file.
			proj, err := metadata.LoadYAML(a.cfg.MetadataPath(a.projectDir))
			if err != nil {
				return fmt.Errorf("load metadata: %w", err)
			}

			incoming := make([]customtypes.CustomType, 0, len(doc.Types))
			for _, t := range doc.Types {
				incoming = append(incoming, customtypes.WithModifying(t, overwrite))
			}
			res := customtypes.Merge(incoming, proj.Types)
			if res.Conflict != "" {
				return fmt.Errorf("type %q already exists; rerun with --overwrite to replace it", res.Conflict)
			}
			proj.Types = res.Types
			if err := proj.Save(); err != nil {
				return fmt.Errorf("save metadata: %w", err)
			}
			a.log.Info().Int("types", len(doc.Types)).Str("file", args[0]).Msg("imported")
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace existing types of the same name")
	return cmd
}

func newTypesUnwrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unwrap <wrapped-type>",
		Short: "Show the base name and modifier stack of a wrapped type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, stack, err := typewrap.Unwrap(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "base:  %s\n", name)
			fmt.Fprintf(out, "stack: %s\n", stack)
			if c, ok := typewrap.ChoiceOf(stack); ok {
				fmt.Fprintf(out, "wrap:  %d (%s)\n", int(c), c)
			}
			return nil
		},
	}
}

func newTypesWrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wrap <base-type> <choice>",
		Short: "Wrap a base type with one of the six editor modifier choices (0-5)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !typewrap.IsValidName(args[0]) {
				return fmt.Errorf("invalid type name %q", args[0])
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || !typewrap.Choice(n).Valid() {
				return fmt.Errorf("choice must be 0-%d", len(typewrap.Choices())-1)
			}
			fmt.Fprintln(cmd.OutOrStdout(), typewrap.Choice(n).Wrap(args[0]))
			return nil
		},
	}
}
