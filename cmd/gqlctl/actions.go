package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/purush7/graphql-engine/internal/codegen"
)

func newActionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Work with actions declared in the metadata directory",
	}
	cmd.AddCommand(newActionsCodegenCmd(a), newActionsTypesCmd(a))
	return cmd
}

func newActionsCodegenCmd(a *app) *cobra.Command {
	var (
		outputDir  string
		watch      bool
		deriveFrom string
	)
	cmd := &cobra.Command{
		Use:   "codegen [action-name...]",
		Short: "Generate the SDL and codegen payload of actions",
		Long:  "Generate, for every named action (all actions when none are named), the complete SDL it needs and a payload.json for a framework code generator.",
		Example: `  # Generate code for all actions
  gqlctl actions codegen

  # Generate code for two actions into ./handlers and regenerate on change
  gqlctl actions codegen login createUser --output-dir handlers --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := &codegen.Generator{
				Config:     a.cfg,
				ProjectDir: a.projectDir,
				OutputDir:  outputDir,
				Log:        a.log,
			}
			if deriveFrom != "" {
				src, err := os.ReadFile(deriveFrom)
				if err != nil {
					return err
				}
				if g.Derive, err = codegen.DeriveFrom(deriveFrom, string(src)); err != nil {
					return err
				}
			}
			if watch {
				return g.Watch(cmd.Context(), args)
			}
			results, err := g.Run(cmd.Context(), args)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Action, r.Dir)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for generated files (default from config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "regenerate whenever the actions metadata changes")
	cmd.Flags().StringVar(&deriveFrom, "derive-from", "", "file with the GraphQL operation the action was derived from")
	return cmd
}

func newActionsTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types <action-name>",
		Short: "Print the complete SDL of an action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := a.loadProject()
			if err != nil {
				return err
			}
			def, ok := proj.Action(args[0])
			if !ok {
				return fmt.Errorf("action %q not found", args[0])
			}
			complete, res := codegen.CompleteSDL(def, proj.Catalog())
			for _, name := range res.Unresolved {
				a.log.Warn().Str("action", def.Name).Str("type", name).Msg("referenced type is not declared")
			}
			fmt.Fprint(cmd.OutOrStdout(), complete)
			return nil
		},
	}
}
