package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/purush7/graphql-engine/internal/config"
	"github.com/purush7/graphql-engine/internal/eventbus"
	"github.com/purush7/graphql-engine/internal/logging"
	"github.com/purush7/graphql-engine/internal/metadata"
	"github.com/purush7/graphql-engine/internal/otel"
	"github.com/purush7/graphql-engine/internal/runid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// app is the state shared by every command once the project is loaded.
type app struct {
	projectDir string
	logLevel   string
	logFormat  string

	cfg      *config.Config
	log      zerolog.Logger
	shutdown func(context.Context) error
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	root := newRootCmd(a, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if a.shutdown != nil {
		if serr := a.shutdown(context.Background()); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

func newRootCmd(a *app, logOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "gqlctl",
		Short:         "Manage GraphQL custom types and actions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd, logOut)
		},
	}
	f := root.PersistentFlags()
	f.StringVar(&a.projectDir, "project", ".", "project directory containing config.yaml")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	f.StringVar(&a.logFormat, "log-format", "", "log format: json or console (overrides config)")

	root.AddCommand(newActionsCmd(a), newTypesCmd(a))
	return root
}

func (a *app) prepare(cmd *cobra.Command, logOut io.Writer) error {
	cfg, err := config.Load(a.projectDir)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	a.cfg = cfg
	a.log = logging.New(logOut, cfg.Logging.Level, cfg.Logging.Format)

	ctx, id := runid.NewContext(cmd.Context())
	cmd.SetContext(ctx)
	a.log = a.log.With().Str("run", id).Logger()

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(cfg.Otel.Endpoint, cfg.Otel.Service)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	a.shutdown = shutdown
	return nil
}

func (a *app) loadProject() (*metadata.Project, error) {
	proj, err := metadata.Load(a.cfg.MetadataPath(a.projectDir))
	if err != nil {
		return nil, fmt.Errorf("load metadata: %w", err)
	}
	proj.ApplyDefaults(a.cfg.Actions.Kind, a.cfg.Actions.HandlerWebhookBaseURL)
	return proj, nil
}
