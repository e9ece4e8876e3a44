package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bundesland.at/internal/app"
	"bundesland.at/internal/appconf"
	"bundesland.at/internal/logging"
	"bundesland.at/internal/site"
	"bundesland.at/internal/statedata"
)

const defaultExportDir = "public"

func newRootCommand() *cobra.Command {
	cfg := appconf.Default()
	var envFlag string

	serveRun := func(cmd *cobra.Command, args []string) error {
		cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
		application, err := newApplication(cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return serve(cmd.Context(), application)
	}

	rootCmd := &cobra.Command{
		Use:          "bundesland",
		Short:        "Informational website about Austria and its federal states",
		Long:         `bundesland serves one page per Austrian federal state plus a country page at the root. Without a subcommand it starts the web server.`,
		SilenceUsage: true,
		RunE:         serveRun,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFlag, "env", cfg.Env.String(), "Environment (development|test|production)")
	flags.StringVar(&cfg.DataPath, "data", "", "YAML state table replacing the built-in data")
	flags.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Refuse to start when the state data has problems")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Serve the /debug/table page")

	serveFlags := func(cmd *cobra.Command) {
		cmd.Flags().IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
		cmd.Flags().IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second per client, 0 disables limiting")
	}
	serveFlags(rootCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE:  serveRun,
	}
	serveFlags(serveCmd)

	var outDir string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write every page as a static HTML file",
		Long:  `The export command renders the country page, every state page and the 404 page into the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
			application, err := newApplication(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			s, err := site.New(application)
			if err != nil {
				return err
			}
			defer logging.SafeCloseWithLogging(s, application.Logger, "site")

			if _, err := s.Export(cmd.Context(), outDir); err != nil {
				logging.LogError(application.Logger, "export failed", err, slog.String("dir", outDir))
				return fmt.Errorf("exporting site: %w", err)
			}
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&outDir, "out", "o", defaultExportDir, "Output directory")

	rootCmd.AddCommand(serveCmd, exportCmd)
	return rootCmd
}

// newApplication builds the logger and loads the state table. Configuration
// problems are logged; in strict mode they abort start-up.
func newApplication(cfg appconf.Config, logOutput io.Writer) (*app.Application, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewStructuredLogger(logOutput, level)

	table, problems, err := statedata.Load(statedata.LoadOptions{
		Path:   cfg.DataPath,
		Lookup: os.LookupEnv,
		Strict: cfg.Strict,
	})
	for _, p := range problems {
		logging.LogWarning(logger, "state configuration problem",
			slog.String("slug", p.Slug),
			slog.String("problem", p.Message),
			slog.String("component", "statedata"))
	}
	if err != nil {
		logging.LogError(logger, "failed to load state data", err, slog.String("component", "statedata"))
		return nil, fmt.Errorf("loading state data: %w", err)
	}

	source := cfg.DataPath
	if source == "" {
		source = "built-in"
	}
	logging.LogOperation(logger, "state_table_loaded",
		slog.String("source", source),
		slog.Int("records", table.Len()),
		slog.Int("problems", len(problems)),
		slog.String("component", "statedata"))

	return &app.Application{
		Config: cfg,
		Logger: logger,
		States: table,
	}, nil
}
