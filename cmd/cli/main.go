package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/viiteer2708/mega-energia-sub001/config"
	"github.com/viiteer2708/mega-energia-sub001/internal/baseline"
	"github.com/viiteer2708/mega-energia-sub001/internal/database"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  *zerolog.Logger
)

// errScheduleRejected makes the process exit non-zero after the report is printed
var errScheduleRejected = errors.New("schedule rejected")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "commission-service",
	Short: "Commission schedule tooling",
	Long: `A CLI tool for parsing and validating commission-rate schedule workbooks
before they are imported, exporting the stored schedule of a company, and
generating empty templates for operators to fill in.`,
	PersistentPreRunE: persistentPreRun,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Config is optional for local commands
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
}

func persistentPreRun(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}
	logger = initLogger()
	log.Logger = *logger
	return nil
}

// initLogger logs to stderr so JSON reports on stdout stay machine readable
func initLogger() *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.WarnLevel
	if cfg != nil && cfg.Logging.Level != "" {
		if parsedLevel, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil && parsedLevel > zerolog.InfoLevel {
			level = parsedLevel
		}
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	var output io.Writer
	if cfg != nil && cfg.Logging.Format == "json" {
		output = os.Stderr
	} else {
		noColor := false
		if cfg != nil {
			noColor = cfg.Logging.NoColor
		}
		output = zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}
	}

	l := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &l
}

// openBaseline returns the YAML fixture when given, the configured database
// otherwise, and an empty store when neither is available
func openBaseline(ctx context.Context, fixture string) (baseline.Store, func(), error) {
	noop := func() {}

	if fixture != "" {
		store, err := baseline.LoadYAMLFile(fixture)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	}

	if cfg != nil && cfg.Database.URL != "" {
		if err := database.Connect(ctx, cfg.Database.URL, database.PoolOptions{
			MaxConns:        cfg.Database.MaxConnections,
			MinConns:        cfg.Database.MinConnections,
			ConnMaxLifetime: cfg.Database.MaxConnLifetime,
			ConnMaxIdleTime: cfg.Database.MaxConnIdleTime,
		}); err != nil {
			return nil, noop, fmt.Errorf("failed to connect to database: %w", err)
		}
		logger.Info().Msg("Database connected")
		return baseline.NewPostgresStore(database.Pool()), database.Close, nil
	}

	logger.Warn().Msg("No baseline configured; every product and rate counts as new")
	return baseline.NewMemoryStore(nil, nil, nil), noop, nil
}

func main() {
	if err := Execute(); err != nil {
		if !errors.Is(err, errScheduleRejected) {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: "+err.Error()))
		}
		os.Exit(1)
	}
}
