package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hellodash/hellodash/config"
	"github.com/hellodash/hellodash/credential"
	"github.com/hellodash/hellodash/session"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	sess     *session.Session
	resolver *credential.Resolver
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hellodash",
	Short: "A multi-page dashboard for metrics, data exploration, and API integrations",
	Long: `hellodash is a CLI with five pages: a sample-metrics dashboard, a CSV
explorer, a compound-interest calculator, TMDB movie search, and an
OpenAI-backed chat. API credentials come from the environment or an
interactive prompt; they are never written to disk.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information shown by --version.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(interestCmd)
	rootCmd.AddCommand(moviesCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration, logger, and session state
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	sess = session.NewWithTTL(time.Duration(cfg.Cache.TTLSeconds) * time.Second)
	resolver = credential.NewResolver()

	logger.Debug().Str("session_id", sess.ID).Msg("Session started")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
