// Package cmd implements the persondir CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/persondir"
	"github.com/agentstation/persondir/pkg/directory"
	"github.com/agentstation/persondir/pkg/directory/files"
	"github.com/agentstation/persondir/pkg/logging"
	"github.com/agentstation/persondir/pkg/merger"
)

var (
	configFile string

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "persondir",
	Short: "Person attribute directory CLI",
	Long: `Persondir resolves and combines per-user attribute records from
multiple independent sources into a single consistent view.

Sources are YAML files or directories of YAML files. Records that appear
in more than one source are combined by the configured merge strategy.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and runs it.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = version

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.persondir.yaml)")
	rootCmd.PersistentFlags().StringSliceP("source", "s", nil,
		"YAML file or directory to use as a source (repeatable, ordered)")
	rootCmd.PersistentFlags().String("strategy", "multivalued-append",
		"merge strategy for overlapping records (multivalued-append, noncolliding-add, replacing-overwrite)")
	rootCmd.PersistentFlags().String("username-attribute", "username",
		"attribute name used to look up a bare identifier")
	rootCmd.PersistentFlags().Bool("fail-fast", false,
		"abort on the first failing source instead of skipping it")
	rootCmd.PersistentFlags().StringP("output", "o", "yaml",
		"output format (yaml, json)")
	rootCmd.PersistentFlags().String("log-level", "",
		"log level (trace, debug, info, warn, error)")

	for _, flag := range []string{"source", "strategy", "username-attribute", "fail-fast", "output", "log-level"} {
		_ = viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Load .env before viper binds the environment
	_ = godotenv.Load()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".persondir")
		}
	}

	viper.SetEnvPrefix("PERSONDIR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file is not found
	_ = viper.ReadInConfig()
}

// setupCommand configures logging before any subcommand runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	if level := viper.GetString("log-level"); level != "" {
		logging.Configure(&logging.Config{
			Level:  level,
			Format: "auto",
			Output: "stderr",
		})
	} else {
		logging.ConfigureFromEnv()
	}
	return nil
}

// newClient builds a persondir client from the resolved configuration.
func newClient() (persondir.Client, error) {
	paths := viper.GetStringSlice("source")
	if len(paths) == 0 {
		return nil, fmt.Errorf("no sources configured: pass --source or set PERSONDIR_SOURCE")
	}

	sources := make([]directory.Searcher, 0, len(paths))
	for _, path := range paths {
		source, err := files.New(path)
		if err != nil {
			return nil, fmt.Errorf("loading source %s: %w", path, err)
		}
		sources = append(sources, source)
	}

	strategy, err := strategyFromName(viper.GetString("strategy"))
	if err != nil {
		return nil, err
	}

	return persondir.New(
		persondir.WithSources(sources...),
		persondir.WithStrategy(strategy),
		persondir.WithUsernameAttribute(viper.GetString("username-attribute")),
		persondir.WithFailFast(viper.GetBool("fail-fast")),
	)
}

// strategyFromName maps a strategy flag value to an implementation.
func strategyFromName(name string) (merger.Strategy, error) {
	switch merger.StrategyType(strings.ToLower(name)) {
	case merger.StrategyTypeMultivalued, "":
		return merger.NewMultivalued(), nil
	case merger.StrategyTypeNoncolliding:
		return merger.NewNoncolliding(), nil
	case merger.StrategyTypeReplacing:
		return merger.NewReplacing(), nil
	default:
		return nil, fmt.Errorf("unknown merge strategy %q", name)
	}
}
