package cmd

import (
	"fmt"
	"os"

	"github.com/msto63/musterwerk/internal/console"
	"github.com/msto63/musterwerk/internal/demo"
	"github.com/msto63/musterwerk/internal/menu"
	"github.com/msto63/musterwerk/pkg/core/config"
	"github.com/msto63/musterwerk/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "muster",
	Short: "musterwerk - Design Pattern Tutor",
	Long: `musterwerk is an interactive console tutor for classic design patterns.

Creational:
  Singleton, Factory, Abstract Factory, Builder, Prototype, Object Pool

Behavioral:
  Chain of Responsibility, Command, Interpreter

Without a subcommand the numbered menu is started.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd, false)
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError("muster", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// session is everything a command needs to run demonstrations
type session struct {
	cfg      *config.Config
	logger   *logging.Logger
	env      *demo.Env
	registry *menu.Registry
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logCfg := logging.DefaultLoggerConfig(cfg.General.Name)
	logCfg.Level = cfg.General.LogLevel
	logCfg.Format = cfg.General.LogFormat
	logCfg.Output = cmd.ErrOrStderr()

	logger := logging.NewLogger(logCfg)
	if verbose {
		logger.WithLevel(logging.LevelDebug)
	}

	env := demo.NewEnv(console.New(cmd.InOrStdin(), cmd.OutOrStdout()))
	env.Logger = logger.Named("demo")
	env.Pool.Capacity = cfg.Pool.Capacity

	return &session{
		cfg:      cfg,
		logger:   logger,
		env:      env,
		registry: demo.NewRegistry(env),
	}, nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
