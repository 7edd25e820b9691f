package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mcoot/hangbot/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	// A missing .env file is fine
	_ = godotenv.Load()
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "hangbot",
		Short: "Automatic hangman player",
		Long: `hangbot trains a letter-frequency model on a word list and uses it to
play hangman.

It can play batches of games against secrets drawn from the word list, suggest
the next letter for a pattern, and show what the model learned.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cfg.Output {
			case "text", "json":
			default:
				return fmt.Errorf("unknown output format %q: must be text or json", cfg.Output)
			}

			logger := cfg.Logger(cmd.ErrOrStderr())
			a, err := factory.New(cmd.Context(), cfg.FactoryConfig(logger))
			if err != nil {
				return err
			}
			app = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.WordsPath, "words", cfg.WordsPath, "Word list to train on (env: HANGBOT_WORDS)")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: memory, redis (env: HANGBOT_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: REDIS_URL)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for repeatable runs, 0 for random (env: HANGBOT_SEED)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Debug logging to stderr")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newGuessCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

// Execute runs the root command, cancelling it on SIGINT or SIGTERM
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
