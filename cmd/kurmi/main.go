package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Veraticus/kurmi-workspace/internal/cli"
	"github.com/Veraticus/kurmi-workspace/internal/common"
	"github.com/Veraticus/kurmi-workspace/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	version  = "dev"
	closeLog = func() {}
	rootCmd  = &cobra.Command{
		Use:   "kurmi",
		Short: "🗂️  Kurmi workspace export tools",
		Long: `kurmi: unpack Kurmi workspace exports into per-category trees and
prune the vendor directories you do not need.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/kurmi/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "also append logs to this file")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))

	// Add commands
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(vendorsCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel() // Always cleanup
	closeLog()

	os.Exit(exitCode(err))
}

// exitCode reports err to the operator and maps it to a process exit status.
// Declining a prompt or selecting nothing is a normal exit.
func exitCode(err error) int {
	var userErr *common.UserError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, cli.FormatWarning("Interrupted."))
		return 130
	case errors.Is(err, common.ErrCancelled):
		fmt.Fprintln(os.Stderr, cli.FormatInfo("Cancelled. No changes were made."))
		return 0
	case errors.Is(err, common.ErrNothingToDo):
		fmt.Fprintln(os.Stderr, cli.FormatInfo("Nothing selected. Exiting."))
		return 0
	case errors.As(err, &userErr):
		fmt.Fprintln(os.Stderr, cli.FormatError(userErr.UserMessage))
		slog.Debug("Command failed", "error", err)
		return 1
	default:
		fmt.Fprintln(os.Stderr, cli.FormatError(err.Error()))
		return 1
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(fmt.Sprintf("%s/.config/kurmi", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("KURMI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Set up logging
	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString(config.KeyLogLevel))
	if err != nil {
		return err
	}

	closer, err := common.SetupLogger(level,
		viper.GetString(config.KeyLogFormat),
		config.ExpandPath(viper.GetString(config.KeyLogFile)))
	if err != nil {
		return err
	}
	closeLog = closer

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kurmi %s\n", version)
		},
	}
}
