package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/kurmi-workspace/internal/common"
	"github.com/Veraticus/kurmi-workspace/internal/config"
	"github.com/Veraticus/kurmi-workspace/internal/model"
	"github.com/Veraticus/kurmi-workspace/internal/storage"
	"github.com/spf13/viper"
)

// loadSettings resolves the configuration from the global viper instance.
func loadSettings() (config.Settings, error) {
	config.SetDefaults(viper.GetViper())
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Settings{}, common.NewUserError("Configuration is invalid", err)
	}
	return settings, nil
}

// openLedger opens the run ledger, or a no-op ledger when it is disabled.
func openLedger(ctx context.Context, settings config.Settings) (storage.Ledger, error) {
	if !settings.LedgerEnabled {
		return storage.NopLedger{}, nil
	}

	store, err := storage.Open(ctx, settings.LedgerPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open run ledger %s: %w", settings.LedgerPath, err)
	}
	return store, nil
}

// recordRun writes run to the ledger. Ledger problems are logged and never
// fail the operation that produced the run.
func recordRun(ctx context.Context, settings config.Settings, run *model.Run) {
	run.FinishedAt = time.Now()

	ledger, err := openLedger(ctx, settings)
	if err != nil {
		slog.Warn("Run ledger unavailable", "error", err)
		return
	}
	defer func() {
		if err := ledger.Close(); err != nil {
			slog.Warn("Failed to close run ledger", "error", err)
		}
	}()

	// Record even if the operation was interrupted.
	if err := ledger.RecordRun(context.WithoutCancel(ctx), run); err != nil {
		slog.Warn("Failed to record run", "kind", run.Kind, "error", err)
		return
	}
	slog.Debug("Recorded run", "id", run.ID, "kind", run.Kind, "total", run.Total)
}

// retryOptions builds the vendor removal retry policy from settings.
func retryOptions(settings config.Settings) common.RetryOptions {
	return common.RetryOptions{
		MaxAttempts:  settings.RemoveAttempts,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     time.Second,
		Multiplier:   2,
	}
}
