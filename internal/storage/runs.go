package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Veraticus/kurmi-workspace/internal/model"
	"github.com/google/uuid"
)

// DefaultHistoryLimit bounds ListRuns when no limit is given.
const DefaultHistoryLimit = 20

// RecordRun writes run and its per-category counts in one transaction.
// An empty run.ID is filled in with a new UUID.
func (s *SQLiteStorage) RecordRun(ctx context.Context, run *model.Run) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRun(run); err != nil {
		return err
	}
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, kind, status, source, root, total, failures, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, string(run.Kind), string(run.Status), run.Source, run.Root,
		run.Total, run.Failures, run.StartedAt.UTC(), run.FinishedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO run_counts (run_id, category, count) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare count insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, category := range sortedCategories(run.Counts) {
		if _, err := stmt.ExecContext(ctx, run.ID, category, run.Counts[category]); err != nil {
			return fmt.Errorf("failed to insert count for %s: %w", category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// ListRuns returns up to limit runs, most recent first, with their counts.
// A limit of zero or less uses DefaultHistoryLimit.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]model.Run, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, status, source, root, total, failures, started_at, finished_at
		FROM runs
		ORDER BY started_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var runs []model.Run
	index := make(map[string]int)
	for rows.Next() {
		var (
			run        model.Run
			kind       string
			status     string
			startedAt  time.Time
			finishedAt time.Time
		)
		if err := rows.Scan(&run.ID, &kind, &status, &run.Source, &run.Root,
			&run.Total, &run.Failures, &startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Kind = model.RunKind(kind)
		run.Status = model.RunStatus(status)
		run.StartedAt = startedAt
		run.FinishedAt = finishedAt
		run.Counts = make(map[string]int)

		index[run.ID] = len(runs)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	if err := s.loadCounts(ctx, runs, index); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetRun returns a single run by ID.
func (s *SQLiteStorage) GetRun(ctx context.Context, id string) (*model.Run, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var (
		run    model.Run
		kind   string
		status string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, kind, status, source, root, total, failures, started_at, finished_at
		FROM runs WHERE id = ?`, id).
		Scan(&run.ID, &kind, &status, &run.Source, &run.Root,
			&run.Total, &run.Failures, &run.StartedAt, &run.FinishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	run.Kind = model.RunKind(kind)
	run.Status = model.RunStatus(status)
	run.Counts = make(map[string]int)

	runs := []model.Run{run}
	if err := s.loadCounts(ctx, runs, map[string]int{run.ID: 0}); err != nil {
		return nil, err
	}
	return &runs[0], nil
}

func (s *SQLiteStorage) loadCounts(ctx context.Context, runs []model.Run, index map[string]int) error {
	if len(runs) == 0 {
		return nil
	}

	ids := make([]any, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")

	//nolint:gosec // placeholders are only question marks
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, category, count FROM run_counts WHERE run_id IN (`+placeholders+`)`, ids...)
	if err != nil {
		return fmt.Errorf("failed to query run counts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var (
			runID    string
			category string
			count    int
		)
		if err := rows.Scan(&runID, &category, &count); err != nil {
			return fmt.Errorf("failed to scan run count: %w", err)
		}
		if i, ok := index[runID]; ok {
			runs[i].Counts[category] = count
		}
	}
	return rows.Err()
}

func sortedCategories(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
