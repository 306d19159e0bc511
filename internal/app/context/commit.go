package appctx

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/replicator/internal/domain"
	"github.com/jsamuelsen11/replicator/internal/platform/logging"
)

// Commit executes the staged steps in insertion order and stops at the first
// failure, which is returned unchanged. Later steps are never started.
//
// With rollback enabled, the steps completed before the failure are rolled
// back in reverse order on a context that ignores the run's cancellation.
// Rollback errors are logged and never replace the returned error.
//
// After Commit returns the RunContext is marked committed. Returns
// ErrAlreadyCommitted if called more than once.
func (rc *RunContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	// Once committed, AddAction cannot append, so the snapshot is stable.
	items := rc.items
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, item := range items {
		logger.DebugContext(ctx, "executing step",
			slog.String("operation", "RunContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", item.Description()),
		)

		err := item.Execute(ctx)
		if rc.observer != nil {
			rc.observer(ctx, item, err)
		}
		if err == nil {
			continue
		}

		logger.ErrorContext(ctx, "step failed",
			slog.String("operation", item.Name()),
			slog.Int("failed_step", i+1),
			slog.String("action", item.Description()),
			slog.Any("error", err),
		)
		if rc.rollback {
			rollbackItems(context.WithoutCancel(ctx), items[:i], logger)
		}
		return err
	}

	return nil
}

// rollbackItems rolls back items in reverse order. Failures are logged and
// do not stop the remaining rollbacks.
func rollbackItems(ctx context.Context, items []domain.Action, logger *slog.Logger) {
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]

		logger.InfoContext(ctx, "rolling back step",
			slog.String("operation", "RunContext.Commit"),
			slog.Int("step", i+1),
			slog.String("action", item.Description()),
		)

		if err := item.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", item.Name()),
				slog.Int("step", i+1),
				slog.String("action", item.Description()),
				slog.Any("error", err),
			)
		}
	}
}
