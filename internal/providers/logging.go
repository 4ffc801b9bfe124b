package providers

import (
	"context"
	"log/slog"

	"livescore-service/internal/logging"
)

// logWithAdapter emits a log entry if a logger is available and always
// includes the adapter name.
func logWithAdapter(ctx context.Context, logger *slog.Logger, level slog.Level, adapter string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldAdapter, adapter))
	logger.Log(ctx, level, msg, args...)
}
