package observability

import (
	"context"
	"log/slog"
)

// LogHooks returns lifecycle hooks writing events to logger. Successes are
// logged at debug level, failures as warnings.
func LogHooks(logger *slog.Logger) LifecycleHooks {
	return LifecycleHooks{
		OnValidateStart: func(ctx context.Context, e *ValidationEvent) {
			logger.DebugContext(ctx, "validation started",
				"direction", e.Direction,
				"version", e.Version,
				"source", e.Source,
			)
		},
		OnValidateDone: func(ctx context.Context, e *ValidationEvent) {
			if e.Err != nil {
				logger.WarnContext(ctx, "validation failed",
					"direction", e.Direction,
					"version", e.Version,
					"kind", e.Kind,
					"path", e.Path,
					"err", e.Err,
				)
				return
			}
			logger.DebugContext(ctx, "validation finished",
				"direction", e.Direction,
				"version", e.Version,
				"duration", e.Duration,
			)
		},
	}
}
