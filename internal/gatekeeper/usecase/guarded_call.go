package usecase

import (
	"context"
	"log/slog"
)

// GuardedCall validates operation with guard and, only when it is an allowed read,
// invokes fn with args and returns its result unchanged. When validation fails fn is
// never invoked and the zero T is returned with the violation.
//
// The guard adds no timeout or cancellation of its own; ctx is passed through to fn.
func GuardedCall[A, T any](
	ctx context.Context,
	guard Guard,
	logger *slog.Logger,
	operation string,
	fn func(context.Context, A) (T, error),
	args A,
) (T, error) {
	if err := guard.ValidateOperation(ctx, operation); err != nil {
		var zero T
		return zero, err
	}

	if logger != nil {
		logger.InfoContext(ctx, "executing read-only operation", slog.String("operation", operation))
	}

	return fn(ctx, args)
}
