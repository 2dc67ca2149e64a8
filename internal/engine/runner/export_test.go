package runner

import (
	"context"

	"go.trai.ch/sameunit/internal/core/ports"
)

// RunTarget exposes the per-target protocol for tests.
func RunTarget(r *ScriptRunner, ctx context.Context, name string, n ports.Notifier) error {
	return r.runTarget(ctx, name, n)
}
