package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sameunit/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node. It runs the
// cmd steps of every script.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		Run:       func(context.Context) (ports.Executor, error) { return NewExecutor(), nil },
	})
}
