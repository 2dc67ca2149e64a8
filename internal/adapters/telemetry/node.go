package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sameunit/internal/adapters/linear"
	"go.trai.ch/sameunit/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Tracer Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[*Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{linear.NodeID},
		Run: func(ctx context.Context) (*Tracer, error) {
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracer(NewProvider(renderer), renderer), nil
		},
	})
}
