package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sameunit/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/sameunit/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/sameunit/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/sameunit/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/sameunit/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/sameunit/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/sameunit/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/sameunit/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/sameunit/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ScannerNodeID,
			config.NodeID,
			shell.NodeID,
			cas.NodeID,
			logger.NodeID,
			linear.NodeID,
			telemetry.TracerNodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	scanner, err := graft.Dep[ports.ScriptScanner](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ScriptLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ResultStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[*telemetry.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[watcher.Factory](ctx)
	if err != nil {
		return nil, err
	}

	return New(scanner, loader, executor, store, log, renderer, tracer, newWatcher), nil
}
