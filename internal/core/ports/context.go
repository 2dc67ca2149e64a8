// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/sameunit/internal/core/domain"
)

//go:generate mockgen -source=context.go -destination=mocks/mock_context.go -package=mocks

// Observer receives the build events of an execution context.
type Observer interface {
	OnBuildEvent(event domain.BuildEvent)
}

// ExecutionContext is one isolated, stateful instance of a loaded script.
// A context is owned by a single runner and never used concurrently.
type ExecutionContext interface {
	// Name returns the script name.
	Name() string
	// File returns the path of the script file.
	File() string
	// BaseDir returns the directory relative paths in the script resolve against.
	BaseDir() string
	// Targets returns all target names in declaration order.
	Targets() []string

	// Execute runs the given targets in order, each after its dependencies.
	// Failures are returned as *domain.BuildError, except context cancellation.
	Execute(ctx context.Context, names []string) error
	// ExecuteTarget runs a single target.
	ExecuteTarget(ctx context.Context, name string) error

	AddObserver(o Observer)
	RemoveObserver(o Observer)

	// AddReference registers a value under a name for steps to look up.
	AddReference(name string, value any)
	// Reference returns the value registered under name.
	Reference(name string) (any, bool)

	// Log emits a message to the observers of the context.
	Log(level domain.LogLevel, msg string)

	// FireBuildStarted notifies observers that a suite started on this context.
	FireBuildStarted()
	// FireBuildFinished notifies observers that the suite ended, with the error
	// that escaped it if any.
	FireBuildFinished(err error)
}

// ContextFactory produces fresh execution contexts for one script.
type ContextFactory interface {
	// CreateContext loads the script and returns a new, clean context.
	CreateContext() (ExecutionContext, error)
}
