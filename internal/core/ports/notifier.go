package ports

import "go.trai.ch/sameunit/internal/core/domain"

//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks

// Notifier receives the lifecycle callbacks of a suite run.
// Implementations must not panic.
type Notifier interface {
	FireStartTest(name string)
	FireFail(name string, failure *domain.BuildError)
	FireError(name string, err error)
	FireEndTest(name string)
}

// ParentHandle gives listeners access to the run that owns them.
type ParentHandle interface {
	// RunID returns the unique identifier of the current run.
	RunID() string
	// ReportDir returns the directory report files are written to.
	ReportDir() string
	// Logger returns the logger of the run.
	Logger() Logger
}

// Listener observes suites and tests. The runner reaches listeners through a
// Notifier; suite start and end arrive through the build events of each context.
type Listener interface {
	SetParent(parent ParentHandle)
	SetCurrentContext(ec ExecutionContext)
	StartSuite(ec ExecutionContext)
	EndSuite(ec ExecutionContext, err error)
	StartTest(name string)
	EndTest(name string)
	AddFailure(name string, failure *domain.BuildError)
	AddError(name string, err error)
}
