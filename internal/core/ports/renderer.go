package ports

import (
	"context"
	"time"

	"go.trai.ch/sameunit/internal/core/domain"
)

// Renderer is the abstraction for console output.
// It is driven by the spans recorded for suites and tests.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events.
	// It should flush any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnPlanEmit is called when a suite is about to run the given tests.
	OnPlanEmit(script string, tests []string)

	// OnTaskStart is called when a suite or test span starts.
	// parentID is empty for suite spans.
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskLog is called with captured log output of a test.
	// data may contain partial lines.
	OnTaskLog(spanID string, data []byte)

	// OnTaskComplete is called when a span ends.
	// status is empty for spans that carry no test outcome.
	OnTaskComplete(spanID string, endTime time.Time, status domain.TestStatus, err error)
}
