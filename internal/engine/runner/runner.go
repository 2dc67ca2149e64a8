// Package runner drives the test targets of one script through the suite protocol:
// fixture wrapping, per-test context isolation, failure classification and notification.
package runner

import (
	"context"
	"fmt"

	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports"
	"go.trai.ch/zerr"
)

// handleState tracks whether a context may still be handed out as clean.
type handleState uint8

const (
	stateFresh handleState = iota
	stateConsumed
)

// contextHandle owns one execution context together with its state.
type contextHandle struct {
	ec    ports.ExecutionContext
	state handleState
}

// ScriptRunner runs the test targets of a single script.
// It is not safe for concurrent use.
type ScriptRunner struct {
	factory  ports.ContextFactory
	current  *contextHandle
	fixtures domain.FixturePresence
	tests    []string
	started  bool
}

// New creates a ScriptRunner. It requests one context from the factory to
// enumerate the targets of the script; that context stays fresh for the first
// fixture or test that needs one.
func New(factory ports.ContextFactory) (*ScriptRunner, error) {
	ec, err := factory.CreateContext()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrContextCreateFailed.Error())
	}

	names := ec.Targets()
	return &ScriptRunner{
		factory:  factory,
		current:  &contextHandle{ec: ec, state: stateFresh},
		fixtures: domain.DetectFixtures(names),
		tests:    domain.SelectTestTargets(names),
	}, nil
}

// TestTargets returns the test targets of the script in declaration order.
func (r *ScriptRunner) TestTargets() []string {
	return append([]string(nil), r.tests...)
}

// Fixtures returns the fixture targets the script declares.
func (r *ScriptRunner) Fixtures() domain.FixturePresence {
	return r.fixtures
}

// Name returns the name of the script.
func (r *ScriptRunner) Name() string {
	return r.current.ec.Name()
}

// RunSuite runs the given test targets in order, bracketed by the suite fixtures.
// Target failures are reported to notifier and never returned. The suite
// teardown always runs, even when the suite setup failed or a panic escaped.
func (r *ScriptRunner) RunSuite(ctx context.Context, targets []string, notifier ports.Notifier) {
	var (
		escaped error
		fatal   any
	)

	func() {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == domain.ErrSuiteNotStarted { //nolint:errorlint // identity of the panic value
					fatal = rec
				}
				escaped = recoveredError(rec)
			}
		}()
		escaped = r.runTargets(ctx, targets, notifier)
	}()

	r.endSuite(ctx, escaped, notifier)

	if fatal != nil {
		panic(fatal)
	}
}

// runTargets starts the suite and runs every target if the suite started.
// It returns the error that stopped the run early, if any.
func (r *ScriptRunner) runTargets(ctx context.Context, targets []string, notifier ports.Notifier) error {
	if !r.startSuite(ctx, notifier) {
		return nil
	}
	for _, name := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.runTarget(ctx, name, notifier); err != nil {
			return err
		}
	}
	return nil
}

// startSuite fires the build started signal and runs suiteSetUp.
// It reports false if suiteSetUp failed; no target may run in that case.
func (r *ScriptRunner) startSuite(ctx context.Context, notifier ports.Notifier) bool {
	r.current.ec.FireBuildStarted()

	if r.fixtures.HasSuiteSetUp {
		if err := r.runFixture(ctx, domain.SuiteSetUpTarget); err != nil {
			notifier.FireStartTest(domain.SuiteSetUpTarget)
			fireFailOrError(domain.SuiteSetUpTarget, err, notifier)
			return false
		}
	}

	r.started = true
	return true
}

// runTarget runs one test target on a clean context, after setUp and before tearDown.
// Only a failure to obtain a context is returned; target failures go to notifier.
func (r *ScriptRunner) runTarget(ctx context.Context, name string, notifier ports.Notifier) error {
	if !r.started {
		panic(domain.ErrSuiteNotStarted)
	}

	ec, err := r.cleanContext()
	if err != nil {
		return zerr.With(err, "target", name)
	}

	order := make([]string, 0, 2)
	if r.fixtures.HasSetUp {
		order = append(order, domain.SetUpTarget)
	}
	order = append(order, name)

	NewLogCapturer(ec)

	defer func() {
		// endTest must precede tearDown so a tearDown failure is a separate event.
		notifier.FireEndTest(name)
		if r.fixtures.HasTearDown {
			if err := ec.ExecuteTarget(context.WithoutCancel(ctx), domain.TearDownTarget); err != nil {
				fireFailOrError(name, err, notifier)
			}
		}
	}()

	notifier.FireStartTest(name)
	if err := ec.Execute(ctx, order); err != nil {
		fireFailOrError(name, err, notifier)
	}
	return nil
}

// endSuite runs suiteTearDown and fires the build finished signal with the
// error that escaped the suite.
func (r *ScriptRunner) endSuite(ctx context.Context, escaped error, notifier ports.Notifier) {
	if r.fixtures.HasSuiteTearDown {
		if err := r.runFixture(context.WithoutCancel(ctx), domain.SuiteTearDownTarget); err != nil {
			notifier.FireStartTest(domain.SuiteTearDownTarget)
			fireFailOrError(domain.SuiteTearDownTarget, err, notifier)
		}
	}

	r.current.ec.FireBuildFinished(escaped)
	r.started = false
}

// runFixture runs a suite fixture on a clean context.
func (r *ScriptRunner) runFixture(ctx context.Context, name string) error {
	ec, err := r.cleanContext()
	if err != nil {
		return err
	}
	return ec.ExecuteTarget(ctx, name)
}

// cleanContext returns a context no target has run on. The held context is
// handed out only while fresh; otherwise it is replaced by a new one. Either
// way the returned context is consumed before any target runs on it.
func (r *ScriptRunner) cleanContext() (ports.ExecutionContext, error) {
	if r.current == nil || r.current.state == stateConsumed {
		ec, err := r.factory.CreateContext()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrContextCreateFailed.Error())
		}
		r.current = &contextHandle{ec: ec, state: stateFresh}
	}
	r.current.state = stateConsumed
	return r.current.ec, nil
}

// fireFailOrError reports err as a failure if an assertion failure is found in
// its chain of build errors, and as an error otherwise.
func fireFailOrError(name string, err error, notifier ports.Notifier) {
	if failure, ok := domain.FindAssertion(err); ok {
		notifier.FireFail(name, failure)
		return
	}
	notifier.FireError(name, err)
}

func recoveredError(rec any) error {
	if err, ok := rec.(error); ok {
		return zerr.Wrap(err, domain.ErrSuitePanicked.Error())
	}
	return zerr.With(domain.ErrSuitePanicked, "panic", fmt.Sprint(rec))
}
