package app

import (
	"time"

	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports"
)

// fanout is the ports.Notifier of one suite. It counts failures and errors,
// records a result per reported name and forwards every callback to the
// listeners of the run.
type fanout struct {
	listeners []ports.Listener
	now       func() time.Time

	outcome domain.SuiteOutcome
	results []domain.TestResult
	index   map[string]int
	started map[string]time.Time
}

func newFanout(listeners []ports.Listener, now func() time.Time) *fanout {
	return &fanout{
		listeners: listeners,
		now:       now,
		index:     make(map[string]int),
		started:   make(map[string]time.Time),
	}
}

func (f *fanout) FireStartTest(name string) {
	f.started[name] = f.now()
	f.result(name)
	for _, l := range f.listeners {
		l.StartTest(name)
	}
}

func (f *fanout) FireFail(name string, failure *domain.BuildError) {
	f.outcome.Failures++
	r := f.result(name)
	if r.Status != domain.TestFailed {
		r.Status = domain.TestFailed
		r.Message = failure.Message
	}
	for _, l := range f.listeners {
		l.AddFailure(name, failure)
	}
}

func (f *fanout) FireError(name string, err error) {
	f.outcome.Errors++
	r := f.result(name)
	if r.Status == domain.TestPassed {
		r.Status = domain.TestErrored
		r.Message = domain.MessageOf(err)
	}
	for _, l := range f.listeners {
		l.AddError(name, err)
	}
}

func (f *fanout) FireEndTest(name string) {
	if domain.IsTestTarget(name) {
		f.outcome.Tests++
	}
	if start, ok := f.started[name]; ok {
		f.result(name).Duration = f.now().Sub(start)
	}
	for _, l := range f.listeners {
		l.EndTest(name)
	}
}

// result returns the result recorded for name, creating a passing one.
func (f *fanout) result(name string) *domain.TestResult {
	if i, ok := f.index[name]; ok {
		return &f.results[i]
	}
	f.index[name] = len(f.results)
	f.results = append(f.results, domain.TestResult{Name: name, Status: domain.TestPassed})
	return &f.results[len(f.results)-1]
}
