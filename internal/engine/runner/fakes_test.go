package runner_test

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports"
)

// journal is the ordered record of everything contexts and notifier observed.
type journal struct {
	entries []string
}

func (j *journal) add(format string, args ...any) {
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

// action is the behavior of a target in a fake script.
type action func(ctx context.Context, ec *fakeContext) error

type fakeContext struct {
	id        int
	journal   *journal
	targets   []string
	actions   map[string]action
	observers []ports.Observer
	refs      map[string]any
	finished  error
}

func (c *fakeContext) Name() string      { return "demo" }
func (c *fakeContext) File() string      { return "demo_test.yaml" }
func (c *fakeContext) BaseDir() string   { return "." }
func (c *fakeContext) Targets() []string { return slices.Clone(c.targets) }

func (c *fakeContext) Execute(ctx context.Context, names []string) error {
	for _, name := range names {
		c.journal.add("ctx%d:exec %s", c.id, name)
		if act, ok := c.actions[name]; ok {
			if err := act(ctx, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *fakeContext) ExecuteTarget(ctx context.Context, name string) error {
	return c.Execute(ctx, []string{name})
}

func (c *fakeContext) AddObserver(o ports.Observer) {
	c.observers = append(c.observers, o)
}

func (c *fakeContext) RemoveObserver(o ports.Observer) {
	c.observers = slices.DeleteFunc(c.observers, func(x ports.Observer) bool { return x == o })
}

func (c *fakeContext) AddReference(name string, value any) {
	c.refs[name] = value
}

func (c *fakeContext) Reference(name string) (any, bool) {
	v, ok := c.refs[name]
	return v, ok
}

func (c *fakeContext) Log(level domain.LogLevel, msg string) {
	c.fire(domain.BuildEvent{Kind: domain.EventMessageLogged, Level: level, Message: msg})
}

func (c *fakeContext) FireBuildStarted() {
	c.journal.add("ctx%d:buildStarted", c.id)
	c.fire(domain.BuildEvent{Kind: domain.EventBuildStarted})
}

func (c *fakeContext) FireBuildFinished(err error) {
	c.journal.add("ctx%d:buildFinished", c.id)
	c.finished = err
	c.fire(domain.BuildEvent{Kind: domain.EventBuildFinished, Err: err})
}

func (c *fakeContext) fire(event domain.BuildEvent) {
	for _, o := range slices.Clone(c.observers) {
		o.OnBuildEvent(event)
	}
}

// fakeFactory creates fake contexts over one fixed script.
type fakeFactory struct {
	journal *journal
	targets []string
	actions map[string]action
	// failOn makes the n-th CreateContext call (1-based) fail.
	failOn  int
	calls   int
	created []*fakeContext
}

func newFactory(j *journal, targets ...string) *fakeFactory {
	return &fakeFactory{journal: j, targets: targets, actions: make(map[string]action)}
}

func (f *fakeFactory) on(target string, act action) *fakeFactory {
	f.actions[target] = act
	return f
}

func (f *fakeFactory) CreateContext() (ports.ExecutionContext, error) {
	f.calls++
	if f.calls == f.failOn {
		return nil, errors.New("script vanished")
	}
	c := &fakeContext{
		id:      len(f.created) + 1,
		journal: f.journal,
		targets: f.targets,
		actions: f.actions,
		refs:    make(map[string]any),
	}
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeFactory) last() *fakeContext {
	return f.created[len(f.created)-1]
}

// notifier journals every callback.
type notifier struct {
	journal  *journal
	failures map[string]*domain.BuildError
	errors   map[string]error
}

func newNotifier(j *journal) *notifier {
	return &notifier{journal: j, failures: make(map[string]*domain.BuildError), errors: make(map[string]error)}
}

func (n *notifier) FireStartTest(name string) { n.journal.add("start %s", name) }
func (n *notifier) FireEndTest(name string)   { n.journal.add("end %s", name) }

func (n *notifier) FireFail(name string, failure *domain.BuildError) {
	n.journal.add("fail %s: %s", name, failure.Message)
	n.failures[name] = failure
}

func (n *notifier) FireError(name string, err error) {
	n.journal.add("error %s", name)
	n.errors[name] = err
}

func fail(err error) action {
	return func(context.Context, *fakeContext) error { return err }
}
