package project

import (
	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory loads a script anew for every context it creates.
type Factory struct {
	path      string
	loader    ports.ScriptLoader
	executor  ports.Executor
	listeners []ports.Listener
}

// NewFactory creates a Factory for the script at path. Each listener is attached
// to every context the factory creates.
func NewFactory(path string, loader ports.ScriptLoader, executor ports.Executor, listeners ...ports.Listener) *Factory {
	return &Factory{
		path:      path,
		loader:    loader,
		executor:  executor,
		listeners: listeners,
	}
}

// CreateContext implements ports.ContextFactory.
func (f *Factory) CreateContext() (ports.ExecutionContext, error) {
	script, err := f.loader.Load(f.path)
	if err != nil {
		return nil, err
	}

	p, err := New(script, f.executor)
	if err != nil {
		return nil, zerr.With(err, "path", f.path)
	}

	for _, l := range f.listeners {
		p.AddObserver(&suiteObserver{listener: l, ec: p})
		l.SetCurrentContext(p)
	}
	return p, nil
}

// suiteObserver translates the build events of a context into suite callbacks.
type suiteObserver struct {
	listener ports.Listener
	ec       ports.ExecutionContext
}

func (o *suiteObserver) OnBuildEvent(event domain.BuildEvent) {
	switch event.Kind {
	case domain.EventBuildStarted:
		o.listener.StartSuite(o.ec)
	case domain.EventBuildFinished:
		o.listener.EndSuite(o.ec, event.Err)
	default:
	}
}
