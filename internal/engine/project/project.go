// Package project provides the execution context a loaded script runs in.
package project

import (
	"context"
	"errors"
	"maps"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports"
	"go.trai.ch/sameunit/internal/engine/task"
	"go.trai.ch/zerr"
)

const (
	// FileVar holds the path of the script file.
	FileVar = "sameunit.file"
	// DirVar holds the directory of the script file.
	DirVar = "sameunit.dir"
)

// Project is one isolated instance of a loaded script. It owns the script
// variables, references and observers; nothing is shared between projects.
type Project struct {
	script   *domain.Script
	baseDir  string
	executor ports.Executor
	tasks    map[string]*task.Sequential
	now      func() time.Time

	mu        sync.Mutex
	vars      map[string]string
	refs      map[string]any
	observers []ports.Observer
	target    string
}

// New creates a Project for script. Every target is compiled into its task tree
// up front so that malformed steps surface before anything runs.
func New(script *domain.Script, executor ports.Executor) (*Project, error) {
	names := script.TargetNames()
	tasks := make(map[string]*task.Sequential, len(names))
	for _, name := range names {
		target, _ := script.Target(name)
		seq, err := task.FromSteps(target.Steps)
		if err != nil {
			return nil, zerr.With(err, "target", name)
		}
		tasks[name] = seq
	}

	baseDir := filepath.Dir(script.File)
	return &Project{
		script:   script,
		baseDir:  baseDir,
		executor: executor,
		tasks:    tasks,
		now:      time.Now,
		vars: map[string]string{
			FileVar: script.File,
			DirVar:  baseDir,
		},
		refs: make(map[string]any),
	}, nil
}

// Name returns the script name.
func (p *Project) Name() string { return p.script.Name }

// File returns the path of the script file.
func (p *Project) File() string { return p.script.File }

// BaseDir returns the directory of the script file.
func (p *Project) BaseDir() string { return p.baseDir }

// Targets returns all target names in declaration order.
func (p *Project) Targets() []string { return p.script.TargetNames() }

// Execute runs names in order, each preceded by its dependencies. A target
// reached twice runs once.
func (p *Project) Execute(ctx context.Context, names []string) error {
	order, err := p.script.ExecutionOrder(names)
	if err != nil {
		return domain.NewExecutionError(err.Error(), err).WithLocation(p.script.File)
	}

	for _, target := range order {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.runTarget(ctx, target); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteTarget runs a single target after its dependencies.
func (p *Project) ExecuteTarget(ctx context.Context, name string) error {
	return p.Execute(ctx, []string{name})
}

func (p *Project) runTarget(ctx context.Context, target *domain.Target) error {
	p.mu.Lock()
	p.target = target.Name
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.target = ""
		p.mu.Unlock()
	}()

	p.fire(domain.BuildEvent{Kind: domain.EventTargetStarted, Target: target.Name})

	env := &targetEnv{Project: p, target: target}
	err := p.tasks[target.Name].Main(ctx, env)
	if err != nil {
		err = p.locate(target.Name, err)
	}

	p.fire(domain.BuildEvent{Kind: domain.EventTargetFinished, Target: target.Name, Err: err})
	return err
}

// locate turns err into a build error tagged with the failing target.
// Cancellation is passed through untouched.
func (p *Project) locate(target string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	loc := p.script.File + ":" + target
	if be, ok := domain.AsBuildError(err); ok {
		return be.WithLocation(loc)
	}
	return domain.NewExecutionError(err.Error(), err).WithLocation(loc)
}

// AddObserver registers o for the build events of the project.
func (p *Project) AddObserver(o ports.Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, o)
}

// RemoveObserver unregisters o.
func (p *Project) RemoveObserver(o ports.Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = slices.DeleteFunc(p.observers, func(x ports.Observer) bool { return x == o })
}

// AddReference registers value under name.
func (p *Project) AddReference(name string, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refs[name] = value
}

// Reference returns the value registered under name.
func (p *Project) Reference(name string) (any, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.refs[name]
	return v, ok
}

// Var returns the value of a script variable.
func (p *Project) Var(name string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.vars[name]
	return v, ok
}

// SetVar assigns a script variable.
func (p *Project) SetVar(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vars[name] = value
}

// Log emits msg to the observers of the project.
func (p *Project) Log(level domain.LogLevel, msg string) {
	p.mu.Lock()
	target := p.target
	p.mu.Unlock()
	p.fire(domain.BuildEvent{Kind: domain.EventMessageLogged, Target: target, Level: level, Message: msg})
}

// FireBuildStarted notifies observers that a suite started on the project.
func (p *Project) FireBuildStarted() {
	p.fire(domain.BuildEvent{Kind: domain.EventBuildStarted})
}

// FireBuildFinished notifies observers that the suite ended.
func (p *Project) FireBuildFinished(err error) {
	p.fire(domain.BuildEvent{Kind: domain.EventBuildFinished, Err: err})
}

// fire dispatches outside the lock; observers may unregister while handling.
func (p *Project) fire(event domain.BuildEvent) {
	event.Script = p.script.Name
	event.Time = p.now()

	p.mu.Lock()
	observers := slices.Clone(p.observers)
	p.mu.Unlock()

	for _, o := range observers {
		o.OnBuildEvent(event)
	}
}

// targetEnv is the task.Env of one running target.
type targetEnv struct {
	*Project
	target *domain.Target
}

// Exec runs args in the script directory. Standard output is logged at info
// level and standard error at warn level, one message per line.
func (e *targetEnv) Exec(ctx context.Context, args []string) error {
	if e.executor == nil {
		return zerr.With(domain.ErrCommandFailed, "reason", "no executor configured")
	}
	env := make(map[string]string, len(e.script.Environment)+len(e.target.Environment))
	maps.Copy(env, e.script.Environment)
	maps.Copy(env, e.target.Environment)

	stdout := newLineWriter(func(line string) { e.Log(domain.LogLevelInfo, line) })
	stderr := newLineWriter(func(line string) { e.Log(domain.LogLevelWarn, line) })

	err := e.executor.Execute(ctx, domain.Command{Args: args, Dir: e.baseDir, Env: env}, stdout, stderr)
	_ = stdout.Close()
	_ = stderr.Close()
	return err
}
