package project_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports/mocks"
	"go.trai.ch/sameunit/internal/engine/project"
	"go.uber.org/mock/gomock"
)

type recorder struct {
	events []domain.BuildEvent
}

func (r *recorder) OnBuildEvent(event domain.BuildEvent) {
	r.events = append(r.events, event)
}

func (r *recorder) kinds() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind.String()+":"+e.Target)
	}
	return out
}

func newScript(t *testing.T, targets ...*domain.Target) *domain.Script {
	t.Helper()
	s := domain.NewScript("demo", filepath.Join("scripts", "demo_test.yaml"))
	for _, target := range targets {
		require.NoError(t, s.AddTarget(target))
	}
	return s
}

func TestProject_Accessors(t *testing.T) {
	s := newScript(t, &domain.Target{Name: "b"}, &domain.Target{Name: "a"})

	p, err := project.New(s, nil)
	require.NoError(t, err)

	assert.Equal(t, "demo", p.Name())
	assert.Equal(t, filepath.Join("scripts", "demo_test.yaml"), p.File())
	assert.Equal(t, "scripts", p.BaseDir())
	assert.Equal(t, []string{"b", "a"}, p.Targets())

	file, ok := p.Var(project.FileVar)
	require.True(t, ok)
	assert.Equal(t, p.File(), file)
	dir, ok := p.Var(project.DirVar)
	require.True(t, ok)
	assert.Equal(t, "scripts", dir)
}

func TestProject_InvalidStep(t *testing.T) {
	s := newScript(t, &domain.Target{Name: "broken", Steps: []domain.Step{{Kind: "bogus"}}})

	_, err := project.New(s, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidStep.Error())
}

func TestProject_ExecuteOrder(t *testing.T) {
	s := newScript(t,
		&domain.Target{Name: "init", Steps: []domain.Step{{Kind: domain.StepEcho, Message: "init"}}},
		&domain.Target{Name: "setUp", Dependencies: []string{"init"}},
		&domain.Target{Name: "testOne", Dependencies: []string{"init"}},
	)
	p, err := project.New(s, nil)
	require.NoError(t, err)
	rec := &recorder{}
	p.AddObserver(rec)

	require.NoError(t, p.Execute(context.Background(), []string{"setUp", "testOne"}))

	assert.Equal(t, []string{
		"targetStarted:init",
		"messageLogged:init",
		"targetFinished:init",
		"targetStarted:setUp",
		"targetFinished:setUp",
		"targetStarted:testOne",
		"targetFinished:testOne",
	}, rec.kinds())
	for _, e := range rec.events {
		assert.Equal(t, "demo", e.Script)
		assert.False(t, e.Time.IsZero())
	}
}

func TestProject_ExecuteUnknownTarget(t *testing.T) {
	p, err := project.New(newScript(t), nil)
	require.NoError(t, err)

	err = p.ExecuteTarget(context.Background(), "missing")

	be, ok := domain.AsBuildError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindExecution, be.Kind)
	assert.ErrorContains(t, err, domain.ErrTargetNotFound.Error())
}

func TestProject_ExecuteCycle(t *testing.T) {
	s := newScript(t,
		&domain.Target{Name: "a", Dependencies: []string{"b"}},
		&domain.Target{Name: "b", Dependencies: []string{"a"}},
	)
	p, err := project.New(s, nil)
	require.NoError(t, err)

	err = p.ExecuteTarget(context.Background(), "a")

	_, ok := domain.AsBuildError(err)
	require.True(t, ok)
	assert.ErrorContains(t, err, domain.ErrCycleDetected.Error())
}

func TestProject_FailureCarriesLocation(t *testing.T) {
	s := newScript(t,
		&domain.Target{Name: "testFail", Steps: []domain.Step{{Kind: domain.StepFail, Message: "boom"}}},
		&domain.Target{Name: "after", Dependencies: []string{"testFail"}},
	)
	p, err := project.New(s, nil)
	require.NoError(t, err)
	rec := &recorder{}
	p.AddObserver(rec)

	err = p.ExecuteTarget(context.Background(), "after")

	be, ok := domain.AsBuildError(err)
	require.True(t, ok)
	assert.Equal(t, "boom", be.Message)
	assert.Equal(t, p.File()+":testFail", be.Location)
	assert.Equal(t, []string{"targetStarted:testFail", "targetFinished:testFail"}, rec.kinds())
	assert.Same(t, be, rec.events[1].Err)
}

func TestProject_AssertionKeepsKind(t *testing.T) {
	s := newScript(t, &domain.Target{Name: "testAssert", Steps: []domain.Step{{
		Kind:       domain.StepAssert,
		Message:    "not set",
		Conditions: []domain.Condition{{Kind: domain.CondIsSet, Var: "missing"}},
	}}})
	p, err := project.New(s, nil)
	require.NoError(t, err)

	err = p.ExecuteTarget(context.Background(), "testAssert")

	failure, ok := domain.FindAssertion(err)
	require.True(t, ok)
	assert.Equal(t, "not set", failure.Message)
}

func TestProject_Cancelled(t *testing.T) {
	s := newScript(t, &domain.Target{Name: "a"})
	p, err := project.New(s, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = p.ExecuteTarget(ctx, "a")

	require.ErrorIs(t, err, context.Canceled)
	_, ok := domain.AsBuildError(err)
	assert.False(t, ok)
}

func TestProject_VariablesAreIsolated(t *testing.T) {
	s := newScript(t,
		&domain.Target{Name: "set", Steps: []domain.Step{{Kind: domain.StepSet, Name: "k", Value: "v"}}},
		&domain.Target{Name: "check", Steps: []domain.Step{{
			Kind:       domain.StepAssert,
			Conditions: []domain.Condition{{Kind: domain.CondEquals, Var: "k", Value: "v"}},
		}}},
	)
	first, err := project.New(s, nil)
	require.NoError(t, err)
	second, err := project.New(s, nil)
	require.NoError(t, err)

	require.NoError(t, first.Execute(context.Background(), []string{"set", "check"}))

	err = second.ExecuteTarget(context.Background(), "check")
	failure, ok := domain.FindAssertion(err)
	require.True(t, ok)
	assert.Equal(t, domain.DefaultAssertMessage, failure.Message)
}

func TestProject_ExecLogsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	s := newScript(t, &domain.Target{
		Name:        "testCmd",
		Environment: map[string]string{"B": "target"},
		Steps:       []domain.Step{{Kind: domain.StepCmd, Args: []string{"tool", "--flag"}}},
	})
	s.Environment = map[string]string{"A": "script", "B": "script"}

	executor.EXPECT().
		Execute(gomock.Any(), domain.Command{
			Args: []string{"tool", "--flag"},
			Dir:  "scripts",
			Env:  map[string]string{"A": "script", "B": "target"},
		}, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, stdout, stderr io.Writer) error {
			_, _ = io.WriteString(stdout, "out one\nout ")
			_, _ = io.WriteString(stdout, "two\r\n")
			_, _ = io.WriteString(stderr, "warned")
			return nil
		})

	p, err := project.New(s, executor)
	require.NoError(t, err)
	rec := &recorder{}
	p.AddObserver(rec)

	require.NoError(t, p.ExecuteTarget(context.Background(), "testCmd"))

	var logged []domain.BuildEvent
	for _, e := range rec.events {
		if e.Kind == domain.EventMessageLogged {
			logged = append(logged, e)
		}
	}
	require.Len(t, logged, 3)
	assert.Equal(t, "out one", logged[0].Message)
	assert.Equal(t, "out two", logged[1].Message)
	assert.Equal(t, domain.LogLevelInfo, logged[1].Level)
	assert.Equal(t, "warned", logged[2].Message)
	assert.Equal(t, domain.LogLevelWarn, logged[2].Level)
	assert.Equal(t, "testCmd", logged[2].Target)
}

func TestProject_ExecFailureIsExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrCommandFailed)

	s := newScript(t, &domain.Target{Name: "testCmd", Steps: []domain.Step{{Kind: domain.StepCmd, Args: []string{"false"}}}})
	p, err := project.New(s, executor)
	require.NoError(t, err)

	err = p.ExecuteTarget(context.Background(), "testCmd")

	be, ok := domain.AsBuildError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindExecution, be.Kind)
	assert.Equal(t, p.File()+":testCmd", be.Location)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestProject_FileExistsResolvesAgainstScriptDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), nil, 0o600))

	s := domain.NewScript("demo", filepath.Join(dir, "demo_test.yaml"))
	require.NoError(t, s.AddTarget(&domain.Target{Name: "testMarker", Steps: []domain.Step{{
		Kind:       domain.StepAssert,
		Conditions: []domain.Condition{{Kind: domain.CondFileExists, Path: "marker"}},
	}}}))
	p, err := project.New(s, nil)
	require.NoError(t, err)

	assert.NoError(t, p.ExecuteTarget(context.Background(), "testMarker"))
}

type selfRemoving struct {
	p     *project.Project
	calls int
}

func (o *selfRemoving) OnBuildEvent(domain.BuildEvent) {
	o.calls++
	o.p.RemoveObserver(o)
}

func TestProject_ObserverMayRemoveItself(t *testing.T) {
	p, err := project.New(newScript(t), nil)
	require.NoError(t, err)
	o := &selfRemoving{p: p}
	rec := &recorder{}
	p.AddObserver(o)
	p.AddObserver(rec)

	p.FireBuildStarted()
	p.FireBuildFinished(domain.ErrSuitePanicked)

	assert.Equal(t, 1, o.calls)
	require.Len(t, rec.events, 2)
	assert.Equal(t, domain.EventBuildFinished, rec.events[1].Kind)
	assert.ErrorIs(t, rec.events[1].Err, domain.ErrSuitePanicked)
}

func TestProject_References(t *testing.T) {
	p, err := project.New(newScript(t), nil)
	require.NoError(t, err)

	_, ok := p.Reference("x")
	assert.False(t, ok)

	p.AddReference("x", 42)
	v, ok := p.Reference("x")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}
