package project_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports"
	"go.trai.ch/sameunit/internal/core/ports/mocks"
	"go.trai.ch/sameunit/internal/engine/project"
	"go.trai.ch/sameunit/internal/engine/runner"
	"go.uber.org/mock/gomock"
)

func TestFactory_LoadsAnew(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockScriptLoader(ctrl)
	loader.EXPECT().Load("demo_test.yaml").DoAndReturn(func(path string) (*domain.Script, error) {
		s := domain.NewScript("demo", path)
		require.NoError(t, s.AddTarget(&domain.Target{Name: "testA"}))
		return s, nil
	}).Times(2)

	f := project.NewFactory("demo_test.yaml", loader, nil)

	first, err := f.CreateContext()
	require.NoError(t, err)
	second, err := f.CreateContext()
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, []string{"testA"}, second.Targets())
}

func TestFactory_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockScriptLoader(ctrl)
	loader.EXPECT().Load("bad_test.yaml").Return(nil, domain.ErrConfigParseFailed)

	_, err := project.NewFactory("bad_test.yaml", loader, nil).CreateContext()

	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestFactory_AttachesListeners(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockScriptLoader(ctrl)
	listener := mocks.NewMockListener(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(domain.NewScript("demo", "demo_test.yaml"), nil)

	var current ports.ExecutionContext
	listener.EXPECT().SetCurrentContext(gomock.Any()).Do(func(ec ports.ExecutionContext) { current = ec })

	ec, err := project.NewFactory("demo_test.yaml", loader, nil, listener).CreateContext()
	require.NoError(t, err)
	assert.Same(t, ec, current)

	gomock.InOrder(
		listener.EXPECT().StartSuite(ec),
		listener.EXPECT().EndSuite(ec, domain.ErrSuitePanicked),
	)
	ec.FireBuildStarted()
	ec.Log(domain.LogLevelInfo, "ignored")
	ec.FireBuildFinished(domain.ErrSuitePanicked)
}

// notifierLog records notifier callbacks as "event:name" strings.
type notifierLog []string

func (n *notifierLog) FireStartTest(name string) { *n = append(*n, "start:"+name) }
func (n *notifierLog) FireFail(name string, failure *domain.BuildError) {
	*n = append(*n, "fail:"+name+":"+failure.Message)
}
func (n *notifierLog) FireError(name string, err error) {
	*n = append(*n, "error:"+name+":"+domain.MessageOf(err))
}
func (n *notifierLog) FireEndTest(name string) { *n = append(*n, "end:"+name) }

func TestFactory_DrivesSuite(t *testing.T) {
	script := func(path string) (*domain.Script, error) {
		s := domain.NewScript("demo", path)
		targets := []*domain.Target{
			{Name: "suiteSetUp", Steps: []domain.Step{{Kind: domain.StepSet, Name: "suite", Value: "yes"}}},
			{Name: "setUp", Steps: []domain.Step{{Kind: domain.StepSet, Name: "fixture", Value: "yes"}}},
			{Name: "testIsolated", Steps: []domain.Step{
				{Kind: domain.StepAssertFalse, Message: "suite state leaked", Conditions: []domain.Condition{{Kind: domain.CondIsSet, Var: "suite"}}},
				{Kind: domain.StepAssert, Message: "setUp not shared", Conditions: []domain.Condition{{Kind: domain.CondIsTrue, Var: "fixture"}}},
				{Kind: domain.StepSet, Name: "dirty", Value: "yes"},
			}},
			{Name: "testClean", Steps: []domain.Step{
				{Kind: domain.StepAssertFalse, Message: "test state leaked", Conditions: []domain.Condition{{Kind: domain.CondIsSet, Var: "dirty"}}},
			}},
			{Name: "testLog", Steps: []domain.Step{
				{Kind: domain.StepEcho, Message: "hello world"},
				{Kind: domain.StepAssert, Message: "not logged", Conditions: []domain.Condition{{Kind: domain.CondLogContains, Text: "world", Level: domain.LogLevelInfo, MergeLines: true}}},
			}},
			{Name: "testExpect", Steps: []domain.Step{{
				Kind: domain.StepExpectFailure, ExpectedMessage: "disk",
				Steps: []domain.Step{{Kind: domain.StepFail, Message: "network down"}},
			}}},
			{Name: "testBroken", Steps: []domain.Step{{Kind: domain.StepFail, Message: "broken"}}},
		}
		for _, target := range targets {
			if err := s.AddTarget(target); err != nil {
				return nil, err
			}
		}
		return s, nil
	}

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockScriptLoader(ctrl)
	loader.EXPECT().Load("demo_test.yaml").DoAndReturn(script).AnyTimes()

	r, err := runner.New(project.NewFactory("demo_test.yaml", loader, nil))
	require.NoError(t, err)

	var n notifierLog
	r.RunSuite(context.Background(), r.TestTargets(), &n)

	assert.Equal(t, notifierLog{
		"start:testIsolated",
		"end:testIsolated",
		"start:testClean",
		"end:testClean",
		"start:testLog",
		"end:testLog",
		"start:testExpect",
		"fail:testExpect:Expected build failure with message 'disk' but was 'network down'",
		"end:testExpect",
		"start:testBroken",
		"error:testBroken:broken",
		"end:testBroken",
	}, n)
}
