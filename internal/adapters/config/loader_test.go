package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sameunit/internal/adapters/config"
	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

const fullScript = `
environment:
  LANG: C
  RETRIES: 3
targets:
  suiteSetUp:
    steps:
      - echo: "suite"
  prepare:
    steps:
      - set: {name: greeting, value: hello}
  setUp:
    dependsOn: [prepare]
  testGreeting:
    environment: {X: 1}
    steps:
      - cmd: ["sh", "-c", "echo hi"]
      - log: {message: details, level: verbose}
      - assert:
          message: greeting missing
          conditions:
            - equals: {var: greeting, value: hello}
      - assertFalse:
          conditions:
            - not:
                isSet: greeting
      - expectFailure:
          expectedMessage: disk
          steps:
            - fail: disk full
  testLog:
    steps:
      - assert:
          conditions:
            - and:
                - logContains: {text: hi}
                - or:
                    - isTrue: flag
                    - contains: {var: greeting, substring: ell}
                    - fileExists: data.txt
                    - logContains: {text: x, level: debug, mergeLines: false}
  tearDown:
`

func TestLoader_Load_FullScript(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "greeting_test.yaml", fullScript)

	script, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "greeting", script.Name)
	assert.Equal(t, path, script.File)
	assert.Equal(t, map[string]string{"LANG": "C", "RETRIES": "3"}, script.Environment)
	assert.Equal(t,
		[]string{"suiteSetUp", "prepare", "setUp", "testGreeting", "testLog", "tearDown"},
		script.TargetNames())
	assert.Equal(t, []string{"testGreeting", "testLog"}, script.TestTargets())
	assert.Equal(t, domain.FixturePresence{
		HasSetUp: true, HasTearDown: true, HasSuiteSetUp: true, HasSuiteTearDown: false,
	}, script.Fixtures())

	setUp, ok := script.Target("setUp")
	require.True(t, ok)
	assert.Equal(t, []string{"prepare"}, setUp.Dependencies)

	test, ok := script.Target("testGreeting")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"X": "1"}, test.Environment)
	require.Len(t, test.Steps, 5)
	assert.Equal(t, domain.Step{Kind: domain.StepCmd, Args: []string{"sh", "-c", "echo hi"}}, test.Steps[0])
	assert.Equal(t, domain.Step{Kind: domain.StepLog, Message: "details", Level: domain.LogLevelVerbose}, test.Steps[1])
	assert.Equal(t, domain.Step{
		Kind:       domain.StepAssert,
		Message:    "greeting missing",
		Conditions: []domain.Condition{{Kind: domain.CondEquals, Var: "greeting", Value: "hello"}},
	}, test.Steps[2])
	assert.Equal(t, domain.Step{
		Kind: domain.StepAssertFalse,
		Conditions: []domain.Condition{{
			Kind:     domain.CondNot,
			Children: []domain.Condition{{Kind: domain.CondIsSet, Var: "greeting"}},
		}},
	}, test.Steps[3])
	assert.Equal(t, domain.Step{
		Kind:            domain.StepExpectFailure,
		ExpectedMessage: "disk",
		Steps:           []domain.Step{{Kind: domain.StepFail, Message: "disk full"}},
	}, test.Steps[4])

	logTest, ok := script.Target("testLog")
	require.True(t, ok)
	and := logTest.Steps[0].Conditions[0]
	require.Equal(t, domain.CondAnd, and.Kind)
	require.Len(t, and.Children, 2)
	assert.Equal(t, domain.Condition{
		Kind: domain.CondLogContains, Text: "hi", Level: domain.LogLevelInfo, MergeLines: true,
	}, and.Children[0])
	or := and.Children[1]
	assert.Equal(t, []domain.Condition{
		{Kind: domain.CondIsTrue, Var: "flag"},
		{Kind: domain.CondContains, Var: "greeting", Value: "ell"},
		{Kind: domain.CondFileExists, Path: "data.txt"},
		{Kind: domain.CondLogContains, Text: "x", Level: domain.LogLevelDebug, MergeLines: false},
	}, or.Children)
}

func TestLoader_Load_ExplicitName(t *testing.T) {
	path := createFile(t, t.TempDir(), "x_test.yaml", "name: custom\ntargets:\n  testA:\n")

	script, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", script.Name)
}

func TestLoader_Load_WarnsWithoutTests(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	path := createFile(t, t.TempDir(), "empty_test.yaml", "targets:\n  build:\n")
	mockLogger.EXPECT().Warn(path + " declares no test targets")

	_, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			content: "targets: [",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "empty document",
			content: "",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "missing targets",
			content: "name: x\n",
			wantErr: domain.ErrSchemaValidationFailed,
		},
		{
			name:    "unknown step",
			content: "targets:\n  testA:\n    steps:\n      - explode: now\n",
			wantErr: domain.ErrSchemaValidationFailed,
		},
		{
			name:    "two actions in one step",
			content: "targets:\n  testA:\n    steps:\n      - echo: a\n        fail: b\n",
			wantErr: domain.ErrSchemaValidationFailed,
		},
		{
			name:    "two checks in one condition",
			content: "targets:\n  testA:\n    steps:\n      - assert:\n          conditions:\n            - isSet: a\n              isTrue: b\n",
			wantErr: domain.ErrSchemaValidationFailed,
		},
		{
			name:    "unknown level",
			content: "targets:\n  testA:\n    steps:\n      - log: {message: m, level: loud}\n",
			wantErr: domain.ErrSchemaValidationFailed,
		},
		{
			name:    "invalid target name",
			content: "targets:\n  \"test a\":\n",
			wantErr: domain.ErrInvalidTargetName,
		},
		{
			name:    "missing dependency",
			content: "targets:\n  testA:\n    dependsOn: [ghost]\n",
			wantErr: domain.ErrMissingDependency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createFile(t, t.TempDir(), "bad_test.yaml", tt.content)

			_, err := newLoader(t).Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_Load_DuplicateTarget(t *testing.T) {
	path := createFile(t, t.TempDir(), "dup_test.yaml", "targets:\n  testA:\n  testA:\n")

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "missing_test.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestScriptName(t *testing.T) {
	tests := map[string]string{
		"a/b/greeting_test.yaml": "greeting",
		"suite.yaml":             "suite",
		"suite.yml":              "suite",
		"_test.yaml":             "_test",
		"noext":                  "noext",
	}
	for path, want := range tests {
		assert.Equal(t, want, config.ScriptName(path), path)
	}
}
