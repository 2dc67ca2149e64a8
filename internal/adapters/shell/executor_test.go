package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sameunit/internal/adapters/shell"
	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/zerr"
)

func run(t *testing.T, cmd domain.Command) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = shell.NewExecutor().Execute(context.Background(), cmd, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	stdout, _, err := run(t, domain.Command{
		Args: []string{"sh", "-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", stdout)
}

func TestExecutor_Execute_Stderr(t *testing.T) {
	stdout, stderr, err := run(t, domain.Command{
		Args: []string{"sh", "-c", "echo oops >&2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t, "oops\n", stderr)
}

func TestExecutor_Execute_EnvironmentVariables(t *testing.T) {
	stdout, _, err := run(t, domain.Command{
		Args: []string{"sh", "-c", "echo $MY_TEST_VAR"},
		Dir:  t.TempDir(),
		Env:  map[string]string{"MY_TEST_VAR": "test-value-123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "test-value-123\n", stdout)
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "here.txt"), []byte("found"), 0o600))

	stdout, _, err := run(t, domain.Command{
		Args: []string{"sh", "-c", "cat here.txt"},
		Dir:  dir,
	})
	require.NoError(t, err)
	assert.Equal(t, "found", stdout)
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	_, _, err := run(t, domain.Command{
		Args: []string{"nonexistent-command-xyz123"},
		Dir:  t.TempDir(),
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCommandFailed.Error())
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	_, _, err := run(t, domain.Command{
		Args: []string{"sh", "-c", "exit 42"},
		Dir:  t.TempDir(),
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCommandFailed.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 42, zErr.Metadata()["exit_code"])
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	_, _, err := run(t, domain.Command{Dir: t.TempDir()})
	require.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestExecutor_Execute_AbsolutePath(t *testing.T) {
	stdout, _, err := run(t, domain.Command{
		Args: []string{"/bin/sh", "-c", "echo test"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, "test\n", stdout)
}

func TestExecutor_Execute_CommandPath(t *testing.T) {
	binDir := t.TempDir()
	cmdName := "my-script-tool"
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(filepath.Join(binDir, cmdName), []byte("#!/bin/sh\necho success\n"), 0o700))

	var out bytes.Buffer
	executor := shell.NewExecutorWithEnviron([]string{"PATH=/usr/bin:/bin"})
	err := executor.Execute(context.Background(), domain.Command{
		Args: []string{cmdName},
		Dir:  binDir,
		Env:  map[string]string{"PATH": binDir + string(os.PathListSeparator) + "/usr/bin:/bin"},
	}, &out, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "success\n", out.String())
}

func TestExecutor_Execute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := shell.NewExecutor().Execute(ctx, domain.Command{
		Args: []string{"sh", "-c", "sleep 5"},
		Dir:  t.TempDir(),
	}, io.Discard, io.Discard)

	require.Error(t, err)
}

func TestResolveEnvironment(t *testing.T) {
	env := shell.ResolveEnvironment(
		[]string{"HOME=/home/u", "SECRET=x", "PATH=/bin", "broken"},
		map[string]string{"PATH": "/opt/bin", "EXTRA": "1"},
	)

	assert.Equal(t, []string{"EXTRA=1", "HOME=/home/u", "PATH=/opt/bin"}, env)
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "tool")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data"), nil, 0o600))

	path, err := shell.LookPath("tool", []string{"PATH=" + dir})
	require.NoError(t, err)
	assert.Equal(t, exe, path)

	_, err = shell.LookPath("data", []string{"PATH=" + dir})
	require.Error(t, err)

	_, err = shell.LookPath("tool", nil)
	require.Error(t, err)
}
