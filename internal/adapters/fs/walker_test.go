package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sameunit/internal/adapters/fs"
	"go.trai.ch/sameunit/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "file1.txt"), "content1")
	writeFile(t, filepath.Join(tmpDir, "dir1", "file2.txt"), "content2")
	writeFile(t, filepath.Join(tmpDir, "dir2", "file3.txt"), "content3")

	var files []string
	for filePath := range fs.NewWalker().WalkFiles(tmpDir, nil) {
		files = append(files, filePath)
	}

	assert.ElementsMatch(t, []string{
		filepath.Join(tmpDir, "file1.txt"),
		filepath.Join(tmpDir, "dir1", "file2.txt"),
		filepath.Join(tmpDir, "dir2", "file3.txt"),
	}, files)
}

func TestWalker_WalkFiles_SkipsMetadataDirs(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "gitconfig")
	writeFile(t, filepath.Join(tmpDir, ".jj", "store"), "jjstore")
	writeFile(t, filepath.Join(tmpDir, domain.SameUnitDirName, "results", "x.json"), "{}")
	writeFile(t, filepath.Join(tmpDir, "src", "a_test.yaml"), "targets: {}")

	var files []string
	for filePath := range fs.NewWalker().WalkFiles(tmpDir, nil) {
		files = append(files, filePath)
	}

	assert.Equal(t, []string{filepath.Join(tmpDir, "src", "a_test.yaml")}, files)
}

func TestWalker_WalkFiles_Ignores(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "vendor", "x_test.yaml"), "")
	writeFile(t, filepath.Join(tmpDir, "keep_test.yaml"), "")
	writeFile(t, filepath.Join(tmpDir, "skip.tmp"), "")

	var files []string
	for filePath := range fs.NewWalker().WalkFiles(tmpDir, []string{"vendor", "*.tmp"}) {
		files = append(files, filePath)
	}

	assert.Equal(t, []string{filepath.Join(tmpDir, "keep_test.yaml")}, files)
}

func TestWalker_WalkFiles_EarlyBreak(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a"), "")
	writeFile(t, filepath.Join(tmpDir, "b"), "")

	count := 0
	for range fs.NewWalker().WalkFiles(tmpDir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
