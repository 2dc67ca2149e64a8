package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ScriptScanner = (*Scanner)(nil)

// Scanner discovers script files and hashes their content.
type Scanner struct {
	walker *Walker
	logger ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(walker *Walker, logger ports.Logger) *Scanner {
	return &Scanner{walker: walker, logger: logger}
}

// Scan implements ports.ScriptScanner. Paths that do not exist are skipped
// with a warning.
func (s *Scanner) Scan(ctx context.Context, paths []string, pattern string) ([]domain.ScriptFile, error) {
	if pattern == "" {
		pattern = domain.DefaultScriptPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "pattern", pattern)
	}

	candidates, err := s.collect(paths, pattern)
	if err != nil {
		return nil, err
	}

	files := make([]domain.ScriptFile, len(candidates))
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range candidates {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			hash, err := ComputeFileHash(path)
			if err != nil {
				return err
			}
			files[i] = domain.ScriptFile{Path: path, Hash: hash}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// collect expands paths into a sorted, deduplicated list of script paths.
func (s *Scanner) collect(paths []string, pattern string) ([]string, error) {
	var found []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				s.logger.Warn("Skipping " + p + " since it doesn't exist")
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "path", p)
		}

		if !info.IsDir() {
			found = append(found, filepath.Clean(p))
			continue
		}

		for file := range s.walker.WalkFiles(p, nil) {
			if matched, _ := filepath.Match(pattern, filepath.Base(file)); matched {
				found = append(found, filepath.Clean(file))
			}
		}
	}

	slices.SortFunc(found, strings.Compare)
	return slices.Compact(found), nil
}
