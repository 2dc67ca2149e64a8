package app

import (
	"context"

	"go.trai.ch/sameunit/internal/core/domain"
)

// ScriptListing describes the tests of one script.
type ScriptListing struct {
	Name     string
	File     string
	Tests    []string
	Fixtures domain.FixturePresence
}

// List loads every script found in paths without running anything.
func (a *App) List(ctx context.Context, paths []string, pattern string) ([]ScriptListing, error) {
	files, err := a.scanner.Scan(ctx, defaultPaths(paths), pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, domain.ErrNoScripts
	}

	listings := make([]ScriptListing, 0, len(files))
	for _, file := range files {
		script, err := a.loader.Load(file.Path)
		if err != nil {
			return nil, err
		}
		listings = append(listings, ScriptListing{
			Name:     script.Name,
			File:     script.File,
			Tests:    script.TestTargets(),
			Fixtures: script.Fixtures(),
		})
	}
	return listings, nil
}
