package ports

import (
	"context"

	"go.trai.ch/sameunit/internal/core/domain"
)

// ScriptScanner finds script files and hashes their content.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type ScriptScanner interface {
	// Scan expands paths into script files. Directories are walked recursively
	// and files matching pattern are kept; explicit file paths are always kept.
	// The result is sorted by path.
	Scan(ctx context.Context, paths []string, pattern string) ([]domain.ScriptFile, error)
}
