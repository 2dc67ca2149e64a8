package ports

import "go.trai.ch/sameunit/internal/core/domain"

// ResultStore defines the interface for storing the last result of each script.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResultStore interface {
	// Get retrieves the record for a script path.
	// Returns nil, nil if not found.
	Get(script string) (*domain.ScriptRecord, error)

	// Put stores the record.
	Put(record domain.ScriptRecord) error
}
