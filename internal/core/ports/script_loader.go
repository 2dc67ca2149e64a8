package ports

import "go.trai.ch/sameunit/internal/core/domain"

// ScriptLoader defines the interface for loading test scripts.
//
//go:generate mockgen -source=script_loader.go -destination=mocks/mock_script_loader.go -package=mocks
type ScriptLoader interface {
	// Load reads and validates the script file at path.
	Load(path string) (*domain.Script, error)
}
