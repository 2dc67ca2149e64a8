package app

import "go.trai.ch/sameunit/internal/core/ports"

// runHandle is the ports.ParentHandle listeners of one run see.
type runHandle struct {
	id        string
	reportDir string
	logger    ports.Logger
}

func (h *runHandle) RunID() string        { return h.id }
func (h *runHandle) ReportDir() string    { return h.reportDir }
func (h *runHandle) Logger() ports.Logger { return h.logger }
