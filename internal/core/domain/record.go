package domain

import "time"

// ScriptRecord represents the stored result of the last run of a script.
type ScriptRecord struct {
	Script      string    `json:"script,omitzero"`
	ContentHash string    `json:"content_hash,omitzero"`
	Passed      bool      `json:"passed,omitzero"`
	Tests       int       `json:"tests,omitzero"`
	Failures    int       `json:"failures,omitzero"`
	Errors      int       `json:"errors,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}

// ScriptFile is a discovered script with the hash of its content.
type ScriptFile struct {
	Path string
	Hash string
}
