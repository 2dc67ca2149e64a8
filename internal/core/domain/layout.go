package domain

import "path/filepath"

const (
	// SameUnitDirName is the name of the internal workspace directory.
	SameUnitDirName = ".sameunit"

	// StoreDirName is the name of the result store directory.
	StoreDirName = "results"

	// ReportDirName is the name of the default report directory.
	ReportDirName = "reports"

	// ConfigFileName is the name of the optional CLI configuration file.
	ConfigFileName = ".sameunit.yaml"

	// DefaultScriptPattern matches test script files during discovery.
	DefaultScriptPattern = "*_test.yaml"

	// ScriptSuffix is stripped from script file names to derive default script names.
	ScriptSuffix = "_test.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultSameUnitPath returns the default root directory for sameunit metadata.
func DefaultSameUnitPath() string {
	return SameUnitDirName
}

// DefaultStorePath returns the default path for the result store.
// It joins .sameunit and results.
func DefaultStorePath() string {
	return filepath.Join(SameUnitDirName, StoreDirName)
}

// DefaultReportPath returns the default directory for report files.
// It joins .sameunit and reports.
func DefaultReportPath() string {
	return filepath.Join(SameUnitDirName, ReportDirName)
}
