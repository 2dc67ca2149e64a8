package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateTarget is returned when a script declares the same target name twice.
	ErrDuplicateTarget = zerr.New("target already exists")

	// ErrMissingDependency is returned when a target references a dependency that doesn't exist in the script.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the target dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTargetNotFound is returned when a requested target is not declared in the script.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrInvalidTargetName is returned when a target name contains invalid characters.
	ErrInvalidTargetName = zerr.New("invalid target name")

	// ErrInvalidStep is returned when a step does not declare exactly one known action.
	ErrInvalidStep = zerr.New("invalid step")

	// ErrInvalidCondition is returned when a condition does not declare exactly one known check.
	ErrInvalidCondition = zerr.New("invalid condition")

	// ErrInvalidLogLevel is returned when a log level name is not recognized.
	ErrInvalidLogLevel = zerr.New("unknown log level")

	// ErrConfigReadFailed is returned when a script file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read script file")

	// ErrConfigParseFailed is returned when a script file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse script file")

	// ErrSchemaValidationFailed is returned when a script file does not match the script schema.
	ErrSchemaValidationFailed = zerr.New("script does not match schema")

	// ErrContextCreateFailed is returned when the context factory cannot produce an execution context.
	ErrContextCreateFailed = zerr.New("failed to create execution context")

	// ErrSuiteNotStarted is raised when a test target is run before the suite was started.
	// It signals a programming error in the runner, not a test outcome.
	ErrSuiteNotStarted = zerr.New("suite has not been started")

	// ErrSuitePanicked wraps a value recovered from a panic while the suite was running.
	ErrSuitePanicked = zerr.New("suite execution panicked")

	// ErrNoScripts is returned when no script files were found to test.
	ErrNoScripts = zerr.New("You must specify build files to test.")

	// ErrTestsFailed is returned when at least one failure or error was reported and fail-on-error is set.
	ErrTestsFailed = zerr.New("one or more tests did not pass")

	// ErrInvalidFilter is returned when the test name filter is not a valid regular expression.
	ErrInvalidFilter = zerr.New("invalid test filter")

	// ErrInvalidSendLogTo is returned when the report destination is not console, file or both.
	ErrInvalidSendLogTo = zerr.New("invalid report destination, expected 'console', 'file' or 'both'")

	// ErrUnknownReport is returned when a requested report format is not supported.
	ErrUnknownReport = zerr.New("unknown report format, expected 'plain'")

	// ErrReportWriteFailed is returned when a report file cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write report")

	// ErrScanFailed is returned when script discovery fails.
	ErrScanFailed = zerr.New("failed to scan for scripts")

	// ErrFileHashFailed is returned when hashing a script file fails.
	ErrFileHashFailed = zerr.New("failed to hash script file")

	// ErrStoreCreateFailed is returned when the result store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create result store directory")

	// ErrStoreReadFailed is returned when the result store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read result store")

	// ErrStoreUnmarshalFailed is returned when the result store cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal result store")

	// ErrStoreMarshalFailed is returned when the result store cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal result store")

	// ErrStoreWriteFailed is returned when the result store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write result store")

	// ErrCommandFailed is returned when a cmd step exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrEmptyCommand is returned when a cmd step has no arguments.
	ErrEmptyCommand = zerr.New("command is empty")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")
)
