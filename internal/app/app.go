// Package app implements the application layer for sameunit.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/sameunit/internal/adapters/report"
	"go.trai.ch/sameunit/internal/adapters/watcher"
	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports"
	"go.trai.ch/sameunit/internal/engine/project"
	"go.trai.ch/sameunit/internal/engine/runner"
	"go.trai.ch/sameunit/internal/ui/output"
	"go.trai.ch/zerr"
)

// ReportPlain selects the plain text report.
const ReportPlain = "plain"

// App represents the main application logic.
type App struct {
	scanner    ports.ScriptScanner
	loader     ports.ScriptLoader
	executor   ports.Executor
	store      ports.ResultStore
	logger     ports.Logger
	renderer   ports.Renderer
	tracer     ports.Listener
	newWatcher watcher.Factory

	stdout   io.Writer
	now      func() time.Time
	newRunID func() string
	debounce time.Duration
}

// New creates a new App instance. tracer and newWatcher may be nil.
func New(
	scanner ports.ScriptScanner,
	loader ports.ScriptLoader,
	executor ports.Executor,
	store ports.ResultStore,
	log ports.Logger,
	renderer ports.Renderer,
	tracer ports.Listener,
	newWatcher watcher.Factory,
) *App {
	return &App{
		scanner:    scanner,
		loader:     loader,
		executor:   executor,
		store:      store,
		logger:     log,
		renderer:   renderer,
		tracer:     tracer,
		newWatcher: newWatcher,
		stdout:     os.Stdout,
		now:        time.Now,
		newRunID:   uuid.NewString,
		debounce:   watcher.DefaultDebounceWindow,
	}
}

// WithOutput sets the writer console reports and the summary are written to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithRunID replaces the run ID generator.
// This is primarily used for testing.
func (a *App) WithRunID(fn func() string) *App {
	a.newRunID = fn
	return a
}

// WithDebounceWindow sets how long watch mode waits for changes to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounce = d
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Paths are script files or directories to search. Defaults to ".".
	Paths []string
	// Pattern matches script file names in directories.
	Pattern string
	// Filter is a regular expression selecting test targets by name.
	Filter string
	// FailOnError makes Run return ErrTestsFailed when any test failed or errored.
	FailOnError bool
	// Changed skips scripts whose content is unchanged since their last passing run.
	Changed bool
	// ReportDir is the directory report files are written to.
	ReportDir string
	// Reports lists the report formats to produce.
	Reports []string
	// LogLevel is the minimum level of captured messages in reports, or "none".
	LogLevel string
	// SendLogTo is where reports go: console, file or both.
	SendLogTo string
	// Summary prints a table of all script results at the end of the run.
	Summary bool
}

// Run tests every script found in opts.Paths.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	filter, err := compileFilter(opts.Filter)
	if err != nil {
		return err
	}

	reportDir := opts.ReportDir
	if reportDir == "" {
		reportDir = domain.DefaultReportPath()
	}

	listeners, err := a.listeners(opts, reportDir)
	if err != nil {
		return err
	}

	files, err := a.scanner.Scan(ctx, defaultPaths(opts.Paths), opts.Pattern)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return domain.ErrNoScripts
	}

	handle := &runHandle{id: a.newRunID(), reportDir: reportDir, logger: a.logger}
	for _, l := range listeners {
		l.SetParent(handle)
	}

	if err := a.renderer.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = a.renderer.Stop()
		_ = a.renderer.Wait()
	}()

	var (
		total   domain.SuiteOutcome
		results = make([]domain.SuiteResult, 0, len(files))
	)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		if opts.Changed && a.unchanged(file) {
			a.logger.Info(fmt.Sprintf("Skipping %s since it is unchanged since its last passing run", file.Path))
			results = append(results, domain.SuiteResult{File: file.Path, Skipped: true})
			continue
		}

		result, err := a.runScript(ctx, file, filter, listeners)
		if err != nil {
			return err
		}
		results = append(results, result)
		if result.Skipped {
			continue
		}
		total.Add(result.Outcome)
		a.record(file, result)
	}

	if opts.Summary {
		report.NewSummary(a.stdout, output.ColorEnabledFor(a.stdout)).Write(results)
	}

	if err := total.Err(); err != nil {
		if opts.FailOnError {
			return err
		}
		a.logger.Warn(total.FailureMessage())
	}
	return nil
}

// runScript runs the selected tests of one script. Only a failure to set up
// the script is returned; test failures are part of the result.
func (a *App) runScript(
	ctx context.Context,
	file domain.ScriptFile,
	filter *regexp.Regexp,
	listeners []ports.Listener,
) (domain.SuiteResult, error) {
	factory := project.NewFactory(file.Path, a.loader, a.executor, listeners...)
	r, err := runner.New(factory)
	if err != nil {
		return domain.SuiteResult{}, zerr.With(err, "script", file.Path)
	}

	tests := r.TestTargets()
	if filter != nil {
		tests = slices.DeleteFunc(tests, func(name string) bool { return !filter.MatchString(name) })
		if len(tests) == 0 {
			return domain.SuiteResult{Script: r.Name(), File: file.Path, Skipped: true}, nil
		}
	}

	a.renderer.OnPlanEmit(r.Name(), tests)

	n := newFanout(listeners, a.now)
	start := a.now()
	r.RunSuite(ctx, tests, n)

	return domain.SuiteResult{
		Script:   r.Name(),
		File:     file.Path,
		Outcome:  n.outcome,
		Tests:    n.results,
		Duration: a.now().Sub(start),
	}, nil
}

// listeners builds the listeners of a run: the tracer and the requested reports.
func (a *App) listeners(opts RunOptions, reportDir string) ([]ports.Listener, error) {
	var listeners []ports.Listener
	if a.tracer != nil {
		listeners = append(listeners, a.tracer)
	}

	for _, name := range opts.Reports {
		if name != ReportPlain {
			return nil, zerr.With(domain.ErrUnknownReport, "report", name)
		}
		sendTo, err := report.ParseSendLogTo(opts.SendLogTo)
		if err != nil {
			return nil, err
		}
		filter, err := report.ParseLogFilter(opts.LogLevel)
		if err != nil {
			return nil, err
		}
		listeners = append(listeners, report.NewPlain(report.Options{
			Console: a.stdout,
			Dir:     reportDir,
			SendTo:  sendTo,
			Log:     filter,
		}))
	}
	return listeners, nil
}

// unchanged reports whether the last run of file passed with the same content.
func (a *App) unchanged(file domain.ScriptFile) bool {
	rec, err := a.store.Get(file.Path)
	if err != nil {
		a.logger.Warn(err.Error())
		return false
	}
	return rec != nil && rec.Passed && rec.ContentHash == file.Hash
}

func (a *App) record(file domain.ScriptFile, result domain.SuiteResult) {
	err := a.store.Put(domain.ScriptRecord{
		Script:      file.Path,
		ContentHash: file.Hash,
		Passed:      !result.Outcome.Failed(),
		Tests:       result.Outcome.Tests,
		Failures:    result.Outcome.Failures,
		Errors:      result.Outcome.Errors,
		Timestamp:   a.now(),
	})
	if err != nil {
		a.logger.Warn(err.Error())
	}
}

func compileFilter(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidFilter.Error()), "filter", expr)
	}
	return re, nil
}

func defaultPaths(paths []string) []string {
	if len(paths) == 0 {
		return []string{"."}
	}
	return paths
}
