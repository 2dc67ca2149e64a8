// Package report writes human readable test reports.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports"
	"go.trai.ch/zerr"
)

// SendLogTo selects where a report is written.
type SendLogTo string

const (
	// SendToConsole writes reports to the console writer.
	SendToConsole SendLogTo = "console"
	// SendToFile writes reports to TEST-<name>.txt in the report directory.
	SendToFile SendLogTo = "file"
	// SendToBoth writes reports to the console and to a file.
	SendToBoth SendLogTo = "both"
)

// ParseSendLogTo converts a destination name. An empty name selects the console.
func ParseSendLogTo(name string) (SendLogTo, error) {
	switch SendLogTo(strings.ToLower(strings.TrimSpace(name))) {
	case "", SendToConsole:
		return SendToConsole, nil
	case SendToFile:
		return SendToFile, nil
	case SendToBoth:
		return SendToBoth, nil
	default:
		return "", zerr.With(domain.ErrInvalidSendLogTo, "value", name)
	}
}

// LogFilter is the minimum level a captured message needs to appear in a
// report. The zero value captures nothing.
type LogFilter struct {
	Level   domain.LogLevel
	Enabled bool
}

// ParseLogFilter converts a level name. "none" disables log capture and an
// empty name selects info.
func ParseLogFilter(name string) (LogFilter, error) {
	if strings.EqualFold(strings.TrimSpace(name), "none") {
		return LogFilter{}, nil
	}
	level, err := domain.ParseLogLevel(name, domain.LogLevelInfo)
	if err != nil {
		return LogFilter{}, err
	}
	return LogFilter{Level: level, Enabled: true}, nil
}

// Options configures a Plain listener.
type Options struct {
	// Console receives console reports. Defaults to os.Stdout.
	Console io.Writer
	// Dir is the report directory. Defaults to the directory of the parent run.
	Dir string
	// BaseDir is the directory report file names are made relative to.
	// Defaults to the working directory.
	BaseDir string
	SendTo  SendLogTo
	Log     LogFilter
}

// Plain is a ports.Listener producing one plain text report per suite.
type Plain struct {
	opts Options
	now  func() time.Time

	mu        sync.Mutex
	parent    ports.ParentHandle
	file      string
	start     time.Time
	testStart time.Time
	runs      int
	failures  int
	errors    int
	test      string
	pending   []string
	body      bytes.Buffer
	log       bytes.Buffer
}

// NewPlain creates a Plain listener.
func NewPlain(opts Options) *Plain {
	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	if opts.SendTo == "" {
		opts.SendTo = SendToConsole
	}
	return &Plain{opts: opts, now: time.Now}
}

// SetParent implements ports.Listener.
func (p *Plain) SetParent(parent ports.ParentHandle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.parent = parent
}

// SetCurrentContext implements ports.Listener.
func (p *Plain) SetCurrentContext(ec ports.ExecutionContext) {
	ec.AddObserver(p)
}

// OnBuildEvent implements ports.Observer and captures logged messages.
func (p *Plain) OnBuildEvent(event domain.BuildEvent) {
	if event.Kind != domain.EventMessageLogged || !p.opts.Log.Enabled {
		return
	}
	if !p.opts.Log.Level.Includes(event.Level) {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.log.WriteString(event.Message)
	p.log.WriteByte('\n')
}

// StartSuite implements ports.Listener.
func (p *Plain) StartSuite(ec ports.ExecutionContext) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.file = ec.File()
	p.start = p.now()
	p.runs, p.failures, p.errors = 0, 0, 0
	p.test = ""
	p.pending = nil
	p.body.Reset()
	p.log.Reset()
}

// StartTest implements ports.Listener.
func (p *Plain) StartTest(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.test != "" {
		p.flushTest()
	}
	p.test = name
	p.testStart = p.now()
	p.runs++
}

// EndTest implements ports.Listener.
func (p *Plain) EndTest(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.test == name {
		p.flushTest()
	}
}

// AddFailure implements ports.Listener.
func (p *Plain) AddFailure(name string, failure *domain.BuildError) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.failures++
	p.addProblem(name, "FAILED", failure.Location, failure.Message)
}

// AddError implements ports.Listener.
func (p *Plain) AddError(name string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.errors++
	var location string
	if be, ok := domain.AsBuildError(err); ok {
		location = be.Location
	}
	p.addProblem(name, "Caused an ERROR", location, domain.MessageOf(err))
}

// addProblem buffers the lines of a problem under the open test, or writes
// them directly when the test already ended.
func (p *Plain) addProblem(name, kind, location, msg string) {
	lines := []string{"\t\t" + kind}
	if location != "" {
		lines = append(lines, "\t\t"+location)
	}
	lines = append(lines, "\t\t"+msg)

	if p.test == name {
		p.pending = append(p.pending, lines...)
		return
	}
	for _, line := range lines {
		p.body.WriteString(line)
		p.body.WriteByte('\n')
	}
}

func (p *Plain) flushTest() {
	fmt.Fprintf(&p.body, "\tTarget: %s took %s sec\n", p.test, seconds(p.now().Sub(p.testStart)))
	for _, line := range p.pending {
		p.body.WriteString(line)
		p.body.WriteByte('\n')
	}
	p.test = ""
	p.pending = nil
}

// EndSuite implements ports.Listener and writes the report.
func (p *Plain) EndSuite(_ ports.ExecutionContext, _ error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.test != "" {
		p.flushTest()
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "Build File: %s\n", p.file)
	fmt.Fprintf(&out, "Tests run: %d, Failures: %d, Errors: %d, Time elapsed: %s sec\n",
		p.runs, p.failures, p.errors, seconds(p.now().Sub(p.start)))
	out.Write(p.body.Bytes())
	if p.log.Len() > 0 {
		out.WriteString("------------- Log Output       ---------------\n")
		out.Write(p.log.Bytes())
		out.WriteString("------------- ---------------- ---------------\n")
	}

	if err := p.write(out.Bytes()); err != nil && p.parent != nil {
		p.parent.Logger().Error(err)
	}
}

func (p *Plain) write(report []byte) error {
	if p.opts.SendTo == SendToConsole || p.opts.SendTo == SendToBoth {
		if _, err := p.opts.Console.Write(report); err != nil {
			return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
		}
	}
	if p.opts.SendTo != SendToFile && p.opts.SendTo != SendToBoth {
		return nil
	}

	dir := p.opts.Dir
	if dir == "" && p.parent != nil {
		dir = p.parent.ReportDir()
	}
	path := filepath.Join(dir, FileName(p.opts.BaseDir, p.file))
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, report, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return nil
}

// FileName returns the report file name for a script: TEST-<normalized>.txt.
// The script path is made relative to base, the working directory if empty,
// and dots, colons and separators are replaced so the name reads like a
// dotted class name.
func FileName(base, script string) string {
	if base == "" {
		base, _ = os.Getwd()
	}
	name := script
	if abs, err := filepath.Abs(script); err == nil {
		if rel, err := filepath.Rel(base, abs); err == nil && !strings.HasPrefix(rel, "..") {
			name = rel
		}
	}
	name = strings.TrimPrefix(name, string(filepath.Separator))

	name = strings.NewReplacer(
		".", "_",
		":", "_",
		string(filepath.Separator), ".",
	).Replace(name)
	return "TEST-" + name + ".txt"
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
