// Package linear provides a synchronous, line-buffered console renderer.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/ui/output"
	"go.trai.ch/sameunit/internal/ui/style"
)

// Renderer implements ports.Renderer for terminals and CI logs.
// It outputs linear, chronological lines prefixed with the suite and test name.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	tasks   map[string]*taskState // spanID -> task state
	buffers map[string]*bytes.Buffer
}

type taskState struct {
	prefix    string
	startTime time.Time
}

// NewRenderer creates a new Renderer. Nil writers default to the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  output.NewWithProfile(stderr, output.ColorProfileANSI),
		tasks:   make(map[string]*taskState),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// Start is a no-op for the linear renderer.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes all remaining buffers.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID := range r.buffers {
		r.flushBufferLocked(spanID)
	}

	return nil
}

// Wait is a no-op for the linear renderer.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints the tests about to run.
func (r *Renderer) OnPlanEmit(script string, tests []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Running %d test(s) from %s\n", len(tests), script)
}

// OnTaskStart prints a start message. Test prefixes include the suite name.
func (r *Renderer) OnTaskStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := name
	if parent, ok := r.tasks[parentID]; ok {
		prefix = parent.prefix + "/" + name
	}

	r.tasks[spanID] = &taskState{
		prefix:    prefix,
		startTime: startTime,
	}
	r.buffers[spanID] = new(bytes.Buffer)

	label := r.output.String(fmt.Sprintf("[%s]", prefix)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", label)
}

// OnTaskLog buffers log data and prints complete lines with the task prefix.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Incomplete line, put it back.
			if len(line) > 0 {
				newBuf := new(bytes.Buffer)
				newBuf.Write(line)
				r.buffers[spanID] = newBuf
			}
			break
		}

		r.printLineLocked(task.prefix, line)
	}
}

// OnTaskComplete flushes the remaining buffer and prints the outcome.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, status domain.TestStatus, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}

	r.flushBufferLocked(spanID)

	duration := endTime.Sub(task.startTime)
	prefix := fmt.Sprintf("[%s]", task.prefix)

	switch {
	case status == domain.TestPassed:
		_, _ = fmt.Fprintf(r.stderr, "%s %s Passed in %v\n", prefix, r.icon(status), duration)
	case status == domain.TestFailed:
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, r.icon(status), duration, err)
	case status == domain.TestErrored:
		_, _ = fmt.Fprintf(r.stderr, "%s %s Error after %v: %v\n", prefix, r.icon(status), duration, err)
	case err != nil:
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, r.icon(domain.TestFailed), duration, err)
	default:
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, r.icon(domain.TestPassed), duration)
	}

	delete(r.tasks, spanID)
	delete(r.buffers, spanID)
}

func (r *Renderer) icon(status domain.TestStatus) string {
	return r.output.String(style.StatusIcon(status)).
		Foreground(r.output.Color(string(style.StatusColor(status)))).
		String()
}

// flushBufferLocked flushes any remaining data in the buffer for a task.
// Must be called with r.mu held.
func (r *Renderer) flushBufferLocked(spanID string) {
	task, ok := r.tasks[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	if buf.Len() > 0 {
		r.printLineLocked(task.prefix, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked prints a line with the task prefix.
// Must be called with r.mu held.
func (r *Renderer) printLineLocked(prefix string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	if len(line) == 0 {
		return
	}

	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", prefix, string(line))
}
