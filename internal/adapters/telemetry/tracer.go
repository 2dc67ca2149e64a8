// Package telemetry records suites and tests as OpenTelemetry spans.
package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports"
)

// InstrumentationName is the name of the tracer spans are created with.
const InstrumentationName = "go.trai.ch/sameunit"

// Span attribute keys.
const (
	RunIDKey    = attribute.Key("sameunit.run_id")
	ScriptKey   = attribute.Key("sameunit.script")
	OutcomeKey  = attribute.Key("sameunit.outcome")
	TestsKey    = attribute.Key("sameunit.tests")
	FailuresKey = attribute.Key("sameunit.failures")
	ErrorsKey   = attribute.Key("sameunit.errors")
)

// LogSink receives the log output captured under a span.
type LogSink interface {
	OnTaskLog(spanID string, data []byte)
}

// NewProvider returns a tracer provider whose spans are forwarded to renderer.
func NewProvider(renderer ports.Renderer) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewBridge(renderer)))
}

// Tracer is a ports.Listener that opens a span per suite and a child span per
// test. Log messages of the observed contexts are sent to the sink under the
// innermost open span.
type Tracer struct {
	tracer trace.Tracer
	sink   LogSink

	mu       sync.Mutex
	parent   ports.ParentHandle
	suiteCtx context.Context
	suite    trace.Span
	test     *testSpan
	outcome  domain.SuiteOutcome
}

type testSpan struct {
	name   string
	span   trace.Span
	status domain.TestStatus
}

// NewTracer creates a Tracer on tp. sink may be nil.
func NewTracer(tp trace.TracerProvider, sink LogSink) *Tracer {
	return &Tracer{
		tracer: tp.Tracer(InstrumentationName),
		sink:   sink,
	}
}

// SetParent implements ports.Listener.
func (t *Tracer) SetParent(parent ports.ParentHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.parent = parent
}

// SetCurrentContext implements ports.Listener.
func (t *Tracer) SetCurrentContext(ec ports.ExecutionContext) {
	ec.AddObserver(t)
}

// OnBuildEvent implements ports.Observer.
func (t *Tracer) OnBuildEvent(event domain.BuildEvent) {
	if event.Kind != domain.EventMessageLogged || t.sink == nil {
		return
	}

	t.mu.Lock()
	span := t.suite
	if t.test != nil {
		span = t.test.span
	}
	t.mu.Unlock()

	if span == nil {
		return
	}
	t.sink.OnTaskLog(span.SpanContext().SpanID().String(), []byte(event.Message+"\n"))
}

// StartSuite implements ports.Listener.
func (t *Tracer) StartSuite(ec ports.ExecutionContext) {
	t.mu.Lock()
	defer t.mu.Unlock()

	attrs := []attribute.KeyValue{ScriptKey.String(ec.File())}
	if t.parent != nil {
		attrs = append(attrs, RunIDKey.String(t.parent.RunID()))
	}

	t.suiteCtx, t.suite = t.tracer.Start(context.Background(), ec.Name(), trace.WithAttributes(attrs...))
	t.test = nil
	t.outcome = domain.SuiteOutcome{}
}

// EndSuite implements ports.Listener.
func (t *Tracer) EndSuite(_ ports.ExecutionContext, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.suite == nil {
		return
	}
	if t.test != nil {
		t.finish(t.test)
		t.test = nil
	}

	if err != nil {
		t.suite.RecordError(err)
		t.suite.SetStatus(codes.Error, domain.MessageOf(err))
	}
	t.suite.SetAttributes(
		TestsKey.Int(t.outcome.Tests),
		FailuresKey.Int(t.outcome.Failures),
		ErrorsKey.Int(t.outcome.Errors),
	)
	t.suite.End()
	t.suite = nil
	t.suiteCtx = nil
}

// StartTest implements ports.Listener.
func (t *Tracer) StartTest(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.test != nil {
		t.finish(t.test)
	}
	t.test = t.start(name)
}

// EndTest implements ports.Listener.
func (t *Tracer) EndTest(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.test == nil || t.test.name != name {
		return
	}
	t.outcome.Tests++
	t.finish(t.test)
	t.test = nil
}

// AddFailure implements ports.Listener.
func (t *Tracer) AddFailure(name string, failure *domain.BuildError) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.outcome.Failures++
	t.record(name, domain.TestFailed, failure, failure.Message)
}

// AddError implements ports.Listener.
func (t *Tracer) AddError(name string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.outcome.Errors++
	t.record(name, domain.TestErrored, err, domain.MessageOf(err))
}

// record marks the open span of name. A report for a test whose span already
// ended, such as a tearDown failure, gets a span of its own.
func (t *Tracer) record(name string, status domain.TestStatus, err error, msg string) {
	ts := t.test
	instant := ts == nil || ts.name != name
	if instant {
		ts = t.start(name)
	}

	if ts.status != domain.TestFailed {
		ts.status = status
	}
	ts.span.RecordError(err)
	ts.span.SetStatus(codes.Error, msg)

	if instant {
		t.finish(ts)
	}
}

func (t *Tracer) start(name string) *testSpan {
	parent := t.suiteCtx
	if parent == nil {
		parent = context.Background()
	}
	_, span := t.tracer.Start(parent, name)
	return &testSpan{name: name, span: span, status: domain.TestPassed}
}

func (t *Tracer) finish(ts *testSpan) {
	ts.span.SetAttributes(OutcomeKey.String(string(ts.status)))
	ts.span.End()
}
