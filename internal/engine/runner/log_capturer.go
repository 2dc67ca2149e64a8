package runner

import (
	"strings"
	"sync"

	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/core/ports"
)

// LogCapturer records the messages logged on one execution context so that
// conditions can inspect the output of the running test.
type LogCapturer struct {
	mu       sync.Mutex
	ec       ports.ExecutionContext
	messages []domain.BuildEvent
}

// NewLogCapturer creates a LogCapturer, registers it as an observer of ec and
// publishes it as the domain.LogCapturerRef reference.
func NewLogCapturer(ec ports.ExecutionContext) *LogCapturer {
	c := &LogCapturer{ec: ec}
	ec.AddObserver(c)
	ec.AddReference(domain.LogCapturerRef, c)
	return c
}

// OnBuildEvent implements ports.Observer.
func (c *LogCapturer) OnBuildEvent(event domain.BuildEvent) {
	switch event.Kind {
	case domain.EventMessageLogged:
		c.mu.Lock()
		c.messages = append(c.messages, event)
		c.mu.Unlock()
	case domain.EventBuildFinished:
		c.detach()
	default:
	}
}

func (c *LogCapturer) detach() {
	c.mu.Lock()
	ec := c.ec
	c.ec = nil
	c.mu.Unlock()

	if ec != nil {
		ec.RemoveObserver(c)
	}
}

// Log returns the captured messages at level or more severe. Messages are
// concatenated when mergeLines is set and newline terminated otherwise.
func (c *LogCapturer) Log(level domain.LogLevel, mergeLines bool) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sb strings.Builder
	for _, msg := range c.messages {
		if !level.Includes(msg.Level) {
			continue
		}
		sb.WriteString(msg.Message)
		if !mergeLines {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
