package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/Alia5/padwatch/source"
)

// EventLogger writes raw input events verbatim, one line each.
type EventLogger interface {
	LogEvent(ev source.Event)
}

type eventLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewEventLogger creates an EventLogger. If w is nil, returns a no-op logger.
func NewEventLogger(w io.Writer) EventLogger {
	return &eventLogger{w: w}
}

// LogEvent emits "<timestamp> <type> <code> <value>". The timestamp is the
// one reported by the device.
func (l *eventLogger) LogEvent(ev source.Event) {
	if l.w == nil {
		return
	}

	line := fmt.Sprintf("%s %s %s %d\n",
		ev.Time.Format("2006/01/02 15:04:05.000000"),
		ev.Type,
		ev.Code,
		ev.Value)

	l.mu.Lock()
	_, _ = io.WriteString(l.w, line)
	l.mu.Unlock()
}
