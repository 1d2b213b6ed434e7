package testing

import (
	"context"
	"sync"
	"testing"

	"github.com/Alia5/padwatch/control"
	"github.com/Alia5/padwatch/source"
)

// ScriptedSource hands out fixed batches in order. Once they are exhausted
// it returns the configured error, or blocks until ctx is done.
type ScriptedSource struct {
	mu       sync.Mutex
	batches  [][]source.Event
	err      error
	reads    int
	drained  chan struct{}
	drainOne sync.Once
}

func NewScriptedSource(t *testing.T, batches ...[]source.Event) *ScriptedSource {
	t.Helper()
	return &ScriptedSource{
		batches: batches,
		drained: make(chan struct{}),
	}
}

// FailWith makes reads after the last batch return err.
func (s *ScriptedSource) FailWith(err error) *ScriptedSource {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	return s
}

// Drained is closed on the first read after the last batch was handed out.
func (s *ScriptedSource) Drained() <-chan struct{} {
	return s.drained
}

// Reads returns how many times ReadEvents was called.
func (s *ScriptedSource) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func (s *ScriptedSource) ReadEvents(ctx context.Context) ([]source.Event, error) {
	s.mu.Lock()
	s.reads++
	if len(s.batches) > 0 {
		b := s.batches[0]
		s.batches = s.batches[1:]
		s.mu.Unlock()
		return b, nil
	}
	err := s.err
	s.mu.Unlock()

	s.drainOne.Do(func() { close(s.drained) })
	if err != nil {
		return nil, err
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

// Recorder collects the inputs delivered to its callback.
type Recorder struct {
	mu     sync.Mutex
	inputs []control.Input
}

func (r *Recorder) Callback() control.Callback {
	return func(_ context.Context, in control.Input) {
		r.mu.Lock()
		r.inputs = append(r.inputs, in)
		r.mu.Unlock()
	}
}

func (r *Recorder) Inputs() []control.Input {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]control.Input(nil), r.inputs...)
}

// EventRecorder is an event sink that keeps everything it receives.
type EventRecorder struct {
	mu     sync.Mutex
	events []source.Event
}

func (r *EventRecorder) LogEvent(ev source.Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *EventRecorder) Events() []source.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]source.Event(nil), r.events...)
}
