package lang

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"src.crush.sh/pkg/testutil"
)

// A Printer writing to a buffer that can be read safely while jobs are still
// printing.
type testPrinter struct {
	*Printer
	buf *syncBuffer
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestPrinter() testPrinter {
	buf := &syncBuffer{}
	return testPrinter{NewPrinter(buf), buf}
}

// Returns a sender and a function that waits for the channel to be closed and
// returns all the values sent.
func capture() (ValueSender, func() []Value) {
	s, r := Channel()
	ch := make(chan []Value, 1)
	go func() { ch <- r.Collect() }()
	return s, func() []Value { return <-ch }
}

// Returns a receiver that yields the given values and is then closed.
func feed(vs ...Value) ValueReceiver {
	s, r := Channel()
	go func() {
		defer s.Close()
		for _, v := range vs {
			s.Send(v)
		}
	}()
	return r
}

func waitOrFail(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(testutil.Scaled(2 * time.Second)):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func call(head ValueDefinition, args ...ArgumentDefinition) CallDefinition {
	return NewCallDefinition(head, args)
}

func lit(v Value) ValueDefinition { return Literal{v} }

func jobs(calls ...CallDefinition) []Job {
	js := make([]Job, len(calls))
	for i, c := range calls {
		js[i] = NewJob(c)
	}
	return js
}

func nop(*ExecutionContext) error { return nil }
