package lang

import (
	"sync"
	"sync/atomic"
)

// A rendezvous channel shared by any number of sender handles and one
// receiver.
type pipe struct {
	ch       chan Value
	senders  atomic.Int32
	gone     chan struct{}
	goneOnce sync.Once
}

// ValueSender is an owning handle to the writing end of a channel. The
// channel is closed when every handle created by Channel or Dup has been
// closed.
type ValueSender struct {
	p      *pipe
	closed *atomic.Bool
}

// ValueReceiver is the reading end of a channel.
type ValueReceiver struct {
	p *pipe
}

// Channel returns the two ends of a new unbuffered channel. A send blocks
// until a receiver is ready to take the value, and vice versa.
func Channel() (ValueSender, ValueReceiver) {
	p := &pipe{ch: make(chan Value), gone: make(chan struct{})}
	p.senders.Store(1)
	return ValueSender{p, new(atomic.Bool)}, ValueReceiver{p}
}

// EmptyChannel returns a receiver that has no values and is already
// exhausted.
func EmptyChannel() ValueReceiver {
	s, r := Channel()
	s.Close()
	return r
}

// Send sends a value. It returns ErrReaderGone if the receiver has been
// closed while or before waiting.
func (s ValueSender) Send(v Value) error {
	select {
	case s.p.ch <- v:
		return nil
	case <-s.p.gone:
		return ErrReaderGone
	}
}

// Dup returns an additional owning handle to the same channel. Each handle
// must be closed separately.
func (s ValueSender) Dup() ValueSender {
	s.p.senders.Add(1)
	return ValueSender{s.p, new(atomic.Bool)}
}

// Close releases the handle. Closing a handle more than once has no effect.
func (s ValueSender) Close() {
	if s.closed.CompareAndSwap(false, true) && s.p.senders.Add(-1) == 0 {
		close(s.p.ch)
	}
}

// Recv receives a value. The second return value is false when the channel
// has been closed and drained.
func (r ValueReceiver) Recv() (Value, bool) {
	v, ok := <-r.p.ch
	return v, ok
}

// Chan returns the underlying channel, for use in range and select
// statements.
func (r ValueReceiver) Chan() <-chan Value {
	return r.p.ch
}

// Drain reads and discards values until the channel is closed.
func (r ValueReceiver) Drain() {
	for range r.p.ch {
	}
}

// Close signals to all senders that no more values will be read. Pending and
// future sends fail with ErrReaderGone.
func (r ValueReceiver) Close() {
	r.p.goneOnce.Do(func() { close(r.p.gone) })
}

// Collect reads all values until the channel is closed.
func (r ValueReceiver) Collect() []Value {
	var vs []Value
	for v := range r.p.ch {
		vs = append(vs, v)
	}
	return vs
}

// PrintSink returns a sender whose values are printed with p, one line each,
// by a background goroutine. The returned function waits for the goroutine to
// finish, which happens after every handle to the sender has been closed.
func PrintSink(p *Printer) (ValueSender, func()) {
	s, r := Channel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for v := range r.Chan() {
			p.Line(ToString(v))
		}
	}()
	return s, func() { <-done }
}
