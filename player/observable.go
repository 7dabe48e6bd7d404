package player

import (
	"context"
	"sync"

	"github.com/samber/mo"
)

// observable is a de-duplicated broadcast cell: a single producer sets
// values, any number of readers observe them. Subscribers first receive
// a snapshot of the current value, then every change; a Set that equals
// the held value is silently dropped. Delivery to each subscriber is
// ordered and never blocks the producer. Cancelling a subscriber only
// detaches that subscriber.
type observable[T any] struct {
	mu      sync.Mutex
	current T
	equal   func(T, T) bool
	subs    map[int]*mailbox[T]
	nextID  int
}

func newObservable[T any](initial T, equal func(T, T) bool) *observable[T] {
	return &observable[T]{
		current: initial,
		equal:   equal,
		subs:    make(map[int]*mailbox[T]),
	}
}

// Get returns the current value.
func (o *observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Set publishes a new value to every subscriber unless it equals the
// held one.
func (o *observable[T]) Set(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.equal(o.current, v) {
		return
	}
	o.current = v
	for _, mb := range o.subs {
		mb.push(v)
	}
}

// Subscribe registers a reader. The returned channel yields the current
// value first and closes once ctx is done.
func (o *observable[T]) Subscribe(ctx context.Context) <-chan T {
	mb := newMailbox[T](ctx)

	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs[id] = mb
	mb.push(o.current)
	o.mu.Unlock()

	go func() {
		<-ctx.Done()
		o.mu.Lock()
		delete(o.subs, id)
		o.mu.Unlock()
		mb.stop()
	}()

	return mb.out
}

// mailbox is the per-subscriber delivery queue: unbounded, ordered,
// drained by its own goroutine so a slow reader never stalls anyone.
type mailbox[T any] struct {
	ctx  context.Context
	mu   sync.Mutex
	cond *sync.Cond
	buf  []T
	done bool
	out  chan T
}

func newMailbox[T any](ctx context.Context) *mailbox[T] {
	mb := &mailbox[T]{ctx: ctx, out: make(chan T)}
	mb.cond = sync.NewCond(&mb.mu)
	go mb.pump()
	return mb
}

func (mb *mailbox[T]) push(v T) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.done {
		return
	}
	mb.buf = append(mb.buf, v)
	mb.cond.Signal()
}

func (mb *mailbox[T]) stop() {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.done {
		return
	}
	mb.done = true
	mb.cond.Signal()
}

func (mb *mailbox[T]) pump() {
	for {
		mb.mu.Lock()
		for len(mb.buf) == 0 && !mb.done {
			mb.cond.Wait()
		}
		if mb.done {
			mb.mu.Unlock()
			close(mb.out)
			return
		}
		v := mb.buf[0]
		mb.buf = mb.buf[1:]
		mb.mu.Unlock()

		select {
		case mb.out <- v:
		case <-mb.ctx.Done():
			mb.stop()
		}
	}
}

// optionEqual lifts a value equality to mo.Option equality.
func optionEqual[T any](eq func(T, T) bool) func(mo.Option[T], mo.Option[T]) bool {
	return func(a, b mo.Option[T]) bool {
		av, aok := a.Get()
		bv, bok := b.Get()
		if aok != bok {
			return false
		}
		if !aok {
			return true
		}
		return eq(av, bv)
	}
}

// signal is a broadcast of bare occurrences: no payload, no snapshot,
// no de-duplication. Used for notifications that carry no state.
type signal struct {
	mu     sync.Mutex
	subs   map[int]*mailbox[struct{}]
	nextID int
}

func newSignal() *signal {
	return &signal{subs: make(map[int]*mailbox[struct{}])}
}

func (s *signal) Emit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, mb := range s.subs {
		mb.push(struct{}{})
	}
}

func (s *signal) Subscribe(ctx context.Context) <-chan struct{} {
	mb := newMailbox[struct{}](ctx)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = mb
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
		mb.stop()
	}()

	return mb.out
}
