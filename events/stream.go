package events

import "sync"

// Stream is an ordered, unbounded conduit of player items. Publishing
// never blocks; consumers read from C in publication order. Closing the
// stream drains whatever was already published, then closes C.
type Stream struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []Item
	closed bool
	out    chan Item
}

// NewStream starts a stream and its delivery goroutine.
func NewStream() *Stream {
	s := &Stream{out: make(chan Item)}
	s.cond = sync.NewCond(&s.mu)
	go s.pump()
	return s
}

// Publish appends an item to the stream. Items published after Close
// are dropped.
func (s *Stream) Publish(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.queue = append(s.queue, item)
	s.cond.Signal()
}

// C is the consumer side of the stream. It closes once the stream is
// closed and fully drained.
func (s *Stream) C() <-chan Item {
	return s.out
}

// Close stops accepting new items. Already-published items still reach
// the consumer before C closes. Close is idempotent.
func (s *Stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cond.Signal()
}

func (s *Stream) pump() {
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.queue) == 0 && s.closed {
			s.mu.Unlock()
			close(s.out)
			return
		}
		item := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		s.out <- item
	}
}
