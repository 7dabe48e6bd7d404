// Package bridge carries script evaluations to the embedded runtime and
// routes its responses, events and faults back out.
package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/stormychel/YouTubePlayerKit/events"
	"github.com/stormychel/YouTubePlayerKit/jsvalue"
	"github.com/stormychel/YouTubePlayerKit/log"
	"github.com/stormychel/YouTubePlayerKit/script"
)

type outcome struct {
	value jsvalue.Value
	err   error
}

// Bridge multiplexes request/response evaluation and unsolicited event
// delivery over a single duplex channel. Each request is answered at
// most once; every pending request is failed with ErrUnavailable when
// the channel goes away.
type Bridge struct {
	conn   io.ReadWriteCloser
	stream *events.Stream

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[int64]chan outcome
	closed  bool

	nextID atomic.Int64
}

// New wraps an established channel and starts routing inbound traffic.
// The bridge owns the channel from this point on.
func New(conn io.ReadWriteCloser) *Bridge {
	b := &Bridge{
		conn:    conn,
		stream:  events.NewStream(),
		pending: make(map[int64]chan outcome),
	}
	go b.readLoop()
	return b
}

// Events is the ordered stream of player events and transport faults.
// It closes after the bridge shuts down and all buffered items have
// been delivered.
func (b *Bridge) Events() <-chan events.Item {
	return b.stream.C()
}

// Evaluate sends the expression to the runtime and waits for its single
// response. Context cancellation abandons the wait; a late response for
// an abandoned request is discarded.
func (b *Bridge) Evaluate(ctx context.Context, expr script.Expression) (jsvalue.Value, error) {
	id := b.nextID.Add(1)
	ch := make(chan outcome, 1)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return jsvalue.Null(), ErrUnavailable
	}
	b.pending[id] = ch
	b.mu.Unlock()

	payload, err := json.Marshal(request{RequestID: id, Script: expr.Raw()})
	if err != nil {
		b.forget(id)
		return jsvalue.Null(), fmt.Errorf("encode evaluation request: %w", err)
	}
	payload = append(payload, '\n')

	b.writeMu.Lock()
	_, err = b.conn.Write(payload)
	b.writeMu.Unlock()
	if err != nil {
		b.forget(id)
		return jsvalue.Null(), ErrUnavailable
	}

	log.Debugf("evaluate #%d: %s", id, expr.Raw())

	select {
	case out := <-ch:
		var scriptErr *ScriptError
		if errors.As(out.err, &scriptErr) {
			scriptErr.Script = expr.Raw()
		}
		return out.value, out.err
	case <-ctx.Done():
		b.forget(id)
		return jsvalue.Null(), ctx.Err()
	}
}

// Close tears the channel down. Pending evaluations fail with
// ErrUnavailable; no fault is synthesized for a deliberate close.
func (b *Bridge) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	stale := b.drainPendingLocked()
	b.mu.Unlock()

	for _, ch := range stale {
		ch <- outcome{value: jsvalue.Null(), err: ErrUnavailable}
	}

	err := b.conn.Close()
	b.stream.Close()
	return err
}

func (b *Bridge) forget(id int64) {
	b.mu.Lock()
	delete(b.pending, id)
	b.mu.Unlock()
}

// drainPendingLocked detaches every pending channel. Caller holds mu.
func (b *Bridge) drainPendingLocked() []chan outcome {
	stale := make([]chan outcome, 0, len(b.pending))
	for id, ch := range b.pending {
		stale = append(stale, ch)
		delete(b.pending, id)
	}
	return stale
}

func (b *Bridge) readLoop() {
	scanner := bufio.NewScanner(b.conn)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var msg inbound
		if err := json.Unmarshal(line, &msg); err != nil {
			log.Warnf("discarding malformed inbound message: %v", err)
			continue
		}

		switch {
		case msg.Fault != "":
			b.dispatchFault(events.FaultKind(msg.Fault), msg.Message)
			return
		case msg.Event != "":
			b.dispatchEvent(msg)
		case msg.RequestID != nil:
			b.dispatchResponse(msg)
		default:
			log.Warnf("discarding unroutable inbound message: %s", line)
		}
	}

	// EOF or a read error. If the bridge was closed on purpose the
	// stream is already shut; otherwise the runtime died under us.
	b.mu.Lock()
	closed := b.closed
	b.closed = true
	stale := b.drainPendingLocked()
	b.mu.Unlock()

	for _, ch := range stale {
		ch <- outcome{value: jsvalue.Null(), err: ErrUnavailable}
	}

	if !closed {
		b.stream.Publish(events.Item{Fault: &events.Fault{
			Kind:    events.ProcessTerminated,
			Message: "evaluation channel closed unexpectedly",
		}})
		b.stream.Close()
		_ = b.conn.Close()
	}
}

// dispatchFault ends the session: the fault reaches the stream, every
// pending evaluation fails, and no further traffic is read.
func (b *Bridge) dispatchFault(kind events.FaultKind, message string) {
	b.mu.Lock()
	b.closed = true
	stale := b.drainPendingLocked()
	b.mu.Unlock()

	for _, ch := range stale {
		ch <- outcome{value: jsvalue.Null(), err: ErrUnavailable}
	}

	b.stream.Publish(events.Item{Fault: &events.Fault{Kind: kind, Message: message}})
	b.stream.Close()
	_ = b.conn.Close()
}

func (b *Bridge) dispatchEvent(msg inbound) {
	data, err := jsvalue.Parse(msg.Data)
	if err != nil {
		log.Warnf("event %q carried an unreadable payload: %v", msg.Event, err)
		data = jsvalue.Null()
	}
	b.stream.Publish(events.Item{Event: &events.Event{
		Name: events.Name(msg.Event),
		Data: data,
	}})
}

func (b *Bridge) dispatchResponse(msg inbound) {
	b.mu.Lock()
	ch, ok := b.pending[*msg.RequestID]
	if ok {
		delete(b.pending, *msg.RequestID)
	}
	b.mu.Unlock()

	if !ok {
		log.Debugf("discarding response for unknown request #%d", *msg.RequestID)
		return
	}

	if msg.Error != "" && msg.Error != statusSuccess {
		ch <- outcome{value: jsvalue.Null(), err: &ScriptError{Message: msg.Error}}
		return
	}

	value, err := jsvalue.Parse(msg.Data)
	if err != nil {
		ch <- outcome{value: jsvalue.Null(), err: fmt.Errorf("decode response for request #%d: %w", *msg.RequestID, err)}
		return
	}
	ch <- outcome{value: value, err: nil}
}
