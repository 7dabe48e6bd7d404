// Package simulator hosts the player shim in an in-process JavaScript
// runtime and serves the evaluation wire protocol over a pipe. It is
// the reference runtime for tests and for driving the CLI without a
// real embedded browser.
package simulator

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/dop251/goja"
	"github.com/stormychel/YouTubePlayerKit/log"
)

type evalRequest struct {
	RequestID int64  `json:"request_id"`
	Script    string `json:"script"`
}

type evalResponse struct {
	RequestID int64           `json:"request_id"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
}

type eventMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type faultMessage struct {
	Fault   string `json:"fault"`
	Message string `json:"message"`
}

// Simulator produces runtime sessions on demand. Each Connect starts a
// fresh script VM with a pristine player shim, so it can back a player
// across reloads. With AutoReady set, every session announces the
// iframe API and player readiness by itself.
type Simulator struct {
	AutoReady bool

	mu      sync.Mutex
	current *session
}

func New() *Simulator {
	return &Simulator{AutoReady: true}
}

// Connect starts a new session and returns the client side of its
// evaluation channel.
func (s *Simulator) Connect(ctx context.Context) (io.ReadWriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client, server := net.Pipe()
	sess := &session{
		vm:     goja.New(),
		conn:   server,
		outbox: make(chan []byte, 64),
	}

	// The shim reports its own side effects through this hook, so
	// loading or playing inside the VM produces the same notifications
	// a real runtime would.
	if err := sess.vm.Set("__emit", sess.emit); err != nil {
		client.Close()
		server.Close()
		return nil, fmt.Errorf("install event hook: %w", err)
	}
	if _, err := sess.vm.RunString(playerShim); err != nil {
		client.Close()
		server.Close()
		return nil, fmt.Errorf("install player shim: %w", err)
	}

	s.mu.Lock()
	old := s.current
	s.current = sess
	s.mu.Unlock()
	if old != nil {
		old.shutdown()
	}

	go sess.write()
	go sess.serve()

	if s.AutoReady {
		_ = s.Emit("onIframeApiReady", nil)
		_ = s.Emit("onReady", nil)
	}

	return client, nil
}

// Emit delivers an unsolicited player event to the current session.
func (s *Simulator) Emit(name string, payload any) error {
	sess, err := s.session()
	if err != nil {
		return err
	}

	msg := eventMessage{Event: name}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode event payload: %w", err)
		}
		msg.Data = data
	}
	line, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return sess.send(line)
}

// EmitRaw delivers an event with a pre-encoded payload, bypassing any
// marshalling. Tests use it to shape payloads the shim never produces.
func (s *Simulator) EmitRaw(name string, payload json.RawMessage) error {
	sess, err := s.session()
	if err != nil {
		return err
	}
	line, err := json.Marshal(eventMessage{Event: name, Data: payload})
	if err != nil {
		return err
	}
	return sess.send(line)
}

// FailNavigation injects a navigation fault and ends the session.
func (s *Simulator) FailNavigation(message string) error {
	return s.fault("navigation", message)
}

// TerminateProcess injects a process-terminated fault and ends the
// session.
func (s *Simulator) TerminateProcess(message string) error {
	return s.fault("process_terminated", message)
}

// Patch runs raw script in the current session's VM, bypassing the
// wire protocol. It exists for tests that reshape the shim's behavior;
// callers must not race it against in-flight evaluations.
func (s *Simulator) Patch(src string) error {
	sess, err := s.session()
	if err != nil {
		return err
	}
	_, err = sess.vm.RunString(src)
	return err
}

// Close ends the current session without sending a fault first, as if
// the runtime process silently went away.
func (s *Simulator) Close() error {
	s.mu.Lock()
	sess := s.current
	s.current = nil
	s.mu.Unlock()
	if sess != nil {
		sess.shutdown()
	}
	return nil
}

func (s *Simulator) fault(kind, message string) error {
	sess, err := s.session()
	if err != nil {
		return err
	}
	line, lerr := json.Marshal(faultMessage{Fault: kind, Message: message})
	if lerr != nil {
		return lerr
	}
	if err := sess.send(line); err != nil {
		return err
	}
	sess.closeOutbox()
	return nil
}

func (s *Simulator) session() (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, errors.New("no active session")
	}
	return s.current, nil
}

// session is one live runtime: a VM, the server side of the pipe, and
// a single writer draining the outbox so that responses and events
// interleave in a well-defined order.
type session struct {
	vm   *goja.Runtime
	conn net.Conn

	outbox chan []byte

	closeOnce  sync.Once
	outboxOnce sync.Once
}

// emit publishes an event on behalf of the shim.
func (s *session) emit(name string, payload any) {
	msg := eventMessage{Event: name}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			log.Warnf("simulator: cannot encode %q payload: %v", name, err)
			return
		}
		msg.Data = data
	}
	line, err := json.Marshal(msg)
	if err != nil {
		return
	}
	_ = s.send(line)
}

func (s *session) send(line []byte) error {
	// A send on a closed outbox means the session already ended;
	// swallow the panic and report nothing, like a dead runtime would.
	defer func() {
		_ = recover()
	}()
	s.outbox <- line
	return nil
}

func (s *session) closeOutbox() {
	s.outboxOnce.Do(func() {
		close(s.outbox)
	})
}

func (s *session) shutdown() {
	s.closeOutbox()
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
	})
}

// write is the only goroutine touching the connection's write side.
// It exits when the outbox closes, then closes the connection so the
// peer observes EOF after the final line.
func (s *session) write() {
	for line := range s.outbox {
		if _, err := s.conn.Write(append(line, '\n')); err != nil {
			return
		}
	}
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
	})
}

// serve evaluates requests one at a time. The VM is confined to this
// goroutine.
func (s *session) serve() {
	scanner := bufio.NewScanner(s.conn)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req evalRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Warnf("simulator: dropping malformed request: %v", err)
			continue
		}

		resp := s.evaluate(req)
		out, err := json.Marshal(resp)
		if err != nil {
			log.Warnf("simulator: cannot encode response: %v", err)
			continue
		}
		if err := s.send(out); err != nil {
			return
		}
	}

	s.shutdown()
}

func (s *session) evaluate(req evalRequest) evalResponse {
	value, err := s.vm.RunString(req.Script)
	if err != nil {
		return evalResponse{
			RequestID: req.RequestID,
			Data:      json.RawMessage("null"),
			Error:     err.Error(),
		}
	}

	data := json.RawMessage("null")
	if value != nil && !goja.IsUndefined(value) && !goja.IsNull(value) {
		encoded, err := json.Marshal(value.Export())
		if err != nil {
			return evalResponse{
				RequestID: req.RequestID,
				Data:      json.RawMessage("null"),
				Error:     fmt.Sprintf("unserializable result: %v", err),
			}
		}
		data = encoded
	}

	return evalResponse{
		RequestID: req.RequestID,
		Data:      data,
		Error:     "success",
	}
}
