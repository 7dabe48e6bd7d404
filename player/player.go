// Package player exposes the embedded video player as typed operations
// and observable state.
package player

import (
	"context"
	"errors"
	"sync"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/stormychel/YouTubePlayerKit/bridge"
	"github.com/stormychel/YouTubePlayerKit/constant"
	"github.com/stormychel/YouTubePlayerKit/convert"
	"github.com/stormychel/YouTubePlayerKit/key"
	"github.com/stormychel/YouTubePlayerKit/script"
)

// Player drives one embedded player through the host's evaluation
// channel. All methods are safe for concurrent use. A Player starts
// disconnected; Connect establishes the first session and Reload
// replaces it.
type Player struct {
	host Host

	mu          sync.Mutex
	br          *bridge.Bridge
	machineDone chan struct{}

	state           *observable[State]
	playbackState   *observable[mo.Option[PlaybackState]]
	playbackQuality *observable[mo.Option[PlaybackQuality]]
	playbackRate    *observable[mo.Option[float64]]
	source          *observable[mo.Option[Source]]
	autoplayBlocked *signal
}

// New builds a disconnected player on top of the given host.
func New(host Host) *Player {
	return &Player{
		host: host,
		state: newObservable(Idle(), func(a, b State) bool {
			return a.Equal(b)
		}),
		playbackState: newObservable(mo.None[PlaybackState](), optionEqual(func(a, b PlaybackState) bool {
			return a == b
		})),
		playbackQuality: newObservable(mo.None[PlaybackQuality](), optionEqual(func(a, b PlaybackQuality) bool {
			return a == b
		})),
		playbackRate: newObservable(mo.None[float64](), optionEqual(func(a, b float64) bool {
			return a == b
		})),
		source: newObservable(mo.None[Source](), optionEqual(func(a, b Source) bool {
			return a.Equal(b)
		})),
		autoplayBlocked: newSignal(),
	}
}

// Connect starts a session: the host brings the runtime up, and the
// state machine begins consuming its events. Connecting while already
// connected is an error; use Reload to replace a session.
func (p *Player) Connect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.br != nil {
		return errors.New("player is already connected")
	}

	conn, err := p.host.Connect(ctx)
	if err != nil {
		return &APIError{Reason: "connect", Cause: err}
	}

	p.br = bridge.New(conn)
	p.machineDone = make(chan struct{})
	p.reset()
	go p.consume(p.br.Events(), p.machineDone)
	return nil
}

// Close tears the current session down. In-flight evaluations fail
// with bridge.ErrUnavailable. Closing a disconnected player is a no-op.
func (p *Player) Close() error {
	p.mu.Lock()
	br := p.br
	done := p.machineDone
	p.br = nil
	p.machineDone = nil
	p.mu.Unlock()

	if br == nil {
		return nil
	}
	err := br.Close()
	<-done
	return err
}

// Reload replaces the current session with a fresh one. The player
// object is destroyed best-effort first (its errors are discarded),
// then the result of the new session decides the outcome: the next
// Ready resolves nil, the next Error returns its cause. Whatever state
// was held before the call never decides the result.
func (p *Player) Reload(ctx context.Context) error {
	if expr, err := script.Call(objectName(), "destroy"); err == nil {
		if br, err := p.currentBridge(); err == nil {
			_, _ = br.Evaluate(ctx, expr)
		}
	}
	_ = p.Close()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	updates := p.state.Subscribe(watchCtx)

	// Drop the snapshot: it is the pre-reload value.
	select {
	case <-updates:
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := p.Connect(ctx); err != nil {
		return err
	}

	for {
		select {
		case s := <-updates:
			switch s.Kind {
			case StateReady:
				return nil
			case StateError:
				return s.Err
			}
			// Intermediate Idle from the session reset; keep waiting.
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// objectName resolves the name of the sandboxed player object, which
// can be overridden through configuration.
func objectName() string {
	if name := viper.GetString(key.PlayerScriptObject); name != "" {
		return name
	}
	return constant.PlayerObject
}

func (p *Player) currentBridge() (*bridge.Bridge, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.br == nil {
		return nil, bridge.ErrUnavailable
	}
	return p.br, nil
}

// evaluate runs one operation end to end: a failed expression build, a
// failed evaluation, or a failed conversion all surface as *APIError
// with the original cause preserved.
func evaluate[T any](ctx context.Context, p *Player, reason string, expr script.Expression, buildErr error, conv convert.Converter[T]) (T, error) {
	var zero T
	if buildErr != nil {
		return zero, &APIError{Reason: reason, Cause: buildErr}
	}

	br, err := p.currentBridge()
	if err != nil {
		return zero, &APIError{Reason: reason, Cause: err}
	}

	raw, err := br.Evaluate(ctx, expr)
	if err != nil {
		return zero, &APIError{Reason: reason, Cause: err}
	}

	out, err := conv(raw)
	if err != nil {
		return zero, &APIError{Reason: reason, Cause: err}
	}
	return out, nil
}

// command is the shorthand for fire-and-forget player functions.
func (p *Player) command(ctx context.Context, reason, function string, args ...any) error {
	expr, err := script.Call(objectName(), function, args...)
	_, err = evaluate(ctx, p, reason, expr, err, convert.Void())
	return err
}
