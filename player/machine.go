package player

import (
	"github.com/samber/mo"
	"github.com/stormychel/YouTubePlayerKit/convert"
	"github.com/stormychel/YouTubePlayerKit/events"
	"github.com/stormychel/YouTubePlayerKit/log"
)

// consume drives the state machine off one session's item stream. It
// is the only writer of the derived observables. The loop exits when
// the stream closes, which happens exactly once per session.
func (p *Player) consume(items <-chan events.Item, done chan<- struct{}) {
	defer close(done)

	for item := range items {
		switch {
		case item.Fault != nil:
			p.state.Set(Errored(&FaultError{
				Kind:    item.Fault.Kind,
				Message: item.Fault.Message,
			}))
		case item.Event != nil:
			p.handleEvent(*item.Event)
		}
	}
}

func (p *Player) handleEvent(ev events.Event) {
	switch ev.Name {
	case events.IframeAPIReady:
		log.Debug("iframe API is up")

	case events.IframeAPIFailedToLoad:
		// Ready and Error are terminal within a session; only a fault
		// or a reload moves the state afterwards.
		if p.state.Get().Kind != StateIdle {
			log.Warnf("ignoring iframe API failure in %s state", p.state.Get().Kind)
			return
		}
		p.state.Set(Errored(ErrIframeAPIFailedToLoad))

	case events.Ready:
		if p.state.Get().Kind != StateIdle {
			log.Warnf("ignoring ready notification in %s state", p.state.Get().Kind)
			return
		}
		p.state.Set(Ready())

	case events.StateChange:
		code, err := convert.Int()(ev.Data)
		if err != nil {
			log.Warnf("ignoring state change with unreadable payload: %v", err)
			return
		}
		p.playbackState.Set(mo.Some(PlaybackStateFrom(code)))

	case events.PlaybackQualityChange:
		quality, err := convert.String()(ev.Data)
		if err != nil {
			log.Warnf("ignoring quality change with unreadable payload: %v", err)
			return
		}
		p.playbackQuality.Set(mo.Some(PlaybackQuality(quality)))

	case events.PlaybackRateChange:
		rate, err := convert.Float()(ev.Data)
		if err != nil {
			log.Warnf("ignoring rate change with unreadable payload: %v", err)
			return
		}
		p.playbackRate.Set(mo.Some(rate))

	case events.Error:
		code, err := convert.Int()(ev.Data)
		if err != nil {
			log.Warnf("ignoring error event with unreadable payload: %v", err)
			return
		}
		// A load that never produced a ready player is fatal to the
		// session. Once ready, content errors are logged; operations
		// against the broken content report their own failures.
		if p.state.Get().Kind == StateIdle {
			p.state.Set(Errored(&PlaybackError{Code: code}))
		} else {
			log.Warnf("player reported %v", &PlaybackError{Code: code})
		}

	case events.APIChange:
		log.Debug("player API modules changed")

	case events.AutoplayBlocked:
		p.autoplayBlocked.Emit()

	default:
		log.Debugf("ignoring unknown event %q", ev.Name)
	}
}

// reset rewinds every observable to its session-start value. Called
// under p.mu before a new session's consume loop starts.
func (p *Player) reset() {
	p.state.Set(Idle())
	p.playbackState.Set(mo.None[PlaybackState]())
	p.playbackQuality.Set(mo.None[PlaybackQuality]())
	p.playbackRate.Set(mo.None[float64]())
}
