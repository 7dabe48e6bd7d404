package player

import (
	"errors"
	"fmt"

	"github.com/stormychel/YouTubePlayerKit/events"
)

// ErrIframeAPIFailedToLoad reports that the player page never managed
// to bring the iframe API up.
var ErrIframeAPIFailedToLoad = errors.New("iframe API failed to load")

// APIError wraps a failed player operation with the operation it
// belongs to. The cause keeps its original type for errors.As.
type APIError struct {
	Reason string
	Cause  error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %v", e.Reason, e.Cause)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// PlaybackError is a player-reported content error, identified by the
// raw error code of the embedded player.
type PlaybackError struct {
	Code int
}

func (e *PlaybackError) Error() string {
	switch e.Code {
	case 2:
		return "playback error: invalid request parameter"
	case 5:
		return "playback error: content cannot be played in an HTML5 player"
	case 100:
		return "playback error: video not found"
	case 101, 150:
		return "playback error: embedding disabled by the video owner"
	default:
		return fmt.Sprintf("playback error: code %d", e.Code)
	}
}

// FaultError is a transport breakdown surfaced as a state-machine error
// cause.
type FaultError struct {
	Kind    events.FaultKind
	Message string
}

func (e *FaultError) Error() string {
	switch e.Kind {
	case events.NavigationFailed:
		return fmt.Sprintf("navigation failed: %s", e.Message)
	case events.ProcessTerminated:
		return fmt.Sprintf("runtime process terminated: %s", e.Message)
	default:
		return fmt.Sprintf("transport fault %q: %s", e.Kind, e.Message)
	}
}
