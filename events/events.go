// Package events defines the asynchronous notifications the embedded player emits
// and the ordered stream that delivers them.
package events

import "github.com/stormychel/YouTubePlayerKit/jsvalue"

// Name identifies a player event on the wire.
type Name string

const (
	IframeAPIReady        Name = "onIframeApiReady"
	IframeAPIFailedToLoad Name = "onIframeApiFailedToLoad"
	Ready                 Name = "onReady"
	StateChange           Name = "onStateChange"
	PlaybackQualityChange Name = "onPlaybackQualityChange"
	PlaybackRateChange    Name = "onPlaybackRateChange"
	Error                 Name = "onError"
	APIChange             Name = "onApiChange"
	AutoplayBlocked       Name = "onAutoplayBlocked"
)

// Event is a single notification from the player, carrying an optional
// raw payload whose shape depends on the event name.
type Event struct {
	Name Name
	Data jsvalue.Value
}

// FaultKind classifies transport-level failures that end a session.
type FaultKind string

const (
	NavigationFailed  FaultKind = "navigation"
	ProcessTerminated FaultKind = "process_terminated"
)

// Fault reports that the embedded runtime itself broke down, as opposed
// to the player merely reporting a playback error.
type Fault struct {
	Kind    FaultKind
	Message string
}

// Item is the union of everything a stream can deliver. Exactly one of
// Event or Fault is set.
type Item struct {
	Event *Event
	Fault *Fault
}
