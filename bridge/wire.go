package bridge

import "encoding/json"

// The channel speaks newline-delimited JSON in both directions. Requests
// flow out with a monotonically increasing id; the runtime answers each
// one exactly once, interleaved with unsolicited event and fault messages.

const statusSuccess = "success"

type request struct {
	RequestID int64  `json:"request_id"`
	Script    string `json:"script"`
}

// inbound is the superset of every message the runtime can send. The
// discriminating fields decide how it is routed: Fault set means a
// transport fault, Event set means a player event, otherwise it is a
// response to a pending request.
type inbound struct {
	RequestID *int64          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	Event     string          `json:"event,omitempty"`
	Fault     string          `json:"fault,omitempty"`
	Message   string          `json:"message,omitempty"`
}
