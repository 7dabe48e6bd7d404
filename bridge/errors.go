package bridge

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned by Evaluate once the bridge has shut down,
// whether by an explicit Close or because the channel broke underneath it.
var ErrUnavailable = errors.New("evaluation channel is unavailable")

// ScriptError reports that the runtime executed the script and it threw.
// The message is the runtime's own description of the failure.
type ScriptError struct {
	Script  string
	Message string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %q failed: %s", e.Script, e.Message)
}
