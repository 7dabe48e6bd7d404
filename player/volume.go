package player

import (
	"context"
	"fmt"

	"github.com/stormychel/YouTubePlayerKit/convert"
	"github.com/stormychel/YouTubePlayerKit/script"
)

// Mute silences playback without changing the stored volume.
func (p *Player) Mute(ctx context.Context) error {
	return p.command(ctx, "mute", "mute")
}

// Unmute restores playback at the stored volume.
func (p *Player) Unmute(ctx context.Context) error {
	return p.command(ctx, "unmute", "unMute")
}

// IsMuted reports whether playback is currently muted.
func (p *Player) IsMuted(ctx context.Context) (bool, error) {
	expr, err := script.Call(objectName(), "isMuted")
	return evaluate(ctx, p, "muted", expr, err, convert.Bool())
}

// Volume reports the player volume in the range [0, 100].
func (p *Player) Volume(ctx context.Context) (int, error) {
	expr, err := script.Call(objectName(), "getVolume")
	return evaluate(ctx, p, "volume", expr, err, convert.Int())
}

// SetVolume changes the player volume. Values outside [0, 100] are
// rejected before anything is sent to the runtime.
func (p *Player) SetVolume(ctx context.Context, volume int) error {
	if volume < 0 || volume > 100 {
		return &APIError{
			Reason: "set volume",
			Cause:  fmt.Errorf("volume %d is outside [0, 100]", volume),
		}
	}
	return p.command(ctx, "set volume", "setVolume", volume)
}
