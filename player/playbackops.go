package player

import (
	"context"

	"github.com/stormychel/YouTubePlayerKit/convert"
	"github.com/stormychel/YouTubePlayerKit/script"
)

// Play starts or resumes playback of the current source.
func (p *Player) Play(ctx context.Context) error {
	return p.command(ctx, "play", "playVideo")
}

// Pause suspends playback at the current position.
func (p *Player) Pause(ctx context.Context) error {
	return p.command(ctx, "pause", "pauseVideo")
}

// Stop ends playback and discards buffered content.
func (p *Player) Stop(ctx context.Context) error {
	return p.command(ctx, "stop", "stopVideo")
}

// Seek jumps to the given position in seconds. allowSeekAhead lets the
// player request unbuffered ranges from the server.
func (p *Player) Seek(ctx context.Context, seconds float64, allowSeekAhead bool) error {
	return p.command(ctx, "seek", "seekTo", seconds, allowSeekAhead)
}

// SeekBy moves the playhead relative to the current position. Negative
// offsets rewind.
func (p *Player) SeekBy(ctx context.Context, offsetSeconds float64) error {
	current, err := p.CurrentTime(ctx)
	if err != nil {
		return err
	}
	target := current + offsetSeconds
	if target < 0 {
		target = 0
	}
	return p.Seek(ctx, target, true)
}

// CurrentTime reports the playhead position in seconds.
func (p *Player) CurrentTime(ctx context.Context) (float64, error) {
	expr, err := script.Call(objectName(), "getCurrentTime")
	return evaluate(ctx, p, "current time", expr, err, convert.Float())
}

// Duration reports the length of the current video in seconds. The
// player reports 0 until the video's metadata is loaded.
func (p *Player) Duration(ctx context.Context) (float64, error) {
	expr, err := script.Call(objectName(), "getDuration")
	return evaluate(ctx, p, "duration", expr, err, convert.Float())
}

// VideoLoadedFraction reports how much of the video is buffered, in
// the range [0, 1].
func (p *Player) VideoLoadedFraction(ctx context.Context) (float64, error) {
	expr, err := script.Call(objectName(), "getVideoLoadedFraction")
	return evaluate(ctx, p, "loaded fraction", expr, err, convert.Float())
}

// PlaybackRate reports the current playback speed multiplier.
func (p *Player) PlaybackRate(ctx context.Context) (float64, error) {
	expr, err := script.Call(objectName(), "getPlaybackRate")
	return evaluate(ctx, p, "playback rate", expr, err, convert.Float())
}

// SetPlaybackRate changes the playback speed multiplier.
func (p *Player) SetPlaybackRate(ctx context.Context, rate float64) error {
	return p.command(ctx, "set playback rate", "setPlaybackRate", rate)
}

// AvailablePlaybackRates lists the speed multipliers the current video
// supports.
func (p *Player) AvailablePlaybackRates(ctx context.Context) ([]float64, error) {
	expr, err := script.Call(objectName(), "getAvailablePlaybackRates")
	return evaluate(ctx, p, "available playback rates", expr, err, convert.FloatSlice())
}

// FetchPlaybackState queries the player for its playback state instead
// of reading the last observed value.
func (p *Player) FetchPlaybackState(ctx context.Context) (PlaybackState, error) {
	expr, err := script.Call(objectName(), "getPlayerState")
	return evaluate(ctx, p, "playback state", expr, err, convert.Map(convert.Int(), PlaybackStateFrom))
}
