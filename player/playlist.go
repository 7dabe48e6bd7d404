package player

import (
	"context"

	"github.com/samber/mo"
	"github.com/stormychel/YouTubePlayerKit/convert"
	"github.com/stormychel/YouTubePlayerKit/script"
)

// NextVideo advances to the next entry of the current list source.
func (p *Player) NextVideo(ctx context.Context) error {
	return p.command(ctx, "next video", "nextVideo")
}

// PreviousVideo moves back to the previous entry of the current list
// source.
func (p *Player) PreviousVideo(ctx context.Context) error {
	return p.command(ctx, "previous video", "previousVideo")
}

// PlayVideoAt jumps to the entry at the given zero-based index.
func (p *Player) PlayVideoAt(ctx context.Context, index int) error {
	return p.command(ctx, "play video at", "playVideoAt", index)
}

// Playlist returns the video ids of the current list source in playback
// order, or None when no list is loaded.
func (p *Player) Playlist(ctx context.Context) (mo.Option[[]string], error) {
	expr, err := script.Call(objectName(), "getPlaylist")
	return evaluate(ctx, p, "playlist", expr, err, convert.Optional(convert.StringSlice()))
}

// PlaylistIndex reports the zero-based index of the playing entry.
func (p *Player) PlaylistIndex(ctx context.Context) (int, error) {
	expr, err := script.Call(objectName(), "getPlaylistIndex")
	return evaluate(ctx, p, "playlist index", expr, err, convert.Int())
}

// PlaylistID returns the id of the loaded playlist, or None when the
// current source is not a playlist.
func (p *Player) PlaylistID(ctx context.Context) (mo.Option[string], error) {
	expr, err := script.Call(objectName(), "getPlaylistId")
	return evaluate(ctx, p, "playlist id", expr, err, convert.Optional(convert.String()))
}

// SetLoop makes the list source restart after its last entry.
func (p *Player) SetLoop(ctx context.Context, loop bool) error {
	return p.command(ctx, "set loop", "setLoop", loop)
}

// SetShuffle randomizes the playback order of the list source.
func (p *Player) SetShuffle(ctx context.Context, shuffle bool) error {
	return p.command(ctx, "set shuffle", "setShuffle", shuffle)
}
