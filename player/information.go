package player

import (
	"context"

	"github.com/stormychel/YouTubePlayerKit/convert"
	"github.com/stormychel/YouTubePlayerKit/script"
)

// VideoData is the metadata block of the playing video.
type VideoData struct {
	VideoID string `json:"video_id"`
	Author  string `json:"author"`
	Title   string `json:"title"`
}

// Information is the decoded snapshot of the player's playerInfo
// property. Fields the runtime does not populate keep their zero value.
type Information struct {
	VideoData       VideoData `json:"videoData"`
	CurrentTime     float64   `json:"currentTime"`
	Duration        float64   `json:"duration"`
	VideoLoaded     float64   `json:"videoLoadedFraction"`
	Volume          int       `json:"volume"`
	Muted           bool      `json:"muted"`
	PlaybackRate    float64   `json:"playbackRate"`
	PlaybackQuality string    `json:"playbackQuality"`
	VideoURL        string    `json:"videoUrl"`
	VideoEmbedCode  string    `json:"videoEmbedCode"`
	PlaylistID      *string   `json:"playlistId"`
	PlaylistIndex   *int      `json:"playlistIndex"`
}

// Information reads the playerInfo property in one round trip.
func (p *Player) Information(ctx context.Context) (Information, error) {
	expr := script.Property(objectName(), "playerInfo")
	return evaluate(ctx, p, "information", expr, nil, convert.Decode[Information]())
}

// VideoURL returns the canonical watch URL of the playing video.
func (p *Player) VideoURL(ctx context.Context) (string, error) {
	expr, err := script.Call(objectName(), "getVideoUrl")
	return evaluate(ctx, p, "video url", expr, err, convert.String())
}

// VideoEmbedCode returns the HTML embed snippet of the playing video.
func (p *Player) VideoEmbedCode(ctx context.Context) (string, error) {
	expr, err := script.Call(objectName(), "getVideoEmbedCode")
	return evaluate(ctx, p, "video embed code", expr, err, convert.String())
}

// ShowStatsForNerds opens the diagnostic overlay.
func (p *Player) ShowStatsForNerds(ctx context.Context) error {
	return p.command(ctx, "show stats for nerds", "showVideoInfo")
}

// HideStatsForNerds closes the diagnostic overlay.
func (p *Player) HideStatsForNerds(ctx context.Context) error {
	return p.command(ctx, "hide stats for nerds", "hideVideoInfo")
}

// StatsForNerdsVisible reports whether the diagnostic overlay is open.
func (p *Player) StatsForNerdsVisible(ctx context.Context) (bool, error) {
	expr, err := script.Call(objectName(), "isVideoInfoVisible")
	return evaluate(ctx, p, "stats for nerds visibility", expr, err, convert.Bool())
}
