package player

import (
	"context"
	"fmt"

	"github.com/samber/mo"
	"github.com/stormychel/YouTubePlayerKit/convert"
	"github.com/stormychel/YouTubePlayerKit/script"
)

// LoadOptions narrows what part of a source is played. Absent fields
// leave the player's defaults in place.
type LoadOptions struct {
	StartSeconds mo.Option[float64]
	EndSeconds   mo.Option[float64]
	// Index selects the starting entry of a list source.
	Index mo.Option[int]
}

type loadVideoParams struct {
	VideoID      string   `json:"videoId"`
	StartSeconds *float64 `json:"startSeconds"`
	EndSeconds   *float64 `json:"endSeconds"`
}

type loadListParams struct {
	ListType     string   `json:"listType,omitempty"`
	List         string   `json:"list,omitempty"`
	Playlist     []string `json:"playlist,omitempty"`
	Index        *int     `json:"index,omitempty"`
	StartSeconds *float64 `json:"startSeconds,omitempty"`
}

// Load replaces the current source and starts playing it.
func (p *Player) Load(ctx context.Context, source Source, opts LoadOptions) error {
	return p.changeSource(ctx, "load", source, opts, "loadVideoById", "loadPlaylist")
}

// Cue replaces the current source without starting playback; the first
// Play begins it.
func (p *Player) Cue(ctx context.Context, source Source, opts LoadOptions) error {
	return p.changeSource(ctx, "cue", source, opts, "cueVideoById", "cuePlaylist")
}

// changeSource builds the player call matching the source kind,
// evaluates it, and records the source only after the evaluation
// succeeded. A failed load leaves the held source untouched.
func (p *Player) changeSource(ctx context.Context, reason string, source Source, opts LoadOptions, videoFn, listFn string) error {
	function, params, err := sourceCall(source, opts, videoFn, listFn)
	var expr script.Expression
	if err == nil {
		expr, err = script.Call(objectName(), function, params)
	}
	if _, err := evaluate(ctx, p, reason, expr, err, convert.Void()); err != nil {
		return err
	}

	p.source.Set(mo.Some(source))
	return nil
}

func sourceCall(source Source, opts LoadOptions, videoFn, listFn string) (function string, params any, err error) {
	switch source.Kind() {
	case SourceVideo:
		return videoFn, loadVideoParams{
			VideoID:      source.ID(),
			StartSeconds: opts.StartSeconds.ToPointer(),
			EndSeconds:   opts.EndSeconds.ToPointer(),
		}, nil

	case SourceVideoList:
		return listFn, loadListParams{
			Playlist:     source.VideoIDs(),
			Index:        opts.Index.ToPointer(),
			StartSeconds: opts.StartSeconds.ToPointer(),
		}, nil

	case SourcePlaylist:
		return listFn, loadListParams{
			ListType:     "playlist",
			List:         source.ID(),
			Index:        opts.Index.ToPointer(),
			StartSeconds: opts.StartSeconds.ToPointer(),
		}, nil

	case SourceChannel:
		return listFn, loadListParams{
			ListType:     "user_uploads",
			List:         source.ID(),
			Index:        opts.Index.ToPointer(),
			StartSeconds: opts.StartSeconds.ToPointer(),
		}, nil

	default:
		return "", nil, fmt.Errorf("unsupported source kind %v", source.Kind())
	}
}
