package player

import (
	"context"

	"github.com/samber/mo"
)

// Snapshot accessors return the value held right now; the channel
// variants deliver the snapshot first and then every change until ctx
// is done. Channels never repeat a value that equals the previous one.

func (p *Player) StateValue() State {
	return p.state.Get()
}

func (p *Player) States(ctx context.Context) <-chan State {
	return p.state.Subscribe(ctx)
}

func (p *Player) PlaybackStateValue() mo.Option[PlaybackState] {
	return p.playbackState.Get()
}

func (p *Player) PlaybackStates(ctx context.Context) <-chan mo.Option[PlaybackState] {
	return p.playbackState.Subscribe(ctx)
}

func (p *Player) PlaybackQualityValue() mo.Option[PlaybackQuality] {
	return p.playbackQuality.Get()
}

func (p *Player) PlaybackQualities(ctx context.Context) <-chan mo.Option[PlaybackQuality] {
	return p.playbackQuality.Subscribe(ctx)
}

func (p *Player) PlaybackRateValue() mo.Option[float64] {
	return p.playbackRate.Get()
}

func (p *Player) PlaybackRates(ctx context.Context) <-chan mo.Option[float64] {
	return p.playbackRate.Subscribe(ctx)
}

func (p *Player) SourceValue() mo.Option[Source] {
	return p.source.Get()
}

func (p *Player) Sources(ctx context.Context) <-chan mo.Option[Source] {
	return p.source.Subscribe(ctx)
}

// AutoplayBlocked notifies once per blocked autoplay attempt. There is
// no snapshot; only occurrences after subscribing are delivered.
func (p *Player) AutoplayBlocked(ctx context.Context) <-chan struct{} {
	return p.autoplayBlocked.Subscribe(ctx)
}
