package player

import (
	"context"
	"time"

	"github.com/stormychel/YouTubePlayerKit/log"
)

// WatchCurrentTime samples the playhead position periodically while the
// playback state is Playing. Samples are skipped entirely while paused,
// buffering, or before the first state is known. The channel closes
// when ctx is done.
func (p *Player) WatchCurrentTime(ctx context.Context, interval time.Duration) <-chan float64 {
	out := make(chan float64)

	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			state, known := p.PlaybackStateValue().Get()
			if !known || state != PlaybackPlaying {
				continue
			}

			seconds, err := p.CurrentTime(ctx)
			if err != nil {
				log.Debugf("current time sample failed: %v", err)
				continue
			}

			select {
			case out <- seconds:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
