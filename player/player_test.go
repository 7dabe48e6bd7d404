package player_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stormychel/YouTubePlayerKit/bridge"
	"github.com/stormychel/YouTubePlayerKit/player"
	"github.com/stormychel/YouTubePlayerKit/simulator"
)

// connected brings a player up against a fresh simulated runtime and
// waits until the session is ready.
func connected(t *testing.T) (*player.Player, *simulator.Simulator, context.Context) {
	t.Helper()

	sim := simulator.New()
	p := player.New(sim)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	t.Cleanup(func() { _ = p.Close() })

	if err := p.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}

	states := p.States(ctx)
	for s := range states {
		if s.Kind == player.StateReady {
			return p, sim, ctx
		}
		if s.Kind == player.StateError {
			t.Fatalf("session failed: %v", s.Err)
		}
	}
	t.Fatal("state stream ended early")
	return nil, nil, nil
}

func TestConnectBecomesReady(t *testing.T) {
	Convey("a fresh session reaches Ready on its own", t, func() {
		p, _, _ := connected(t)
		So(p.StateValue().Kind, ShouldEqual, player.StateReady)
	})
}

func TestVolumeRoundTrip(t *testing.T) {
	Convey("volume", t, func() {
		p, _, ctx := connected(t)

		Convey("written values read back", func() {
			So(p.SetVolume(ctx, 42), ShouldBeNil)
			volume, err := p.Volume(ctx)
			So(err, ShouldBeNil)
			So(volume, ShouldEqual, 42)
		})

		Convey("mute state follows mute and unmute", func() {
			So(p.Mute(ctx), ShouldBeNil)
			muted, err := p.IsMuted(ctx)
			So(err, ShouldBeNil)
			So(muted, ShouldBeTrue)

			So(p.Unmute(ctx), ShouldBeNil)
			muted, err = p.IsMuted(ctx)
			So(err, ShouldBeNil)
			So(muted, ShouldBeFalse)
		})

		Convey("out-of-range values are rejected locally", func() {
			err := p.SetVolume(ctx, 101)
			var apiErr *player.APIError
			So(errors.As(err, &apiErr), ShouldBeTrue)

			volume, err := p.Volume(ctx)
			So(err, ShouldBeNil)
			So(volume, ShouldEqual, 100)
		})
	})
}

func TestLoadVideo(t *testing.T) {
	Convey("loading a video", t, func() {
		p, _, ctx := connected(t)

		opts := player.LoadOptions{StartSeconds: mo.Some(5.0)}
		So(p.Load(ctx, player.VideoSource("abc123"), opts), ShouldBeNil)

		Convey("records the source", func() {
			src, ok := p.SourceValue().Get()
			So(ok, ShouldBeTrue)
			So(src.Equal(player.VideoSource("abc123")), ShouldBeTrue)
		})

		Convey("starts at the requested position", func() {
			seconds, err := p.CurrentTime(ctx)
			So(err, ShouldBeNil)
			So(seconds, ShouldEqual, 5)
		})

		Convey("starts playing", func() {
			state, err := p.FetchPlaybackState(ctx)
			So(err, ShouldBeNil)
			So(state, ShouldEqual, player.PlaybackPlaying)
		})

		Convey("and the state-change notification reaches the observable", func() {
			for ps := range p.PlaybackStates(ctx) {
				if v, ok := ps.Get(); ok {
					So(v, ShouldEqual, player.PlaybackPlaying)
					break
				}
			}
		})
	})
}

func TestLoadFailureKeepsSource(t *testing.T) {
	Convey("a failed load leaves the held source untouched", t, func() {
		p, sim, ctx := connected(t)

		So(sim.Patch(`player.loadVideoById = function() { throw new Error("boom"); };`), ShouldBeNil)

		err := p.Load(ctx, player.VideoSource("abc123"), player.LoadOptions{})
		var scriptErr *bridge.ScriptError
		So(errors.As(err, &scriptErr), ShouldBeTrue)
		So(p.SourceValue().IsAbsent(), ShouldBeTrue)
	})
}

func TestCue(t *testing.T) {
	Convey("cueing prepares the video without playing it", t, func() {
		p, _, ctx := connected(t)

		So(p.Cue(ctx, player.VideoSource("abc123"), player.LoadOptions{}), ShouldBeNil)

		state, err := p.FetchPlaybackState(ctx)
		So(err, ShouldBeNil)
		So(state, ShouldEqual, player.PlaybackCued)
	})
}

func TestPlaybackStateFallback(t *testing.T) {
	Convey("an out-of-enum state code reads back as Unstarted", t, func() {
		p, sim, ctx := connected(t)

		So(sim.Patch("player.state = 99;"), ShouldBeNil)

		state, err := p.FetchPlaybackState(ctx)
		So(err, ShouldBeNil)
		So(state, ShouldEqual, player.PlaybackUnstarted)
	})
}

func TestPlaylistOperations(t *testing.T) {
	Convey("playlists", t, func() {
		p, _, ctx := connected(t)

		Convey("with no list loaded, Playlist is None", func() {
			list, err := p.Playlist(ctx)
			So(err, ShouldBeNil)
			So(list.IsAbsent(), ShouldBeTrue)
		})

		Convey("an explicit video list keeps its order", func() {
			ids := []string{"one", "two", "three"}
			So(p.Load(ctx, player.VideoListSource(ids...), player.LoadOptions{}), ShouldBeNil)

			list, err := p.Playlist(ctx)
			So(err, ShouldBeNil)
			So(list.MustGet(), ShouldResemble, ids)

			Convey("and navigation moves through it", func() {
				So(p.NextVideo(ctx), ShouldBeNil)
				index, err := p.PlaylistIndex(ctx)
				So(err, ShouldBeNil)
				So(index, ShouldEqual, 1)

				So(p.PreviousVideo(ctx), ShouldBeNil)
				index, err = p.PlaylistIndex(ctx)
				So(err, ShouldBeNil)
				So(index, ShouldEqual, 0)

				So(p.PlayVideoAt(ctx, 2), ShouldBeNil)
				index, err = p.PlaylistIndex(ctx)
				So(err, ShouldBeNil)
				So(index, ShouldEqual, 2)
			})
		})

		Convey("a playlist id source reports its id", func() {
			So(p.Load(ctx, player.PlaylistSource("PL123"), player.LoadOptions{}), ShouldBeNil)

			id, err := p.PlaylistID(ctx)
			So(err, ShouldBeNil)
			So(id.MustGet(), ShouldEqual, "PL123")
		})
	})
}

func TestInformation(t *testing.T) {
	Convey("the playerInfo snapshot decodes into a struct", t, func() {
		p, _, ctx := connected(t)

		So(p.Load(ctx, player.VideoSource("abc123"), player.LoadOptions{}), ShouldBeNil)

		info, err := p.Information(ctx)
		So(err, ShouldBeNil)
		So(info.VideoData.VideoID, ShouldEqual, "abc123")
		So(info.Volume, ShouldEqual, 100)
		So(info.VideoURL, ShouldContainSubstring, "abc123")
	})
}

func TestStatsForNerds(t *testing.T) {
	Convey("the diagnostic overlay toggles", t, func() {
		p, _, ctx := connected(t)

		visible, err := p.StatsForNerdsVisible(ctx)
		So(err, ShouldBeNil)
		So(visible, ShouldBeFalse)

		So(p.ShowStatsForNerds(ctx), ShouldBeNil)
		visible, err = p.StatsForNerdsVisible(ctx)
		So(err, ShouldBeNil)
		So(visible, ShouldBeTrue)

		So(p.HideStatsForNerds(ctx), ShouldBeNil)
		visible, err = p.StatsForNerdsVisible(ctx)
		So(err, ShouldBeNil)
		So(visible, ShouldBeFalse)
	})
}

func TestPlaybackRateOperations(t *testing.T) {
	Convey("playback rates", t, func() {
		p, _, ctx := connected(t)

		rates, err := p.AvailablePlaybackRates(ctx)
		So(err, ShouldBeNil)
		So(rates, ShouldContain, 1.0)

		So(p.SetPlaybackRate(ctx, 1.5), ShouldBeNil)
		rate, err := p.PlaybackRate(ctx)
		So(err, ShouldBeNil)
		So(rate, ShouldEqual, 1.5)
	})
}

func TestReloadSuccess(t *testing.T) {
	Convey("Reload", t, func() {
		Convey("resolves nil once the new session is ready", func() {
			p, _, ctx := connected(t)
			So(p.Reload(ctx), ShouldBeNil)
			So(p.StateValue().Kind, ShouldEqual, player.StateReady)
		})

		Convey("ignores a failing destroy call", func() {
			p, sim, ctx := connected(t)
			So(sim.Patch(`player.destroy = function() { throw new Error("gone"); };`), ShouldBeNil)
			So(p.Reload(ctx), ShouldBeNil)
		})
	})
}

func TestReloadFailure(t *testing.T) {
	Convey("Reload surfaces the cause when the new session errors", t, func() {
		p, sim, ctx := connected(t)
		sim.AutoReady = false

		result := make(chan error, 1)
		go func() { result <- p.Reload(ctx) }()

		// Keep nudging until the reload has attached to the new
		// session and observes the failure.
		for {
			select {
			case err := <-result:
				So(err, ShouldEqual, player.ErrIframeAPIFailedToLoad)
				return
			case <-time.After(10 * time.Millisecond):
				_ = sim.Emit("onIframeApiFailedToLoad", nil)
			}
		}
	})
}

func TestClosedPlayerIsUnavailable(t *testing.T) {
	Convey("operations after Close fail with ErrUnavailable", t, func() {
		p, _, ctx := connected(t)
		So(p.Close(), ShouldBeNil)

		_, err := p.Volume(ctx)
		So(errors.Is(err, bridge.ErrUnavailable), ShouldBeTrue)
	})
}

func TestWatchCurrentTime(t *testing.T) {
	Convey("WatchCurrentTime samples only while playing", t, func() {
		p, _, ctx := connected(t)

		So(p.Load(ctx, player.VideoSource("abc123"), player.LoadOptions{StartSeconds: mo.Some(7.0)}), ShouldBeNil)

		// Wait until the machine has observed the playing state.
		for ps := range p.PlaybackStates(ctx) {
			if v, ok := ps.Get(); ok && v == player.PlaybackPlaying {
				break
			}
		}

		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		samples := p.WatchCurrentTime(watchCtx, 10*time.Millisecond)

		select {
		case seconds := <-samples:
			So(seconds, ShouldEqual, 7)
		case <-time.After(5 * time.Second):
			t.Fatal("no sample arrived")
		}

		Convey("and stays quiet while paused", func() {
			So(p.Pause(ctx), ShouldBeNil)
			for ps := range p.PlaybackStates(ctx) {
				if v, ok := ps.Get(); ok && v == player.PlaybackPaused {
					break
				}
			}

			// Drain anything sampled before the pause landed, then
			// expect silence.
			deadline := time.After(200 * time.Millisecond)
		drain:
			for {
				select {
				case <-samples:
				case <-deadline:
					break drain
				}
			}

			select {
			case <-samples:
				t.Fatal("sampled while paused")
			case <-time.After(100 * time.Millisecond):
			}
		})
	})
}
