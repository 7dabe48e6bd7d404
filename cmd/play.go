package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stormychel/YouTubePlayerKit/icon"
	"github.com/stormychel/YouTubePlayerKit/key"
	"github.com/stormychel/YouTubePlayerKit/log"
	"github.com/stormychel/YouTubePlayerKit/player"
	"github.com/stormychel/YouTubePlayerKit/recent"
	"github.com/stormychel/YouTubePlayerKit/simulator"
	"github.com/stormychel/YouTubePlayerKit/style"
	"github.com/stormychel/YouTubePlayerKit/util"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().BoolP("cue", "c", false, "cue the source instead of playing it immediately")
	playCmd.Flags().StringP("playlist", "p", "", "play a playlist by its id")
	playCmd.Flags().String("channel", "", "play the uploads of a channel")
	playCmd.Flags().StringSlice("videos", nil, "play an explicit list of video ids")
	playCmd.Flags().Float64("start", 0, "start position in seconds")
	playCmd.Flags().Float64("end", 0, "end position in seconds")
	playCmd.Flags().Int("index", 0, "starting entry of a list source")
	playCmd.Flags().DurationP("for", "f", 0, "stop watching after this duration (0 means until interrupted)")

	playCmd.MarkFlagsMutuallyExclusive("playlist", "channel", "videos")
}

var playCmd = &cobra.Command{
	Use:   "play [video-id]",
	Short: "Play content in the simulated player runtime",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		source, err := resolveSource(cmd, args)
		if err != nil {
			return err
		}

		sim := simulator.New()
		p := player.New(sim)
		if err := p.Connect(ctx); err != nil {
			return err
		}
		defer util.Ignore(p.Close)

		opts := player.LoadOptions{}
		if cmd.Flags().Changed("start") {
			opts.StartSeconds = mo.Some(lo.Must(cmd.Flags().GetFloat64("start")))
		}
		if cmd.Flags().Changed("end") {
			opts.EndSeconds = mo.Some(lo.Must(cmd.Flags().GetFloat64("end")))
		}
		if cmd.Flags().Changed("index") {
			opts.Index = mo.Some(lo.Must(cmd.Flags().GetInt("index")))
		}

		if lo.Must(cmd.Flags().GetBool("cue")) {
			err = p.Cue(ctx, source, opts)
		} else {
			err = p.Load(ctx, source, opts)
		}
		if err != nil {
			return err
		}

		if source.Kind() == player.SourceVideo {
			if err := recent.Remember(source.ID()); err != nil {
				log.Warnf("cannot remember video id: %v", err)
			}
		}

		fmt.Printf("%s Loaded %s\n", icon.Get(icon.Play), style.Bold(source.String()))

		watchFor := lo.Must(cmd.Flags().GetDuration("for"))
		if watchFor > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, watchFor)
			defer cancel()
		}

		watch(ctx, p)
		return nil
	},
}

// resolveSource combines flags and the positional argument into one
// source, falling back to an interactive pick from the recent registry.
func resolveSource(cmd *cobra.Command, args []string) (player.Source, error) {
	if id := lo.Must(cmd.Flags().GetString("playlist")); id != "" {
		return player.PlaylistSource(id), nil
	}
	if name := lo.Must(cmd.Flags().GetString("channel")); name != "" {
		return player.ChannelSource(name), nil
	}
	if ids := lo.Must(cmd.Flags().GetStringSlice("videos")); len(ids) > 0 {
		return player.VideoListSource(ids...), nil
	}
	if len(args) == 1 {
		return player.VideoSource(args[0]), nil
	}

	ids, err := recent.List()
	if err != nil || len(ids) == 0 {
		return player.Source{}, errors.New("no video id given and nothing recently played")
	}

	var picked string
	if err := survey.AskOne(&survey.Select{
		Message: fmt.Sprintf("Pick one of %s", util.Quantify(len(ids), "recently played video", "recently played videos")),
		Options: ids,
	}, &picked); err != nil {
		return player.Source{}, err
	}
	return player.VideoSource(picked), nil
}

// watch mirrors the player's state streams to the terminal until the
// context ends.
func watch(ctx context.Context, p *player.Player) {
	states := p.States(ctx)
	playbackStates := p.PlaybackStates(ctx)
	interval := time.Duration(viper.GetInt(key.PlayerPollInterval)) * time.Millisecond
	samples := p.WatchCurrentTime(ctx, interval)

	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-states:
			if !ok {
				return
			}
			fmt.Printf("state: %s\n", style.Bold(util.Capitalize(s.String())))
		case ps, ok := <-playbackStates:
			if !ok {
				return
			}
			if v, known := ps.Get(); known {
				fmt.Printf("playback: %s\n", style.Italic(util.Capitalize(v.String())))
			}
		case seconds, ok := <-samples:
			if !ok {
				return
			}
			fmt.Printf("position: %s\n", style.Faint(fmt.Sprintf("%.1fs", seconds)))
		}
	}
}
