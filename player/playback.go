package player

// PlaybackState mirrors the integer codes the embedded player reports
// through its state-change notifications.
type PlaybackState int

const (
	PlaybackUnstarted PlaybackState = -1
	PlaybackEnded     PlaybackState = 0
	PlaybackPlaying   PlaybackState = 1
	PlaybackPaused    PlaybackState = 2
	PlaybackBuffering PlaybackState = 3
	PlaybackCued      PlaybackState = 5
)

// PlaybackStateFrom maps a raw state code to a PlaybackState. Codes
// outside the known set fall back to PlaybackUnstarted, so the mapping
// is total and a newer runtime can never break the machine.
func PlaybackStateFrom(code int) PlaybackState {
	switch PlaybackState(code) {
	case PlaybackUnstarted, PlaybackEnded, PlaybackPlaying, PlaybackPaused, PlaybackBuffering, PlaybackCued:
		return PlaybackState(code)
	default:
		return PlaybackUnstarted
	}
}

func (s PlaybackState) String() string {
	switch s {
	case PlaybackUnstarted:
		return "unstarted"
	case PlaybackEnded:
		return "ended"
	case PlaybackPlaying:
		return "playing"
	case PlaybackPaused:
		return "paused"
	case PlaybackBuffering:
		return "buffering"
	case PlaybackCued:
		return "cued"
	default:
		return "unstarted"
	}
}

// PlaybackQuality is the opaque quality label reported by the player.
type PlaybackQuality string

const (
	QualitySmall   PlaybackQuality = "small"
	QualityMedium  PlaybackQuality = "medium"
	QualityLarge   PlaybackQuality = "large"
	QualityHD720   PlaybackQuality = "hd720"
	QualityHD1080  PlaybackQuality = "hd1080"
	QualityHighRes PlaybackQuality = "highres"
	QualityAuto    PlaybackQuality = "auto"
)
