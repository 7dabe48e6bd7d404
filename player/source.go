package player

import "golang.org/x/exp/slices"

// SourceKind discriminates what kind of content a Source addresses.
type SourceKind int

const (
	SourceVideo SourceKind = iota
	SourceVideoList
	SourcePlaylist
	SourceChannel
)

func (k SourceKind) String() string {
	switch k {
	case SourceVideo:
		return "video"
	case SourceVideoList:
		return "video list"
	case SourcePlaylist:
		return "playlist"
	case SourceChannel:
		return "channel"
	default:
		return "invalid"
	}
}

// Source identifies the content a player session is bound to: a single
// video, an explicit list of videos, a playlist id, or a channel whose
// uploads act as the playlist.
type Source struct {
	kind SourceKind
	id   string
	ids  []string
}

func VideoSource(videoID string) Source {
	return Source{kind: SourceVideo, id: videoID}
}

func VideoListSource(videoIDs ...string) Source {
	return Source{kind: SourceVideoList, ids: slices.Clone(videoIDs)}
}

func PlaylistSource(playlistID string) Source {
	return Source{kind: SourcePlaylist, id: playlistID}
}

func ChannelSource(channelName string) Source {
	return Source{kind: SourceChannel, id: channelName}
}

func (s Source) Kind() SourceKind { return s.kind }

// ID returns the single identifier of a video, playlist, or channel
// source. It is empty for a video list.
func (s Source) ID() string { return s.id }

// VideoIDs returns the explicit list of a video-list source.
func (s Source) VideoIDs() []string { return slices.Clone(s.ids) }

// Equal reports whether two sources address the same content.
func (s Source) Equal(o Source) bool {
	return s.kind == o.kind && s.id == o.id && slices.Equal(s.ids, o.ids)
}

func (s Source) String() string {
	if s.kind == SourceVideoList {
		return "video list"
	}
	return s.kind.String() + " " + s.id
}
