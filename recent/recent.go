// Package recent keeps a small persisted registry of recently played
// video ids, used for suggestions when no id is given on the command
// line. Playback state itself is never persisted.
package recent

import (
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/stormychel/YouTubePlayerKit/filesystem"
	"github.com/stormychel/YouTubePlayerKit/key"
	"github.com/stormychel/YouTubePlayerKit/where"
	"golang.org/x/exp/slices"
)

type record struct {
	VideoID    string    `json:"video_id"`
	LastPlayed time.Time `json:"last_played"`
	Count      int       `json:"count"`
}

var cacher = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Recents(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Remember records one playback of the given video id. Disabled via
// configuration it is a no-op.
func Remember(videoID string) error {
	if !viper.GetBool(key.RecentsWrite) {
		return nil
	}

	cached, expired, err := cacher.Get()
	if err != nil {
		return err
	}
	if expired || cached == nil {
		cached = make(map[string]*record)
	}

	if r, ok := cached[videoID]; ok {
		r.Count++
		r.LastPlayed = time.Now()
	} else {
		cached[videoID] = &record{
			VideoID:    videoID,
			LastPlayed: time.Now(),
			Count:      1,
		}
	}

	return cacher.Set(cached)
}

// List returns the remembered video ids, most recently played first,
// truncated to the configured limit.
func List() ([]string, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return nil, nil
	}

	records := lo.Values(cached)
	slices.SortFunc(records, func(a, b *record) int {
		switch {
		case a.LastPlayed.After(b.LastPlayed):
			return -1
		case b.LastPlayed.After(a.LastPlayed):
			return 1
		default:
			return 0
		}
	})

	ids := lo.Map(records, func(r *record, _ int) string {
		return r.VideoID
	})

	limit := viper.GetInt(key.RecentsLimit)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// Suggest fuzzy-matches the input against the remembered ids and
// returns the closest one.
func Suggest(input string) mo.Option[string] {
	matches := SuggestMany(input)
	if len(matches) == 0 {
		return mo.None[string]()
	}
	return mo.Some(matches[0])
}

// SuggestMany returns every remembered id that fuzzy-matches the
// input, best match first.
func SuggestMany(input string) []string {
	if !viper.GetBool(key.RecentsSuggestions) {
		return nil
	}

	ids, err := List()
	if err != nil {
		return nil
	}

	ranks := fuzzy.RankFindNormalizedFold(input, ids)
	slices.SortFunc(ranks, func(a, b fuzzy.Rank) int {
		return a.Distance - b.Distance
	})

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string {
		return r.Target
	})
}

// Forget drops the whole registry.
func Forget() error {
	return cacher.Set(nil)
}
