// Package version resolves the latest released version of the application.
package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/stormychel/YouTubePlayerKit/constant"
	"github.com/stormychel/YouTubePlayerKit/filesystem"
	"github.com/stormychel/YouTubePlayerKit/where"
)

var latestCacher = gache.New[string](
	&gache.Options{
		Path:       filepath.Join(where.Cache(), "latest_version.json"),
		Lifetime:   time.Hour * 12,
		FileSystem: &filesystem.GacheFs{},
	},
)

// Latest fetches the most recent release tag from GitHub. Successful
// lookups are cached for half a day.
func Latest() (string, error) {
	cached, expired, err := latestCacher.Get()
	if err == nil && !expired && cached != "" {
		return cached, nil
	}

	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", constant.Repository)
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s from release lookup", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	if latest == "" {
		return "", fmt.Errorf("release lookup returned an empty tag")
	}

	_ = latestCacher.Set(latest)
	return latest, nil
}
