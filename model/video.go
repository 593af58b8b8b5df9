package model

import (
	"errors"
	"regexp"
)

// Captures the author handle and numeric ID out of a canonical video page URL
var videoURLPattern = regexp.MustCompile(`^https?://(?:(?:www|m)\.)?tiktok\.com/@(?P<UserName>[\w.-]+)/video/(?P<VideoID>\d+)`)

// Takes in a page URL and extracts the UserName and VideoID if it's a canonical video URL.
// Return value order is UserName followed by VideoID, followed by error.
// Short links (vm.tiktok.com and friends) don't carry either and are rejected here,
// though they still resolve fine since the fetcher follows their redirect.
func DeconstructVideoURL(pageURL string) (string, string, error) {
	matches := videoURLPattern.FindStringSubmatch(pageURL)
	if matches == nil {
		return "", "", errors.New("not a canonical video URL")
	}
	return matches[1], matches[2], nil
}
