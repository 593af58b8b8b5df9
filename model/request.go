package model

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrMissingURL = errors.New("url query required")
	ErrInvalidURL = errors.New("url must be an absolute http or https URL")
)

// A page the caller wants a direct media URL for. Lives for one request only.
type ResolutionRequest struct {
	URL string
}

// Validates the raw page URL and builds a ResolutionRequest from it.
// A blank value is ErrMissingURL; anything that isn't an absolute http(s) URL with a host
// is ErrInvalidURL. A valid URL is kept exactly as given, minus surrounding whitespace.
func ParseResolutionRequest(raw string) (ResolutionRequest, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ResolutionRequest{}, ErrMissingURL
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ResolutionRequest{}, ErrInvalidURL
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return ResolutionRequest{}, ErrInvalidURL
	}
	return ResolutionRequest{URL: raw}, nil
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingURL) || errors.Is(err, ErrInvalidURL)
}
