package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResolutionRequest(t *testing.T) {
	t.Run("accepts http and https page URLs", func(t *testing.T) {
		req, err := ParseResolutionRequest("https://www.tiktok.com/@someone/video/7312345678901234567")
		assert.NoError(t, err)
		assert.Equal(t, "https://www.tiktok.com/@someone/video/7312345678901234567", req.URL)

		req, err = ParseResolutionRequest("  http://m.tiktok.com/v/123.html ")
		assert.NoError(t, err)
		assert.Equal(t, "http://m.tiktok.com/v/123.html", req.URL)
	})

	t.Run("passes the URL through without re-serializing it", func(t *testing.T) {
		raw := "HTTPS://www.tiktok.com/@someone/video/123?lang=en&q=a%2Fb"
		req, err := ParseResolutionRequest(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, req.URL)
	})

	t.Run("rejects a blank URL as missing", func(t *testing.T) {
		_, err := ParseResolutionRequest("")
		assert.ErrorIs(t, err, ErrMissingURL)

		_, err = ParseResolutionRequest("   ")
		assert.ErrorIs(t, err, ErrMissingURL)
	})

	t.Run("rejects relative and non-web URLs", func(t *testing.T) {
		for _, raw := range []string{
			"www.tiktok.com/@someone/video/1",
			"/video/1",
			"ftp://example.com/file",
			"javascript:alert(1)",
			"https://",
			"://broken",
		} {
			_, err := ParseResolutionRequest(raw)
			assert.ErrorIsf(t, err, ErrInvalidURL, "expected %q to be rejected", raw)
			assert.True(t, IsInputError(err))
		}
	})
}

func TestResolutionResult(t *testing.T) {
	found := ResultFound("https://v16.example.com/video.mp4")
	assert.True(t, found.Found())
	assert.Empty(t, found.Error)

	failed := ResultFailed("nope")
	assert.False(t, failed.Found())
	assert.Empty(t, failed.VideoURL)
	assert.Equal(t, "nope", failed.Error)
}
