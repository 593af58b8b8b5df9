package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeconstructVideoURL(t *testing.T) {
	t.Run("successfully parses canonical video URLs", func(t *testing.T) {
		userName, videoID, err := DeconstructVideoURL("https://www.tiktok.com/@foo.bar/video/7312345678901234567")
		assert.NoError(t, err)
		assert.Equal(t, "foo.bar", userName)
		assert.Equal(t, "7312345678901234567", videoID)

		userName, videoID, err = DeconstructVideoURL("http://m.tiktok.com/@foo_bar/video/123?is_from_webapp=1")
		assert.NoError(t, err)
		assert.Equal(t, "foo_bar", userName)
		assert.Equal(t, "123", videoID)

		userName, videoID, err = DeconstructVideoURL("https://tiktok.com/@foo-bar/video/123")
		assert.NoError(t, err)
		assert.Equal(t, "foo-bar", userName)
		assert.Equal(t, "123", videoID)
	})

	t.Run("rejects short links and other sites", func(t *testing.T) {
		for _, pageURL := range []string{
			"https://vm.tiktok.com/ZMabc123/",
			"https://www.someotherwebsite.com/@foo/video/123",
			"https://www.tiktok.com/@foo",
		} {
			userName, videoID, err := DeconstructVideoURL(pageURL)
			assert.Error(t, err)
			assert.Equal(t, "", userName)
			assert.Equal(t, "", videoID)
		}
	})
}
