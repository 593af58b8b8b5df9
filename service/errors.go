package service

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/truemediaorg/videolink/extractor"
	"github.com/truemediaorg/videolink/model"
)

const (
	// The page came back fine but nothing we know how to read was in it
	notFoundMsg      = "Unable to extract video URL. TikTok layout may have changed."
	internalErrorMsg = "Internal error"
)

// describeError maps an error from handling /api/download to a status code and the
// message shown to the user.
func describeError(err error) (int, string) {
	var upstream *UpstreamError
	switch {
	case model.IsInputError(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, extractor.ErrNotFound):
		return http.StatusNotFound, notFoundMsg
	case errors.As(err, &upstream):
		return http.StatusInternalServerError, upstream.Error()
	default:
		msg := err.Error()
		if msg == "" {
			msg = internalErrorMsg
		}
		return http.StatusInternalServerError, msg
	}
}
