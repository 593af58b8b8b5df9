package model

/*
ResolutionResult is the body of every /api/download response.
Exactly one field is populated:

	VideoURL on success (signed and time-limited, opaque to us)
	Error on any failure, with a message meant to be shown to the user as-is
*/
type ResolutionResult struct {
	VideoURL string `json:"videoUrl,omitempty"`
	Error    string `json:"error,omitempty"`
}

func ResultFound(videoURL string) ResolutionResult {
	return ResolutionResult{VideoURL: videoURL}
}

func ResultFailed(message string) ResolutionResult {
	return ResolutionResult{Error: message}
}

func (r ResolutionResult) Found() bool {
	return r.VideoURL != ""
}
