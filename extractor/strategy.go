package extractor

import (
	"github.com/tidwall/gjson"
)

/*
Strategy is one guess at where the page state keeps the video's media address.
The state JSON is owned by the video site and changes shape without notice, so
a Strategy must never fail: a missing key, or a value of the wrong type anywhere
along its path, simply means it found nothing.

To support a new layout, add a Strategy to DefaultStrategies.
*/
type Strategy interface {
	Name() string
	// Returns the media URL, or "" if this shape isn't present
	Probe(state gjson.Result) string
}

// DefaultStrategies are tried in order; the first non-empty URL wins.
func DefaultStrategies() []Strategy {
	return []Strategy{
		ItemModuleStrategy{},
		PathStrategy{
			Label:  "pageProps",
			Path:   "props.pageProps.itemInfo.itemStruct.video",
			Fields: []string{"playAddr", "downloadAddr"},
		},
		PathStrategy{
			Label: "defaultScope",
			// the scope key itself contains a dot
			Path:   `__DEFAULT_SCOPE__.webapp\.video-detail.itemInfo.itemStruct.video`,
			Fields: []string{"playAddr", "downloadAddr"},
		},
	}
}

// ItemModuleStrategy reads the older SIGI_STATE layout, where ItemModule maps item IDs
// to item metadata. Only the first item, in document order, is considered.
type ItemModuleStrategy struct{}

func (ItemModuleStrategy) Name() string {
	return "itemModule"
}

func (ItemModuleStrategy) Probe(state gjson.Result) string {
	itemModule := state.Get("ItemModule")
	if !itemModule.IsObject() {
		return ""
	}
	var first gjson.Result
	itemModule.ForEach(func(_, value gjson.Result) bool {
		first = value
		return false
	})
	if !first.IsObject() {
		return ""
	}
	video := first.Get("video")
	if !video.IsObject() {
		return ""
	}
	return firstString(video, "playAddr", "downloadAddr", "playAddrLow")
}

// PathStrategy follows a fixed gjson path to a video-info object and reads the first
// populated field from Fields.
type PathStrategy struct {
	Label  string
	Path   string
	Fields []string
}

func (s PathStrategy) Name() string {
	return s.Label
}

func (s PathStrategy) Probe(state gjson.Result) string {
	video := state.Get(s.Path)
	if !video.IsObject() {
		return ""
	}
	return firstString(video, s.Fields...)
}

func firstString(obj gjson.Result, fields ...string) string {
	for _, field := range fields {
		value := obj.Get(field)
		if value.Type == gjson.String && value.Str != "" {
			return value.Str
		}
	}
	return ""
}
