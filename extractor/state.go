package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
)

// IDs of the <script> tags the video site uses to hydrate its client app, oldest layout
// first. The match on the id is exact and case-sensitive.
var DefaultStateBlocks = []string{
	"SIGI_STATE",
	"__UNIVERSAL_DATA_FOR_REHYDRATION__",
}

// stateBlock returns the raw contents of the first <script> with the given id.
func stateBlock(doc *goquery.Document, id string) (string, bool) {
	script := doc.Find(`script[id="` + id + `"]`).First()
	if script.Length() == 0 {
		return "", false
	}
	return script.Text(), true
}

// parseState reports false when text is not a single valid JSON document.
func parseState(text string) (gjson.Result, bool) {
	text = strings.TrimSpace(text)
	if !gjson.Valid(text) {
		return gjson.Result{}, false
	}
	return gjson.Parse(text), true
}
