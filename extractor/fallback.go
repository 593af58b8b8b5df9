package extractor

import (
	"regexp"
	"strings"
)

// A "playAddr" string field holding an https URL. The value may carry JSON escapes but
// never an unescaped double quote.
var playAddrPattern = regexp.MustCompile(`"playAddr":"(https:(?:[^"\\]|\\.)+)"`)

const escapedAmpersand = `\u0026`

// fallbackPlayAddr scans the raw page for the first playAddr field. Only escaped
// ampersands are decoded; the rest of the value is returned untouched.
func fallbackPlayAddr(html string) (string, bool) {
	match := playAddrPattern.FindStringSubmatch(html)
	if len(match) < 2 {
		return "", false
	}
	return strings.ReplaceAll(match[1], escapedAmpersand, "&"), true
}
