package window

import (
	"net/url"
	"regexp"
	"strings"
)

var schemeRe = regexp.MustCompile(`(?i)^https?://`)

// ResolveQuery turns search box input into a destination. Input that looks
// like an address (has an http(s) scheme or contains a dot) is opened
// directly, with https:// added when missing; anything else is sent to the
// search engine. Blank input resolves to "".
func ResolveQuery(input, engine string) string {
	q := strings.TrimSpace(input)
	if q == "" {
		return ""
	}
	if schemeRe.MatchString(q) {
		return q
	}
	if strings.Contains(q, ".") {
		return "https://" + q
	}
	// Spaces become %20 rather than +, so engines that take the query in
	// the path work too.
	return engine + strings.ReplaceAll(url.QueryEscape(q), "+", "%20")
}
