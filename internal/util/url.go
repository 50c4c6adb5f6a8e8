package util

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// trackingParams are query parameters storefronts and campaigns attach to
// deal links that carry no information about the deal itself.
var trackingParams = []string{
	"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
	"ref", "affid", "smcid",
}

// NormalizeLink strips tracking parameters and a trailing slash so the same
// deal URL compares equal across feeds. Unparseable input is returned as is.
func NormalizeLink(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	query := parsed.Query()
	for _, param := range trackingParams {
		query.Del(param)
	}
	parsed.RawQuery = query.Encode()
	if len(parsed.Path) > 1 && strings.HasSuffix(parsed.Path, "/") {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
		// Clear RawPath so String() regenerates the path without the slash
		parsed.RawPath = ""
	}
	return parsed.String()
}

// Domain returns the registrable domain of a link ("store.playstation.com"
// -> "playstation.com"), or "" when the link has no usable host.
func Domain(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(parsed.Hostname())
	if err != nil {
		return ""
	}
	return domain
}
