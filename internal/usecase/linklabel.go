package usecase

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// linkLabel derives a tidy display label from a bare URL, preferring
// the eTLD+1 so "https://www.soundcloud.com/loicg" shows as
// "soundcloud.com". Returns "" when nothing useful can be extracted.
func linkLabel(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return ""
	}
	host := parsed.Hostname()
	if host == "" {
		return ""
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
