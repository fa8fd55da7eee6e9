package socials

import (
	"net/url"
	"strings"
)

// Links are the social URLs a token creator publishes. Empty fields are
// omitted from JSON, so an unwritten record encodes as {}.
type Links struct {
	Website  string `json:"website,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Telegram string `json:"telegram,omitempty"`
	Discord  string `json:"discord,omitempty"`
}

// Filter keeps the fields that may be stored. Website and Discord must be
// absolute URLs; Twitter and Telegram may be bare handles. Rejected fields
// are dropped, not reported.
func Filter(in Links) Links {
	var out Links
	if isAbsoluteURL(in.Website) {
		out.Website = in.Website
	}
	if in.Twitter != "" {
		out.Twitter = in.Twitter
	}
	if in.Telegram != "" {
		out.Telegram = in.Telegram
	}
	if isAbsoluteURL(in.Discord) {
		out.Discord = in.Discord
	}
	return out
}

func isAbsoluteURL(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}

// Hrefs resolves handles into the profile URLs a page links to.
func (l Links) Hrefs() Links {
	return Links{
		Website:  l.Website,
		Twitter:  resolveHandle(l.Twitter, "https://twitter.com/"),
		Telegram: resolveHandle(l.Telegram, "https://t.me/"),
		Discord:  l.Discord,
	}
}

func resolveHandle(v, base string) string {
	if v == "" || strings.HasPrefix(v, "http") {
		return v
	}
	return base + strings.Replace(v, "@", "", 1)
}
