package util

import (
	"net/url"
	"strings"
)

// NormalizeVideoURL rewrites a pasted video URL into its embeddable form.
// YouTube watch URLs and youtu.be short links become embed URLs, Google Drive
// file URLs become preview URLs. Anything else is stored as-is.
func NormalizeVideoURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return raw
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	host = strings.TrimPrefix(host, "m.")

	switch host {
	case "youtube.com":
		if u.Path == "/watch" {
			if id := u.Query().Get("v"); id != "" {
				return "https://www.youtube.com/embed/" + id
			}
		}
		if strings.HasPrefix(u.Path, "/shorts/") {
			if id := strings.TrimPrefix(u.Path, "/shorts/"); id != "" {
				return "https://www.youtube.com/embed/" + strings.SplitN(id, "/", 2)[0]
			}
		}
	case "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return "https://www.youtube.com/embed/" + id
		}
	case "drive.google.com":
		// /file/d/<id>/view -> /file/d/<id>/preview
		if strings.HasPrefix(u.Path, "/file/d/") {
			rest := strings.TrimPrefix(u.Path, "/file/d/")
			if id := strings.SplitN(rest, "/", 2)[0]; id != "" {
				return "https://drive.google.com/file/d/" + id + "/preview"
			}
		}
	}

	return raw
}
