package ui

import (
	"net/url"
	"strings"
)

// cleanDroppedPath turns what a terminal pastes on drag and drop into a
// plain path. Terminals quote the path, escape spaces, or send a file URL.
func cleanDroppedPath(s string) string {
	s = strings.TrimSpace(s)

	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' || first == '"') && first == last {
			return s[1 : len(s)-1]
		}
	}

	if strings.HasPrefix(s, "file://") {
		if u, err := url.Parse(s); err == nil {
			return u.Path
		}
	}

	return strings.ReplaceAll(s, `\ `, " ")
}
