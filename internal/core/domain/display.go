package domain

import "strings"

// Unknown is the placeholder shown for missing optional fields.
const Unknown = "Unknown"

// IDFromURI returns the last path segment of a resource URI.
func IDFromURI(uri string) string {
	uri = strings.TrimRight(uri, "/")
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

func OrUnknown(s string) string {
	return OrDefault(s, Unknown)
}

func OrDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
