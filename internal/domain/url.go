package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL performs strict syntactic validation of a quiz source URL.
// Scheme and host are required and only http(s) is accepted. Reachability is
// not checked here; the model's browsing step discovers that.
func ValidateURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}

	u, err := url.ParseRequestURI(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, trimmed)
	}

	if u.Scheme == "" || u.Hostname() == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, trimmed)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}

	return u, nil
}
