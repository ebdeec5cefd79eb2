package router

import (
	"fmt"
	"net/url"
	"path"

	"github.com/averen/relay/dispatch"
)

// targetPath parses the raw request target per RFC 9112 Section 3.2 and
// returns the cleaned path component. An unparsable target fails with
// an error wrapping dispatch.ErrInvalidTarget.
func targetPath(target string) (string, error) {
	u, err := url.ParseRequestURI(target)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", dispatch.ErrInvalidTarget, target, err)
	}
	return cleanPath(u.Path), nil
}

// cleanPath returns the canonical path for p, eliminating . and ..
// elements per RFC 3986 Section 5.2.4 (remove dot segments).
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	// path.Clean removes the trailing slash except for root;
	// put it back if necessary.
	if p[len(p)-1] == '/' && np != "/" {
		np += "/"
	}
	return np
}
