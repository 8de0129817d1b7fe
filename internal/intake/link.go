package intake

import (
	"net/url"
	"strings"
)

// FormPath is the client route prefix of the public lead form.
const FormPath = "/form/lead/"

// Link builds the shareable form URL for token.
func Link(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + FormPath + url.PathEscape(token)
}

// TokenFromPath extracts the token from a form route, or "" if path is not one.
func TokenFromPath(path string) string {
	rest, ok := strings.CutPrefix(path, FormPath)
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	token, err := url.PathUnescape(rest)
	if err != nil {
		return ""
	}
	return token
}
