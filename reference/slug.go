package reference

import (
	"regexp"
	"strings"
)

var (
	slugPlaceholder = regexp.MustCompile(`\{[^}]+\}`)
	slugInvalid     = regexp.MustCompile(`[^a-zA-Z0-9-]`)
)

// Slug is the stable deep-link address of one endpoint, a pure function
// of (first tag, method, path). Endpoints without tags fall under the
// "default" slug prefix; changing that would break published anchors.
func Slug(endpoint *Endpoint) string {

	tag := "default"
	if len(endpoint.Tags) > 0 {
		tag = endpoint.Tags[0]
	}

	method := strings.ToLower(endpoint.Method)

	path := strings.TrimPrefix(endpoint.Path, "/")
	path = strings.ReplaceAll(path, "/", "-")
	path = slugPlaceholder.ReplaceAllString(path, "param")
	path = slugInvalid.ReplaceAllString(path, "")

	return tag + "-" + method + "-" + path
}
