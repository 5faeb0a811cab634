package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var contentPolicy = newContentPolicy()

func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	return p
}

// SanitizeContent strips markup that is unsafe to render back to readers,
// such as scripts, from post content.
func SanitizeContent(content string) string {
	return strings.TrimSpace(contentPolicy.Sanitize(content))
}
