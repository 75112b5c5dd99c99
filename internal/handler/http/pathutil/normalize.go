package pathutil

import (
	"regexp"
	"strings"
)

type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// Evaluated in order, most specific first. Pre-compiled so normalization
// stays off the request hot path's allocation budget.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/api/articles/\d+/comments$`), template: "/api/articles/:article_id/comments"},
	{pattern: regexp.MustCompile(`^/api/articles/\d+$`), template: "/api/articles/:article_id"},
	{pattern: regexp.MustCompile(`^/api/comments/\d+$`), template: "/api/comments/:comment_id"},
	{pattern: regexp.MustCompile(`^/api/users/[^/]+$`), template: "/api/users/:email"},
}

// NormalizePath collapses parameterised paths to their route templates so
// metrics labels stay bounded. Static paths pass through unchanged.
//
//	NormalizePath("/api/articles/123")           // "/api/articles/:article_id"
//	NormalizePath("/api/users/a@b.dev?x=1")      // "/api/users/:email"
//	NormalizePath("/api/topics")                 // "/api/topics"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
