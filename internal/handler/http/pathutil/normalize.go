package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/users/\d+$`), Template: "/users/:id"},
	{Pattern: regexp.MustCompile(`^/users/authorship/\d+$`), Template: "/users/authorship/:articleId"},

	{Pattern: regexp.MustCompile(`^/articles/\d+$`), Template: "/articles/:id"},
	{Pattern: regexp.MustCompile(`^/articles/authorship/\d+$`), Template: "/articles/authorship/:authorId"},

	{Pattern: regexp.MustCompile(`^/reviews/\d+$`), Template: "/reviews/:id"},
	{Pattern: regexp.MustCompile(`^/reviews/articles/\d+$`), Template: "/reviews/articles/:id"},
	{Pattern: regexp.MustCompile(`^/reviews/users/\d+$`), Template: "/reviews/users/:id"},
}

// NormalizePath converts paths with ids (e.g. /articles/123) to their
// template form (/articles/:id) to bound metrics label cardinality.
// Swagger assets collapse to /swagger/*. Other paths pass through unchanged.
//
//	NormalizePath("/articles/123?x=1")   // "/articles/:id"
//	NormalizePath("/reviews/users/7/")   // "/reviews/users/:id"
//	NormalizePath("/health")             // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if strings.HasPrefix(path, "/swagger/") {
		return "/swagger/*"
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
