package intent

import (
	"regexp"
	"strings"
)

// Extraction patterns. Quoted extraction accepts straight and curly double
// quotes in any combination; keyword extraction captures letters and spaces
// only, matching the original console grammar.
var (
	quotedPattern   = regexp.MustCompile(`["“](.+?)["”]`)
	stopNamePattern = regexp.MustCompile(`(?i)stop called ([A-Za-z\s]+)`)
	pathNamePattern = regexp.MustCompile(`(?i)path(?: called)? ([A-Za-z\s]+)`)
)

// Normalize lowercases raw operator text for keyword matching.
func Normalize(text string) string {
	return strings.ToLower(text)
}

// ExtractQuoted returns the first run of characters enclosed in double
// quotes, straight or curly. The second return is false when no quoted
// substring exists.
func ExtractQuoted(text string) (string, bool) {
	match := quotedPattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ExtractAfterKeyword returns the trimmed letters-and-spaces fragment the
// pattern captures after its keyword phrase, or false when absent.
func ExtractAfterKeyword(text string, pattern *regexp.Regexp) (string, bool) {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// ExtractStopName captures the name after "stop called".
func ExtractStopName(text string) (string, bool) {
	return ExtractAfterKeyword(text, stopNamePattern)
}

// ExtractPathName captures the name after "path" or "path called".
func ExtractPathName(text string) (string, bool) {
	return ExtractAfterKeyword(text, pathNamePattern)
}
