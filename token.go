package frm2schema

import (
	"regexp"
	"strings"
)

const (
	TOKEN_MIN_LEN = 2
	TOKEN_MAX_LEN = 30
)

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9_]{2,30}`)

// ExtractTokens returns every identifier-shaped run in data, in file order.
// Matches are leftmost and non-overlapping, so a run longer than
// TOKEN_MAX_LEN is split. Duplicates are kept.
func ExtractTokens(data []byte) []string {
	matches := tokenPattern.FindAll(data, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, decodeToken(m))
	}
	return tokens
}

/* invalid UTF-8 is dropped rather than failing the decode */
func decodeToken(b []byte) string {
	return strings.ToValidUTF8(string(b), "")
}
