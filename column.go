package frm2schema

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type ColumnGuess struct {
	// Name keeps the case of its first occurrence in the file
	Name string `json:"name"`
	Type string `json:"type"`
}

func (c ColumnGuess) DDL() string {
	return fmt.Sprintf("  `%s` %s DEFAULT NULL", c.Name, c.Type)
}

func validTokenLength(lower string) bool {
	return len(lower) >= TOKEN_MIN_LEN && len(lower) <= TOKEN_MAX_LEN
}

/*
	Guess a column list from extracted tokens

Tokens are deduplicated case-insensitively in first-seen order. A token is
marked seen before the denylist check, so later case variants of a denied
word stay excluded. The result holds at most MaxColumns entries.
*/
func (r *Rules) GuessColumns(tokens []string) []ColumnGuess {
	candidates := lo.Filter(tokens, func(t string, _ int) bool {
		return validTokenLength(strings.ToLower(t))
	})
	candidates = lo.UniqBy(candidates, strings.ToLower)
	candidates = lo.Filter(candidates, func(t string, _ int) bool {
		return !r.IsDenied(strings.ToLower(t))
	})
	columns := lo.Map(candidates, func(t string, _ int) ColumnGuess {
		return ColumnGuess{Name: t, Type: r.GuessType(t)}
	})
	return lo.Slice(columns, 0, r.MaxColumns)
}

// GuessType returns the type of the first keyword contained in the token.
// Matching is plain substring containment, so "update" matches "date".
func (r *Rules) GuessType(token string) string {
	lower := strings.ToLower(token)
	keyword, ok := lo.Find(r.Keywords, func(k TypeKeyword) bool {
		return strings.Contains(lower, k.Key)
	})
	if !ok {
		return r.DefaultType
	}
	return keyword.Type
}
