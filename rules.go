package frm2schema

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

//go:embed rules.json
var defaultRulesJSON []byte

var RulesMembers = []string{
	`default_type`,
	`type_keywords`,
	`denylist`,
	`max_columns`,
}

// TypeKeyword binds a lowercase substring to the SQL type it implies.
type TypeKeyword struct {
	Key  string
	Type string
}

// Rules holds the type inference tables. It is built once and never
// mutated, so it is safe to share.
type Rules struct {
	// Keywords in declaration order; the first match wins.
	Keywords    []TypeKeyword
	Denylist    map[string]struct{}
	DefaultType string
	MaxColumns  int
}

// DefaultRules is the keyword table shipped in rules.json.
var DefaultRules = MustParseRules(defaultRulesJSON)

/*
* Parse a rules document. Object members are read in document order,
* which fixes keyword priority.
 */
func ParseRules(data []byte) (rules *Rules, err error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("rules document is not valid json")
	}
	object := gjson.ParseBytes(data)
	if !object.IsObject() {
		return nil, fmt.Errorf("rules document is not an object")
	}
	for _, member := range RulesMembers {
		if err = CheckMember(object, member); err != nil {
			return nil, err
		}
	}

	rules = &Rules{
		DefaultType: object.Get(`default_type`).String(),
		MaxColumns:  int(object.Get(`max_columns`).Int()),
		Denylist:    make(map[string]struct{}),
	}
	if rules.DefaultType == "" {
		return nil, fmt.Errorf("default_type is empty")
	}
	if rules.MaxColumns <= 0 {
		return nil, fmt.Errorf("max_columns must be positive, got %d", rules.MaxColumns)
	}

	keywords := object.Get(`type_keywords`)
	if !keywords.IsObject() {
		return nil, fmt.Errorf("type_keywords is not an object")
	}
	keywords.ForEach(func(key, value gjson.Result) bool {
		k := strings.ToLower(key.String())
		if k == "" || value.Type != gjson.String {
			err = fmt.Errorf("invalid type keyword %q", key.String())
			return false
		}
		rules.Keywords = append(rules.Keywords, TypeKeyword{Key: k, Type: value.String()})
		return true
	})
	if err != nil {
		return nil, err
	}

	denylist := object.Get(`denylist`)
	if !denylist.IsArray() {
		return nil, fmt.Errorf("denylist is not an array")
	}
	for _, word := range denylist.Array() {
		rules.Denylist[strings.ToLower(word.String())] = struct{}{}
	}
	return rules, nil
}

func MustParseRules(data []byte) *Rules {
	rules, err := ParseRules(data)
	if err != nil {
		panic(fmt.Sprintf("parse rules: %v", err))
	}
	return rules
}

func (r *Rules) IsDenied(lower string) bool {
	_, ok := r.Denylist[lower]
	return ok
}
