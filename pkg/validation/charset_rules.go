package validation

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var (
	newlineTable    = rangetable.New('\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029')
	whitespaceTable = rangetable.Merge(unicode.Zs, rangetable.New('\t'))
	uppercaseTable  = runeRange('A', 'Z')
	lowercaseTable  = runeRange('a', 'z')
	digitTable      = runeRange('0', '9')
)

// traits are reported in this order when a set includes all of their runes.
var traits = []struct {
	name  string
	table *unicode.RangeTable
}{
	{"newlines", newlineTable},
	{"whitespace", whitespaceTable},
	{"A-Z", uppercaseTable},
	{"a-z", lowercaseTable},
	{"0-9", digitTable},
}

// CharacterSet is a set of runes used by the CharacterSet validator.
type CharacterSet struct {
	table *unicode.RangeTable
}

// Predefined character sets.
var (
	ASCIICharacters  = CharacterSet{table: runeRange(0, unicode.MaxASCII)}
	Newlines         = CharacterSet{table: newlineTable}
	Whitespaces      = CharacterSet{table: whitespaceTable}
	UppercaseLetters = CharacterSet{table: uppercaseTable}
	LowercaseLetters = CharacterSet{table: lowercaseTable}
	DecimalDigits    = CharacterSet{table: digitTable}
	Letters          = UppercaseLetters.Union(LowercaseLetters)
	Alphanumerics    = Letters.Union(DecimalDigits)
)

// NewCharacterSet creates a set holding exactly runes.
func NewCharacterSet(runes ...rune) CharacterSet {
	return CharacterSet{table: rangetable.New(runes...)}
}

// Union returns a set holding the runes of both s and other.
func (s CharacterSet) Union(other CharacterSet) CharacterSet {
	return CharacterSet{table: rangetable.Merge(s.rangeTable(), other.rangeTable())}
}

// Contains reports whether r belongs to the set.
func (s CharacterSet) Contains(r rune) bool {
	return unicode.Is(s.rangeTable(), r)
}

func (s CharacterSet) rangeTable() *unicode.RangeTable {
	if s.table == nil {
		return rangetable.New()
	}
	return s.table
}

// describe lists the well known ranges the set is a superset of.
func (s CharacterSet) describe() string {
	table := s.rangeTable()
	var names []string
	for _, t := range traits {
		if covers(table, t.table) {
			names = append(names, t.name)
		}
	}
	return strings.Join(names, ", ")
}

func covers(table, sub *unicode.RangeTable) bool {
	for _, r := range sub.R16 {
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			if !unicode.Is(table, c) {
				return false
			}
		}
	}
	for _, r := range sub.R32 {
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			if !unicode.Is(table, c) {
				return false
			}
		}
	}
	return true
}

func runeRange(lo, hi rune) *unicode.RangeTable {
	runes := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		runes = append(runes, r)
	}
	return rangetable.New(runes...)
}

// ASCII validates that every character of a string is ASCII.
func ASCII() Validator[string] {
	return CharacterSetOf(ASCIICharacters)
}

// Alphanumeric validates that every character of a string is in A-Z, a-z
// or 0-9.
func Alphanumeric() Validator[string] {
	return CharacterSetOf(Alphanumerics)
}

// CharacterSetOf validates that every character of a string belongs to set.
func CharacterSetOf(set CharacterSet) Validator[string] {
	allowed := set.describe()
	description := "in character set"
	if allowed != "" {
		description += " (" + allowed + ")"
	}

	return New(description, func(value string) error {
		for _, r := range value {
			if set.Contains(r) {
				continue
			}
			reason := "contains an invalid character: '" + string(r) + "'"
			if allowed != "" {
				reason += " (allowed: " + allowed + ")"
			}
			return NewError(reason)
		}
		return nil
	})
}
