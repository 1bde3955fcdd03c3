package saddle

import (
	"strings"
	"unicode"
)

// ScopeID identifies a scope: a function or logical region of the analyzed
// program. Equality is byte-for-byte on the normalized name (see Normalize).
type ScopeID string

// ComponentID identifies an abstract resource tracked by the borrow
// checker. Equality is byte-for-byte on the normalized name.
type ComponentID string

// Normalize strips whitespace from a raw type-name string while preserving
// generic nesting, matching the textual identity rule of the directive
// decoder: "whitespace stripped, generic nesting preserved". Callers that
// build ScopeID/ComponentID values directly (outside the Decoder, which
// already strips spaces while parsing) should normalize first so that two
// spellings of the same type compare equal.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (id ScopeID) String() string     { return string(id) }
func (id ComponentID) String() string { return string(id) }
