// Package decoder scans an opaque byte buffer for directive markers of a
// fixed textual form and emits an ordered stream of records. It knows
// nothing about scopes, components, or borrow semantics; it only knows how
// to find and parse the five marker shapes a compiler's symbol table can be
// made to retain.
package decoder

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	prefix = "SaddleInternalV1DeclFor"

	suffixDepRef   = "DepRef"
	suffixDepMut   = "DepMut"
	suffixGrantRef = "GrantRef"
	suffixGrantMut = "GrantMut"
	suffixCall     = "Call"
)

// Kind distinguishes the five directive shapes a marker can take.
type Kind int

const (
	DepRef Kind = iota
	DepMut
	GrantRef
	GrantMut
	Call
)

func (k Kind) String() string {
	switch k {
	case DepRef:
		return "DepRef"
	case DepMut:
		return "DepMut"
	case GrantRef:
		return "GrantRef"
	case GrantMut:
		return "GrantMut"
	case Call:
		return "Call"
	default:
		return "Unknown"
	}
}

// Record is a single decoded directive: its kind and the two generic
// arguments carried by the marker's `<arg1,arg2>` suffix.
type Record struct {
	Kind Kind
	Arg1 string
	Arg2 string
}

// Decode scans data for directive markers and returns them in the order
// they occur. The scan is overlap-aware: once a marker has been fully
// parsed, the scan resumes after its closing '>' rather than re-examining
// the bytes just consumed, but prefix occurrences elsewhere in the buffer
// (including ones that start inside bytes skipped between markers) are
// still found. An unparseable marker prefix aborts the scan with an error
// describing the byte offset at which it was found.
func Decode(data []byte) ([]Record, error) {
	s := string(data)
	prefixBytes := []byte(prefix)

	var records []Record
	minOffset := 0
	searchFrom := 0

	for {
		rel := bytes.Index(data[searchFrom:], prefixBytes)
		if rel == -1 {
			break
		}
		start := searchFrom + rel
		searchFrom = start + 1

		if start < minOffset {
			continue
		}

		pos := start + len(prefix)

		kind, pos, ok := parseKind(s, pos)
		if !ok {
			return nil, fmt.Errorf("unrecognized directive suffix at offset %d", start)
		}

		arg1, arg2, pos, ok := parseArgs(s, pos)
		if !ok {
			return nil, fmt.Errorf("malformed directive arguments at offset %d", start)
		}

		records = append(records, Record{Kind: kind, Arg1: arg1, Arg2: arg2})
		minOffset = pos
	}

	return records, nil
}

func parseKind(s string, pos int) (Kind, int, bool) {
	rest := s[pos:]
	switch {
	case strings.HasPrefix(rest, suffixDepRef):
		return DepRef, pos + len(suffixDepRef), true
	case strings.HasPrefix(rest, suffixDepMut):
		return DepMut, pos + len(suffixDepMut), true
	case strings.HasPrefix(rest, suffixGrantRef):
		return GrantRef, pos + len(suffixGrantRef), true
	case strings.HasPrefix(rest, suffixGrantMut):
		return GrantMut, pos + len(suffixGrantMut), true
	case strings.HasPrefix(rest, suffixCall):
		return Call, pos + len(suffixCall), true
	default:
		return 0, pos, false
	}
}

// parseArgs parses the `<arg1,arg2>` suffix following a directive kind.
func parseArgs(s string, pos int) (arg1, arg2 string, next int, ok bool) {
	if pos >= len(s) || s[pos] != '<' {
		return "", "", pos, false
	}
	pos++

	arg1, pos = parseType(s, pos)
	if pos >= len(s) || s[pos] != ',' {
		return "", "", pos, false
	}
	pos++

	arg2, pos = parseType(s, pos)
	if pos >= len(s) || s[pos] != '>' {
		return "", "", pos, false
	}
	pos++

	return arg1, arg2, pos, true
}

// parseType consumes one generic type name starting at pos: angle brackets
// nest (so a name like "Foo<Bar,Baz>" is consumed whole rather than split
// on its inner comma), plain spaces are dropped, and a top-level ',' or '>'
// ends the name without being consumed.
func parseType(s string, pos int) (value string, next int) {
	var b strings.Builder
	level := 0

	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])

		switch {
		case r == ' ':
			pos += size
			continue
		case r == '<':
			level++
			pos += size
		case r == '>':
			if level > 0 {
				level--
				pos += size
			} else {
				return b.String(), pos
			}
		case r == ',' && level == 0:
			return b.String(), pos
		default:
			pos += size
		}

		b.WriteRune(r)
	}

	return b.String(), pos
}
