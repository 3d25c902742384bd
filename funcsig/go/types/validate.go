package types

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// MaxNestingDepth is the default limit on how many composite types may be
// nested inside each other. It bounds the recursion in Validate.
const MaxNestingDepth = 64

// maxSuggestionDistance is the largest edit distance Suggest accepts.
const maxSuggestionDistance = 2

// editOptions counts a substitution as a single edit.
var editOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: levenshtein.IdenticalRunes,
}

// Validate checks that text is a valid type and returns the matching Type.
// Composite types are validated recursively, so "list[list[int32]]" yields a
// list whose element type is the Type of "list[int32]". The second return
// value is false, and the Type nil, if validation fails.
//
// Surrounding whitespace of text itself is not trimmed; whitespace inside the
// brackets of a composite type is.
func Validate(text string) (*Type, bool) {
	return ValidateWithDepth(text, MaxNestingDepth)
}

// ValidateWithDepth is Validate with a custom nesting limit. A non-positive
// maxDepth means MaxNestingDepth.
func ValidateWithDepth(text string, maxDepth int) (*Type, bool) {
	if maxDepth <= 0 {
		maxDepth = MaxNestingDepth
	}
	return validate(text, 0, maxDepth)
}

func validate(text string, depth, maxDepth int) (*Type, bool) {
	if IsPrimitiveName(text) {
		return &Type{name: text}, true
	}
	for _, name := range compositeTypeNames {
		inner, ok := matchComposite(text, name)
		if !ok {
			continue
		}
		// The bracket belongs to this composite name, so no other one is tried.
		if depth >= maxDepth {
			return nil, false
		}
		elem, ok := validate(strings.TrimSpace(inner), depth+1, maxDepth)
		if !ok {
			return nil, false
		}
		return &Type{name: name, elem: elem}, true
	}
	return nil, false
}

// matchComposite returns the text between "name[" and the final "]" if text
// has exactly that shape and the inner text is a non-empty single line.
func matchComposite(text, name string) (string, bool) {
	prefix := name + "["
	if !strings.HasPrefix(text, prefix) || !strings.HasSuffix(text, "]") {
		return "", false
	}
	inner := text[len(prefix) : len(text)-1]
	if inner == "" || strings.ContainsAny(inner, "\n") {
		return "", false
	}
	return inner, true
}

// Suggest returns the recognized type name closest to text, for use in error
// hints such as "did you mean int32?". It returns false if nothing is close.
func Suggest(text string) (string, bool) {
	if text == "" || IsTypeName(text) {
		return "", false
	}
	best := ""
	bestDistance := maxSuggestionDistance + 1
	src := []rune(text)
	for _, name := range AllTypeNames() {
		d := levenshtein.DistanceForStrings(src, []rune(name), editOptions)
		if d < bestDistance {
			best = name
			bestDistance = d
		}
	}
	if best == "" || bestDistance >= len(src) {
		return "", false
	}
	return best, true
}
