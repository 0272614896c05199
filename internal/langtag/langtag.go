package langtag

import (
	"regexp"
	"strings"
)

// tagPattern matches the constrained tag grammar: a 2-3 letter primary
// language, an optional 4-letter script subtag, and an optional 2-3 letter
// or 3-digit region subtag, hyphen-separated. Letters match either case
// since input may come from free-text entry; Normalize applies canonical
// casing.
var tagPattern = regexp.MustCompile(`^(?P<language>[a-zA-Z]{2,3})(?:-(?P<script>[a-zA-Z]{4}))?(?:-(?P<region>[a-zA-Z]{2,3}|[0-9]{3}))?$`)

// Tag holds the decomposed subtags of a language tag.
type Tag struct {
	Language string
	Script   string
	Region   string
}

// Validate reports whether tag is non-empty and conforms to the tag grammar.
func Validate(tag string) bool {
	return tag != "" && tagPattern.MatchString(tag)
}

// Parse decomposes tag into its subtags, original casing preserved.
// The second return value is false when tag does not conform to the grammar.
func Parse(tag string) (Tag, bool) {
	if tag == "" {
		return Tag{}, false
	}
	m := tagPattern.FindStringSubmatch(tag)
	if m == nil {
		return Tag{}, false
	}
	return Tag{
		Language: m[tagPattern.SubexpIndex("language")],
		Script:   m[tagPattern.SubexpIndex("script")],
		Region:   m[tagPattern.SubexpIndex("region")],
	}, true
}

// String reassembles the tag in canonical casing: language lowercased,
// script first-letter-uppercased, region uppercased.
func (t Tag) String() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(t.Language))
	if t.Script != "" {
		b.WriteByte('-')
		b.WriteString(strings.ToUpper(t.Script[:1]))
		b.WriteString(strings.ToLower(t.Script[1:]))
	}
	if t.Region != "" {
		b.WriteByte('-')
		b.WriteString(strings.ToUpper(t.Region))
	}
	return b.String()
}

// Normalize returns the canonical form of a grammar-conforming tag.
// Input that does not conform passes through unchanged, so Normalize never
// fails; callers that must reject malformed input use Validate.
func Normalize(tag string) string {
	t, ok := Parse(tag)
	if !ok {
		return tag
	}
	return t.String()
}
