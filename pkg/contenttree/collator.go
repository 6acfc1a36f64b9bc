package contenttree

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NewCollator returns a collator for the given BCP 47 locale, falling back to
// the root collation when the tag does not parse. A Collator keeps internal
// buffers, so each goroutine needs its own.
func NewCollator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return collate.New(tag)
}
