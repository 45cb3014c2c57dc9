package content

import (
	"strings"

	"github.com/gosimple/slug"
)

// maxSlugLen leaves room for the "-NN" suffix freeSlug may append to a
// derived slug within the 80 characters of an explicit one.
const maxSlugLen = 76

// Slugify transliterates s to lowercase ASCII words joined by single dashes,
// e.g. "Référencement naturel" becomes "referencement-naturel". Long slugs
// are cut at a word boundary.
func Slugify(s string) string {
	out := slug.MakeLang(strings.ReplaceAll(s, "_", " "), "fr")
	if len(out) <= maxSlugLen {
		return out
	}

	if i := strings.LastIndexByte(out[:maxSlugLen+1], '-'); i > 0 {
		return out[:i]
	}

	return strings.TrimRight(out[:maxSlugLen], "-")
}
