// Package fold normalizes free-text location strings for matching
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKD decomposition
// 3 Case folding
// 4 Remove combining marks so accented and plain letters compare equal
// 5 Collapse whitespace to single spaces and trim
package fold

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
		)
	},
}

// Fold returns the folded form of s following the pipeline described above.
// "São Paulo" and "sao paulo" fold to the same string
func Fold(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	fs, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return collapseSpaces(fs)
}

// Contains reports whether needle occurs in haystack after both are folded.
// An empty needle matches everything; an empty haystack matches nothing
func Contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	if haystack == "" {
		return false
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}

// collapseSpaces squeezes runs of whitespace into single spaces and trims
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
