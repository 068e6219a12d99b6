// text/text.go
package text

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// chainPool avoids per-call allocations.
// Each borrower gets a fresh NFD → strip combining marks (Mn) → NFC pipeline.
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)), // remove combining diacritics
			norm.NFC,
		)
	},
}

// Fold lowercases and strips *combining* diacritics via NFD→remove(Mn)→NFC.
// It does not guarantee ASCII; characters like "ø" or "ß" remain.
// Returns "" for blank/whitespace-only strings.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// ASCII fast path: already ASCII with no A..Z means nothing to do.
	if isASCIIAndLower(s) {
		return s
	}

	s = strings.ToLower(s)

	t := chainPool.Get().(transform.Transformer)
	defer func() {
		t.Reset()
		chainPool.Put(t)
	}()

	out, _, _ := transform.String(t, s)
	return out
}

// Capitalize upper-cases the first rune of s and leaves the rest alone.
// It is what turns an image filename like "logo" into the alt text "Logo".
func Capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

// Parameterize converts arbitrary text into a URL-safe slug: Fold first,
// then any run of non-alphanumeric runes becomes a single '-', trimmed at
// both ends. Handy for building readable ids in routing options.
func Parameterize(s string) string {
	folded := Fold(s)
	if folded == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastWasDash := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasDash = false
		default:
			if !lastWasDash {
				b.WriteByte('-')
				lastWasDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// isASCIIAndLower reports whether s contains only ASCII bytes and no A..Z.
func isASCIIAndLower(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x80 {
			return false
		}
		if b >= 'A' && b <= 'Z' {
			return false
		}
	}
	return true
}
