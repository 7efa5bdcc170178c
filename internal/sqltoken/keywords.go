package sqltoken

// keywordEntry is one row of the static keyword table: a word (already
// uppercased) and the token-type code it resolves to. Fingerprint rows
// are stored uppercased and prefixed with the literal digit '0'.
type keywordEntry struct {
	word string
	typ  Type
}

// keywordWords is a parallel slice of uppercased words used for the
// binary search, built once at package init from keywordTable (which
// is generated already sorted, see keywords_data.go) so lookups never
// allocate and startup does no sorting work.
var keywordWords []string

func init() {
	keywordWords = make([]string, len(keywordTable))
	for i, e := range keywordTable {
		keywordWords[i] = e.word
	}
}

func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Lookup resolves word (any case) to its token-type code via binary
// search with strict length equality: a candidate only matches if it
// has the exact same length as word, so "IN" never matches a prefix of
// "INTO". Ties (which the table generation guarantees not to have) are
// resolved by picking the leftmost equal entry.
func Lookup(word []byte) (Type, bool) {
	n := len(keywordWords)
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if compareBytesUpper(keywordWords[mid], word) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < n && len(keywordWords[lo]) == len(word) && compareBytesUpper(keywordWords[lo], word) == 0 {
		return keywordTable[lo].typ, true
	}
	return None, false
}

func compareBytesUpper(a string, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := upperByte(a[i]), upperByte(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// LookupString is a convenience wrapper around Lookup for string words.
func LookupString(word string) (Type, bool) {
	return Lookup([]byte(word))
}

// LookupMerged checks whether the space-joined concatenation of a and b
// resolves to a keyword-table entry, the primitive behind the folder's
// syntax_merge_words rule (e.g. "GROUP" + "BY" -> "GROUP BY").
func LookupMerged(a, b []byte) (Type, bool) {
	buf := make([]byte, 0, len(a)+len(b)+1)
	buf = append(buf, a...)
	buf = append(buf, ' ')
	buf = append(buf, b...)
	return Lookup(buf)
}

// IsFingerprintBlacklisted reports whether fp (a folded fingerprint,
// without the leading '0') is a known-attack entry in the keyword
// table: uppercase it, prefix it with '0', and look it up.
func IsFingerprintBlacklisted(fp []byte) bool {
	buf := make([]byte, 0, len(fp)+1)
	buf = append(buf, '0')
	for _, c := range fp {
		buf = append(buf, upperByte(c))
	}
	typ, ok := Lookup(buf)
	return ok && typ == Fingerprint
}
