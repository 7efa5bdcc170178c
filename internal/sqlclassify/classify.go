// Package sqlclassify implements the SQLi fingerprint classifier: a
// blacklist lookup against the keyword table, rescued by a set of
// whitelist rules that reclassify specific short fingerprints as
// benign.
package sqlclassify

import (
	"bytes"
	"strings"

	"github.com/wafcore/sqlwaf/internal/sqlfold"
	"github.com/wafcore/sqlwaf/internal/sqltoken"
)

// IsAttack reports whether fr's fingerprint, folded from input, is a
// SQL injection: the fingerprint must be blacklisted and must not be
// rescued by the whitelist.
func IsAttack(input []byte, fr sqlfold.Result) bool {
	if !IsBlacklisted(fr.Fingerprint) {
		return false
	}
	return !isWhitelisted(input, fr)
}

// IsBlacklisted reports whether fp is a known-attack entry in the
// keyword table.
func IsBlacklisted(fp string) bool {
	return sqltoken.IsFingerprintBlacklisted([]byte(fp))
}

func isWhitelisted(input []byte, fr sqlfold.Result) bool {
	toks := fr.Tokens
	n := len(toks)
	if n == 0 {
		return false
	}

	if toks[n-1].Type == sqltoken.Comment && bytes.Contains(input, []byte("sp_password")) {
		return false
	}

	switch n {
	case 2:
		return whitelistLen2(input, toks, fr.Stats.Tokens)
	case 3:
		return whitelistLen3(toks, fr.Stats.Tokens, fr.Fingerprint)
	default:
		return false
	}
}

func whitelistLen2(input []byte, toks []sqltoken.Token, totalTokens int) bool {
	first, second := toks[0], toks[1]

	if second.Type == sqltoken.Union {
		return totalTokens == 2
	}

	if sv := second.Val(); len(sv) > 0 && sv[0] == '#' {
		return true
	}

	if first.Type == sqltoken.Bareword && second.Type == sqltoken.Comment {
		if !isCStyleComment(second) {
			return true
		}
	}

	if first.Type == sqltoken.Number && second.Type == sqltoken.Comment {
		if isCStyleComment(second) {
			return false
		}
		if totalTokens > 2 {
			return false
		}
		if followsWithWhitespaceOrComment(input, first) {
			return false
		}
		return true
	}

	if sv := second.Val(); len(sv) > 2 && sv[0] == '-' {
		return true
	}

	return false
}

func whitelistLen3(toks []sqltoken.Token, totalTokens int, fp string) bool {
	switch fp {
	case "sos", "s&s":
		first, third := toks[0], toks[2]
		bothUnquoted := first.StrOpen == 0 && third.StrOpen == 0
		delimsPairUp := first.StrOpen == third.StrClose
		if bothUnquoted && delimsPairUp {
			return false
		}
		return true
	case "s&n", "n&1", "1&1", "1&v", "1&s":
		return totalTokens == 3
	}

	mid := toks[1]
	if mid.Type == sqltoken.Keyword {
		val := upper(mid.Val())
		if !(len(val) >= 5 && strings.HasPrefix(val, "INTO")) {
			return true
		}
	}
	return false
}

func isCStyleComment(t sqltoken.Token) bool {
	v := t.Val()
	return len(v) >= 2 && v[0] == '/' && v[1] == '*'
}

func followsWithWhitespaceOrComment(input []byte, numTok sqltoken.Token) bool {
	end := numTok.Pos + numTok.Len
	if end >= len(input) {
		return false
	}
	if isWhitespaceByte(input[end]) {
		return true
	}
	if end+1 < len(input) {
		two := input[end : end+2]
		if string(two) == "/*" || string(two) == "--" {
			return true
		}
	}
	return false
}

func isWhitespaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0xa0, 0:
		return true
	}
	return false
}

func upper(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
