// Package sqli is the SQL injection detection driver: it runs the
// tokenizer, folder and classifier across the dialect/quote contexts
// a byte slice could plausibly be interpreted under, stopping at the
// first positive verdict.
package sqli

import (
	"bytes"

	"github.com/wafcore/sqlwaf/internal/sqlclassify"
	"github.com/wafcore/sqlwaf/internal/sqlfold"
	"github.com/wafcore/sqlwaf/internal/sqltoken"
)

// IsSQLi reports whether b looks like a SQL injection attempt under
// any of the contexts a downstream SQL engine might parse it in.
func IsSQLi(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	attack, _ := check(b)
	return attack
}

// Fingerprint runs the same context sweep as IsSQLi but also returns
// the fingerprint of whichever context produced the verdict (the
// first context tried, NONE+ANSI, if none flagged an attack).
func Fingerprint(b []byte) (attack bool, fingerprint string) {
	return check(b)
}

func check(b []byte) (bool, string) {
	fr := sqlfold.Fold(b, sqltoken.QuoteNone|sqltoken.DialectANSI)
	if sqlclassify.IsAttack(b, fr) {
		return true, fr.Fingerprint
	}
	best := fr

	if fr.Stats.CommentDDX > 0 || fr.Stats.CommentHash > 0 {
		fr2 := sqlfold.Fold(b, sqltoken.QuoteNone|sqltoken.DialectMySQL)
		if sqlclassify.IsAttack(b, fr2) {
			return true, fr2.Fingerprint
		}
	}

	if bytes.ContainsRune(b, '\'') {
		fr3 := sqlfold.Fold(b, sqltoken.QuoteSingle|sqltoken.DialectANSI)
		if sqlclassify.IsAttack(b, fr3) {
			return true, fr3.Fingerprint
		}
		if fr3.Stats.CommentDDX > 0 || fr3.Stats.CommentHash > 0 {
			fr4 := sqlfold.Fold(b, sqltoken.QuoteSingle|sqltoken.DialectMySQL)
			if sqlclassify.IsAttack(b, fr4) {
				return true, fr4.Fingerprint
			}
		}
	}

	if bytes.ContainsRune(b, '"') {
		fr5 := sqlfold.Fold(b, sqltoken.QuoteDouble|sqltoken.DialectMySQL)
		if sqlclassify.IsAttack(b, fr5) {
			return true, fr5.Fingerprint
		}
	}

	return false, best.Fingerprint
}
