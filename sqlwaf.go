// Package sqlwaf is the top-level detection façade: it exposes the
// two pure predicates a web application firewall calls per request,
// backed by the SQL injection driver in package sqli and the
// cross-site scripting driver in package xss.
package sqlwaf

import (
	"github.com/wafcore/sqlwaf/sqli"
	"github.com/wafcore/sqlwaf/xss"
)

// IsSQLi reports whether b looks like a SQL injection attempt.
func IsSQLi(b []byte) bool {
	return sqli.IsSQLi(b)
}

// IsXSS reports whether b looks like a cross-site scripting attempt.
func IsXSS(b []byte) bool {
	return xss.IsXSS(b)
}
