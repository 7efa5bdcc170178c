// Package xss is the cross-site scripting detection driver: it runs
// the HTML5-subset tokenizer and classifier from each of the five
// contexts an attribute value could be parsed under, stopping at the
// first positive verdict.
package xss

import (
	"github.com/wafcore/sqlwaf/internal/htmltoken"
	"github.com/wafcore/sqlwaf/internal/xssclassify"
)

var initialStates = []htmltoken.InitialState{
	htmltoken.DataState,
	htmltoken.ValueNoQuote,
	htmltoken.ValueSingleQuote,
	htmltoken.ValueDoubleQuote,
	htmltoken.ValueBackQuote,
}

// IsXSS reports whether b looks like a cross-site scripting attempt
// under any of the contexts it could be embedded into an HTML page.
func IsXSS(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, initial := range initialStates {
		if runPass(b, initial) {
			return true
		}
	}
	return false
}

func runPass(b []byte, initial htmltoken.InitialState) bool {
	l := htmltoken.Init(b, initial)
	c := xssclassify.New()
	for htmltoken.Next(l) {
		if c.Feed(l.Current) {
			return true
		}
	}
	return false
}
