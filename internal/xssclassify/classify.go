// Package xssclassify implements the XSS classifier: it tracks the
// attribute class of the most recently seen ATTR_NAME and decides, as
// HTML tokens arrive, whether the stream constitutes an attack.
package xssclassify

import (
	"strings"

	"github.com/wafcore/sqlwaf/internal/htmltoken"
)

// AttrClass is the stashed classification of the last ATTR_NAME,
// consulted when the matching ATTR_VALUE arrives.
type AttrClass int

const (
	AttrNone AttrClass = iota
	AttrBlack
	AttrURL
	AttrStyle
	AttrIndirect
)

// Classifier holds the one piece of state the token stream needs
// across calls: the pending attribute class.
type Classifier struct {
	class AttrClass
}

func New() *Classifier { return &Classifier{} }

// Feed processes one token and reports whether it makes the stream an
// attack. Callers keep feeding tokens after a false result; a true
// result is terminal for the pass.
func (c *Classifier) Feed(tok htmltoken.Token) bool {
	switch tok.Type {
	case htmltoken.Doctype:
		return true

	case htmltoken.TagNameOpen:
		return isBlacklistedTag(upper(tok.Value))

	case htmltoken.AttrName:
		c.class = classifyAttrName(tok.Value)

	case htmltoken.AttrValue:
		attack := c.checkAttrValue(tok.Value)
		c.class = AttrNone
		return attack

	case htmltoken.TagComment:
		return isAttackComment(tok.Value)
	}
	return false
}

func isBlacklistedTag(name string) bool {
	if tagBlacklist[name] {
		return true
	}
	return strings.HasPrefix(name, "SVG") || strings.HasPrefix(name, "XSL")
}

func classifyAttrName(v []byte) AttrClass {
	u := upper(v)

	if len(u) >= 5 && strings.HasPrefix(u, "ON") {
		if eventHandlerNames[u[2:]] {
			return AttrBlack
		}
	}
	if u == "XMLNS" || u == "XLINK" {
		return AttrBlack
	}
	if attrURLNames[u] {
		return AttrURL
	}
	if u == "ATTRIBUTENAME" {
		return AttrIndirect
	}
	if attrBlackNames[u] {
		return AttrBlack
	}
	if attrStyleNames[u] {
		return AttrStyle
	}
	return AttrNone
}

func (c *Classifier) checkAttrValue(v []byte) bool {
	switch c.class {
	case AttrBlack, AttrStyle:
		return true
	case AttrURL:
		return isBlackURL(v)
	case AttrIndirect:
		return classifyAttrName(v) != AttrNone
	}
	return false
}

func isAttackComment(v []byte) bool {
	for _, c := range v {
		if c == '`' {
			return true
		}
	}
	if hasCIPrefix(v, "[if") {
		return true
	}
	if hasCIPrefix(v, "xml") {
		return true
	}
	if len(v) >= 6 {
		head := upper(v[:6])
		if head == "IMPORT" || head == "ENTITY" {
			return true
		}
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

func hasCIPrefix(v []byte, prefix string) bool {
	if len(v) < len(prefix) {
		return false
	}
	return upper(v[:len(prefix)]) == strings.ToUpper(prefix)
}
