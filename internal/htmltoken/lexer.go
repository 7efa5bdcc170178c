package htmltoken

import "bytes"

// Lexer is the mutable workspace for one HTML5-subset tokenize pass.
// Like sqltoken.State, it is call-local: constructed fresh, mutated in
// place, discarded once the caller is done with it.
type Lexer struct {
	input []byte
	pos   int
	state lexState

	isClose bool

	tagNameStart   int
	attrNameStart  int
	attrValueStart int
	slashPos       int

	Current Token
}

// Init builds a Lexer over input starting from the given state.
func Init(input []byte, initial InitialState) *Lexer {
	l := &Lexer{input: input}
	switch initial {
	case DataState:
		l.state = stData
	case ValueNoQuote:
		l.state = stBeforeAttrName
	case ValueSingleQuote:
		l.state = stAttrValueSQ
		l.attrValueStart = 0
	case ValueDoubleQuote:
		l.state = stAttrValueDQ
		l.attrValueStart = 0
	case ValueBackQuote:
		l.state = stAttrValueBQ
		l.attrValueStart = 0
	}
	return l
}

// Next fills l.Current with the next token and reports whether one
// was produced.
func Next(l *Lexer) bool {
	for {
		var tok Token
		var ok bool

		switch l.state {
		case stEOF:
			return false
		case stData:
			tok, ok = l.lexData()
		case stTagOpen:
			tok, ok = l.lexTagOpen()
		case stEndTagOpen:
			tok, ok = l.lexEndTagOpen()
		case stTagName:
			tok, ok = l.lexTagName()
		case stBeforeAttrName:
			tok, ok = l.lexBeforeAttrName()
		case stAttrName:
			tok, ok = l.lexAttrName()
		case stAfterAttrName:
			tok, ok = l.lexAfterAttrName()
		case stBeforeAttrValue:
			tok, ok = l.lexBeforeAttrValue()
		case stAttrValueDQ:
			tok, ok = l.lexAttrValueQuoted('"')
		case stAttrValueSQ:
			tok, ok = l.lexAttrValueQuoted('\'')
		case stAttrValueBQ:
			tok, ok = l.lexAttrValueQuoted('`')
		case stAttrValueNQ:
			tok, ok = l.lexAttrValueNQ()
		case stAfterAttrValueQuoted:
			tok, ok = l.lexAfterAttrValueQuoted()
		case stSelfClosingStartTag:
			tok, ok = l.lexSelfClosingStartTag()
		case stBogusComment:
			tok, ok = l.lexBogusComment()
		case stBogusComment2:
			tok, ok = l.lexBogusComment2()
		case stMarkupDeclOpen:
			tok, ok = l.lexMarkupDeclOpen()
		case stComment:
			tok, ok = l.lexComment()
		case stCDATA:
			tok, ok = l.lexCDATA()
		case stDoctype:
			tok, ok = l.lexDoctype()
		default:
			return false
		}

		if ok {
			l.Current = tok
			return true
		}
	}
}

func (l *Lexer) mk(typ TokenType, start, end int) Token {
	return Token{Type: typ, Pos: start, Len: end - start, Value: l.input[start:end]}
}

// lexData scans for '<', emitting intervening bytes as DATA_TEXT.
func (l *Lexer) lexData() (Token, bool) {
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != '<' {
		l.pos++
	}
	if l.pos > start {
		tok := l.mk(DataText, start, l.pos)
		if l.pos < len(l.input) {
			l.state = stTagOpen
		} else {
			l.state = stEOF
		}
		return tok, true
	}
	if l.pos >= len(l.input) {
		l.state = stEOF
		return Token{}, false
	}
	l.state = stTagOpen
	return Token{}, false
}

// lexTagOpen dispatches on the byte following '<'.
func (l *Lexer) lexTagOpen() (Token, bool) {
	ltPos := l.pos
	l.pos++
	l.isClose = false

	if l.pos >= len(l.input) {
		l.state = stEOF
		return l.mk(DataText, ltPos, l.pos), true
	}

	c := l.input[l.pos]
	switch {
	case c == '!':
		l.pos++
		l.state = stMarkupDeclOpen
		return Token{}, false
	case c == '/':
		l.pos++
		l.isClose = true
		l.state = stEndTagOpen
		return Token{}, false
	case c == '?':
		l.state = stBogusComment
		return Token{}, false
	case c == '%':
		l.pos++
		l.state = stBogusComment2
		return Token{}, false
	case c == 0 || isAlpha(c):
		l.tagNameStart = l.pos
		l.state = stTagName
		return Token{}, false
	default:
		l.state = stData
		return l.mk(DataText, ltPos, l.pos), true
	}
}

func (l *Lexer) lexEndTagOpen() (Token, bool) {
	if l.pos >= len(l.input) {
		l.state = stEOF
		return Token{}, false
	}
	c := l.input[l.pos]
	switch {
	case c == '>':
		l.pos++
		l.state = stData
		return Token{}, false
	case isAlpha(c):
		l.tagNameStart = l.pos
		l.state = stTagName
		return Token{}, false
	default:
		l.state = stBogusComment
		return Token{}, false
	}
}

func (l *Lexer) lexTagName() (Token, bool) {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case isHTMLSpace(c):
			tok := l.mk(TagNameOpen, l.tagNameStart, l.pos)
			l.pos++
			l.state = stBeforeAttrName
			return tok, true
		case c == '/':
			tok := l.mk(TagNameOpen, l.tagNameStart, l.pos)
			l.slashPos = l.pos
			l.pos++
			l.state = stSelfClosingStartTag
			return tok, true
		case c == '>':
			typ := TagNameOpen
			if l.isClose {
				typ = TagNameClose
			}
			tok := l.mk(typ, l.tagNameStart, l.pos)
			if l.isClose {
				l.pos++
				l.state = stData
			} else {
				l.state = stBeforeAttrName
			}
			return tok, true
		}
		l.pos++
	}
	if l.pos > l.tagNameStart {
		typ := TagNameOpen
		if l.isClose {
			typ = TagNameClose
		}
		tok := l.mk(typ, l.tagNameStart, l.pos)
		l.state = stEOF
		return tok, true
	}
	l.state = stEOF
	return Token{}, false
}

func (l *Lexer) lexBeforeAttrName() (Token, bool) {
	for l.pos < len(l.input) && isHTMLSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		l.state = stEOF
		return Token{}, false
	}
	c := l.input[l.pos]
	if c == '/' {
		l.slashPos = l.pos
		l.pos++
		l.state = stSelfClosingStartTag
		return Token{}, false
	}
	if c == '>' {
		tok := l.mk(TagNameClose, l.pos, l.pos)
		l.pos++
		l.state = stData
		return tok, true
	}
	l.attrNameStart = l.pos
	l.state = stAttrName
	return Token{}, false
}

func (l *Lexer) lexAttrName() (Token, bool) {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case isHTMLSpace(c):
			tok := l.mk(AttrName, l.attrNameStart, l.pos)
			l.pos++
			l.state = stAfterAttrName
			return tok, true
		case c == '/':
			tok := l.mk(AttrName, l.attrNameStart, l.pos)
			l.slashPos = l.pos
			l.pos++
			l.state = stSelfClosingStartTag
			return tok, true
		case c == '=':
			tok := l.mk(AttrName, l.attrNameStart, l.pos)
			l.pos++
			l.state = stBeforeAttrValue
			return tok, true
		case c == '>':
			tok := l.mk(AttrName, l.attrNameStart, l.pos)
			l.state = stBeforeAttrName
			return tok, true
		}
		l.pos++
	}
	if l.pos > l.attrNameStart {
		tok := l.mk(AttrName, l.attrNameStart, l.pos)
		l.state = stEOF
		return tok, true
	}
	l.state = stEOF
	return Token{}, false
}

func (l *Lexer) lexAfterAttrName() (Token, bool) {
	for l.pos < len(l.input) && isHTMLSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		l.state = stEOF
		return Token{}, false
	}
	switch l.input[l.pos] {
	case '/':
		l.slashPos = l.pos
		l.pos++
		l.state = stSelfClosingStartTag
	case '=':
		l.pos++
		l.state = stBeforeAttrValue
	case '>':
		l.state = stBeforeAttrName
	default:
		l.attrNameStart = l.pos
		l.state = stAttrName
	}
	return Token{}, false
}

func (l *Lexer) lexBeforeAttrValue() (Token, bool) {
	for l.pos < len(l.input) && isHTMLSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		l.state = stEOF
		return Token{}, false
	}
	switch l.input[l.pos] {
	case '"':
		l.pos++
		l.attrValueStart = l.pos
		l.state = stAttrValueDQ
	case '\'':
		l.pos++
		l.attrValueStart = l.pos
		l.state = stAttrValueSQ
	case '`':
		l.pos++
		l.attrValueStart = l.pos
		l.state = stAttrValueBQ
	default:
		l.attrValueStart = l.pos
		l.state = stAttrValueNQ
	}
	return Token{}, false
}

func (l *Lexer) lexAttrValueQuoted(quote byte) (Token, bool) {
	for l.pos < len(l.input) && l.input[l.pos] != quote {
		l.pos++
	}
	tok := l.mk(AttrValue, l.attrValueStart, l.pos)
	if l.pos < len(l.input) {
		l.pos++
		l.state = stAfterAttrValueQuoted
	} else {
		l.state = stEOF
	}
	return tok, true
}

func (l *Lexer) lexAttrValueNQ() (Token, bool) {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if isHTMLSpace(c) {
			tok := l.mk(AttrValue, l.attrValueStart, l.pos)
			l.pos++
			l.state = stBeforeAttrName
			return tok, true
		}
		if c == '>' {
			tok := l.mk(AttrValue, l.attrValueStart, l.pos)
			l.state = stBeforeAttrName
			return tok, true
		}
		l.pos++
	}
	if l.pos > l.attrValueStart {
		tok := l.mk(AttrValue, l.attrValueStart, l.pos)
		l.state = stEOF
		return tok, true
	}
	l.state = stEOF
	return Token{}, false
}

func (l *Lexer) lexAfterAttrValueQuoted() (Token, bool) {
	if l.pos >= len(l.input) {
		l.state = stEOF
		return Token{}, false
	}
	c := l.input[l.pos]
	switch {
	case isHTMLSpace(c):
		l.pos++
		l.state = stBeforeAttrName
	case c == '/':
		l.slashPos = l.pos
		l.pos++
		l.state = stSelfClosingStartTag
	default:
		l.state = stBeforeAttrName
	}
	return Token{}, false
}

func (l *Lexer) lexSelfClosingStartTag() (Token, bool) {
	if l.pos >= len(l.input) {
		l.state = stEOF
		return Token{}, false
	}
	if l.input[l.pos] == '>' {
		start := l.slashPos
		l.pos++
		tok := l.mk(TagNameSelfClose, start, l.pos)
		l.state = stData
		return tok, true
	}
	l.state = stBeforeAttrName
	return Token{}, false
}

func (l *Lexer) lexBogusComment() (Token, bool) {
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != '>' {
		l.pos++
	}
	tok := l.mk(TagComment, start, l.pos)
	if l.pos < len(l.input) {
		l.pos++
	}
	l.state = stData
	return tok, true
}

func (l *Lexer) lexBogusComment2() (Token, bool) {
	start := l.pos
	for l.pos < len(l.input) {
		if l.input[l.pos] == '%' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '>' {
			end := l.pos
			l.pos += 2
			l.state = stData
			return l.mk(TagComment, start, end), true
		}
		l.pos++
	}
	tok := l.mk(TagComment, start, l.pos)
	l.state = stEOF
	return tok, true
}

func (l *Lexer) lexMarkupDeclOpen() (Token, bool) {
	rest := l.input[l.pos:]
	if hasCIPrefix(rest, "DOCTYPE") {
		l.pos += len("DOCTYPE")
		l.state = stDoctype
		return Token{}, false
	}
	if bytes.HasPrefix(rest, []byte("[CDATA[")) {
		l.pos += len("[CDATA[")
		l.state = stCDATA
		return Token{}, false
	}
	if bytes.HasPrefix(rest, []byte("--")) {
		l.pos += 2
		l.state = stComment
		return Token{}, false
	}
	l.state = stBogusComment
	return Token{}, false
}

// lexComment ends at "-->", tolerating a single interspersed NUL
// between the two dashes and the '>'.
func (l *Lexer) lexComment() (Token, bool) {
	start := l.pos
	p := l.pos
	for p+1 < len(l.input) {
		if l.input[p] == '-' && l.input[p+1] == '-' {
			q := p + 2
			if q < len(l.input) && l.input[q] == '>' {
				tok := l.mk(TagComment, start, p)
				l.pos = q + 1
				l.state = stData
				return tok, true
			}
			if q+1 < len(l.input) && l.input[q] == 0 && l.input[q+1] == '>' {
				tok := l.mk(TagComment, start, p)
				l.pos = q + 2
				l.state = stData
				return tok, true
			}
		}
		p++
	}
	l.pos = len(l.input)
	tok := l.mk(TagComment, start, l.pos)
	l.state = stEOF
	return tok, true
}

func (l *Lexer) lexCDATA() (Token, bool) {
	start := l.pos
	idx := bytes.Index(l.input[l.pos:], []byte("]]>"))
	if idx < 0 {
		l.pos = len(l.input)
		tok := l.mk(TagComment, start, l.pos)
		l.state = stEOF
		return tok, true
	}
	end := l.pos + idx
	l.pos = end + 3
	l.state = stData
	return l.mk(TagComment, start, end), true
}

func (l *Lexer) lexDoctype() (Token, bool) {
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != '>' {
		l.pos++
	}
	tok := l.mk(Doctype, start, l.pos)
	if l.pos < len(l.input) {
		l.pos++
	}
	l.state = stData
	return tok, true
}

func hasCIPrefix(s []byte, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c != prefix[i] {
			return false
		}
	}
	return true
}
