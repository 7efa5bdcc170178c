package sqltoken

import "bytes"

// Tokenize fills state.Current with the next token and advances
// state's cursor, returning true while tokens remain. The very first
// call may first synthesize the initial quoted-context token when the
// state was built with QuoteSingle or QuoteDouble set.
func Tokenize(s *State) bool {
	if !s.synthesizedInitial {
		s.synthesizedInitial = true
		if tok, ok := synthesizeInitialQuoted(s); ok {
			s.Current = tok
			s.pushToken(tok)
			return true
		}
	}

	skipWhitespace(s)
	if s.pos >= len(s.input) {
		return false
	}

	tok := lexOne(s)
	s.Current = tok
	s.pushToken(tok)
	return true
}

// isSQLSpace matches the whitespace byte set: space, tab, LF, VT, FF,
// CR, NBSP and NUL all count.
func isSQLSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0xa0, 0:
		return true
	}
	return false
}

func skipWhitespace(s *State) {
	for s.pos < len(s.input) && isSQLSpace(s.input[s.pos]) {
		s.pos++
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isWordSeparator is the byte set that ends a bareword/keyword run:
// `" []{}()<>:\?=@!#~+-*/&|^%,'\t\n\v\f\r\"\xa0\0;"`.
var wordSeparator [256]bool

func init() {
	for _, b := range []byte(" []{}()<>:\\?=@!#~+-*/&|^%,'\t\n\v\f\r\"") {
		wordSeparator[b] = true
	}
	wordSeparator[0xa0] = true
	wordSeparator[0] = true
	wordSeparator[';'] = true
}

func isWordSeparator(b byte) bool { return wordSeparator[b] }

func isIdentByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func makeToken(typ Type, start, end int, s *State) Token {
	tok := Token{Type: typ, Pos: start, Len: end - start}
	tok.SetVal(s.input[start:end])
	return tok
}

// lexOne dispatches on the first byte of the remaining input, which is
// guaranteed non-whitespace and in-bounds by the caller.
func lexOne(s *State) Token {
	c := s.input[s.pos]
	switch {
	case c == '\'' || c == '"':
		return lexQuoted(s, c)
	case c == '-':
		return lexDash(s)
	case c == '#':
		return lexHash(s)
	case c == '/':
		return lexSlash(s)
	case c == '\\':
		return lexBackslash(s)
	case c == '@':
		return lexVariable(s)
	case c == '`':
		return lexTick(s)
	case c == '$':
		return lexDollar(s)
	case c == '[':
		return lexBracket(s)
	case c == '(':
		return lexSingle(s, LeftParen)
	case c == ')':
		return lexSingle(s, RightParen)
	case c == ',':
		return lexSingle(s, Comma)
	case c == ';':
		return lexSingle(s, Semicolon)
	case c == '{':
		return lexSingle(s, LeftBrace)
	case c == '}':
		return lexSingle(s, RightBrace)
	case c == '!' || c == '<' || c == '>' || c == '=' || c == '&' || c == '|' || c == ':' || c == '*':
		return lexOperatorWide(s)
	case c == '+' || c == '%' || c == '^' || c == '~':
		return lexOperatorNarrow(s)
	case c == '?' || c == ']':
		return lexUnknown(s)
	case c == '.' || isDigit(c):
		return lexNumber(s)
	case c == 'B' || c == 'b':
		return lexLetterPrefix(s, 'B')
	case c == 'E' || c == 'e':
		return lexLetterPrefix(s, 'E')
	case c == 'N' || c == 'n':
		return lexLetterPrefix(s, 'N')
	case c == 'Q' || c == 'q':
		return lexLetterPrefix(s, 'Q')
	case c == 'U' || c == 'u':
		return lexLetterPrefix(s, 'U')
	case c == 'X' || c == 'x':
		return lexLetterPrefix(s, 'X')
	default:
		return lexWord(s)
	}
}

func lexSingle(s *State, typ Type) Token {
	start := s.pos
	s.pos++
	return makeToken(typ, start, s.pos, s)
}

func lexUnknown(s *State) Token {
	start := s.pos
	s.pos++
	return makeToken(Unknown, start, s.pos, s)
}

func lexOperatorNarrow(s *State) Token {
	start := s.pos
	s.pos++
	return makeToken(Operator, start, s.pos, s)
}

func lexOperatorWide(s *State) Token {
	start := s.pos
	a := s.input[s.pos]

	if a == '<' && s.byteAt(s.pos+1) == '=' && s.byteAt(s.pos+2) == '>' {
		s.pos += 3
		return makeToken(Operator, start, s.pos, s)
	}

	if a == ':' {
		if s.byteAt(s.pos+1) == ':' {
			s.pos += 2
			return makeToken(Operator, start, s.pos, s)
		}
		s.pos++
		return makeToken(Colon, start, s.pos, s)
	}

	b := s.byteAt(s.pos + 1)
	switch [2]byte{a, b} {
	case [2]byte{'!', '='}, [2]byte{'<', '='}, [2]byte{'>', '='}, [2]byte{'<', '>'},
		[2]byte{'&', '&'}, [2]byte{'|', '|'}, [2]byte{'*', '*'}:
		s.pos += 2
		return makeToken(Operator, start, s.pos, s)
	}

	s.pos++
	return makeToken(Operator, start, s.pos, s)
}

// lexDash handles "--" end-of-line comments (tracking the ddw/ddx
// statistic split) versus a bare '-' operator.
func lexDash(s *State) Token {
	start := s.pos
	s.pos++
	if s.byteAt(s.pos) != '-' {
		return makeToken(Operator, start, s.pos, s)
	}

	after := s.pos + 1
	if after >= len(s.input) || isSQLSpace(s.input[after]) {
		s.Stats.CommentDDW++
		s.pos = after
		return scanEOLComment(s, start)
	}
	if s.flags.isANSI() {
		s.Stats.CommentDDX++
		s.pos = after
		return scanEOLComment(s, start)
	}
	return makeToken(Operator, start, s.pos, s)
}

func scanEOLComment(s *State, start int) Token {
	p := s.pos
	for p < len(s.input) && s.input[p] != '\n' {
		p++
	}
	s.pos = p
	return makeToken(Comment, start, p, s)
}

// lexHash handles MySQL '#' comments versus a bare '#' operator.
func lexHash(s *State) Token {
	start := s.pos
	s.pos++
	if s.flags.isMySQL() {
		s.Stats.CommentHash++
		return scanEOLComment(s, start)
	}
	return makeToken(Operator, start, s.pos, s)
}

// lexSlash handles "/* ... */" comments, nested or MySQL executable
// comments ("/*!...") being flagged evil, and a bare '/' operator.
func lexSlash(s *State) Token {
	start := s.pos
	if s.byteAt(s.pos+1) != '*' {
		s.pos++
		return makeToken(Operator, start, s.pos, s)
	}
	s.pos += 2

	executable := s.byteAt(s.pos) == '!'
	nested := false

	p := s.pos
	for p < len(s.input) {
		if p+1 < len(s.input) && s.input[p] == '/' && s.input[p+1] == '*' {
			nested = true
			p += 2
			continue
		}
		if p+1 < len(s.input) && s.input[p] == '*' && s.input[p+1] == '/' {
			p += 2
			break
		}
		p++
	}
	s.pos = p
	s.Stats.CommentC++

	if executable || nested {
		return makeToken(Evil, start, s.pos, s)
	}
	return makeToken(Comment, start, s.pos, s)
}

func lexBackslash(s *State) Token {
	start := s.pos
	s.pos++
	if s.byteAt(s.pos) == 'N' {
		s.pos++
		return makeToken(Number, start, s.pos, s)
	}
	return makeToken(Backslash, start, s.pos, s)
}

// lexVariable handles @name / @@name, with an optional tick/quote/
// bareword body.
func lexVariable(s *State) Token {
	start := s.pos
	s.pos++
	count := 1
	if s.byteAt(s.pos) == '@' {
		count = 2
		s.pos++
	}

	switch s.byteAt(s.pos) {
	case '`':
		s.pos++
		end, _ := scanDelimited(s, '`', false)
		s.pos = end
	case '\'', '"':
		d := s.input[s.pos]
		s.pos++
		end, _ := scanDelimited(s, d, true)
		s.pos = end
	default:
		for s.pos < len(s.input) && !isWordSeparator(s.input[s.pos]) {
			s.pos++
		}
	}

	tok := makeToken(Variable, start, s.pos, s)
	tok.Count = count
	return tok
}

// lexTick handles a backtick-quoted run: reclassified as a function if
// the body resolves to a known function, else left as a bareword.
func lexTick(s *State) Token {
	start := s.pos
	s.pos++
	contentStart := s.pos
	end, closed := scanDelimited(s, '`', false)
	var content []byte
	if closed {
		content = s.input[contentStart : end-1]
	} else {
		content = s.input[contentStart:end]
	}
	s.pos = end

	typ := Bareword
	if tv, ok := Lookup(content); ok && tv == Function {
		typ = Function
	}

	tok := Token{Type: typ, Pos: start, Len: s.pos - start, StrOpen: '`'}
	if closed {
		tok.StrClose = '`'
	}
	tok.SetVal(content)
	return tok
}

// lexBracket handles T-SQL bracketed identifiers: consume to the next
// ']' inclusive, emitted as a bareword.
func lexBracket(s *State) Token {
	start := s.pos
	s.pos++
	for s.pos < len(s.input) && s.input[s.pos] != ']' {
		s.pos++
	}
	if s.pos < len(s.input) {
		s.pos++
	}
	return makeToken(Bareword, start, s.pos, s)
}

// lexDollar handles money literals ($123, $.50), dollar-quoted strings
// ($tag$...$tag$ / $$...$$), and a lone '$' falling back to bareword.
func lexDollar(s *State) Token {
	start := s.pos
	s.pos++

	if c := s.byteAt(s.pos); isDigit(c) || c == '.' || c == ',' {
		p := s.pos
		for p < len(s.input) && (isDigit(s.input[p]) || s.input[p] == '.' || s.input[p] == ',') {
			p++
		}
		s.pos = p
		return makeToken(Number, start, s.pos, s)
	}

	tagStart := s.pos
	p := tagStart
	for p < len(s.input) && isIdentByte(s.input[p]) {
		p++
	}
	if p < len(s.input) && s.input[p] == '$' {
		tag := s.input[tagStart:p]
		bodyStart := p + 1
		closer := append(append([]byte{'$'}, tag...), '$')
		idx := bytes.Index(s.input[bodyStart:], closer)
		if idx >= 0 {
			end := bodyStart + idx + len(closer)
			tok := Token{Type: String, Pos: start, Len: end - start, StrOpen: '$', StrClose: '$'}
			tok.SetVal(s.input[bodyStart : bodyStart+idx])
			s.pos = end
			return tok
		}
		tok := Token{Type: String, Pos: start, Len: len(s.input) - start, StrOpen: '$'}
		tok.SetVal(s.input[bodyStart:])
		s.pos = len(s.input)
		return tok
	}

	s.pos = start + 1
	return makeToken(Bareword, start, s.pos, s)
}

// lexQuoted handles '...' and "..." string literals.
func lexQuoted(s *State, delim byte) Token {
	start := s.pos
	s.pos++
	contentStart := s.pos
	end, closed := scanDelimited(s, delim, true)
	var content []byte
	if closed {
		content = s.input[contentStart : end-1]
	} else {
		content = s.input[contentStart:end]
	}
	s.pos = end

	tok := Token{Type: String, Pos: start, Len: s.pos - start, StrOpen: delim}
	if closed {
		tok.StrClose = delim
	}
	tok.SetVal(content)
	return tok
}

// scanDelimited scans from s.pos (positioned just past an opening
// delimiter, real or virtual) for delim, honoring an odd run of
// backslashes immediately before it (escaped) and a doubled delimiter
// (also escaped, SQL-style ''). It returns the index just past the
// closing delimiter and true, or len(input) and false on EOF.
func scanDelimited(s *State, delim byte, backslashEscapes bool) (end int, closed bool) {
	i := s.pos
	for i < len(s.input) {
		c := s.input[i]
		if c != delim {
			i++
			continue
		}
		if i+1 < len(s.input) && s.input[i+1] == delim {
			i += 2
			continue
		}
		if backslashEscapes {
			count := 0
			for j := i - 1; j >= 0 && s.input[j] == '\\'; j-- {
				count++
			}
			if count%2 == 1 {
				i++
				continue
			}
		}
		return i + 1, true
	}
	return len(s.input), false
}

func synthesizeInitialQuoted(s *State) (Token, bool) {
	var delim byte
	switch {
	case s.flags.hasQuote(QuoteSingle):
		delim = '\''
	case s.flags.hasQuote(QuoteDouble):
		delim = '"'
	default:
		return Token{}, false
	}

	start := s.pos
	end, closed := scanDelimited(s, delim, true)
	var content []byte
	if closed {
		content = s.input[start : end-1]
	} else {
		content = s.input[start:end]
	}
	s.pos = end

	tok := Token{Type: String, Pos: start, Len: s.pos - start, StrOpen: delim}
	if closed {
		tok.StrClose = delim
	}
	tok.SetVal(content)
	return tok, true
}

// lexNumber handles '.'/digit-led input: an optional 0x/0b prefix, a
// digit run with an optional '.' and more digits, an optional e/E
// exponent (rejected and rewound if it has no exponent digits), and an
// optional d/D/f/F suffix gated on what follows it. A bare '.' with no
// digits anywhere emits a Dot punctuation token instead.
func lexNumber(s *State) Token {
	start := s.pos

	if s.input[s.pos] == '0' {
		switch s.byteAt(s.pos + 1) {
		case 'x', 'X':
			p := s.pos + 2
			q := p
			for q < len(s.input) && isHexDigit(s.input[q]) {
				q++
			}
			if q > p {
				s.pos = q
				return makeToken(Number, start, s.pos, s)
			}
		case 'b', 'B':
			p := s.pos + 2
			q := p
			for q < len(s.input) && (s.input[q] == '0' || s.input[q] == '1') {
				q++
			}
			if q > p {
				s.pos = q
				return makeToken(Number, start, s.pos, s)
			}
		}
	}

	p := s.pos
	digitCount := 0
	for p < len(s.input) && isDigit(s.input[p]) {
		p++
		digitCount++
	}
	if p < len(s.input) && s.input[p] == '.' {
		p++
		for p < len(s.input) && isDigit(s.input[p]) {
			p++
			digitCount++
		}
	}

	if digitCount == 0 {
		s.pos = start + 1
		return makeToken(Dot, start, s.pos, s)
	}

	if p < len(s.input) && (s.input[p] == 'e' || s.input[p] == 'E') {
		q := p + 1
		if q < len(s.input) && (s.input[q] == '+' || s.input[q] == '-') {
			q++
		}
		expDigits := 0
		for q < len(s.input) && isDigit(s.input[q]) {
			q++
			expDigits++
		}
		if expDigits > 0 {
			p = q
		}
		// else: leave p before the 'e' so parsing resumes there next call
	}

	if p < len(s.input) {
		switch s.input[p] {
		case 'd', 'D', 'f', 'F':
			next := s.byteAt(p + 1)
			if p+1 >= len(s.input) || isSQLSpace(next) || next == ';' || next == 'u' || next == 'U' {
				p++
			}
		}
	}

	s.pos = p
	return makeToken(Number, start, s.pos, s)
}

// lexWord consumes a bareword/keyword run, splitting at a '.' or '`'
// mark when the prefix up to the mark is itself a known keyword.
func lexWord(s *State) Token {
	start := s.pos
	for s.pos < len(s.input) && !isWordSeparator(s.input[s.pos]) {
		s.pos++
	}
	run := s.input[start:s.pos]

	if idx := indexDotOrBacktick(run); idx > 0 {
		prefix := run[:idx]
		if typ, ok := Lookup(prefix); ok {
			s.pos = start + len(prefix)
			return makeToken(typ, start, s.pos, s)
		}
	}

	typ, ok := Lookup(run)
	if !ok {
		typ = Bareword
	}
	return makeToken(typ, start, s.pos, s)
}

func indexDotOrBacktick(run []byte) int {
	for i, b := range run {
		if b == '.' || b == '`' {
			return i
		}
	}
	return -1
}

// lexLetterPrefix dispatches the B/E/N/Q/U/X prefixed string forms,
// falling back to a plain word when the expected quote doesn't follow.
func lexLetterPrefix(s *State, class byte) Token {
	start := s.pos
	next := s.byteAt(s.pos + 1)

	switch class {
	case 'B':
		if next == '\'' {
			return scanSimplePrefixedString(s, start, 1)
		}
	case 'E':
		if next == '\'' {
			return scanSimplePrefixedString(s, start, 1)
		}
	case 'N':
		if next == '\'' {
			return scanSimplePrefixedString(s, start, 1)
		}
		if (next == 'q' || next == 'Q') && s.byteAt(s.pos+2) == '\'' {
			return scanOracleQString(s, start, 2)
		}
	case 'Q':
		if next == '\'' {
			return scanOracleQString(s, start, 1)
		}
	case 'U':
		if next == '&' && s.byteAt(s.pos+2) == '\'' {
			return scanSimplePrefixedString(s, start, 2)
		}
	case 'X':
		if next == '\'' {
			return scanSimplePrefixedString(s, start, 1)
		}
	}

	s.pos = start
	return lexWord(s)
}

// scanSimplePrefixedString consumes prefixLen bytes (the letter(s)
// before the quote), then a standard single-quoted body.
func scanSimplePrefixedString(s *State, start, prefixLen int) Token {
	s.pos = start + prefixLen
	delim := s.input[s.pos]
	s.pos++
	contentStart := s.pos
	end, closed := scanDelimited(s, delim, true)
	var content []byte
	if closed {
		content = s.input[contentStart : end-1]
	} else {
		content = s.input[contentStart:end]
	}
	s.pos = end

	tok := Token{Type: String, Pos: start, Len: s.pos - start, StrOpen: delim}
	if closed {
		tok.StrClose = delim
	}
	tok.SetVal(content)
	return tok
}

// scanOracleQString consumes Oracle's q'<bracket>...<bracket>' form
// (and n's nq'...' variant via prefixLen=2), matching one of the
// bracket pairs () [] {} <>.
func scanOracleQString(s *State, start, prefixLen int) Token {
	s.pos = start + prefixLen + 1 // letter(s) + quote
	openBracket := s.byteAt(s.pos)
	closeBracket := matchingBracket(openBracket)
	if closeBracket == 0 {
		s.pos = start
		return lexWord(s)
	}
	s.pos++
	contentStart := s.pos
	closer := []byte{closeBracket, '\''}
	idx := bytes.Index(s.input[s.pos:], closer)
	if idx < 0 {
		tok := Token{Type: String, Pos: start, Len: len(s.input) - start, StrOpen: '\''}
		tok.SetVal(s.input[contentStart:])
		s.pos = len(s.input)
		return tok
	}
	end := contentStart + idx + len(closer)
	tok := Token{Type: String, Pos: start, Len: end - start, StrOpen: '\'', StrClose: '\''}
	tok.SetVal(s.input[contentStart : contentStart+idx])
	s.pos = end
	return tok
}

func matchingBracket(b byte) byte {
	switch b {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	case '<':
		return '>'
	}
	return 0
}
