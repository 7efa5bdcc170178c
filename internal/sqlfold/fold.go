// Package sqlfold implements the token folder: it drives a
// sqltoken.State through repeated tokenization and rewrites the
// resulting window down to a fingerprint of at most five type codes.
package sqlfold

import (
	"github.com/wafcore/sqlwaf/internal/sqltoken"
)

// windowCap mirrors sqltoken's 8-slot lookahead margin; only the first
// foldWindow slots ever make it into the fingerprint.
const windowCap = 8
const foldWindow = 5

// Result is the outcome of one fold pass: the fingerprint string, the
// folded token window backing it, and the lexer statistics collected
// along the way.
type Result struct {
	Fingerprint string
	Tokens      []sqltoken.Token
	Stats       sqltoken.Stats
}

// Fold tokenizes input under flags and folds the resulting stream into
// a fingerprint.
func Fold(input []byte, flags sqltoken.Flags) Result {
	f := &folder{s: sqltoken.NewState(input, flags)}
	f.run()
	return f.result()
}

type folder struct {
	s   *sqltoken.State
	win [windowCap]sqltoken.Token
	pos int // number of slots filled in win
	left int // index of the slot currently under consideration

	lastComment sqltoken.Token
	hasComment  bool

	sawEvil bool
	eof     bool
}

func (f *folder) fetchNext() (sqltoken.Token, bool) {
	for {
		if !sqltoken.Tokenize(f.s) {
			return sqltoken.Token{}, false
		}
		tok := f.s.Current
		if tok.Type == sqltoken.Evil {
			f.sawEvil = true
		}
		if tok.Type == sqltoken.Comment {
			f.lastComment = tok
			f.hasComment = true
			continue
		}
		return tok, true
	}
}

func isPreambleNoise(t sqltoken.Token) bool {
	return t.Type == sqltoken.LeftParen || t.Type == sqltoken.SQLType || isUnary(t)
}

func (f *folder) fillPreamble() {
	for f.pos == 0 {
		tok, ok := f.fetchNext()
		if !ok {
			return
		}
		if isPreambleNoise(tok) {
			continue
		}
		f.win[0] = tok
		f.pos = 1
	}
}

// fillTo ensures at least n tokens are buffered from left, pulling
// more from the lexer as needed. It returns false only once the input
// is exhausted and fewer than n tokens could be buffered.
func (f *folder) fillTo(n int) bool {
	for f.pos-f.left < n {
		if f.pos >= windowCap {
			return f.pos-f.left >= n
		}
		tok, ok := f.fetchNext()
		if !ok {
			f.eof = true
			return false
		}
		f.win[f.pos] = tok
		f.pos++
	}
	return true
}

// drop removes n slots starting at f.left+offset, compacting the
// window and shrinking pos accordingly.
func (f *folder) drop(offset, n int) {
	start := f.left + offset
	copy(f.win[start:], f.win[start+n:f.pos])
	f.pos -= n
}

func (f *folder) run() {
	f.fillPreamble()
	if f.pos == 0 {
		return
	}

	for f.left < foldWindow {
		if !f.fillTo(1) {
			if f.pos-f.left == 0 {
				break
			}
		}

		f.fillTo(2)
		if f.pos-f.left >= 2 && f.applyTwoSlot() {
			f.s.Stats.Folds++
			continue
		}

		f.fillTo(3)
		if f.pos-f.left >= 3 && f.applyThreeSlot() {
			f.s.Stats.Folds++
			continue
		}

		f.fillTo(5)
		if f.pos-f.left >= 5 && f.applyOverflow() {
			f.s.Stats.Folds++
			continue
		}

		if f.pos-f.left == 0 {
			break
		}
		f.left++
	}

	f.finalize()
}

func (f *folder) finalize() {
	if f.hasComment && f.left < foldWindow && f.left < windowCap {
		f.win[f.left] = f.lastComment
		f.left++
	}

	if f.left > foldWindow {
		f.left = foldWindow
	}

	if f.left > 0 {
		last := &f.win[f.left-1]
		if last.Type == sqltoken.Bareword && last.StrOpen == '`' && len(last.Val()) == 0 {
			last.Type = sqltoken.Comment
		}
	}
}

func (f *folder) result() Result {
	n := f.left
	if n > foldWindow {
		n = foldWindow
	}

	fp := make([]byte, n)
	for i := 0; i < n; i++ {
		fp[i] = byte(f.win[i].Type)
	}

	tokens := make([]sqltoken.Token, n)
	copy(tokens, f.win[:n])

	fingerprint := string(fp)
	if f.sawEvil {
		fingerprint = string(sqltoken.Evil)
	}

	return Result{
		Fingerprint: fingerprint,
		Tokens:      tokens,
		Stats:       f.s.Stats,
	}
}

func isUnary(t sqltoken.Token) bool {
	if t.Type == sqltoken.Operator {
		switch t.ValString() {
		case "+", "-", "~", "!":
			return true
		}
	}
	if t.Type == sqltoken.Keyword || t.Type == sqltoken.Expression {
		if upperEqual(t.Val(), "NOT") {
			return true
		}
	}
	return false
}

func isArithmeticOp(t sqltoken.Token) bool {
	if t.Type != sqltoken.Operator {
		return false
	}
	switch t.ValString() {
	case "+", "-", "*", "/":
		return true
	}
	return false
}

func valueLike(t sqltoken.Token) bool {
	switch t.Type {
	case sqltoken.Bareword, sqltoken.Number, sqltoken.Variable, sqltoken.String:
		return true
	}
	return false
}

func isWordy(t sqltoken.Token) bool {
	switch t.Type {
	case sqltoken.Keyword, sqltoken.Expression, sqltoken.GroupLike, sqltoken.Bareword,
		sqltoken.Logic, sqltoken.TSQL, sqltoken.Collate, sqltoken.SQLType, sqltoken.Function, sqltoken.Union:
		return true
	}
	return false
}

func upperEqual(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := range b {
		c := b[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c != s[i] {
			return false
		}
	}
	return true
}

var specialFuncWords = map[string]sqltoken.Type{
	"USER":              sqltoken.Function,
	"USER_ID":           sqltoken.Function,
	"USER_NAME":         sqltoken.Function,
	"DATABASE":          sqltoken.Function,
	"PASSWORD":          sqltoken.Function,
	"CURRENT_USER":      sqltoken.Function,
	"CURRENT_DATE":      sqltoken.Function,
	"CURRENT_TIME":      sqltoken.Function,
	"CURRENT_TIMESTAMP": sqltoken.Function,
	"LOCALTIME":         sqltoken.Function,
	"LOCALTIMESTAMP":    sqltoken.Function,
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
