package sqlfold

import (
	"bytes"

	"github.com/wafcore/sqlwaf/internal/sqltoken"
)

// applyTwoSlot checks win[left], win[left+1] against every two-slot
// rewrite rule, applying the first match. It reports whether a rule
// fired.
func (f *folder) applyTwoSlot() bool {
	a := &f.win[f.left]
	b := &f.win[f.left+1]

	switch {
	case a.Type == sqltoken.String && b.Type == sqltoken.String:
		merged := append(append([]byte{}, a.Val()...), b.Val()...)
		a.SetVal(merged)
		a.Len += b.Len
		f.drop(1, 1)
		return true

	case a.Type == sqltoken.Semicolon && b.Type == sqltoken.Semicolon:
		f.drop(1, 1)
		return true

	case (a.Type == sqltoken.Operator || a.Type == sqltoken.Logic) &&
		(isUnary(*b) || b.Type == sqltoken.SQLType):
		f.drop(1, 1)
		return true

	case a.Type == sqltoken.LeftParen && isUnary(*b):
		f.drop(1, 1)
		return true
	}

	if isWordy(*a) && isWordy(*b) {
		if typ, ok := sqltoken.LookupMerged(a.Val(), b.Val()); ok {
			merged := append(append(append([]byte{}, a.Val()...), ' '), b.Val()...)
			a.Type = typ
			a.SetVal(merged)
			a.Len += b.Len + 1
			f.drop(1, 1)
			return true
		}
	}

	if a.Type == sqltoken.Semicolon && upperEqual(b.Val(), "IF") {
		b.Type = sqltoken.TSQL
		return true
	}

	if (a.Type == sqltoken.Bareword || a.Type == sqltoken.Variable) && b.Type == sqltoken.LeftParen {
		if _, ok := specialFuncWords[upper(a.Val())]; ok {
			a.Type = sqltoken.Function
			return true
		}
	}

	if isWordy(*a) && isInWord(a.Val()) {
		if b.Type == sqltoken.LeftParen {
			a.Type = sqltoken.Operator
		} else {
			a.Type = sqltoken.Bareword
		}
		return true
	}

	if (a.Type == sqltoken.Operator || isWordy(*a)) && isLikeWord(a.Val()) && b.Type == sqltoken.LeftParen {
		a.Type = sqltoken.Function
		return true
	}

	if a.Type == sqltoken.SQLType && valueLike(*b) {
		f.drop(0, 1)
		return true
	}

	if a.Type == sqltoken.Collate && b.Type == sqltoken.Bareword && bytes.ContainsRune(b.Val(), '_') {
		b.Type = sqltoken.SQLType
		return true
	}

	if a.Type == sqltoken.Backslash {
		if isArithmeticOp(*b) {
			a.Type = sqltoken.Number
		} else {
			f.drop(0, 1)
		}
		return true
	}

	if a.Type == sqltoken.LeftParen && b.Type == sqltoken.LeftParen {
		f.drop(1, 1)
		return true
	}

	if a.Type == sqltoken.RightParen && b.Type == sqltoken.RightParen {
		f.drop(1, 1)
		return true
	}

	if a.Type == sqltoken.LeftBrace && b.Type == sqltoken.Bareword && len(b.Val()) == 0 {
		f.sawEvil = true
		f.left = foldWindow // force termination
		return true
	}

	if a.Type == sqltoken.Operator && a.ValString() == "*" && b.Type == sqltoken.RightBrace {
		f.drop(1, 1)
		return true
	}

	return false
}

func isInWord(v []byte) bool {
	return upperEqual(v, "IN") || upperEqual(v, "NOT IN")
}

func isLikeWord(v []byte) bool {
	return upperEqual(v, "LIKE") || upperEqual(v, "NOT LIKE")
}

// applyThreeSlot checks win[left..left+2] against every three-slot
// rewrite rule.
func (f *folder) applyThreeSlot() bool {
	a := &f.win[f.left]
	b := &f.win[f.left+1]
	c := &f.win[f.left+2]

	if f.matchRestartGroup(*a, *b, *c) {
		f.drop(1, 2)
		f.left = 0
		return true
	}

	switch {
	case isExprLike(*a) && isUnary(*b) && c.Type == sqltoken.LeftParen:
		f.drop(1, 1)
		return true

	case isKeywordLike(*a) && isUnary(*b) && valueLike(*c):
		f.drop(1, 1)
		return true

	case a.Type == sqltoken.Comma && isUnary(*b) && valueLike(*c):
		f.drop(0, 3)
		return true

	case a.Type == sqltoken.Comma && isUnary(*b) && c.Type == sqltoken.Function:
		f.drop(1, 1)
		return true

	case a.Type == sqltoken.Bareword && b.Type == sqltoken.Dot && c.Type == sqltoken.Bareword:
		f.drop(1, 2)
		return true

	case a.Type == sqltoken.Expression && b.Type == sqltoken.Dot && c.Type == sqltoken.Bareword:
		f.drop(0, 2)
		return true

	case a.Type == sqltoken.Function && b.Type == sqltoken.LeftParen && c.Type != sqltoken.RightParen && upper(a.Val()) == "USER":
		a.Type = sqltoken.Bareword
		return true
	}

	return false
}

func isExprLike(t sqltoken.Token) bool {
	return t.Type == sqltoken.Expression || t.Type == sqltoken.GroupLike || t.Type == sqltoken.Comma
}

func isKeywordLike(t sqltoken.Token) bool {
	return t.Type == sqltoken.Keyword || t.Type == sqltoken.Expression || t.Type == sqltoken.GroupLike
}

// matchRestartGroup checks the seven triple-token shapes that drop
// their trailing two slots and restart folding from the beginning of
// the window.
func (f *folder) matchRestartGroup(a, b, c sqltoken.Token) bool {
	switch {
	case a.Type == sqltoken.Number && b.Type == sqltoken.Operator && c.Type == sqltoken.Number:
		return true
	case a.Type == sqltoken.Operator && b.Type == sqltoken.Evil && c.Type == sqltoken.Operator:
		return true
	case a.Type == sqltoken.Logic && b.Type == sqltoken.Evil && c.Type == sqltoken.Logic:
		return true
	case a.Type == sqltoken.Variable && b.Type == sqltoken.Operator && valueLikeVar(c):
		return true
	case numOrWord(a) && b.Type == sqltoken.Operator && numOrWord(c):
		return true
	case valueLikeCast(a) && b.Type == sqltoken.Operator && b.ValString() == "::" && c.Type == sqltoken.SQLType:
		return true
	case valueLikeComma(a) && b.Type == sqltoken.Comma && valueLikeComma(c):
		return true
	}
	return false
}

func valueLikeVar(t sqltoken.Token) bool {
	switch t.Type {
	case sqltoken.Variable, sqltoken.Number, sqltoken.Bareword:
		return true
	}
	return false
}

func numOrWord(t sqltoken.Token) bool {
	return t.Type == sqltoken.Bareword || t.Type == sqltoken.Number
}

func valueLikeCast(t sqltoken.Token) bool {
	switch t.Type {
	case sqltoken.Variable, sqltoken.Number, sqltoken.Bareword, sqltoken.String:
		return true
	}
	return false
}

func valueLikeComma(t sqltoken.Token) bool {
	switch t.Type {
	case sqltoken.Bareword, sqltoken.Number, sqltoken.String, sqltoken.Variable:
		return true
	}
	return false
}

// applyOverflow checks the five-slot "arithmetic-looking" shapes that
// fire once the window has filled past the normal three-slot rules,
// preserving only the first two slots of the match.
func (f *folder) applyOverflow() bool {
	w := f.win[f.left : f.left+5]

	shapes := [][5]func(sqltoken.Token) bool{
		{isNum, isOpOrComma, isLParen, isNumOrWord, isRParen},
		{isWord, isOp, isLParen, isNumOrWord, isRParen},
		{isNum, isRParen, isComma, isLParen, isNum},
		{isWord, isRParen, isOp, isLParen, isWord},
	}

	for _, shape := range shapes {
		if matchShape(w, shape) {
			f.drop(2, 3)
			return true
		}
	}
	return false
}

func matchShape(w []sqltoken.Token, shape [5]func(sqltoken.Token) bool) bool {
	for i := 0; i < 5; i++ {
		if !shape[i](w[i]) {
			return false
		}
	}
	return true
}

func isNum(t sqltoken.Token) bool       { return t.Type == sqltoken.Number }
func isWord(t sqltoken.Token) bool      { return t.Type == sqltoken.Bareword }
func isNumOrWord(t sqltoken.Token) bool { return t.Type == sqltoken.Number || t.Type == sqltoken.Bareword }
func isOp(t sqltoken.Token) bool        { return t.Type == sqltoken.Operator }
func isOpOrComma(t sqltoken.Token) bool { return t.Type == sqltoken.Operator || t.Type == sqltoken.Comma }
func isLParen(t sqltoken.Token) bool    { return t.Type == sqltoken.LeftParen }
func isRParen(t sqltoken.Token) bool    { return t.Type == sqltoken.RightParen }
func isComma(t sqltoken.Token) bool     { return t.Type == sqltoken.Comma }
