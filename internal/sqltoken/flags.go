package sqltoken

// Flags bundles the quote-context and dialect bits the lexer is
// parameterized by. The zero value is not valid input for NewState;
// callers that pass 0 get the documented default of QuoteNone|DialectANSI.
type Flags int

const (
	QuoteNone   Flags = 1 << iota // 1
	QuoteSingle                   // 2
	QuoteDouble                   // 4
	DialectANSI                   // 8
	DialectMySQL                  // 16
)

func (f Flags) hasQuote(q Flags) bool { return f&q != 0 }

func (f Flags) normalize() Flags {
	if f == 0 {
		return QuoteNone | DialectANSI
	}
	return f
}

func (f Flags) isMySQL() bool { return f&DialectMySQL != 0 }
func (f Flags) isANSI() bool  { return f&DialectANSI != 0 }
