package sqltoken

// foldWindow is the folder's fixed window size (slots 0..4). Package
// sqlfold keeps its own token window and does not read State.Tokens.
const foldWindow = 5

// maxTokens is the full capacity of the token array: Tokens holds the
// first maxTokens tokens of a pass; later tokens are counted in
// Stats.Tokens but not stored.
const maxTokens = 8

// Stats holds the auxiliary counters the folder and the whitelist
// consult: how many of each kind of comment were seen, how many folds
// ran, how many tokens were emitted in total for this pass.
type Stats struct {
	CommentDDW  int // "-- " or "--<EOF>" end-of-line comments
	CommentDDX  int // ANSI "--" without trailing whitespace
	CommentC    int // C-style /* */ comments
	CommentHash int // MySQL '#' comments
	Folds       int
	Tokens      int
}

// State is the mutable workspace for one tokenize+fold+classify pass.
// It is constructed fresh per call, mutated only by its owning
// component (the lexer, then the folder, then the classifier), and
// discarded when the verdict is returned: nothing here is retained or
// shared across calls.
type State struct {
	input []byte
	flags Flags

	pos int // current byte position, monotonically non-decreasing across Tokenize calls

	Tokens [maxTokens]Token
	Cursor int // index of the next free slot in Tokens

	Current Token // the token most recently filled by Tokenize

	Fingerprint    [8]byte // at most 5 type bytes + NUL terminator
	FingerprintLen int

	Stats Stats

	// synthesizedInitial tracks whether the initial quoted-context
	// token (see §4.2's "Initial quoted-context mode") has been emitted yet.
	synthesizedInitial bool
}

// NewState builds a State over input with the given flags. A zero
// Flags value normalizes to QuoteNone|DialectANSI.
func NewState(input []byte, flags Flags) *State {
	return &State{
		input: input,
		flags: flags.normalize(),
	}
}

func (s *State) Len() int { return len(s.input) }
func (s *State) Pos() int { return s.pos }

func (s *State) byteAt(i int) byte {
	if i < 0 || i >= len(s.input) {
		return 0
	}
	return s.input[i]
}

func (s *State) remaining() []byte {
	if s.pos >= len(s.input) {
		return nil
	}
	return s.input[s.pos:]
}

// pushToken counts the current token in Stats.Tokens and appends it
// onto the fixed window, growing Cursor, and never writes past maxTokens.
func (s *State) pushToken(t Token) {
	s.Stats.Tokens++
	if s.Cursor >= maxTokens {
		return
	}
	s.Tokens[s.Cursor] = t
	s.Cursor++
}
