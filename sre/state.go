package sre

// State holds the mutable bookkeeping for a single match attempt
// against a host string: the cursor, capture-group marks, and the
// most-recently-closed group. It mirrors _State in _sre.py, with the
// narrow/wide distinction collapsed: Str is always a []rune (wide
// codepoints), matching SPEC_FULL.md's decision to drop the 16-bit host
// string path entirely.
type State struct {
	Program *Program
	Str     []rune

	// Start and End bound the region Search/Match operate within,
	// letting callers reuse one State across successive searches over
	// the same string without copying it, like _State.reset's pos/endpos.
	Start, End int

	// Marks holds 2*NumGroups entries: Marks[2*g] / Marks[2*g+1] are the
	// start/end offsets of group g+1 (group 0, the whole match, is
	// tracked separately), or -1 if that group has not matched.
	Marks []int

	// Lastindex is the number of the most recently closed group, or 0
	// if none has closed yet; mirrors SRE_Match.lastindex.
	Lastindex int

	// matchStart and matchEnd bound the whole match (group 0), set by
	// Run/SUCCESS; group 0 has no Marks entry since Marks is indexed by
	// group-1.
	matchStart int
	matchEnd   int

	repeatDepth int
}

// NewState allocates a State for repeated Search/Match calls against
// str using prog.
func NewState(prog *Program, str []rune) *State {
	return &State{
		Program: prog,
		Str:     str,
		Start:   0,
		End:     len(str),
		Marks:   make([]int, 2*prog.NumGroups),
	}
}

// Reset clears per-attempt bookkeeping (marks, lastindex) before trying
// a new starting position, mirroring _State.reset.
func (st *State) Reset() {
	for i := range st.Marks {
		st.Marks[i] = -1
	}
	st.Lastindex = 0
	st.matchEnd = 0
}

// lower folds r for case-insensitive opcodes, mirroring _State.lower /
// getlower. Without FlagUnicode the folding is table-free: ASCII A-Z
// always fold, and with FlagLocale the Latin-1 capitals U+00C0-U+00DE
// (except U+00D7) fold too; every other rune is returned unchanged.
// With FlagUnicode every rune goes through Go's stdlib unicode.ToLower,
// for the same reason matchCategory does (see DESIGN.md).
func lower(r rune, flags Flag) rune {
	if flags&FlagUnicode == 0 {
		if r >= 'A' && r <= 'Z' {
			return r + 32
		}
		if flags&FlagLocale != 0 && r >= 0xC0 && r <= 0xDE && r != 0xD7 {
			return r + 32
		}
		return r
	}
	return toLowerUnicode(r)
}
