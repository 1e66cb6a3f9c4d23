package pycore

// Scanner advances a shared cursor across a host string via repeated
// Match/Search calls, grounded on SRE_Scanner in
// original_source/Lib/_sre.py (re.Scanner's underlying state object).
type Scanner struct {
	pattern *Pattern
	s       string
	end     int
	pos     int
}

// NewScanner creates a Scanner over s, bounded to [0, endpos). endpos <
// 0 means "end of string".
func NewScanner(p *Pattern, s string, endpos int) *Scanner {
	e := endpos
	if e < 0 || e > len([]rune(s)) {
		e = len([]rune(s))
	}
	return &Scanner{pattern: p, s: s, end: e, pos: 0}
}

// Match attempts an anchored match at the cursor and, on success,
// advances the cursor to the match's end (or one position past a
// zero-width match, so the scanner always makes progress).
func (sc *Scanner) Match() *Match {
	m := sc.pattern.Match(sc.s, sc.pos, sc.end)
	if m == nil {
		return nil
	}
	sc.advance(m)
	return m
}

// Search scans forward from the cursor for the next match and advances
// the cursor past it.
func (sc *Scanner) Search() *Match {
	m := sc.pattern.Search(sc.s, sc.pos, sc.end)
	if m == nil {
		return nil
	}
	sc.advance(m)
	return m
}

func (sc *Scanner) advance(m *Match) {
	if m.End(0) == m.Start(0) {
		sc.pos = m.End(0) + 1
	} else {
		sc.pos = m.End(0)
	}
}

// Pos reports the scanner's current cursor position.
func (sc *Scanner) Pos() int { return sc.pos }
