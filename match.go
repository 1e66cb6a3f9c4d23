package pycore

import (
	"strconv"

	"github.com/coregx/pycore/sre"
)

// Match is a single successful match against a host string, grounded
// on SRE_Match in original_source/Lib/_sre.py. All positions are
// rune (code point) offsets into the original string, not byte offsets.
type Match struct {
	pattern *Pattern
	str     []rune
	state   *sre.State
}

func newMatch(p *Pattern, str []rune, st *sre.State) *Match {
	return &Match{pattern: p, str: str, state: st}
}

// Re returns the pattern that produced this match.
func (m *Match) Re() *Pattern { return m.pattern }

// String returns the original host string the match was taken against.
func (m *Match) String() string { return string(m.str) }

// groupNum resolves an int-or-name group argument the way
// spec.md's "Group argument may be int or name" rule requires.
func (m *Match) groupNum(g any) (int, bool) {
	switch v := g.(type) {
	case int:
		return v, true
	case string:
		return m.pattern.GroupIndex(v)
	}
	return 0, false
}

// Start returns the start offset of group g (0 for the whole match),
// or -1 if g did not participate in the match.
func (m *Match) Start(g any) int {
	n, ok := m.groupNum(g)
	if !ok {
		return -1
	}
	s, _, ok := m.state.GroupSpan(n)
	if !ok {
		return -1
	}
	return s
}

// End returns the end offset of group g (0 for the whole match), or -1
// if g did not participate in the match.
func (m *Match) End(g any) int {
	n, ok := m.groupNum(g)
	if !ok {
		return -1
	}
	_, e, ok := m.state.GroupSpan(n)
	if !ok {
		return -1
	}
	return e
}

// Span returns [Start(g), End(g)).
func (m *Match) Span(g any) (int, int) {
	n, ok := m.groupNum(g)
	if !ok {
		return -1, -1
	}
	s, e, ok := m.state.GroupSpan(n)
	if !ok {
		return -1, -1
	}
	return s, e
}

// Group returns the text captured by group g, or "" if g did not
// participate in the match. Group(0) is the whole match. A group the
// pattern does not define also yields "" (Start, End and Span report
// -1); none of these methods panic on an unknown group.
func (m *Match) Group(g any) string {
	n, ok := m.groupNum(g)
	if !ok {
		return ""
	}
	s, e, ok := m.state.GroupSpan(n)
	if !ok {
		return ""
	}
	return string(m.str[s:e])
}

// Groups returns the captured text of groups 1..NumGroups, in order;
// a group that did not participate reports "" (callers that need to
// distinguish "didn't participate" from "matched empty" should use
// Span instead).
func (m *Match) Groups() []string {
	out := make([]string, m.pattern.NumGroups())
	for g := 1; g <= m.pattern.NumGroups(); g++ {
		out[g-1] = m.Group(g)
	}
	return out
}

// GroupDict returns the named groups as a map from name to captured
// text, mirroring re.Match.groupdict.
func (m *Match) GroupDict() map[string]string {
	out := make(map[string]string, len(m.pattern.prog.GroupIndex))
	for name, idx := range m.pattern.prog.GroupIndex {
		out[name] = m.Group(idx)
	}
	return out
}

// LastIndex is the number of the most recently closed group, or 0 if
// none has closed.
func (m *Match) LastIndex() int { return m.state.Lastindex }

// LastGroup is the name of the most recently closed group, or "" if it
// is unnamed or no group has closed yet.
func (m *Match) LastGroup() string { return m.state.LastGroupName() }

// Expand substitutes backslash group references in template (\1-\99,
// \g<name>, \g<1>) with the corresponding captured text, grounded on
// _sre.py's Match.expand / the template-compilation helper it calls.
func (m *Match) Expand(template string) string {
	return expandTemplate(template, func(ref string) (string, bool) {
		if n, err := strconv.Atoi(ref); err == nil {
			if n < 0 || n > m.pattern.NumGroups() {
				return "", false
			}
			return m.Group(n), true
		}
		idx, ok := m.pattern.GroupIndex(ref)
		if !ok {
			return "", false
		}
		return m.Group(idx), true
	})
}
