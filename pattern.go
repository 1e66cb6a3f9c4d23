// Package pycore provides the regex surface (Pattern, Match, Scanner)
// on top of the sre opcode virtual machine, and the codec registry
// (package codec) for encoding/decoding text between byte and rune
// representations with pluggable error handling.
//
// Pattern does not compile regular expressions from source syntax — it
// executes a pre-built sre.Program, the hand-off point from whatever
// compiler a caller brings. A Pattern is safe for concurrent use from
// multiple goroutines; each call allocates its own sre.State.
//
// Example:
//
//	prog := &sre.Program{ /* assembled elsewhere */ }
//	re := pycore.NewPattern(prog)
//	if m := re.Search("hello 123", 0, -1); m != nil {
//	    fmt.Println(m.Group(0))
//	}
package pycore

import "github.com/coregx/pycore/sre"

// Pattern wraps a compiled sre.Program with the match/search/substitution
// surface a caller works against, grounded on SRE_Pattern in
// original_source/Lib/_sre.py.
type Pattern struct {
	prog *sre.Program
}

// NewPattern wraps an already-compiled opcode program.
func NewPattern(prog *sre.Program) *Pattern {
	return &Pattern{prog: prog}
}

// NumGroups reports how many capture groups the pattern defines.
func (p *Pattern) NumGroups() int { return p.prog.NumGroups }

// GroupIndex resolves a named group to its 1-based group number.
func (p *Pattern) GroupIndex(name string) (int, bool) {
	idx, ok := p.prog.GroupIndex[name]
	return idx, ok
}

func clampEnd(s []rune, endpos int) int {
	if endpos < 0 || endpos > len(s) {
		return len(s)
	}
	return endpos
}

// Match attempts to apply the pattern starting exactly at pos (not a
// search), within [0, endpos). Returns nil if the opcode stream does
// not match there.
//
// Example:
//
//	m := re.Match("2024-01-05", 0, -1)
func (p *Pattern) Match(s string, pos, endpos int) *Match {
	str := []rune(s)
	end := clampEnd(str, endpos)
	if pos < 0 || pos > end {
		return nil
	}
	st, ok := sre.Match(p.prog, str, 0, end, pos)
	if !ok {
		return nil
	}
	return newMatch(p, str, st)
}

// FullMatch is Match plus the requirement that the match consume all of
// [pos, endpos).
func (p *Pattern) FullMatch(s string, pos, endpos int) *Match {
	str := []rune(s)
	end := clampEnd(str, endpos)
	if pos < 0 || pos > end {
		return nil
	}
	st, ok := sre.FullMatch(p.prog, str, 0, end, pos)
	if !ok {
		return nil
	}
	return newMatch(p, str, st)
}

// Search scans forward from pos within [0, endpos) for the first
// position the pattern matches.
//
// Example:
//
//	m := re.Search("order #42 shipped", 0, -1)
//	if m != nil {
//	    fmt.Println(m.Group(0)) // "#42"
//	}
func (p *Pattern) Search(s string, pos, endpos int) *Match {
	str := []rune(s)
	end := clampEnd(str, endpos)
	if pos < 0 || pos > end {
		return nil
	}
	st, ok := sre.Search(p.prog, str, 0, end, pos)
	if !ok {
		return nil
	}
	return newMatch(p, str, st)
}

// FindAll returns the non-overlapping matches of the pattern across s,
// in order, grounded on the search/advance loop spec.md describes for
// findall/finditer: after a non-empty match, resume at its end; after
// an empty match, advance one code unit so the scan always progresses.
func (p *Pattern) FindAll(s string) []*Match {
	var out []*Match
	for m := range p.Finditer(s) {
		out = append(out, m)
	}
	return out
}

// Finditer returns an iterator over the pattern's non-overlapping
// matches across s, in the same order as FindAll but without
// materializing the whole slice up front.
func (p *Pattern) Finditer(s string) func(yield func(*Match) bool) {
	str := []rune(s)
	return func(yield func(*Match) bool) {
		pos := 0
		end := len(str)
		for pos <= end {
			st, ok := sre.Search(p.prog, str, 0, end, pos)
			if !ok {
				return
			}
			m := newMatch(p, str, st)
			if !yield(m) {
				return
			}
			if m.End(0) == m.Start(0) {
				pos = m.End(0) + 1
			} else {
				pos = m.End(0)
			}
		}
	}
}

// Split divides s at each non-empty match of the pattern, mirroring
// re.split: if the pattern defines groups, each split's captured text
// is spliced into the result between the surrounding pieces, "" for
// groups that did not participate.
func (p *Pattern) Split(s string, maxsplit int) []string {
	str := []rune(s)
	var out []string
	last := 0
	n := 0
	for m := range p.Finditer(s) {
		if maxsplit > 0 && n >= maxsplit {
			break
		}
		if m.Start(0) == m.End(0) {
			continue
		}
		out = append(out, string(str[last:m.Start(0)]))
		for g := 1; g <= p.NumGroups(); g++ {
			out = append(out, m.Group(g))
		}
		last = m.End(0)
		n++
	}
	out = append(out, string(str[last:]))
	return out
}

// Sub replaces every match of the pattern in s with repl (a backslash
// template, see Expand) and returns the result, mirroring re.sub.
func (p *Pattern) Sub(repl, s string) string {
	out, _ := p.Subn(repl, s)
	return out
}

// SubFunc replaces every match of the pattern in s with the string
// replFn returns for that match, mirroring re.sub with a callable
// replacement.
func (p *Pattern) SubFunc(s string, replFn func(*Match) string) string {
	out, _ := p.SubnFunc(s, replFn)
	return out
}

// Subn is Sub plus a count of how many substitutions were made,
// mirroring re.subn.
func (p *Pattern) Subn(repl, s string) (string, int) {
	return p.SubnFunc(s, func(m *Match) string { return m.Expand(repl) })
}

// SubnFunc is SubFunc plus a count of how many substitutions were made,
// mirroring re.subn with a callable replacement.
func (p *Pattern) SubnFunc(s string, replFn func(*Match) string) (string, int) {
	str := []rune(s)
	var out []rune
	last := 0
	count := 0
	for m := range p.Finditer(s) {
		out = append(out, str[last:m.Start(0)]...)
		out = append(out, []rune(replFn(m))...)
		last = m.End(0)
		count++
	}
	out = append(out, str[last:]...)
	return string(out), count
}
