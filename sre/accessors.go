package sre

// GroupSpan reports the [start, end) span of group g (0 is the whole
// match) in the most recent successful Run. ok is false if the group
// took no part in the match (including a group inside an alternative
// that was never taken), grounded on SRE_Match.span.
func (st *State) GroupSpan(g int) (start, end int, ok bool) {
	if g == 0 {
		return st.matchStart, st.matchEnd, true
	}
	if g < 1 || g > st.Program.NumGroups {
		return 0, 0, false
	}
	s, e := st.Marks[2*(g-1)], st.Marks[2*(g-1)+1]
	if s < 0 || e < 0 {
		return 0, 0, false
	}
	return s, e, true
}

// GroupIndexByName resolves a named group to its 1-based group number,
// grounded on SRE_Pattern.groupindex.
func (st *State) GroupIndexByName(name string) (int, bool) {
	idx, ok := st.Program.GroupIndex[name]
	return idx, ok
}

// LastGroupName returns the name of the most recently closed group, or
// "" if it is unnamed or no group has closed, grounded on
// SRE_Match.lastgroup. Bounds-guarded: a Lastindex with no corresponding
// IndexGroup entry (a pattern whose named groups are non-contiguous
// with their numbering) reports no name rather than panicking.
func (st *State) LastGroupName() string {
	if st.Lastindex <= 0 || st.Lastindex > len(st.Program.IndexGroup) {
		return ""
	}
	return st.Program.IndexGroup[st.Lastindex-1]
}
