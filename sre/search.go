package sre

// Match attempts an anchored match of prog against str starting exactly
// at pos, within [start, end). It returns the State holding the result
// (Marks, Lastindex, and the match span via GroupSpan(0)) on success.
func Match(prog *Program, str []rune, start, end, pos int) (*State, bool) {
	st := &State{Program: prog, Str: str, Start: start, End: end, Marks: make([]int, 2*prog.NumGroups)}
	if _, ok := st.Run(pos); !ok {
		return nil, false
	}
	return st, true
}

// FullMatch is Match plus the requirement that the match consumes all
// of [pos, end).
func FullMatch(prog *Program, str []rune, start, end, pos int) (*State, bool) {
	st, ok := Match(prog, str, start, end, pos)
	if !ok || st.matchEnd != end {
		return nil, false
	}
	return st, true
}

// Search scans forward from pos for the leftmost position in [pos, end)
// at which prog matches, grounded on _State.search / _State.fast_search
// in _sre.py: when the program carries a literal-prefix INFO block, the
// scan uses it to skip positions the prefix cannot match at instead of
// invoking the full opcode dispatcher at every offset.
func Search(prog *Program, str []rune, start, end, pos int) (*State, bool) {
	info, hasInfo := decodeInfo(prog)
	if hasInfo && info.maxLen >= 0 && pos+info.minLen > end {
		return nil, false
	}

	if hasInfo && len(info.prefix) > 0 {
		return fastSearch(prog, info, str, start, end, pos)
	}

	for p := pos; p <= end; p++ {
		if st, ok := Match(prog, str, start, end, p); ok {
			return st, true
		}
	}
	return nil, false
}

// fastSearch implements the INFO-literal-prefix fast path described in
// _sre.py's fast_search: a Boyer-Moore/KMP-style scan for the prefix,
// immediately followed by either declaring success outright (a
// pure-literal pattern) or attempting the full match (prefix opcodes
// included) starting where the prefix hit begins.
func fastSearch(prog *Program, info programInfo, str []rune, start, end, pos int) (*State, bool) {
	prefix := info.prefix
	overlap := info.overlap
	plen := len(prefix)

	i := pos
	k := 0
	for i < end {
		for k > 0 && (i >= end || rune(prefix[k]) != str[i]) {
			k = overlap[k-1]
		}
		if i < end && rune(prefix[k]) == str[i] {
			k++
			i++
			if k == plen {
				hitStart := i - plen
				if info.flags&InfoLiteral != 0 {
					st := &State{Program: prog, Str: str, Start: start, End: end, Marks: make([]int, 2*prog.NumGroups)}
					st.Reset()
					st.matchStart, st.matchEnd = hitStart, i
					return st, true
				}
				if st, ok := Match(prog, str, start, end, hitStart); ok {
					return st, true
				}
				k = overlap[k-1]
				continue
			}
			continue
		}
		if k == 0 {
			i++
		}
	}
	return nil, false
}
