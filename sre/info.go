package sre

// InfoFlag holds the bits carried in an optional leading INFO opcode,
// grounded on the SRE_INFO prefix flags in original_source/Lib/_sre.py.
type InfoFlag int

const (
	// InfoPrefix marks that a literal-prefix table (length, skip,
	// prefix bytes, and a Boyer-Moore-style overlap table) follows the
	// fixed header fields.
	InfoPrefix InfoFlag = 1 << iota
	// InfoLiteral marks that the entire pattern is the literal prefix:
	// once the prefix scan finds a hit, the match is complete without
	// running the body opcodes at all.
	InfoLiteral
)

// programInfo is the decoded form of a leading INFO opcode, used by
// Search to skip positions the prefix cannot possibly match at.
//
// Encoding, starting at Code[0] (== INFO):
//
//	INFO, skip, flags, minLen, maxLen[, prefixLen, prefixSkip, prefix[0..prefixLen), overlap[0..prefixLen)]
//
// skip is the distance from the INFO opcode to the first real body
// opcode; the dispatch loop's own `case INFO` jumps over the header the
// same way (`pc += code[pc+1]`), so a Program with a leading INFO block
// runs correctly even through Match/Run directly, not just through
// Search's prefix fast path.
type programInfo struct {
	flags   InfoFlag
	minLen  int
	maxLen  int
	prefix  []int
	overlap []int
}

// decodeInfo reports the leading INFO block of prog, if any.
func decodeInfo(prog *Program) (programInfo, bool) {
	code := prog.Code
	if len(code) == 0 || Opcode(code[0]) != INFO {
		return programInfo{}, false
	}
	info := programInfo{
		flags:  InfoFlag(code[2]),
		minLen: code[3],
		maxLen: code[4],
	}
	if info.flags&InfoPrefix != 0 {
		prefixLen := code[5]
		// code[6] is prefixSkip, the restart offset CPython uses to
		// resume scanning mid-prefix on a literal-only pattern; not
		// needed here since fastSearch always restarts the overlap
		// walk from i=0 on mismatch, which is correct, just not
		// quite as fast as the skip-aware version.
		base := 7
		info.prefix = append([]int(nil), code[base:base+prefixLen]...)
		info.overlap = append([]int(nil), code[base+prefixLen:base+2*prefixLen]...)
	}
	return info, true
}

// buildOverlap computes the classic KMP failure table for prefix, the
// overlap table an INFO block carries. It is unexported and nothing in
// the package calls it; callers outside the package that assemble a
// Program by hand compute the table themselves.
func buildOverlap(prefix []int) []int {
	overlap := make([]int, len(prefix))
	if len(prefix) == 0 {
		return overlap
	}
	overlap[0] = 0
	k := 0
	for i := 1; i < len(prefix); i++ {
		for k > 0 && prefix[k] != prefix[i] {
			k = overlap[k-1]
		}
		if prefix[k] == prefix[i] {
			k++
		}
		overlap[i] = k
	}
	return overlap
}
