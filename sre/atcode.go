package sre

// matchAt evaluates one zero-width AT operand at string position pos in
// str, grounded on _AtcodeDispatcher in _sre.py.
func matchAt(code AtCode, str []rune, pos int, flags Flag) bool {
	switch code {
	case AT_BEGINNING, AT_BEGINNING_STRING:
		return pos == 0
	case AT_BEGINNING_LINE:
		return pos == 0 || isUniLinebreak(str[pos-1])
	case AT_END:
		return pos == len(str) || (pos == len(str)-1 && isUniLinebreak(str[pos]))
	case AT_END_LINE:
		return pos == len(str) || isUniLinebreak(str[pos])
	case AT_END_STRING:
		return pos == len(str)
	case AT_BOUNDARY:
		return atWordBoundary(str, pos, isWordForFlags(flags))
	case AT_NON_BOUNDARY:
		return !atWordBoundary(str, pos, isWordForFlags(flags))
	case AT_LOC_BOUNDARY:
		return atWordBoundary(str, pos, isASCIIWord)
	case AT_LOC_NON_BOUNDARY:
		return !atWordBoundary(str, pos, isASCIIWord)
	case AT_UNI_BOUNDARY:
		return atWordBoundary(str, pos, isUniWord)
	case AT_UNI_NON_BOUNDARY:
		return !atWordBoundary(str, pos, isUniWord)
	}
	panic(&OpcodeError{Opcode: int(code), Message: "unknown at-code"})
}

func isWordForFlags(flags Flag) func(rune) bool {
	if flags&FlagUnicode != 0 {
		return isUniWord
	}
	return isASCIIWord
}

func atWordBoundary(str []rune, pos int, isWord func(rune) bool) bool {
	before := pos > 0 && isWord(str[pos-1])
	after := pos < len(str) && isWord(str[pos])
	return before != after
}
