package sre

import "github.com/coregx/pycore/internal/conv"

// contFunc is the reified continuation for "the rest of the overall
// match, given that we've consumed up to this position." Each opcode
// handler below plays the role one of _sre.py's op_* generators played;
// where the original suspended itself with yield and resumed from an
// executing_contexts table, Go's growable goroutine stack lets the
// same suspend/resume shape be expressed as an ordinary recursive call
// plus a closure for "what happens next" — CPython's own C matcher
// (sre_match in _sre.c) is itself written exactly this way, and the
// generator dance in _sre.py exists only to simulate that recursion
// without overflowing the *Python* call stack. See DESIGN.md.
type contFunc func(pos int) bool

// repeatFrame is the runtime state for one active REPEAT, grounded on
// _RepeatContext. Unlike the original's state.repeat linked list (kept
// because generator frames can't each hold their own local), a Go
// repeatFrame simply lives in matchRepeatGreedy/Lazy's local scope and
// nests correctly through ordinary recursion.
type repeatFrame struct {
	min, max int
	bodyPC   int
	count    int
	lastPos  int
}

// Run attempts to match st.Program's opcode stream against st.Str
// starting exactly at pos (an anchored attempt, not a search). On
// success it returns the end offset of the match and true; st.Marks and
// st.Lastindex hold the capture groups.
func (st *State) Run(pos int) (int, bool) {
	st.Reset()
	st.matchStart = pos
	ok := st.match(pos, 0, func(p int) bool { return true })
	if !ok {
		return 0, false
	}
	return st.matchEnd, true
}

// match is the VM's single dispatch loop, grounded on
// _OpcodeDispatcher.dispatch and each op_* handler in _sre.py.
func (st *State) match(pos, pc int, cont contFunc) bool {
	code := st.Program.Code
	flags := st.Program.Flags

	for {
		op := Opcode(code[pc])
		switch op {
		case SUCCESS:
			st.matchEnd = pos
			return cont(pos)

		case FAILURE:
			return false

		case INFO:
			pc += code[pc+1]
			continue

		case LITERAL:
			if pos < st.End && st.Str[pos] == rune(code[pc+1]) {
				pos++
				pc += 2
				continue
			}
			return false

		case LITERAL_IGNORE:
			if pos < st.End && lower(st.Str[pos], flags) == rune(code[pc+1]) {
				pos++
				pc += 2
				continue
			}
			return false

		case NOT_LITERAL:
			if pos < st.End && st.Str[pos] != rune(code[pc+1]) {
				pos++
				pc += 2
				continue
			}
			return false

		case NOT_LITERAL_IGNORE:
			if pos < st.End && lower(st.Str[pos], flags) != rune(code[pc+1]) {
				pos++
				pc += 2
				continue
			}
			return false

		case ANY:
			if pos < st.End && !isUniLinebreak(st.Str[pos]) {
				pos++
				pc++
				continue
			}
			return false

		case ANY_ALL:
			if pos < st.End {
				pos++
				pc++
				continue
			}
			return false

		case IN, IN_IGNORE:
			if pos >= st.End {
				return false
			}
			c := st.Str[pos]
			if op == IN_IGNORE {
				c = lower(c, flags)
			}
			matched, _ := matchCharset(code, pc+2, c)
			if !matched {
				return false
			}
			pos++
			pc += code[pc+1]
			continue

		case CATEGORY:
			if pos < st.End && matchCategory(Category(code[pc+1]), st.Str[pos]) {
				pos++
				pc += 2
				continue
			}
			return false

		case AT:
			if matchAt(AtCode(code[pc+1]), st.Str[st.Start:st.End], pos-st.Start, flags) {
				pc += 2
				continue
			}
			return false

		case MARK:
			idx := int(conv.IntToUint32(code[pc+1]))
			old := st.Marks[idx]
			st.Marks[idx] = pos
			if idx%2 == 1 {
				prevLast := st.Lastindex
				st.Lastindex = idx/2 + 1
				if st.match(pos, pc+2, cont) {
					return true
				}
				st.Lastindex = prevLast
				st.Marks[idx] = old
				return false
			}
			if st.match(pos, pc+2, cont) {
				return true
			}
			st.Marks[idx] = old
			return false

		case JUMP:
			pc += code[pc+1]
			continue

		case BRANCH:
			branchPC := pc + 1
			for {
				disp := code[branchPC]
				if disp == 0 {
					return false
				}
				if st.match(pos, branchPC+1, cont) {
					return true
				}
				branchPC += disp
			}

		case REPEAT:
			return st.dispatchRepeat(pos, pc, cont)

		case MAX_UNTIL, MIN_UNTIL:
			if st.repeatDepth == 0 {
				panic(&OpcodeError{Pos: pc, Opcode: int(op), Message: "UNTIL opcode with no enclosing REPEAT"})
			}
			return cont(pos)

		case REPEAT_ONE:
			return st.matchRepeatOne(pos, pc, cont, true)

		case MIN_REPEAT_ONE:
			return st.matchRepeatOne(pos, pc, cont, false)

		case GROUPREF, GROUPREF_IGNORE:
			group := int(conv.IntToUint32(code[pc+1]))
			start, end := st.Marks[2*group], st.Marks[2*group+1]
			if start < 0 || end < 0 || end < start {
				return false
			}
			n := end - start
			if pos+n > st.End {
				return false
			}
			for k := 0; k < n; k++ {
				a, b := st.Str[pos+k], st.Str[start+k]
				if op == GROUPREF_IGNORE {
					a, b = lower(a, flags), lower(b, flags)
				}
				if a != b {
					return false
				}
			}
			pos += n
			pc += 2
			continue

		case GROUPREF_EXISTS:
			group := int(conv.IntToUint32(code[pc+1]))
			if st.Marks[2*group] >= 0 {
				pc += 3
				continue
			}
			pc += code[pc+2]
			continue

		case ASSERT:
			back := code[pc+2]
			bodyPC := pc + 3
			if pos-back < st.Start {
				return false
			}
			if !st.match(pos-back, bodyPC, func(int) bool { return true }) {
				return false
			}
			pc += code[pc+1]
			continue

		case ASSERT_NOT:
			back := code[pc+2]
			bodyPC := pc + 3
			if pos-back >= st.Start && st.match(pos-back, bodyPC, func(int) bool { return true }) {
				return false
			}
			pc += code[pc+1]
			continue

		default:
			panic(&OpcodeError{Pos: pc, Opcode: int(op), Message: "unknown opcode"})
		}
	}
}

// dispatchRepeat enters a REPEAT block: code[pc+1] is the total length
// of the header+body+UNTIL (used to locate the tail), code[pc+2]/[pc+3]
// are min/max, and the body begins at pc+4 and ends with a MAX_UNTIL
// (greedy) or MIN_UNTIL (lazy) opcode.
func (st *State) dispatchRepeat(pos, pc int, cont contFunc) bool {
	skip := code0(st, pc+1)
	min := code0(st, pc+2)
	max := code0(st, pc+3)
	bodyPC := pc + 4
	tailPC := pc + skip
	greedy := Opcode(st.Program.Code[tailPC-1]) == MAX_UNTIL

	frame := &repeatFrame{min: min, max: max, bodyPC: bodyPC, count: 0, lastPos: -1}
	st.repeatDepth++
	defer func() { st.repeatDepth-- }()

	tailCont := func(p int) bool { return st.match(p, tailPC, cont) }
	if greedy {
		return st.matchRepeatGreedy(pos, frame, tailCont)
	}
	return st.matchRepeatLazy(pos, frame, tailCont)
}

func code0(st *State, pc int) int { return st.Program.Code[pc] }

// matchRepeatGreedy implements MAX_UNTIL's policy: exhaust min
// mandatory repetitions, then keep taking the body as long as it keeps
// making progress and count < max (a negative max means unbounded, the
// MAXREPEAT sentinel), falling back to the tail only once the body is
// exhausted or backtracks all the way out. Grounded on op_max_until.
func (st *State) matchRepeatGreedy(pos int, frame *repeatFrame, tailCont contFunc) bool {
	if frame.count < frame.min {
		frame.count++
		ok := st.match(pos, frame.bodyPC, func(p int) bool {
			return st.matchRepeatGreedy(p, frame, tailCont)
		})
		frame.count--
		return ok
	}
	if (frame.max < 0 || frame.count < frame.max) && pos != frame.lastPos {
		frame.count++
		prevLast := frame.lastPos
		frame.lastPos = pos
		ok := st.match(pos, frame.bodyPC, func(p int) bool {
			return st.matchRepeatGreedy(p, frame, tailCont)
		})
		frame.count--
		frame.lastPos = prevLast
		if ok {
			return true
		}
	}
	return tailCont(pos)
}

// matchRepeatLazy implements MIN_UNTIL's policy: exhaust min mandatory
// repetitions, then prefer the tail, only taking one more repetition of
// the body if the tail fails. Grounded on op_min_until.
func (st *State) matchRepeatLazy(pos int, frame *repeatFrame, tailCont contFunc) bool {
	if frame.count < frame.min {
		frame.count++
		ok := st.match(pos, frame.bodyPC, func(p int) bool {
			return st.matchRepeatLazy(p, frame, tailCont)
		})
		frame.count--
		return ok
	}
	if tailCont(pos) {
		return true
	}
	if (frame.max < 0 || frame.count < frame.max) && pos != frame.lastPos {
		frame.count++
		prevLast := frame.lastPos
		frame.lastPos = pos
		ok := st.match(pos, frame.bodyPC, func(p int) bool {
			return st.matchRepeatLazy(p, frame, tailCont)
		})
		frame.count--
		frame.lastPos = prevLast
		return ok
	}
	return false
}

// matchRepeatOne implements the REPEAT_ONE/MIN_REPEAT_ONE fast path for
// repeating a single character class with no internal captures: rather
// than recursing per repetition, it first counts how far the class
// matches, then backtracks one character at a time (greedy) or grows
// one character at a time (lazy), grounded on op_repeat_one /
// op_min_repeat_one and count_repetitions.
func (st *State) matchRepeatOne(pos, pc int, cont contFunc, greedy bool) bool {
	code := st.Program.Code
	skip := code[pc+1]
	min := code[pc+2]
	max := code[pc+3]
	classPC := pc + 4
	tailPC := pc + skip

	count := st.countRepetitions(pos, classPC, max)
	if count < min {
		return false
	}

	if greedy {
		for n := count; n >= min; n-- {
			if st.match(pos+n, tailPC, cont) {
				return true
			}
		}
		return false
	}

	for n := min; n <= count; n++ {
		if st.match(pos+n, tailPC, cont) {
			return true
		}
	}
	return false
}

// countRepetitions counts how many times in a row, starting at pos, the
// single charset/literal class at classPC matches, capped at max.
func (st *State) countRepetitions(pos, classPC, max int) int {
	code := st.Program.Code
	flags := st.Program.Flags
	end := st.End
	if max >= 0 && pos+max < end {
		end = pos + max
	}

	op := Opcode(code[classPC])
	n := 0
	switch op {
	case ANY:
		for pos+n < end && !isUniLinebreak(st.Str[pos+n]) {
			n++
		}
	case ANY_ALL:
		n = end - pos
	case LITERAL:
		v := rune(code[classPC+1])
		for pos+n < end && st.Str[pos+n] == v {
			n++
		}
	case LITERAL_IGNORE:
		v := rune(code[classPC+1])
		for pos+n < end && lower(st.Str[pos+n], flags) == v {
			n++
		}
	case NOT_LITERAL:
		v := rune(code[classPC+1])
		for pos+n < end && st.Str[pos+n] != v {
			n++
		}
	case NOT_LITERAL_IGNORE:
		v := rune(code[classPC+1])
		for pos+n < end && lower(st.Str[pos+n], flags) != v {
			n++
		}
	case IN, IN_IGNORE:
		for pos+n < end {
			c := st.Str[pos+n]
			if op == IN_IGNORE {
				c = lower(c, flags)
			}
			matched, _ := matchCharset(code, classPC+2, c)
			if !matched {
				break
			}
			n++
		}
	case CATEGORY:
		cat := Category(code[classPC+1])
		for pos+n < end && matchCategory(cat, st.Str[pos+n]) {
			n++
		}
	default:
		panic(&OpcodeError{Pos: classPC, Opcode: int(op), Message: "invalid REPEAT_ONE class"})
	}
	return n
}
