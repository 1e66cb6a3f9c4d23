package sre

// A charset sub-program is a slice of a Program's Code beginning right
// after an IN/IN_IGNORE opcode and ending at a FAILURE entry. It is a
// sequence of set operations, OR'd together, optionally complemented by
// a single leading NEGATE entry; grounded on _CharsetDispatcher in
// _sre.py.
//
// Encoding (each entry is one Code int unless noted):
//
//	NEGATE                                   complements the final result
//	LITERAL, value                           matches exactly value
//	RANGE, lo, hi                            matches lo <= r <= hi
//	CATEGORY, Category                       matches matchCategory(cat, r)
//	CHARSET, w0, w1, ..., w7                 256-bit bitmap, 8x32-bit words
//	BIGCHARSET, numBlocks, idx[0..255], block[0..numBlocks*8-1]
//	                                          block-indexed bitmap for
//	                                          U+0000-U+FFFF: idx maps
//	                                          r>>8 to a block number,
//	                                          block holds that block's
//	                                          256-bit (8-word) bitmap for
//	                                          r&0xFF. Runes above U+FFFF
//	                                          never match this entry.
//
// BIGCHARSET's block-index table is always one int per high-byte value
// here rather than the original's narrower packed form: Code is already
// host-native ints, so there is no codesize-dependent stride to
// parameterize against (the narrow/wide distinction the original
// packs around does not exist once the table lives in a []int).
func matchCharset(code []int, pos int, r rune) (matched bool, next int) {
	negate := false
	for {
		op := Opcode(code[pos])
		switch op {
		case FAILURE:
			return negate, pos + 1
		case NEGATE:
			negate = true
			pos++
		case LITERAL:
			if r == rune(code[pos+1]) {
				return !negate, skipToEnd(code, pos)
			}
			pos += 2
		case RANGE:
			if rune(code[pos+1]) <= r && r <= rune(code[pos+2]) {
				return !negate, skipToEnd(code, pos)
			}
			pos += 3
		case CATEGORY:
			if matchCategory(Category(code[pos+1]), r) {
				return !negate, skipToEnd(code, pos)
			}
			pos += 2
		case CHARSET:
			if r >= 0 && r < 256 && code[pos+1+int(r>>5)]&(1<<(uint(r)&31)) != 0 {
				return !negate, skipToEnd(code, pos)
			}
			pos += 1 + 8
		case BIGCHARSET:
			numBlocks := code[pos+1]
			idxBase := pos + 2
			blockBase := idxBase + 256
			if r >= 0 && r <= 0xFFFF {
				blockNum := code[idxBase+int(r>>8)]
				word := code[blockBase+blockNum*8+int((r&0xFF)>>5)]
				if word&(1<<(uint(r)&31)) != 0 {
					return !negate, blockBase + numBlocks*8
				}
			}
			pos = blockBase + numBlocks*8
		default:
			panic(&OpcodeError{Pos: pos, Opcode: int(op), Message: "invalid charset opcode"})
		}
	}
}

// skipToEnd scans past the rest of a charset sub-program starting at
// the entry beginning at pos, used once a match is already found so the
// caller's code pointer still lands after FAILURE.
func skipToEnd(code []int, pos int) int {
	for {
		switch Opcode(code[pos]) {
		case FAILURE:
			return pos + 1
		case NEGATE:
			pos++
		case LITERAL:
			pos += 2
		case RANGE:
			pos += 3
		case CATEGORY:
			pos += 2
		case CHARSET:
			pos += 1 + 8
		case BIGCHARSET:
			numBlocks := code[pos+1]
			pos += 2 + 256 + numBlocks*8
		default:
			panic(&OpcodeError{Pos: pos, Opcode: code[pos], Message: "invalid charset opcode"})
		}
	}
}
