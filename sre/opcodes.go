// Package sre implements the backtracking opcode virtual machine that
// executes a pre-built regular-expression bytecode stream, the Go
// counterpart of CPython's internal _sre module. It does not compile
// patterns from source syntax; callers assemble a Program (or port one
// from an existing compiler) and hand it to Run/Search.
package sre

// Opcode identifies one instruction in a compiled Program, grounded on
// the opcode table in original_source/Lib/_sre.py.
type Opcode int

const (
	FAILURE Opcode = iota
	SUCCESS
	ANY
	ANY_ALL
	ASSERT
	ASSERT_NOT
	AT
	BRANCH
	CATEGORY
	CHARSET
	BIGCHARSET
	GROUPREF
	GROUPREF_EXISTS
	GROUPREF_IGNORE
	IN
	IN_IGNORE
	INFO
	JUMP
	LITERAL
	LITERAL_IGNORE
	MARK
	MAX_UNTIL
	MIN_UNTIL
	NOT_LITERAL
	NOT_LITERAL_IGNORE
	NEGATE
	RANGE
	REPEAT
	REPEAT_ONE
	MIN_REPEAT_ONE
)

// AtCode identifies a zero-width assertion operand to the AT opcode,
// grounded on _sre.py's AT_* constants and _AtcodeDispatcher.
type AtCode int

const (
	AT_BEGINNING AtCode = iota
	AT_BEGINNING_LINE
	AT_BEGINNING_STRING
	AT_BOUNDARY
	AT_NON_BOUNDARY
	AT_END
	AT_END_LINE
	AT_END_STRING
	AT_LOC_BOUNDARY
	AT_LOC_NON_BOUNDARY
	AT_UNI_BOUNDARY
	AT_UNI_NON_BOUNDARY
)

// Category identifies a character-class operand to the CATEGORY opcode
// (and to a CATEGORY entry inside a charset sub-program), grounded on
// _sre.py's CATEGORY_* constants and _ChcodeDispatcher.
type Category int

const (
	CATEGORY_DIGIT Category = iota
	CATEGORY_NOT_DIGIT
	CATEGORY_SPACE
	CATEGORY_NOT_SPACE
	CATEGORY_WORD
	CATEGORY_NOT_WORD
	CATEGORY_LINEBREAK
	CATEGORY_NOT_LINEBREAK
	CATEGORY_LOC_WORD
	CATEGORY_LOC_NOT_WORD
	CATEGORY_UNI_DIGIT
	CATEGORY_UNI_NOT_DIGIT
	CATEGORY_UNI_SPACE
	CATEGORY_UNI_NOT_SPACE
	CATEGORY_UNI_WORD
	CATEGORY_UNI_NOT_WORD
	CATEGORY_UNI_LINEBREAK
	CATEGORY_UNI_NOT_LINEBREAK
)

// Flag holds pattern-wide compile flags affecting match semantics,
// grounded on the SRE_FLAG_* constants threaded through _sre.py's
// at_beginning/at_boundary family.
type Flag uint32

const (
	FlagIgnoreCase Flag = 1 << iota
	FlagLocale
	FlagMultiline
	FlagDotAll
	FlagUnicode
)
