package sre

// Program is a pre-built, ready-to-execute opcode stream plus the
// metadata a caller needs to interpret a successful match: how many
// capture groups it defines and how group names map to group numbers.
// Compiling a Program from regex source syntax is out of scope for this
// package; Program is the hand-off point from whatever compiler a
// caller brings.
type Program struct {
	Code       []int
	NumGroups  int
	GroupIndex map[string]int
	IndexGroup []string
	Flags      Flag
}
