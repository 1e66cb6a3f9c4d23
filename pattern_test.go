package pycore

import (
	"testing"

	"github.com/coregx/pycore/sre"
)

// literalProgram assembles a Program that matches the literal string s
// exactly, the way a caller's own compiler would hand off a finished
// opcode stream; this package never compiles patterns from source
// syntax.
func literalProgram(s string) *sre.Program {
	code := make([]int, 0, len(s)*2+1)
	for _, r := range s {
		code = append(code, int(sre.LITERAL), int(r))
	}
	code = append(code, int(sre.SUCCESS))
	return &sre.Program{Code: code, GroupIndex: map[string]int{}}
}

// wordThenDigits assembles `(?P<word>[a-z]+) (?P<num>[0-9]+)` as a flat
// opcode stream with hand-computed jump offsets:
//
//	 0: MARK 0                          (open "word")
//	 2: REPEAT_ONE skip=10 min=1 max=-1
//	 6: IN skip=6
//	 8: RANGE 'a' 'z'
//	11: FAILURE
//	12: MARK 1                          (close "word")
//	14: LITERAL ' '
//	16: MARK 2                          (open "num")
//	18: REPEAT_ONE skip=6 min=1 max=-1
//	22: CATEGORY CATEGORY_DIGIT
//	24: MARK 3                          (close "num")
//	26: SUCCESS
func wordThenDigits() *sre.Program {
	code := []int{
		int(sre.MARK), 0,
		int(sre.REPEAT_ONE), 10, 1, -1,
		int(sre.IN), 6,
		int(sre.RANGE), 'a', 'z',
		int(sre.FAILURE),
		int(sre.MARK), 1,
		int(sre.LITERAL), ' ',
		int(sre.MARK), 2,
		int(sre.REPEAT_ONE), 6, 1, -1,
		int(sre.CATEGORY), int(sre.CATEGORY_DIGIT),
		int(sre.MARK), 3,
		int(sre.SUCCESS),
	}
	return &sre.Program{
		Code:       code,
		NumGroups:  2,
		GroupIndex: map[string]int{"word": 1, "num": 2},
		IndexGroup: []string{"word", "num"},
	}
}

func TestPatternMatchLiteral(t *testing.T) {
	p := NewPattern(literalProgram("hello"))
	m := p.Match("hello world", 0, -1)
	if m == nil {
		t.Fatal("expected match")
	}
	if m.Group(0) != "hello" {
		t.Fatalf("got %q", m.Group(0))
	}
}

func TestPatternMatchFailsWhenNotAnchored(t *testing.T) {
	p := NewPattern(literalProgram("world"))
	if m := p.Match("hello world", 0, -1); m != nil {
		t.Fatalf("expected no anchored match, got %q", m.Group(0))
	}
}

func TestPatternSearchFindsMatch(t *testing.T) {
	p := NewPattern(literalProgram("world"))
	m := p.Search("hello world", 0, -1)
	if m == nil {
		t.Fatal("expected a match via search")
	}
	if s, e := m.Span(0); s != 6 || e != 11 {
		t.Fatalf("span = [%d,%d), want [6,11)", s, e)
	}
}

func TestPatternFullMatch(t *testing.T) {
	p := NewPattern(literalProgram("hello"))
	if m := p.FullMatch("hello!", 0, -1); m != nil {
		t.Fatal("expected fullmatch to fail on trailing input")
	}
	if m := p.FullMatch("hello", 0, -1); m == nil {
		t.Fatal("expected fullmatch to succeed")
	}
}

func TestPatternFindAll(t *testing.T) {
	p := NewPattern(literalProgram("ab"))
	matches := p.FindAll("ababXab")
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	if matches[2].Start(0) != 5 {
		t.Fatalf("third match starts at %d, want 5", matches[2].Start(0))
	}
}

func TestPatternGroupsAndNames(t *testing.T) {
	p := NewPattern(wordThenDigits())
	m := p.Search("order ab 42 done", 0, -1)
	if m == nil {
		t.Fatal("expected a match")
	}
	if got := m.Group("word"); got != "ab" {
		t.Fatalf("word group = %q, want %q", got, "ab")
	}
	if got := m.Group("num"); got != "42" {
		t.Fatalf("num group = %q, want %q", got, "42")
	}
	dict := m.GroupDict()
	if dict["word"] != "ab" || dict["num"] != "42" {
		t.Fatalf("groupdict = %#v", dict)
	}
}

func TestPatternSub(t *testing.T) {
	p := NewPattern(literalProgram("cat"))
	out := p.Sub("dog", "cat and cat")
	if out != "dog and dog" {
		t.Fatalf("got %q", out)
	}
}

func TestPatternSubn(t *testing.T) {
	p := NewPattern(literalProgram("cat"))
	out, n := p.Subn("dog", "cat and cat")
	if out != "dog and dog" || n != 2 {
		t.Fatalf("got (%q, %d)", out, n)
	}
}

func TestPatternSplit(t *testing.T) {
	p := NewPattern(literalProgram(","))
	parts := p.Split("a,b,c", 0)
	if len(parts) != 3 || parts[0] != "a" || parts[1] != "b" || parts[2] != "c" {
		t.Fatalf("got %#v", parts)
	}
}
