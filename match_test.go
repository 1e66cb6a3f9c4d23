package pycore

import "testing"

func TestMatchExpand(t *testing.T) {
	p := NewPattern(wordThenDigits())
	m := p.Search("item xy 99", 0, -1)
	if m == nil {
		t.Fatal("expected a match")
	}
	got := m.Expand(`\g<num>:\g<word>`)
	if got != "99:xy" {
		t.Fatalf("got %q", got)
	}
}

func TestMatchLastGroup(t *testing.T) {
	p := NewPattern(wordThenDigits())
	m := p.Search("item xy 99", 0, -1)
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.LastGroup() != "num" {
		t.Fatalf("lastgroup = %q, want %q", m.LastGroup(), "num")
	}
	if m.LastIndex() != 2 {
		t.Fatalf("lastindex = %d, want 2", m.LastIndex())
	}
}

func TestMatchGroupByIntOrName(t *testing.T) {
	p := NewPattern(wordThenDigits())
	m := p.Search("item xy 99", 0, -1)
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Group(1) != m.Group("word") {
		t.Fatalf("Group(1)=%q Group(\"word\")=%q should match", m.Group(1), m.Group("word"))
	}
}

func TestMatchGroupsSlice(t *testing.T) {
	p := NewPattern(wordThenDigits())
	m := p.Search("item xy 99", 0, -1)
	if m == nil {
		t.Fatal("expected a match")
	}
	groups := m.Groups()
	if len(groups) != 2 || groups[0] != "xy" || groups[1] != "99" {
		t.Fatalf("groups = %#v", groups)
	}
}

func TestMatchUnknownGroupReturnsEmpty(t *testing.T) {
	p := NewPattern(literalProgram("hi"))
	m := p.Match("hi", 0, -1)
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Group("nonexistent") != "" {
		t.Fatal("expected empty string for unknown group name")
	}
	if m.Start("nonexistent") != -1 {
		t.Fatal("expected -1 start for unknown group name")
	}
}
