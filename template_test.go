package pycore

import "testing"

func lookupResolver(m map[string]string) func(string) (string, bool) {
	return func(ref string) (string, bool) {
		v, ok := m[ref]
		return v, ok
	}
}

func TestExpandTemplateNumberedGroups(t *testing.T) {
	resolve := lookupResolver(map[string]string{"1": "foo", "2": "bar"})
	got := expandTemplate(`\1-\2`, resolve)
	if got != "foo-bar" {
		t.Fatalf("got %q, want %q", got, "foo-bar")
	}
}

func TestExpandTemplateNamedGroup(t *testing.T) {
	resolve := lookupResolver(map[string]string{"year": "2026"})
	got := expandTemplate(`\g<year>`, resolve)
	if got != "2026" {
		t.Fatalf("got %q, want %q", got, "2026")
	}
}

func TestExpandTemplateLiteralBackslash(t *testing.T) {
	resolve := lookupResolver(nil)
	got := expandTemplate(`a\\b`, resolve)
	if got != `a\b` {
		t.Fatalf("got %q, want %q", got, `a\b`)
	}
}

func TestExpandTemplateUnresolvedLeftVerbatim(t *testing.T) {
	resolve := lookupResolver(nil)
	got := expandTemplate(`\9 and \g<missing>`, resolve)
	if got != `\9 and \g<missing>` {
		t.Fatalf("got %q", got)
	}
}

func TestExpandTemplatePlainText(t *testing.T) {
	resolve := lookupResolver(nil)
	got := expandTemplate("no groups here", resolve)
	if got != "no groups here" {
		t.Fatalf("got %q", got)
	}
}
