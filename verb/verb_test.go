package verb

import "testing"

func TestAll_Closed(t *testing.T) {
	verbs := All()
	if len(verbs) != 12 {
		t.Fatalf("len(All())=%d want 12", len(verbs))
	}

	seen := make(map[Verb]bool, len(verbs))
	for _, v := range verbs {
		if !v.IsValid() {
			t.Fatalf("verb %q from All() is not valid", v)
		}
		if seen[v] {
			t.Fatalf("duplicate verb %q in All()", v)
		}
		seen[v] = true
	}
}

func TestIsValid_Rejects(t *testing.T) {
	for _, v := range []Verb{"", "teapot", "NOT-FOUND", "not_found"} {
		if v.IsValid() {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}
