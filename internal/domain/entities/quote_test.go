package entities

import "testing"

func TestQuote_OrderedSections(t *testing.T) {
	q := Quote{
		Sections: map[string]Section{
			"b": {ID: "b", Name: "Equipment"},
			"a": {ID: "a", Name: "Crew"},
			"c": {ID: "c", Name: "Post"},
		},
		SectionOrder: []string{"b", "missing", "a", "b"},
	}

	got := q.OrderedSections()
	if len(got) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(got))
	}
	want := []string{"b", "a", "c"}
	for i, s := range got {
		if s.ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], s.ID)
		}
	}
}

func TestSection_OrderedSubsections(t *testing.T) {
	s := Section{
		Subsections: map[string][]LineItem{
			"Production":      nil,
			"Post Production": nil,
			"Aerial":          nil,
		},
		SubsectionOrder: []string{"Production", "Post Production"},
	}

	got := s.OrderedSubsections()
	want := []string{"Production", "Post Production", "Aerial"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
