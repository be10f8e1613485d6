package lesson

import "testing"

func TestParagraphsSplitsOnLineBreaks(t *testing.T) {
	s := Section{Content: "First paragraph.\nSecond paragraph.\n\n  \nThird."}
	got := s.Paragraphs()
	if len(got) != 3 {
		t.Fatalf("paragraphs = %d, want 3", len(got))
	}
	if got[2] != "Third." {
		t.Errorf("last paragraph = %q", got[2])
	}
}

func TestParagraphsEmptyContent(t *testing.T) {
	if got := (Section{}).Paragraphs(); len(got) != 0 {
		t.Fatalf("paragraphs = %d, want 0", len(got))
	}
}

func TestWithElaborationCopies(t *testing.T) {
	orig := &Lesson{
		Title: "T",
		Sections: []Section{
			{Title: "A", Content: "a"},
			{Title: "B", Content: "b"},
		},
	}

	next := orig.WithElaboration(1, "like a water wheel")

	if next == orig {
		t.Fatal("expected a new lesson value")
	}
	if next.Sections[1].Elaboration != "like a water wheel" {
		t.Errorf("elaboration = %q", next.Sections[1].Elaboration)
	}
	if orig.Sections[1].Elaboration != "" {
		t.Error("receiver was mutated")
	}
	if next.Sections[0] != orig.Sections[0] {
		t.Error("untouched sections should be equal")
	}
}
