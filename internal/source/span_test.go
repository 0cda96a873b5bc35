package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 7}
	if s.Empty() {
		t.Error("non-empty span reported Empty")
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
	if got := s.String(); got != "0:3-7" {
		t.Errorf("String = %q", got)
	}

	empty := Span{File: 0, Start: 5, End: 5}
	if !empty.Empty() {
		t.Error("empty span not reported Empty")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 6}
	b := Span{File: 1, Start: 2, End: 9}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 9 {
		t.Errorf("Cover = %v", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Error("Cover across files must not widen")
	}
}
