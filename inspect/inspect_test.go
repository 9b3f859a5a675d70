package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/revelaction/glost/igt"
	"github.com/revelaction/glost/render"
)

func handler(t *testing.T) (*Handler, *bytes.Buffer) {
	t.Helper()
	c := &igt.Corpus{Sentences: []igt.Sentence{
		{Source: "juan-s trabaj-a", Gloss: "Juan-PL work-PRS", Translation: "john works"},
		{Source: "nta juan", Gloss: "go Juan", Translation: "john goes"},
	}}

	var buf bytes.Buffer
	r := render.NewRenderer()
	r.Out = &buf
	r.HasPrefix = true

	return NewHandler(c, nil, nil, r), &buf
}

func TestSearch(t *testing.T) {
	h, _ := handler(t)

	got := h.Search("juan")
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("Search(juan) = %v, want [0 1]", got)
	}

	got = h.Search("nta")
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Search(nta) = %v, want [1]", got)
	}

	if got := h.Search("missing"); len(got) != 0 {
		t.Errorf("Search(missing) = %v, want none", got)
	}
}

func TestSearchGloss(t *testing.T) {
	h, _ := handler(t)

	got := h.Search("PRS")
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("Search(PRS) = %v, want [0]", got)
	}
}

func TestTerms(t *testing.T) {
	h, _ := handler(t)

	terms := h.Terms()
	if len(terms) == 0 {
		t.Fatal("no terms indexed")
	}
	for i := 1; i < len(terms); i++ {
		if terms[i-1] >= terms[i] {
			t.Fatalf("terms not sorted: %q before %q", terms[i-1], terms[i])
		}
	}
}

func TestShow(t *testing.T) {
	h, buf := handler(t)

	h.show(1)
	out := buf.String()
	if !strings.Contains(out, "nta juan") {
		t.Errorf("missing source in %q", out)
	}
	if !strings.Contains(out, "1") {
		t.Errorf("missing sentence prefix in %q", out)
	}
}
