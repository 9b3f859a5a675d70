package align

import (
	"errors"
	"testing"

	"github.com/revelaction/glost/annotate"
	"github.com/revelaction/glost/igt"
)

func tokens(pairs ...[3]string) []annotate.Token {
	var out []annotate.Token
	for i, p := range pairs {
		out = append(out, annotate.Token{Surface: p[0], Lemma: p[1], POS: p[2], Index: i})
	}
	return out
}

func TestParse(t *testing.T) {
	pairs, err := Parse("0-0 1-2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Pair{{0, 0}, {1, 2}}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, pairs[i], want[i])
		}
	}

	if pairs, err := Parse(""); err != nil || len(pairs) != 0 {
		t.Errorf("empty line: pairs=%v err=%v", pairs, err)
	}
	if _, err := Parse("0-0 1"); !errors.Is(err, ErrPairFormat) {
		t.Errorf("err = %v, want ErrPairFormat", err)
	}
}

func TestAlign(t *testing.T) {
	s := &igt.Sentence{
		Source:      "juan-s trabaj-a",
		Gloss:       "Juan-PL work-PRS",
		Translation: "the juans work",
	}
	pairs, _ := Parse("0-0 1-1")
	toks := tokens(
		[3]string{"juans", "juan", "NOUN"},
		[3]string{"work", "work", "VERB"},
	)

	eng := &Engine{}
	entries, err := eng.Align(s, pairs, toks)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	want := []Entry{
		{Morpheme: "juan", Reference: "Juan", Label: "juan", POS: "NOUN", Index: 0},
		{Morpheme: "trabaj", Reference: "work", Label: "work", POS: "VERB", Index: 1},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestAlignNoPairs(t *testing.T) {
	s := &igt.Sentence{
		Source:      "juan-s trabaj-a",
		Gloss:       "Juan-PL work-PRS",
		Translation: "the juans work",
	}
	eng := &Engine{}
	entries, err := eng.Align(s, nil, nil)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	for i, entry := range entries {
		if entry.Label != Unknown || entry.POS != Unknown || entry.Index != Unaligned {
			t.Errorf("entry %d = %+v, want unaligned", i, entry)
		}
	}
	if entries[0].Reference != "Juan" || entries[1].Reference != "work" {
		t.Errorf("references = %q, %q", entries[0].Reference, entries[1].Reference)
	}
}

func TestAlignComposed(t *testing.T) {
	s := &igt.Sentence{
		Source:      "mutsaj",
		Gloss:       "good.morning",
		Translation: "good morning",
	}
	pairs, _ := Parse("0-0 1-1")
	toks := tokens(
		[3]string{"good", "good", "ADJ"},
		[3]string{"morning", "morning", "NOUN"},
	)

	eng := &Engine{}
	entries, err := eng.Align(s, pairs, toks)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	got := entries[0]
	if got.Label != "good.morning" || got.POS != Unknown || got.Index != Unaligned {
		t.Errorf("entry = %+v", got)
	}
}

func TestAlignComposedPartial(t *testing.T) {
	s := &igt.Sentence{
		Source:      "mutsaj ra",
		Gloss:       "good.morning sir",
		Translation: "morning sir",
	}
	pairs, _ := Parse("1-0 2-1")
	toks := tokens(
		[3]string{"morning", "morning", "NOUN"},
		[3]string{"sir", "sir", "NOUN"},
	)

	eng := &Engine{}
	entries, err := eng.Align(s, pairs, toks)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if entries[0].Label != "morning" {
		t.Errorf("composed entry = %+v, want aligned part only", entries[0])
	}
	if entries[1].Label != "sir" || entries[1].Index != 1 {
		t.Errorf("simple entry = %+v", entries[1])
	}
}

type mapLexicon map[string][2]string

func (m mapLexicon) Lookup(morpheme string) (string, string, bool) {
	e, ok := m[morpheme]
	return e[0], e[1], ok
}

func TestAlignExpandDict(t *testing.T) {
	s := &igt.Sentence{
		Source:      "nta kasa",
		Gloss:       "no house",
		Translation: "there is no house",
	}
	// Only "house" is aligned; "no" must come from the lexicon.
	pairs, _ := Parse("1-3")
	toks := tokens(
		[3]string{"there", "there", "ADV"},
		[3]string{"is", "be", "AUX"},
		[3]string{"no", "no", "DET"},
		[3]string{"house", "house", "NOUN"},
	)

	eng := &Engine{Expand: true, Dict: mapLexicon{"nta": {"no", "DET"}}}
	entries, err := eng.Align(s, pairs, toks)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if entries[0].Label != "no" || entries[0].POS != "DET" || entries[0].Index != Unaligned {
		t.Errorf("dict fallback entry = %+v", entries[0])
	}
	if entries[1].Label != "house" || entries[1].Index != 3 {
		t.Errorf("aligned entry = %+v", entries[1])
	}
}

func TestAlignExpandVerbatim(t *testing.T) {
	s := &igt.Sentence{
		Source:      "nta kasa",
		Gloss:       "no house",
		Translation: "there is no house",
	}
	pairs, _ := Parse("1-3")
	toks := tokens(
		[3]string{"there", "there", "ADV"},
		[3]string{"is", "be", "AUX"},
		[3]string{"no", "no", "DET"},
		[3]string{"house", "house", "NOUN"},
	)

	eng := &Engine{Expand: true}
	entries, err := eng.Align(s, pairs, toks)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if entries[0].Label != "no" || entries[0].POS != Unknown {
		t.Errorf("verbatim fallback entry = %+v", entries[0])
	}
}

func TestAlignNoExpand(t *testing.T) {
	s := &igt.Sentence{
		Source:      "nta kasa",
		Gloss:       "no house",
		Translation: "there is no house",
	}
	pairs, _ := Parse("1-3")
	toks := tokens(
		[3]string{"there", "there", "ADV"},
		[3]string{"is", "be", "AUX"},
		[3]string{"no", "no", "DET"},
		[3]string{"house", "house", "NOUN"},
	)

	eng := &Engine{}
	entries, err := eng.Align(s, pairs, toks)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if entries[0].Label != Unknown {
		t.Errorf("entry = %+v, want unknown without expansion", entries[0])
	}
}

func TestAlignMixedGloss(t *testing.T) {
	// A gloss fusing lexical and grammatical parts aligns on its
	// lexical part alone.
	s := &igt.Sentence{
		Source:      "come",
		Gloss:       "eat.PRS",
		Translation: "he eats",
	}
	pairs, _ := Parse("0-1")
	toks := tokens(
		[3]string{"he", "he", "PRON"},
		[3]string{"eats", "eat", "VERB"},
	)

	eng := &Engine{}
	entries, err := eng.Align(s, pairs, toks)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Reference != "eat" || entries[0].Label != "eat" || entries[0].Index != 1 {
		t.Errorf("entry = %+v", entries[0])
	}
}
