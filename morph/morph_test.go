package morph

import (
	"reflect"
	"testing"
)

func TestDecompose(t *testing.T) {
	got := Decompose("juan-s trabaj-a")

	want := []Morpheme{
		{Surface: "juan", Index: 0, Offset: 0},
		{Surface: "s", Index: 1, Offset: 1},
		{Surface: "trabaj", Index: 2, Offset: 0},
		{Surface: "a", Index: 3, Offset: 1},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Decompose: got %v, want %v", got, want)
	}
}

func TestDecomposeFree(t *testing.T) {
	got := Decompose("nta root-suf1-suf2 ku")

	offsets := []int{0, 0, 1, 2, 0}
	free := []bool{true, false, false, false, true}

	if len(got) != 5 {
		t.Fatalf("expected 5 morphemes, got %d", len(got))
	}

	for i, m := range got {
		if m.Offset != offsets[i] {
			t.Errorf("morpheme %d: offset %d, want %d", i, m.Offset, offsets[i])
		}
		if m.Free != free[i] {
			t.Errorf("morpheme %d: free %t, want %t", i, m.Free, free[i])
		}
		if m.Index != i {
			t.Errorf("morpheme %d: index %d", i, m.Index)
		}
	}
}

func TestPositionTag(t *testing.T) {
	ms := Decompose("ama root-suf")

	if got := ms[0].PositionTag(true); got != "F" {
		t.Errorf("free morpheme in BIO-F mode: %q, want F", got)
	}
	if got := ms[0].PositionTag(false); got != "0" {
		t.Errorf("free morpheme in numeric mode: %q, want 0", got)
	}
	if got := ms[1].PositionTag(true); got != "0" {
		t.Errorf("word-initial morpheme: %q, want 0", got)
	}
	if got := ms[2].PositionTag(true); got != "1" {
		t.Errorf("word-final morpheme: %q, want 1", got)
	}
}

func TestExpand(t *testing.T) {
	got := Expand("root-suf ku")
	want := []string{"root", "-", "suf", "ku"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expand: got %v, want %v", got, want)
	}
}

func TestLengthBucket(t *testing.T) {
	cases := map[int]string{1: "1", 5: "5", 6: "6+", 12: "6+"}
	for n, want := range cases {
		if got := LengthBucket(n); got != want {
			t.Errorf("LengthBucket(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestAffixes(t *testing.T) {
	cases := []struct {
		in, initial, final string
	}{
		{"trabaj", "tra", "baj"},
		{"ama", "ama", "ama"},
		{"ku", "ku", "ku"},
	}
	for _, c := range cases {
		initial, final := Affixes(c.in)
		if initial != c.initial || final != c.final {
			t.Errorf("Affixes(%q) = %q/%q, want %q/%q", c.in, initial, final, c.initial, c.final)
		}
	}
}

func TestIsGrammatical(t *testing.T) {
	cases := map[string]bool{
		"PL":      true,
		"3SG.ABS": true,
		"Juan":    false,
		"work":    false,
		"?":       false,
		"-":       false,
	}
	for gloss, want := range cases {
		if got := IsGrammatical(gloss); got != want {
			t.Errorf("IsGrammatical(%q) = %t, want %t", gloss, got, want)
		}
	}
}

func TestLexicalGlosses(t *testing.T) {
	glosses := []string{"Juan", "PL", "work.3SG", "COM.house"}

	got := LexicalGlosses(glosses, false)
	want := []string{"Juan", "work", "house"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LexicalGlosses: got %v, want %v", got, want)
	}

	orig := OriginalLexicalGlosses(glosses, false)
	wantOrig := []string{"Juan", "work", "house"}
	if !reflect.DeepEqual(orig, wantOrig) {
		t.Fatalf("OriginalLexicalGlosses: got %v, want %v", orig, wantOrig)
	}
}

func TestOriginalLexicalGlossesComposed(t *testing.T) {
	glosses := []string{"go.come", "DET"}

	got := OriginalLexicalGlosses(glosses, false)
	want := []string{"go.come"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("composed gloss kept whole: got %v, want %v", got, want)
	}
}

func TestStripGrammatical(t *testing.T) {
	glosses := []string{"Juan", "PL", "work.3SG"}
	got := StripGrammatical(glosses)
	want := []string{"Juan", "PL", "work"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("StripGrammatical: got %v, want %v", got, want)
	}
}
