package dict

import (
	"encoding/json"
	"testing"

	"github.com/revelaction/glost/align"
)

func aligned(morpheme, reference, label, pos string) align.Entry {
	return align.Entry{
		Morpheme:  morpheme,
		Reference: reference,
		Label:     label,
		POS:       pos,
		Index:     align.Unaligned,
	}
}

func TestBuildMajority(t *testing.T) {
	sentences := [][]align.Entry{
		{aligned("trabaj", "work", "work", "VERB")},
		{aligned("trabaj", "work", "work", "VERB")},
		{aligned("trabaj", "work", "labor", "NOUN")},
	}
	d := Build(sentences, Options{})
	e, ok := d.Get("trabaj")
	if !ok {
		t.Fatal("trabaj not in dictionary")
	}
	if e.Label != "work" || e.Freq != 2 || e.POS != "VERB" {
		t.Errorf("entry = %+v", e)
	}
	if e.Reference != "" {
		t.Errorf("reference kept without option: %+v", e)
	}
}

func TestBuildTieKeepsFirst(t *testing.T) {
	sentences := [][]align.Entry{
		{aligned("m", "r", "first", "X")},
		{aligned("m", "r", "second", "Y")},
	}
	d := Build(sentences, Options{})
	e, _ := d.Get("m")
	if e.Label != "first" {
		t.Errorf("tie broke to %q, want first observation", e.Label)
	}
}

func TestBuildSkipsUnknown(t *testing.T) {
	sentences := [][]align.Entry{
		{aligned("m", "r", align.Unknown, align.Unknown)},
		{aligned("m", "r", align.Unknown, align.Unknown)},
		{aligned("m", "r", "real", "NOUN")},
	}
	d := Build(sentences, Options{})
	e, ok := d.Get("m")
	if !ok {
		t.Fatal("m not in dictionary")
	}
	if e.Label != "real" {
		t.Errorf("label = %q, unknown must never win", e.Label)
	}
}

func TestBuildUseGold(t *testing.T) {
	sentences := [][]align.Entry{
		{aligned("m", "gold", align.Unknown, align.Unknown)},
	}

	if d := Build(sentences, Options{}); d.Len() != 0 {
		t.Error("unaligned morpheme stored without UseGold")
	}

	d := Build(sentences, Options{UseGold: true})
	e, ok := d.Get("m")
	if !ok {
		t.Fatal("m not in dictionary")
	}
	if e.Label != "gold" {
		t.Errorf("label = %q, want gold gloss", e.Label)
	}
}

func TestBuildReference(t *testing.T) {
	sentences := [][]align.Entry{
		{aligned("trabaj", "work", "labor", "NOUN")},
	}
	d := Build(sentences, Options{Reference: true})
	e, _ := d.Get("trabaj")
	if e.Reference != "work" {
		t.Errorf("reference = %q", e.Reference)
	}
}

func TestLookup(t *testing.T) {
	d := New()
	d.Set("nta", Entry{Label: "no", Freq: 3, POS: "DET"})

	label, pos, ok := d.Lookup("nta")
	if !ok || label != "no" || pos != "DET" {
		t.Errorf("Lookup = %q, %q, %v", label, pos, ok)
	}
	if _, _, ok := d.Lookup("missing"); ok {
		t.Error("missing morpheme found")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New()
	d.Set("nta", Entry{Label: "no", Freq: 3, POS: "DET"})
	d.Set("kasa", Entry{Label: "house", Freq: 1, POS: "NOUN", Reference: "house"})

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	again := New()
	if err := json.Unmarshal(data, again); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if again.Len() != 2 {
		t.Fatalf("Len = %d", again.Len())
	}
	e, _ := again.Get("kasa")
	if e.Reference != "house" || e.Freq != 1 {
		t.Errorf("entry = %+v", e)
	}
}
