package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/revelaction/glost/align"
	"github.com/revelaction/glost/igt"
	"github.com/revelaction/glost/schema"
	"github.com/revelaction/glost/unit"
)

func TestSentenceIGT(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer()
	r.Out = &buf

	s := &igt.Sentence{
		Source:      "juan-s trabaj-a",
		Gloss:       "Juan-PL work-PRS",
		Translation: "john works",
	}
	r.Sentence(0, s, nil, nil)

	out := buf.String()
	if !strings.Contains(out, `\m juan-s trabaj-a`) {
		t.Errorf("missing source tier in %q", out)
	}
	if !strings.Contains(out, `\g Juan-PL work-PRS`) {
		t.Errorf("missing gloss tier in %q", out)
	}
	if !strings.Contains(out, `\l john works`) {
		t.Errorf("missing translation tier in %q", out)
	}
}

func TestSentenceIGTColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer()
	r.Out = &buf
	r.HasColor = true

	s := &igt.Sentence{Source: "juan-s", Gloss: "Juan-PL", Translation: "john"}
	r.Sentence(0, s, nil, nil)

	if !strings.Contains(buf.String(), Green256+"PL"+Off) {
		t.Errorf("grammatical gloss not colored in %q", buf.String())
	}
}

func TestSentenceAlignView(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer()
	r.Out = &buf
	r.Format = "align"
	r.HasPrefix = true

	entries := []align.Entry{
		{Morpheme: "juan", Reference: "Juan", Label: "john", POS: "PROPN", Index: 0},
	}
	r.Sentence(3, nil, entries, nil)

	out := buf.String()
	if !strings.Contains(out, "juan") || !strings.Contains(out, "PROPN") {
		t.Errorf("missing entry fields in %q", out)
	}
	if !strings.Contains(out, "3") {
		t.Errorf("missing sentence prefix in %q", out)
	}
}

func TestSentenceUnitView(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer()
	r.Out = &buf
	r.Format = "unit"
	r.Schema = schema.MustFor("base")

	units := []unit.Unit{{"juan", "0", "4", "juan"}}
	r.Sentence(0, nil, nil, units)

	if got := buf.String(); got != "juan 0 4 juan\n" {
		t.Errorf("unit view = %q", got)
	}
}

func TestNextFormat(t *testing.T) {
	r := NewRenderer()
	if r.Format != "igt" {
		t.Fatalf("default format = %q", r.Format)
	}
	r.NextFormat()
	if r.Format != "align" {
		t.Errorf("after one step format = %q", r.Format)
	}
	r.NextFormat()
	r.NextFormat()
	if r.Format != "igt" {
		t.Errorf("format did not wrap: %q", r.Format)
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	if err := r.Render(map[string]int{"sentences": 2}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var out map[string]int
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["sentences"] != 2 {
		t.Errorf("unexpected value %v", out)
	}
}
