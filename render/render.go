// Package render prints sentences, alignments and units for the
// terminal, with optional ANSI color.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/glost/align"
	"github.com/revelaction/glost/igt"
	"github.com/revelaction/glost/morph"
	"github.com/revelaction/glost/schema"
	"github.com/revelaction/glost/unit"
)

const Defaultformat = "igt"

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"

	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

func SupportedFormats() []string {
	return []string{"igt", "align", "unit"}
}

type Renderer struct {
	Out io.Writer

	HasColor bool

	HasPrefix bool

	// Format determines the sentence view
	//
	// igt: the three tiers of the sentence
	// align: one row per aligned lexical gloss
	// unit: one row per encoded unit
	Format string

	// Schema shapes the unit view
	Schema schema.Schema
}

func NewRenderer() *Renderer {
	return &Renderer{Out: os.Stdout, Format: Defaultformat}
}

// Sentence prints one sentence in the current format. aligned and units
// may be nil when the view does not need them.
func (r *Renderer) Sentence(index int, s *igt.Sentence, aligned []align.Entry, units []unit.Unit) {
	prefix := ""
	if r.HasPrefix {
		prefix = fmt.Sprintf("✍  %4d ", index)
	}

	switch r.Format {
	case "align":
		r.alignView(prefix, aligned)
	case "unit":
		r.unitView(prefix, units)
	default:
		r.igtView(prefix, s)
	}
}

func (r *Renderer) igtView(prefix string, s *igt.Sentence) {
	fmt.Fprintf(r.Out, "%s%s %s\n", prefix, igt.SourceTag, s.Source)
	if s.Gloss != "" {
		fmt.Fprintf(r.Out, "%s%s %s\n", prefix, igt.GlossTag, r.gloss(s.Gloss))
	}
	fmt.Fprintf(r.Out, "%s%s %s\n", prefix, igt.TranslationTag, s.Translation)
}

// gloss colors grammatical glosses and morpheme separators.
func (r *Renderer) gloss(tier string) string {
	if !r.HasColor {
		return tier
	}

	var out []string
	for _, word := range strings.Fields(tier) {
		var parts []string
		for _, g := range strings.Split(word, morph.Separator) {
			if morph.IsGrammatical(g) {
				parts = append(parts, Green256+g+Off)
			} else {
				parts = append(parts, g)
			}
		}
		out = append(out, strings.Join(parts, Yellow256+morph.Separator+Off))
	}

	return strings.Join(out, " ")
}

func (r *Renderer) alignView(prefix string, entries []align.Entry) {
	for _, e := range entries {
		label := e.Label
		if r.HasColor && label != align.Unknown {
			label = Green256 + label + Off
		}
		fmt.Fprintf(r.Out, "%s%15s %15s %15s %8s %4d\n",
			prefix, e.Morpheme, e.Reference, label, e.POS, e.Index)
	}
}

func (r *Renderer) unitView(prefix string, units []unit.Unit) {
	for _, u := range units {
		if !r.HasColor || len(u) <= r.Schema.InputLength() {
			fmt.Fprintf(r.Out, "%s%s\n", prefix, u.String())
			continue
		}

		inputs := strings.Join(u.Inputs(r.Schema), " ")
		outputs := strings.Join(u.Outputs(r.Schema), " ")
		fmt.Fprintf(r.Out, "%s%s %s\n", prefix, inputs, Green256+outputs+Off)
	}
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}
