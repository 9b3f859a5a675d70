// Package inspect is an interactive browser over a corpus and its
// derived alignments and units.
package inspect

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/revelaction/glost/align"
	"github.com/revelaction/glost/igt"
	"github.com/revelaction/glost/render"
	"github.com/revelaction/glost/unit"

	"github.com/c-bata/go-prompt"
)

const completionThreshold = 2

type Handler struct {
	Corpus *igt.Corpus

	// Aligned and Units are optional; the align and unit views show
	// nothing for sentences without them.
	Aligned [][]align.Entry
	Units   [][]unit.Unit

	Renderer *render.Renderer

	// vocabulary maps every morpheme and gloss atom to the sentence
	// indexes containing it
	vocabulary map[string][]int
}

func NewHandler(c *igt.Corpus, aligned [][]align.Entry, units [][]unit.Unit, r *render.Renderer) *Handler {
	h := &Handler{
		Corpus:   c,
		Aligned:  aligned,
		Units:    units,
		Renderer: r,
	}
	h.index()
	return h
}

func (h *Handler) Run() error {

	fmt.Println("🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("glost inspect"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Println("Format set to: " + h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Println("Prefix set to " + fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		if in == "quit" {
			return nil
		}

		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}

		history = append(history, in)

		// a number shows that sentence, anything else searches the
		// vocabulary
		if idx, err := strconv.Atoi(in); err == nil {
			if idx < 0 || idx >= h.Corpus.Len() {
				fmt.Printf("Sentence %d out of bounds (corpus has %d sentences)\n", idx, h.Corpus.Len())
				continue
			}
			h.show(idx)
			continue
		}

		matches := h.Search(in)
		if len(matches) == 0 {
			fmt.Printf("No sentence contains %q\n", in)
			continue
		}

		for _, idx := range matches {
			h.show(idx)
		}
	}
}

func (h *Handler) show(idx int) {
	var aligned []align.Entry
	if idx < len(h.Aligned) {
		aligned = h.Aligned[idx]
	}
	var units []unit.Unit
	if idx < len(h.Units) {
		units = h.Units[idx]
	}
	h.Renderer.Sentence(idx, &h.Corpus.Sentences[idx], aligned, units)
}

// Search returns the sentence indexes whose morphemes or gloss atoms
// equal term, in corpus order.
func (h *Handler) Search(term string) []int {
	return h.vocabulary[term]
}

// Terms returns the indexed vocabulary, sorted.
func (h *Handler) Terms() []string {
	terms := make([]string, 0, len(h.vocabulary))
	for t := range h.vocabulary {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

func (h *Handler) index() {
	h.vocabulary = map[string][]int{}

	add := func(term string, idx int) {
		seen := h.vocabulary[term]
		if len(seen) > 0 && seen[len(seen)-1] == idx {
			return
		}
		h.vocabulary[term] = append(seen, idx)
	}

	for i, s := range h.Corpus.Sentences {
		for _, m := range s.Morphemes() {
			add(m.Surface, i)
		}
		for _, g := range s.Glosses() {
			add(g, i)
		}
	}
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	terms := h.Terms()

	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		if len(befCursor) < completionThreshold {
			return s
		}

		for _, term := range terms {
			if strings.HasPrefix(term, befCursor) {
				desc := fmt.Sprintf("%d sentences", len(h.vocabulary[term]))
				s = append(s, prompt.Suggest{Text: term, Description: desc})
			}
		}

		return s
	}
}
