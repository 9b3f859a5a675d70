// Package space generates Lost-format reference and search space files
// from encoded units: every candidate output label a decoder may assign
// to each morpheme.
package space

import (
	"fmt"
	"sort"
	"strings"

	"github.com/revelaction/glost/annotate"
	"github.com/revelaction/glost/dict"
	"github.com/revelaction/glost/morph"
	"github.com/revelaction/glost/schema"
	"github.com/revelaction/glost/unit"
)

// Unknown is the catch-all candidate for covered data.
const Unknown = "?"

// LabelSet is a set of candidate output labels, pipe-joined.
type LabelSet map[string]struct{}

// Add inserts labels into the set.
func (s LabelSet) Add(labels ...string) {
	for _, l := range labels {
		s[l] = struct{}{}
	}
}

// Union merges other into s.
func (s LabelSet) Union(other LabelSet) {
	for l := range other {
		s[l] = struct{}{}
	}
}

// Sorted returns the labels in lexicographic order.
func (s LabelSet) Sorted() []string {
	labels := make([]string, 0, len(s))
	for l := range s {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// GramLabels collects the grammatical main labels of a training set.
// Punctuation glosses are dropped unless punctuation prediction is on.
func GramLabels(sentences [][]unit.Unit, sch schema.Schema, punctuation bool) LabelSet {
	out := LabelSet{}
	for _, units := range sentences {
		for _, u := range units {
			label := u.Label(sch)
			if !morph.IsGrammatical(label) {
				continue
			}
			if !punctuation && morph.IsPunctuation(label) {
				continue
			}
			out.Add(label)
		}
	}
	return out
}

// Generator emits search space sentences for one schema.
type Generator struct {
	Schema schema.Schema

	// Gram holds the grammatical labels of the training split.
	Gram LabelSet

	// Test omits reference outputs and consults the dictionary
	// instead.
	Test bool

	// Dict supplies morpheme candidates for covered data; may be nil.
	Dict *dict.Dictionary

	// Punctuation adds punctuation candidates.
	Punctuation bool

	// WithoutTranslation drops translation-derived candidates.
	WithoutTranslation bool

	// StopWords are translation lemmas excluded from candidates.
	StopWords map[string]struct{}
}

// Sentence produces the search space lines of one sentence: for every
// morpheme, one line per candidate label, followed by the morpheme
// count line. units come from unit.Encoder (input-only for covered
// data); tokens are the annotated translation words.
func (g *Generator) Sentence(units []unit.Unit, tokens []annotate.Token) ([]string, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("empty sentence")
	}
	sources := make([]string, len(units))
	for i, u := range units {
		sources[i] = u[0]
	}

	labels := g.gramCandidates(sources)
	translation := g.translationCandidates(tokens, sources)
	if !g.WithoutTranslation {
		labels.Union(translation)
	}

	if g.Test {
		g.addUnknown(labels)
		if g.Dict != nil {
			dictLabels := g.dictCandidates(sources)
			if g.filtersDict() {
				dictLabels = filterAgainstTranslation(dictLabels, translation, g.Schema)
			}
			labels.Union(dictLabels)
		}
	} else {
		for _, u := range units {
			labels.Add(strings.Join(u.Outputs(g.Schema), "|"))
		}
	}

	sorted := labels.Sorted()
	var lines []string
	for i, u := range units {
		inputs := strings.Join(u[:g.Schema.InputLength()], "|")
		for _, label := range sorted {
			lines = append(lines, fmt.Sprintf("%d\t%d\t%s\t%s", i, i+1, inputs, label))
		}
	}
	lines = append(lines, fmt.Sprintf("%d", len(units)))
	return lines, nil
}

// gramCandidates shapes the training gram labels for the schema, plus
// punctuation and digit rows where the schema asks for them.
func (g *Generator) gramCandidates(sources []string) LabelSet {
	sch := g.Schema
	out := LabelSet{}
	for gram := range g.Gram {
		switch {
		case sch.Full:
			out.Add(gram + "|gram|GRAM_GLOSS|GRAM_GLOSS|-2|-1|G")
		case sch.Dist || sch.Comp:
			out.Add(gram + "|gram|GRAM_GLOSS|-1|-2")
		case sch.Both:
			out.Add(gram + "|gram|GRAM_GLOSS|GRAM_GLOSS|-2")
		case sch.POS:
			out.Add(gram + "|gram|GRAM_GLOSS")
		default:
			out.Add(gram)
		}
	}

	if g.Punctuation {
		switch {
		case sch.Full:
			for _, p := range morph.PunctuationList {
				out.Add(p + "|gram|PUNCT|PUNCT_GLOSS|-2|-1|G")
			}
		case sch.Comp:
			for _, m := range sources {
				if morph.IsPunctuation(m) {
					out.Add(m + "|lex|?|1|-1")
				}
			}
		case sch.Dist:
			for _, m := range sources {
				if morph.IsPunctuation(m) {
					out.Add(m + "|gram|PUNCT|1|-2")
				}
			}
		case sch.Both:
			for _, p := range morph.PunctuationList {
				out.Add(p + "|gram|PUNCT|PUNCT_GLOSS|-2")
			}
		case sch.POS:
			for _, m := range sources {
				if morph.IsPunctuation(m) {
					out.Add(m + "|gram|PUNCT")
				}
			}
		}
	}

	// Source digits copy through verbatim.
	if sch.Comp {
		for _, m := range sources {
			if isDigits(m) {
				out.Add(m + "|lex|?|1|-2")
			}
		}
	}
	return out
}

// translationCandidates derives one candidate (or, for full, one per
// distance bucket) from every translation word.
func (g *Generator) translationCandidates(tokens []annotate.Token, sources []string) LabelSet {
	sch := g.Schema
	out := LabelSet{}
	lemmas := annotate.Lemmas(tokens)
	n := len(tokens)

	for i, tok := range tokens {
		lemma := tok.Lemma
		if _, stop := g.StopWords[lemma]; stop {
			continue
		}
		if tok.POS == "PROPN" {
			lemma = capitalize(lemma)
		}

		switch {
		case sch.Full:
			count := countCapped(lemmas, tok.Lemma)
			base := fmt.Sprintf("%s|lex|%s|%s|1", lemma, tok.POS, lemma)
			for _, bucket := range []string{"-1", "0.0", "0.1", "0.2", "0.3+"} {
				out.Add(fmt.Sprintf("%s|%s|T%s", base, bucket, count))
			}
		case sch.Dist || sch.Comp:
			copyTrg := unit.CopyInSentence(lemma, sources)
			posTrg, err := unit.CapPositionInSentence(float64(i) / float64(n))
			if err != nil {
				continue
			}
			out.Add(fmt.Sprintf("%s|lex|%s|%s|%s", lemma, tok.POS, copyTrg, posTrg))
		case sch.Both:
			out.Add(fmt.Sprintf("%s|lex|%s|%s|1", lemma, tok.POS, lemma))
		case sch.POS:
			out.Add(fmt.Sprintf("%s|lex|%s", lemma, tok.POS))
		default:
			out.Add(lemma)
		}
	}
	return out
}

// dictCandidates derives candidates for source morphemes seen in
// training. Grammatical and punctuation dictionary labels are skipped;
// the gram candidates cover them already.
func (g *Generator) dictCandidates(sources []string) LabelSet {
	sch := g.Schema
	out := LabelSet{}
	for _, m := range sources {
		e, ok := g.Dict.Get(m)
		if !ok {
			continue
		}
		if g.Punctuation && morph.IsPunctuation(m) {
			continue
		}
		if morph.IsGrammatical(e.Label) {
			continue
		}

		main := e.Label
		switch {
		case sch.Full:
			if e.Reference != "" {
				main = e.Reference
			}
			out.Add(fmt.Sprintf("%s|lex|%s|?|-1|-1|D", main, e.POS))
		case sch.Dist || sch.Comp:
			copyTrg := unit.CopyInSentence(main, sources)
			out.Add(fmt.Sprintf("%s|lex|%s|%s|-1", main, e.POS, copyTrg))
		case sch.Both:
			corres := "0"
			if e.Reference == e.Label {
				corres = "1"
			}
			out.Add(fmt.Sprintf("%s|lex|%s|%s|%s", e.Reference, e.POS, e.Label, corres))
		case sch.POS:
			out.Add(fmt.Sprintf("%s|lex|%s", e.Label, e.POS))
		default:
			out.Add(e.Label)
		}
	}
	return out
}

// addUnknown inserts the schema-shaped catch-all candidate.
func (g *Generator) addUnknown(labels LabelSet) {
	sch := g.Schema
	switch {
	case sch.Full:
		labels.Add("?|lex|?|?|-1|-1|?")
	case sch.Dist || sch.Comp:
		// Covered by translation and dictionary candidates.
	case sch.Both:
		labels.Add("?|lex|?|?|-1")
	case sch.POS:
		// The pos layouts carry no catch-all.
	default:
		labels.Add(Unknown)
	}
}

// filtersDict reports whether dictionary candidates yield to
// translation candidates carrying the same label and POS.
func (g *Generator) filtersDict() bool {
	return g.Schema.Full || g.Schema.Dist || g.Schema.Comp
}

// filterAgainstTranslation drops dictionary labels whose main label and
// POS pair already comes from the translation.
func filterAgainstTranslation(dictLabels, translation LabelSet, sch schema.Schema) LabelSet {
	seen := map[[2]string]struct{}{}
	for l := range translation {
		fields := strings.Split(l, "|")
		if len(fields) < 3 {
			continue
		}
		seen[[2]string{fields[0], fields[2]}] = struct{}{}
	}

	out := LabelSet{}
	for l := range dictLabels {
		fields := strings.Split(l, "|")
		if len(fields) >= 3 {
			if _, dup := seen[[2]string{fields[0], fields[2]}]; dup {
				continue
			}
		}
		out.Add(l)
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}

func countCapped(lemmas []string, lemma string) string {
	for _, l := range lemmas {
		if l == lemma {
			return "1"
		}
	}
	return "0"
}
