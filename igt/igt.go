// Package igt models Interlinear Glossed Text: aligned triples of
// segmented source sentence, morpheme-level gloss and free translation,
// and the three-tier text format they travel in.
package igt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/glost/morph"
)

// Tier prefixes of the IGT text format. Shared-task files may carry a
// raw-text tier (\t) and a numbering tier as well; only these three are
// consumed.
const (
	SourceTag      = `\m`
	GlossTag       = `\g`
	TranslationTag = `\l`
)

// Sentence is one IGT unit. Gloss is empty for covered (test) data.
type Sentence struct {
	Source      string
	Gloss       string
	Translation string
}

// Morphemes decomposes the source tier.
func (s *Sentence) Morphemes() []morph.Morpheme {
	return morph.Decompose(s.Source)
}

// Glosses splits the gloss tier at the morpheme level.
func (s *Sentence) Glosses() []string {
	return morph.Split(s.Gloss)
}

// Check verifies the morpheme/gloss count invariant. Test sentences
// carry no gloss tier and are exempt.
func (s *Sentence) Check(test bool) error {
	if test {
		return nil
	}
	nm := len(s.Morphemes())
	ng := len(s.Glosses())
	if nm != ng {
		return fmt.Errorf("%w: %d morphemes, %d glosses in %q",
			morph.ErrLengthMismatch, nm, ng, s.Source)
	}
	return nil
}

// Corpus is an ordered collection of sentences. It owns them; derived
// structures (units, search spaces) reference back into it.
type Corpus struct {
	Sentences []Sentence

	// Test marks a covered corpus without gold glosses.
	Test bool
}

// Len returns the sentence count.
func (c *Corpus) Len() int { return len(c.Sentences) }

// Read parses IGT text: sentences separated by blank lines, each
// carrying \m, \l and (unless covered) \g tiers in any tier layout.
func Read(r io.Reader, covered bool) (*Corpus, error) {
	c := &Corpus{Test: covered}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cur *Sentence
	flush := func() error {
		if cur == nil {
			return nil
		}
		if cur.Source == "" {
			return fmt.Errorf("sentence %d: missing %s tier", c.Len(), SourceTag)
		}
		if !covered && cur.Gloss == "" {
			return fmt.Errorf("sentence %d: missing %s tier", c.Len(), GlossTag)
		}
		c.Sentences = append(c.Sentences, *cur)
		cur = nil
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		if cur == nil {
			cur = &Sentence{}
		}

		switch {
		case strings.HasPrefix(line, SourceTag+" "):
			cur.Source = strings.TrimSpace(line[len(SourceTag)+1:])
		case strings.HasPrefix(line, GlossTag+" "):
			cur.Gloss = strings.TrimSpace(line[len(GlossTag)+1:])
		case strings.HasPrefix(line, TranslationTag+" "):
			cur.Translation = strings.TrimSpace(line[len(TranslationTag)+1:])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return c, nil
}

// FromLines assembles a corpus from parallel per-tier line slices, the
// layout the pipeline's intermediate files use. glosses may be nil for
// covered data.
func FromLines(sources, glosses, translations []string) (*Corpus, error) {
	if len(sources) != len(translations) {
		return nil, fmt.Errorf("tier length mismatch: %d source, %d translation lines",
			len(sources), len(translations))
	}
	test := glosses == nil
	if !test && len(glosses) != len(sources) {
		return nil, fmt.Errorf("tier length mismatch: %d source, %d gloss lines",
			len(sources), len(glosses))
	}

	c := &Corpus{Test: test}
	for i, src := range sources {
		s := Sentence{Source: src, Translation: translations[i]}
		if !test {
			s.Gloss = glosses[i]
		}
		c.Sentences = append(c.Sentences, s)
	}
	return c, nil
}

// Write renders the corpus in the three-tier format, the gloss tier
// omitted for covered corpora.
func Write(w io.Writer, c *Corpus) error {
	for i, s := range c.Sentences {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", SourceTag, s.Source); err != nil {
			return err
		}
		if !c.Test {
			if _, err := fmt.Fprintf(w, "%s %s\n", GlossTag, s.Gloss); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", TranslationTag, s.Translation); err != nil {
			return err
		}
	}
	return nil
}

// Lines splits text into lines, dropping a trailing empty line.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
