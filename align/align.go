// Package align links the lexical glosses of an IGT sentence to words
// of its translation, starting from sparse word-alignment pairs and
// filling the gaps from a training lexicon or the translation itself.
package align

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/revelaction/glost/annotate"
	"github.com/revelaction/glost/igt"
	"github.com/revelaction/glost/morph"
)

// Unknown marks a gloss with no usable alignment.
const Unknown = "?"

// Unaligned is the translation index of an entry with no aligned word.
const Unaligned = -1

var (
	// ErrPairFormat reports a malformed alignment pair.
	ErrPairFormat = errors.New("malformed alignment pair")

	// ErrGlossNotFound reports a lexical gloss that cannot be located
	// in the gloss tier it was extracted from.
	ErrGlossNotFound = errors.New("lexical gloss not found in gloss tier")

	// ErrConsistency reports an alignment walk whose reference column
	// diverges from the sentence's lexical glosses.
	ErrConsistency = errors.New("aligned glosses diverge from lexical glosses")
)

// Pair is one alignment link: lexical gloss index to translation word
// index.
type Pair struct {
	Gloss int
	Word  int
}

// Parse reads an alignment line in the "0-0 1-2" format produced by
// statistical word aligners. An empty line yields no pairs.
func Parse(line string) ([]Pair, error) {
	var pairs []Pair
	for _, field := range strings.Fields(line) {
		g, w, ok := strings.Cut(field, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPairFormat, field)
		}
		gi, err := strconv.Atoi(g)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrPairFormat, field)
		}
		wi, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrPairFormat, field)
		}
		pairs = append(pairs, Pair{Gloss: gi, Word: wi})
	}
	return pairs, nil
}

// Entry is the aligned record for one lexical gloss.
type Entry struct {
	// Morpheme is the source morpheme carrying the gloss.
	Morpheme string

	// Reference is the original lexical gloss, composed parts kept.
	Reference string

	// Label is the aligned translation lemma, a lexicon fallback, a
	// verbatim translation match, or Unknown.
	Label string

	// POS tags the aligned word; Unknown when none applies.
	POS string

	// Index is the translation word index, Unaligned when none.
	Index int
}

// Lexicon supplies fallback labels for morphemes seen in training.
// *dict.Dictionary satisfies it.
type Lexicon interface {
	Lookup(morpheme string) (label, pos string, ok bool)
}

// Engine walks a sentence's lexical glosses against its alignment
// pairs.
type Engine struct {
	// Expand widens sparse alignments with lexicon lookups and
	// verbatim translation matches.
	Expand bool

	// Dict is consulted in Expand mode; may be nil.
	Dict Lexicon

	// Punctuation drops punctuation glosses before aligning.
	Punctuation bool
}

// Align produces one entry per lexical gloss of s. pairs come from
// Parse; tokens are the annotated translation words, in order. With no
// pairs every gloss comes back unaligned.
func (e *Engine) Align(s *igt.Sentence, pairs []Pair, tokens []annotate.Token) ([]Entry, error) {
	glosses := s.Glosses()
	lexAtoms := morph.LexicalGlosses(glosses, e.Punctuation)
	originals := morph.OriginalLexicalGlosses(glosses, e.Punctuation)
	stripped := morph.StripGrammatical(glosses)
	morphemes := s.Morphemes()

	lemmas := annotate.Lemmas(tokens)
	surfaces := annotate.Surfaces(tokens)

	var entries []Entry
	lexIdx := 0
	pairIdx := 0
	srcIdx := 0
	for _, original := range originals {
		found := indexFrom(stripped, original, srcIdx)
		if found < 0 {
			return nil, fmt.Errorf("%w: %q in %q", ErrGlossNotFound, original, s.Gloss)
		}
		srcIdx = found
		sourceMorph := morphemes[found].Surface

		if pairIdx >= len(pairs) {
			entries = append(entries, Entry{
				Morpheme:  sourceMorph,
				Reference: original,
				Label:     Unknown,
				POS:       Unknown,
				Index:     Unaligned,
			})
			continue
		}

		if original == lexAtoms[lexIdx] {
			if lexIdx == pairs[pairIdx].Gloss {
				w := pairs[pairIdx].Word
				if w < 0 || w >= len(tokens) {
					return nil, fmt.Errorf("%w: word index %d for %d tokens",
						ErrPairFormat, w, len(tokens))
				}
				entries = append(entries, Entry{
					Morpheme:  sourceMorph,
					Reference: original,
					Label:     lemmas[w],
					POS:       tokens[w].POS,
					Index:     w,
				})
				pairIdx++
			} else {
				entries = append(entries, e.fallback(sourceMorph, original, surfaces, lemmas))
			}
			lexIdx++
			continue
		}

		// Composed gloss: its atoms occupy consecutive positions in
		// the lexical atom list. Collect whichever of them the pairs
		// align and join the aligned lemmas.
		atoms := morph.SplitComposed(original)
		var aligned []string
		for _, atom := range atoms {
			if lexIdx >= len(lexAtoms) || lexAtoms[lexIdx] != atom {
				return nil, fmt.Errorf("%w: composed gloss %q at atom %q",
					ErrConsistency, original, atom)
			}
			if pairIdx < len(pairs) && lexIdx == pairs[pairIdx].Gloss {
				w := pairs[pairIdx].Word
				if w < 0 || w >= len(tokens) {
					return nil, fmt.Errorf("%w: word index %d for %d tokens",
						ErrPairFormat, w, len(tokens))
				}
				aligned = append(aligned, lemmas[w])
				pairIdx++
			}
			lexIdx++
		}

		if len(aligned) > 0 {
			entries = append(entries, Entry{
				Morpheme:  sourceMorph,
				Reference: original,
				Label:     strings.Join(aligned, morph.GlossSep),
				POS:       Unknown,
				Index:     Unaligned,
			})
		} else if e.Expand && e.Dict != nil {
			if label, pos, ok := e.Dict.Lookup(sourceMorph); ok {
				entries = append(entries, Entry{
					Morpheme:  sourceMorph,
					Reference: original,
					Label:     label,
					POS:       pos,
					Index:     Unaligned,
				})
			} else {
				entries = append(entries, Entry{
					Morpheme:  sourceMorph,
					Reference: original,
					Label:     Unknown,
					POS:       Unknown,
					Index:     Unaligned,
				})
			}
		} else {
			entries = append(entries, Entry{
				Morpheme:  sourceMorph,
				Reference: original,
				Label:     Unknown,
				POS:       Unknown,
				Index:     Unaligned,
			})
		}
	}

	for i, entry := range entries {
		if entry.Reference != originals[i] {
			return nil, fmt.Errorf("%w: position %d has %q, want %q",
				ErrConsistency, i, entry.Reference, originals[i])
		}
	}
	return entries, nil
}

// fallback resolves a lexical gloss the aligner skipped.
func (e *Engine) fallback(sourceMorph, gloss string, surfaces, lemmas []string) Entry {
	if !e.Expand {
		return Entry{Morpheme: sourceMorph, Reference: gloss,
			Label: Unknown, POS: Unknown, Index: Unaligned}
	}
	if e.Dict != nil {
		if label, pos, ok := e.Dict.Lookup(sourceMorph); ok {
			return Entry{Morpheme: sourceMorph, Reference: gloss,
				Label: label, POS: pos, Index: Unaligned}
		}
	}
	if contains(lemmas, gloss) || contains(surfaces, gloss) {
		return Entry{Morpheme: sourceMorph, Reference: gloss,
			Label: gloss, POS: Unknown, Index: Unaligned}
	}
	return Entry{Morpheme: sourceMorph, Reference: gloss,
		Label: Unknown, POS: Unknown, Index: Unaligned}
}

func indexFrom(list []string, s string, from int) int {
	for i := from; i < len(list); i++ {
		if list[i] == s {
			return i
		}
	}
	return -1
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
