package igt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/revelaction/glost/morph"
)

// ErrMorphemeCount reports a decoded sentence whose predicted units do
// not line up one-to-one with the source morphemes.
var ErrMorphemeCount = errors.New("predicted unit count differs from morpheme count")

// ErrSourceMismatch reports a source tier that does not match the one a
// prediction or a covered file was produced from.
var ErrSourceMismatch = errors.New("source tier mismatch")

// ReconstructGloss rebuilds the gloss tier of one sentence from a
// decoded output line. Each decoded unit is input fields and output
// fields joined by '@', the unit's morpheme leading the inputs and its
// predicted label leading the outputs. Hyphenation is restored from the
// source tier.
func ReconstructGloss(source, decoded string) (string, error) {
	morphemes := morph.Split(source)
	units := strings.Fields(decoded)
	if len(units) != len(morphemes) {
		return "", fmt.Errorf("%w: %d units for %d morphemes in %q",
			ErrMorphemeCount, len(units), len(morphemes), source)
	}

	labels := make([]string, len(units))
	for i, u := range units {
		in, out, ok := strings.Cut(u, "@")
		if !ok {
			return "", fmt.Errorf("malformed unit %q in %q", u, decoded)
		}
		surface, _, _ := strings.Cut(in, "|")
		if surface != morphemes[i] {
			return "", fmt.Errorf("%w: unit %d carries %q, source has %q",
				ErrSourceMismatch, i, surface, morphemes[i])
		}
		label, _, _ := strings.Cut(out, "|")
		labels[i] = label
	}

	// Re-join labels following the hyphen pattern of the source.
	var b strings.Builder
	next := 0
	joined := false
	for _, tok := range morph.Expand(source) {
		if tok == morph.Separator {
			b.WriteString(morph.Separator)
			joined = true
			continue
		}
		if next > 0 && !joined {
			b.WriteString(" ")
		}
		b.WriteString(labels[next])
		next++
		joined = false
	}
	return b.String(), nil
}

// Reconstruct converts decoded output lines back into an IGT corpus,
// pairing them with the covered corpus they were produced from.
func Reconstruct(covered *Corpus, decoded []string) (*Corpus, error) {
	if len(decoded) != covered.Len() {
		return nil, fmt.Errorf("%d decoded lines for %d sentences",
			len(decoded), covered.Len())
	}

	out := &Corpus{}
	for i, s := range covered.Sentences {
		gloss, err := ReconstructGloss(s.Source, decoded[i])
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i, err)
		}
		out.Sentences = append(out.Sentences, Sentence{
			Source:      s.Source,
			Gloss:       gloss,
			Translation: s.Translation,
		})
	}
	return out, nil
}

// FillCovered copies the reconstructed gloss tiers into the covered
// corpus, refusing if any source tier differs byte for byte.
func FillCovered(covered, reconstructed *Corpus) (*Corpus, error) {
	if covered.Len() != reconstructed.Len() {
		return nil, fmt.Errorf("%d covered sentences, %d reconstructed",
			covered.Len(), reconstructed.Len())
	}

	out := &Corpus{}
	for i, s := range covered.Sentences {
		r := reconstructed.Sentences[i]
		if s.Source != r.Source {
			return nil, fmt.Errorf("%w at sentence %d: %q vs %q",
				ErrSourceMismatch, i, s.Source, r.Source)
		}
		filled := s
		filled.Gloss = r.Gloss
		out.Sentences = append(out.Sentences, filled)
	}
	return out, nil
}
