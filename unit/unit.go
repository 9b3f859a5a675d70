// Package unit encodes IGT sentences into fixed-width feature units,
// one per morpheme, following the layout of a label schema.
package unit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/revelaction/glost/align"
	"github.com/revelaction/glost/annotate"
	"github.com/revelaction/glost/igt"
	"github.com/revelaction/glost/morph"
	"github.com/revelaction/glost/schema"
)

// Sentinel labels for units that carry no aligned translation word.
const (
	GramGloss  = "GRAM_GLOSS"
	PunctGloss = "PUNCT_GLOSS"
	PunctPOS   = "PUNCT"

	// GramCorrespondence marks grammatical units in the
	// correspondence field.
	GramCorrespondence = "-2"

	// Gloss category tags.
	CatGram = "gram"
	CatLex  = "lex"

	// Label origin tags: grammatical, dictionary, translation (with
	// the label's presence count in the translation, capped at 1).
	OriginGram  = "G"
	OriginDict  = "D"
	OriginTrans = "T"
)

var (
	// ErrUnitLength reports a unit whose field count does not match
	// its schema.
	ErrUnitLength = errors.New("unit length does not match schema")

	// ErrOutOfRange reports a relative difference or position outside
	// [0, 1].
	ErrOutOfRange = errors.New("relative value out of range")
)

// Unit is one encoded morpheme: input fields followed by output fields.
type Unit []string

// String joins the fields with single spaces.
func (u Unit) String() string { return strings.Join(u, " ") }

// Inputs returns the leading input fields.
func (u Unit) Inputs(s schema.Schema) []string { return u[:s.InputLength()] }

// Outputs returns the trailing output fields.
func (u Unit) Outputs(s schema.Schema) []string { return u[s.InputLength():] }

// Label returns the main output label.
func (u Unit) Label(s schema.Schema) string { return u[s.LabelPosition()] }

// RelativeDifference computes |i/total - j/width|, -1 when j marks an
// unaligned unit.
func RelativeDifference(i, total, j, width int) float64 {
	if j < 0 || width == 0 {
		return -1
	}
	return abs(float64(i)/float64(total) - float64(j)/float64(width))
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// CapRelativeDifference buckets a relative difference. -1 passes
// through as the unaligned sentinel; any other value outside [0, 1]
// is an error.
func CapRelativeDifference(rd float64) (string, error) {
	switch {
	case rd == -1:
		return "-1", nil
	case rd < 0 || rd > 1:
		return "", fmt.Errorf("%w: relative difference %v", ErrOutOfRange, rd)
	case rd < 0.1:
		return "0.0", nil
	case rd < 0.2:
		return "0.1", nil
	case rd < 0.3:
		return "0.2", nil
	default:
		return "0.3+", nil
	}
}

// CapPositionInSentence buckets a relative position into quartiles.
// Negative positions mark unaligned units.
func CapPositionInSentence(rel float64) (string, error) {
	switch {
	case rel < 0:
		return "-1", nil
	case rel < 0.25:
		return "1/4", nil
	case rel < 0.5:
		return "2/4", nil
	case rel < 0.75:
		return "3/4", nil
	case rel <= 1.0:
		return "4/4", nil
	default:
		return "", fmt.Errorf("%w: relative position %v", ErrOutOfRange, rel)
	}
}

// CopyInSentence reports whether a string occurs in a token list, in
// capitalized or lowercased form, as "1" or "0".
func CopyInSentence(s string, sentence []string) string {
	cap := capitalize(s)
	low := strings.ToLower(s)
	for _, tok := range sentence {
		if tok == cap || tok == low {
			return "1"
		}
	}
	return "0"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}

// Encoder turns sentences into units under one schema.
type Encoder struct {
	Schema schema.Schema

	// Punctuation encodes punctuation morphemes as grammatical units.
	Punctuation bool

	// Gold replaces aligned labels with gold glosses in layouts
	// without a reference field.
	Gold bool
}

// Encode produces one unit per morpheme of s. aligned carries the
// alignment entries of the sentence's lexical glosses, in order;
// tokens are the annotated translation words.
func (enc *Encoder) Encode(s *igt.Sentence, aligned []align.Entry, tokens []annotate.Token) ([]Unit, error) {
	sch := enc.Schema
	morphemes := s.Morphemes()
	glosses := s.Glosses()
	if len(glosses) != len(morphemes) {
		return nil, fmt.Errorf("%w: %d morphemes, %d glosses",
			morph.ErrLengthMismatch, len(morphemes), len(glosses))
	}

	expanded := morph.Expand(s.Source)
	surfaces := annotate.Surfaces(tokens)
	lemmas := annotate.Lemmas(tokens)
	transLen := len(tokens)
	nMorph := len(morphemes)

	units := make([]Unit, 0, nMorph)
	j := 0 // aligned entry cursor, lexical units only
	for i, m := range morphemes {
		gloss := glosses[i]

		var label, gramLex, alignedPOS string
		var reference, correspondence string
		var relDiff, origin string
		var copyTrg, posTrg string
		trgIndex := align.Unaligned

		switch {
		case morph.IsGrammatical(gloss):
			label = gloss
			gramLex = CatGram
			alignedPOS = GramGloss
			if sch.Both {
				reference = gloss
				label = GramGloss
				correspondence = GramCorrespondence
			}
			origin = OriginGram
			relDiff = "-1"
			copyTrg = "-1"
			posTrg = "-2"

		case enc.Punctuation && morph.IsPunctuation(m.Surface):
			label = gloss
			gramLex = CatGram
			alignedPOS = PunctPOS
			if sch.Both {
				reference = gloss
				label = PunctGloss
				correspondence = GramCorrespondence
			}
			origin = OriginGram
			relDiff = "-1"
			copyTrg = "1"
			posTrg = "-1"

		default:
			if j >= len(aligned) {
				return nil, fmt.Errorf("%w: no aligned entry for lexical gloss %q",
					align.ErrConsistency, gloss)
			}
			e := aligned[j]
			j++

			label = e.Label
			trgIndex = e.Index
			if (enc.Gold || sch.UseGold) && !sch.Both {
				label = gloss
			}
			gramLex = CatLex
			alignedPOS = e.POS
			if sch.Both {
				reference = gloss
				if label == gloss {
					correspondence = "1"
				} else {
					correspondence = "0"
				}
			}
			if sch.Full || sch.Dist || sch.Comp {
				if label == gloss {
					origin = OriginTrans + countCapped(lemmas, label)
				} else {
					origin = OriginDict
				}
			}
			if sch.Full {
				var err error
				relDiff, err = CapRelativeDifference(
					RelativeDifference(i, nMorph, trgIndex, transLen))
				if err != nil {
					return nil, err
				}
			}
			if sch.Dist || sch.Comp {
				copyTrg = CopyInSentence(label, expanded)
				rel := -1.0
				if trgIndex >= 0 && transLen > 0 {
					rel = float64(trgIndex) / float64(transLen)
				}
				var err error
				posTrg, err = CapPositionInSentence(rel)
				if err != nil {
					return nil, err
				}
			}
		}

		u, err := enc.assemble(m, i, nMorph, surfaces, inputFields{
			label:          label,
			gramLex:        gramLex,
			alignedPOS:     alignedPOS,
			reference:      reference,
			correspondence: correspondence,
			relDiff:        relDiff,
			origin:         origin,
			copyTrg:        copyTrg,
			posTrg:         posTrg,
		})
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, nil
}

type inputFields struct {
	label, gramLex, alignedPOS             string
	reference, correspondence              string
	relDiff, origin                        string
	copyTrg, posTrg                        string
}

// assemble lays out the fields of one unit per the schema.
func (enc *Encoder) assemble(m morph.Morpheme, index, nMorph int, surfaces []string, f inputFields) (Unit, error) {
	sch := enc.Schema
	length := len([]rune(m.Surface))
	position := m.PositionTag(sch.Morph)

	var u Unit
	switch {
	case sch.Full:
		init, end := morph.Affixes(m.Surface)
		u = Unit{m.Surface, position, morph.LengthBucket(length), init, end,
			f.reference, f.gramLex, f.alignedPOS, f.label, f.correspondence,
			f.relDiff, f.origin}
	case sch.Dist || sch.Comp:
		init, end := morph.Affixes(m.Surface)
		copySrc := CopyInSentence(m.Surface, surfaces)
		posSrc, err := CapPositionInSentence(float64(index) / float64(nMorph))
		if err != nil {
			return nil, err
		}
		u = Unit{m.Surface, position, morph.LengthBucket(length), init, end,
			copySrc, posSrc,
			f.label, f.gramLex, f.alignedPOS, f.copyTrg, f.posTrg}
	case sch.Both:
		init, end := morph.Affixes(m.Surface)
		u = Unit{m.Surface, position, morph.LengthBucket(length), init, end,
			f.reference, f.gramLex, f.alignedPOS, f.label, f.correspondence}
	case sch.Morph:
		init, end := morph.Affixes(m.Surface)
		u = Unit{m.Surface, position, morph.LengthBucket(length), init, end,
			f.label, f.gramLex, f.alignedPOS}
	case sch.POS:
		u = Unit{m.Surface, position, strconv.Itoa(length),
			f.label, f.gramLex, f.alignedPOS}
	default:
		u = Unit{m.Surface, position, strconv.Itoa(length), f.label}
	}

	if len(u) != sch.UnitLength {
		return nil, fmt.Errorf("%w: got %d fields, schema %s wants %d",
			ErrUnitLength, len(u), sch.Name, sch.UnitLength)
	}
	return u, nil
}

// EncodeTest produces input-only units for a covered sentence.
func (enc *Encoder) EncodeTest(s *igt.Sentence, tokens []annotate.Token) ([]Unit, error) {
	sch := enc.Schema
	morphemes := s.Morphemes()
	surfaces := annotate.Surfaces(tokens)
	nMorph := len(morphemes)

	units := make([]Unit, 0, nMorph)
	for i, m := range morphemes {
		length := len([]rune(m.Surface))
		position := m.PositionTag(sch.Morph)

		var u Unit
		switch {
		case sch.Dist || sch.Comp:
			init, end := morph.Affixes(m.Surface)
			copySrc := CopyInSentence(m.Surface, surfaces)
			posSrc, err := CapPositionInSentence(float64(i) / float64(nMorph))
			if err != nil {
				return nil, err
			}
			u = Unit{m.Surface, position, morph.LengthBucket(length), init, end,
				copySrc, posSrc}
		case sch.Morph:
			init, end := morph.Affixes(m.Surface)
			u = Unit{m.Surface, position, morph.LengthBucket(length), init, end}
		default:
			u = Unit{m.Surface, position, strconv.Itoa(length)}
		}

		if len(u) != sch.InputLength() {
			return nil, fmt.Errorf("%w: got %d input fields, schema %s wants %d",
				ErrUnitLength, len(u), sch.Name, sch.InputLength())
		}
		units = append(units, u)
	}
	return units, nil
}

func countCapped(lemmas []string, label string) string {
	for _, l := range lemmas {
		if l == label {
			return "1"
		}
	}
	return "0"
}
