package stat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/revelaction/glost/igt"
	"github.com/revelaction/glost/morph"
)

var ErrNoLabels = errors.New("no label pairs to score")

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences             int
	NumWords                 int
	NumMorphemes             int
	NumGrammatical           int
	NumLexical               int
	MorphemesPerSentenceMean int
	MorphemesPerSentenceDis  map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{MorphemesPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(c *igt.Corpus) {
	h.stats.NumSentences = c.Len()

	for _, sentence := range c.Sentences {
		morphemes := sentence.Morphemes()
		h.stats.NumMorphemes += len(morphemes)
		h.stats.NumWords += len(strings.Fields(sentence.Source))
		h.stats.MorphemesPerSentenceDis[len(morphemes)]++

		for _, gloss := range sentence.Glosses() {
			if morph.IsGrammatical(gloss) {
				h.stats.NumGrammatical++
			} else {
				h.stats.NumLexical++
			}
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.MorphemesPerSentenceMean = h.stats.NumMorphemes / h.stats.NumSentences
	}
}

// Pair is one (reference, predicted) gloss label.
type Pair struct {
	Reference string
	Predicted string
}

// LabelPairs lines up two glossed corpora morpheme by morpheme. The
// corpora must have the same sentence count and each sentence pair the
// same gloss count.
func LabelPairs(ref, pred *igt.Corpus) ([]Pair, error) {
	if ref.Len() != pred.Len() {
		return nil, fmt.Errorf("sentence count mismatch: %d reference, %d predicted",
			ref.Len(), pred.Len())
	}

	var pairs []Pair
	for i := range ref.Sentences {
		rg := ref.Sentences[i].Glosses()
		pg := pred.Sentences[i].Glosses()
		if len(rg) != len(pg) {
			return nil, fmt.Errorf("sentence %d: %w: %d reference, %d predicted glosses",
				i, morph.ErrLengthMismatch, len(rg), len(pg))
		}
		for j := range rg {
			pairs = append(pairs, Pair{Reference: rg[j], Predicted: pg[j]})
		}
	}

	return pairs, nil
}

// Accuracy is the fraction of pairs whose labels match exactly.
func Accuracy(pairs []Pair) (float64, error) {
	if len(pairs) == 0 {
		return 0, ErrNoLabels
	}

	matched := 0
	for _, p := range pairs {
		if p.Reference == p.Predicted {
			matched++
		}
	}

	return float64(matched) / float64(len(pairs)), nil
}
