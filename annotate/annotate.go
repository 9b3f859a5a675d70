// Package annotate provides linguistic annotation of translation
// sentences: tokens with surface form, lemma, part-of-speech tag and
// position. The heavy lifting is expected from an external tagger
// service; a deterministic built-in tagger covers offline runs.
package annotate

import (
	"errors"
	"strings"
)

// ErrUnsupportedLanguage is returned for language codes no annotator
// backend supports.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Token is one annotated word of the tokenized translation.
type Token struct {
	// The unmodified word.
	Surface string `json:"surface"`

	// Lemma is lower-cased; multi-word lemmas are joined with ".".
	Lemma string `json:"lemma"`

	// Universal POS tag (NOUN, VERB, PROPN, ...).
	POS string `json:"pos"`

	// Index of the token in the tokenized sentence, starting at 0.
	Index int `json:"index"`
}

// Annotator produces annotated tokens for a raw sentence.
type Annotator interface {
	Annotate(text, language string) ([]Token, error)
}

// NormalizeLemma lower-cases a lemma and joins multi-word lemmas with
// the gloss separator, the form lexical labels are compared in.
func NormalizeLemma(lemma string) string {
	return strings.ReplaceAll(strings.ToLower(lemma), " ", ".")
}

// Surfaces returns the surface forms of the tokens, in order.
func Surfaces(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Surface
	}
	return out
}

// Lemmas returns the lemmas of the tokens, in order.
func Lemmas(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Lemma
	}
	return out
}
