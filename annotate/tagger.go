package annotate

import (
	"fmt"
	"strings"
	"unicode"
)

// Tagger is the built-in fallback annotator. It tokenizes on
// whitespace (translations are preprocessed before they reach it),
// lemmatizes by lower-casing and assigns POS tags from a small
// closed-class lexicon. It is deterministic, which the pipeline
// requires for reproducible decoder input.
type Tagger struct {
	language string
	closed   map[string]string
}

// closed-class lexicons per language; everything else tags as "X"
// except capitalized non-initial words (PROPN) and digits (NUM).
var closedClass = map[string]map[string]string{
	"en": {
		"the": "DET", "a": "DET", "an": "DET", "this": "DET", "that": "DET",
		"he": "PRON", "she": "PRON", "it": "PRON", "they": "PRON", "i": "PRON",
		"we": "PRON", "you": "PRON", "him": "PRON", "her": "PRON", "them": "PRON",
		"and": "CCONJ", "or": "CCONJ", "but": "CCONJ",
		"in": "ADP", "on": "ADP", "at": "ADP", "of": "ADP", "to": "ADP",
		"from": "ADP", "with": "ADP", "for": "ADP", "by": "ADP",
		"is": "AUX", "are": "AUX", "was": "AUX", "were": "AUX", "be": "AUX",
		"not": "PART",
	},
	"es": {
		"el": "DET", "la": "DET", "los": "DET", "las": "DET", "un": "DET",
		"una": "DET", "este": "DET", "esta": "DET",
		"yo": "PRON", "tú": "PRON", "él": "PRON", "ella": "PRON",
		"nosotros": "PRON", "ellos": "PRON", "ellas": "PRON",
		"y": "CCONJ", "o": "CCONJ", "pero": "CCONJ",
		"en": "ADP", "de": "ADP", "a": "ADP", "con": "ADP", "por": "ADP",
		"para": "ADP", "desde": "ADP",
		"es": "AUX", "son": "AUX", "era": "AUX", "fue": "AUX", "ser": "AUX",
		"no": "PART",
	},
}

// Languages lists the language codes the built-in tagger supports.
func Languages() []string {
	out := make([]string, 0, len(closedClass))
	for code := range closedClass {
		out = append(out, code)
	}
	return out
}

// NewTagger returns a Tagger for the given language code, or
// ErrUnsupportedLanguage if no lexicon exists for it.
func NewTagger(language string) (*Tagger, error) {
	lex, ok := closedClass[language]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
	return &Tagger{language: language, closed: lex}, nil
}

// Annotate implements Annotator. The language must match the one the
// tagger was created for.
func (t *Tagger) Annotate(text, language string) ([]Token, error) {
	if language != t.language {
		return nil, fmt.Errorf("%w: %q (tagger is %q)", ErrUnsupportedLanguage, language, t.language)
	}

	fields := strings.Fields(text)
	tokens := make([]Token, 0, len(fields))
	for i, word := range fields {
		tokens = append(tokens, Token{
			Surface: word,
			Lemma:   NormalizeLemma(word),
			POS:     t.tag(word, i),
			Index:   i,
		})
	}
	return tokens, nil
}

func (t *Tagger) tag(word string, index int) string {
	lower := strings.ToLower(word)
	if pos, ok := t.closed[lower]; ok {
		return pos
	}

	runes := []rune(word)
	if len(runes) > 0 && unicode.IsDigit(runes[0]) {
		return "NUM"
	}

	// Capitalized away from the sentence start: treat as a proper noun.
	if index > 0 && len(runes) > 0 && unicode.IsUpper(runes[0]) {
		return "PROPN"
	}

	return "X"
}
