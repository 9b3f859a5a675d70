package morph

import (
	"strings"
	"unicode"
)

// PunctuationList enumerates the tokens treated as punctuation glosses.
var PunctuationList = []string{
	",", ".", "«", "»,", "»", "».", "?", "...", ":",
	"?»", ".»", "\"", ",»", "(", "…", ")", ".\"", "?)",
	"?\"", "!", "???",
}

var punctuation = func() map[string]bool {
	m := make(map[string]bool, len(PunctuationList))
	for _, p := range PunctuationList {
		m[p] = true
	}
	return m
}()

// IsPunctuation reports whether the token is in the punctuation list.
func IsPunctuation(tok string) bool {
	return punctuation[tok]
}

// IsGrammatical reports whether a gloss is grammatical: it contains at
// least one letter and no lower-case letters ("3SG.ABS" is grammatical,
// "work" and "?" are not).
func IsGrammatical(gloss string) bool {
	hasLetter := false
	for _, r := range gloss {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// SplitComposed splits a composed gloss into its atomic parts.
func SplitComposed(gloss string) []string {
	return strings.Split(gloss, GlossSep)
}

// lexicalAtoms keeps the lexical parts of a composed gloss, in order.
func lexicalAtoms(gloss string) []string {
	var atoms []string
	for _, g := range SplitComposed(gloss) {
		if IsGrammatical(g) {
			continue
		}
		atoms = append(atoms, g)
	}
	return atoms
}

// StripGrammatical removes the grammatical atoms from every composed
// gloss, keeping simple glosses untouched. The result is parallel to
// the input: one entry per original gloss.
func StripGrammatical(glosses []string) []string {
	out := make([]string, 0, len(glosses))
	for _, gloss := range glosses {
		if !strings.Contains(gloss, GlossSep) {
			out = append(out, gloss)
			continue
		}
		out = append(out, strings.Join(lexicalAtoms(gloss), GlossSep))
	}
	return out
}

// LexicalGlosses extracts the lexical gloss sequence: grammatical
// glosses are skipped, composed glosses contribute each lexical atom
// separately. With punct set, punctuation glosses are skipped too.
func LexicalGlosses(glosses []string, punct bool) []string {
	var out []string
	for _, gloss := range glosses {
		if IsGrammatical(gloss) {
			continue
		}
		if punct && IsPunctuation(gloss) {
			continue
		}
		if strings.Contains(gloss, GlossSep) {
			out = append(out, lexicalAtoms(gloss)...)
			continue
		}
		out = append(out, gloss)
	}
	return out
}

// OriginalLexicalGlosses extracts the lexical glosses keeping composed
// glosses whole (grammatical atoms stripped but atoms re-joined). This
// is the reference sequence the alignment engine walks.
func OriginalLexicalGlosses(glosses []string, punct bool) []string {
	var out []string
	for _, gloss := range glosses {
		if IsGrammatical(gloss) {
			continue
		}
		if punct && IsPunctuation(gloss) {
			continue
		}
		if strings.Contains(gloss, GlossSep) {
			out = append(out, strings.Join(lexicalAtoms(gloss), GlossSep))
			continue
		}
		out = append(out, gloss)
	}
	return out
}
