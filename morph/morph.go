// Package morph decomposes segmented source sentences into morphemes
// and classifies the glosses attached to them.
package morph

import (
	"errors"
	"strconv"
	"strings"
)

// ErrLengthMismatch reports a sentence whose morpheme count differs from
// its gloss count.
var ErrLengthMismatch = errors.New("morpheme/gloss count mismatch")

// Separator marks a morpheme boundary inside a word.
const Separator = "-"

// GlossSep joins the atomic parts of a composed gloss.
const GlossSep = "."

// Morpheme is one segmented unit of the source sentence.
type Morpheme struct {
	Surface string

	// Index in the sentence, counting morphemes only (no separators).
	Index int

	// Offset of the morpheme inside its hyphen-joined word, starting at 0.
	Offset int

	// Free marks a morpheme that is a whole word by itself.
	Free bool
}

// PositionTag renders the in-word position. In BIO-F mode a free
// morpheme is tagged "F"; bound morphemes keep their numeric offset,
// which acts as begin/internal/final depending on where the word ends.
func (m Morpheme) PositionTag(biof bool) string {
	if biof && m.Free {
		return "F"
	}
	return strconv.Itoa(m.Offset)
}

// Expand splits a sentence into tokens with explicit separator markers:
// "root-suf" becomes ["root", "-", "suf"].
func Expand(sentence string) []string {
	expanded := strings.ReplaceAll(sentence, Separator, " "+Separator+" ")
	return strings.Fields(expanded)
}

// Split cuts a sentence into bare morphemes, dropping the separators.
func Split(sentence string) []string {
	var out []string
	for _, tok := range Expand(sentence) {
		if tok == Separator {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Decompose converts a segmented sentence into its ordered morphemes
// with in-word offsets. The offset resets at the start of every
// hyphen-joined word and increments per bound morpheme.
func Decompose(sentence string) []Morpheme {
	tokens := Expand(sentence)

	var out []Morpheme
	offset := 0
	index := 0
	for i, tok := range tokens {
		if tok == Separator {
			offset++
			continue
		}

		bound := offset > 0 || (i+1 < len(tokens) && tokens[i+1] == Separator)
		out = append(out, Morpheme{
			Surface: tok,
			Index:   index,
			Offset:  offset,
			Free:    !bound,
		})
		index++

		if i+1 >= len(tokens) || tokens[i+1] != Separator {
			offset = 0
		}
	}
	return out
}

// LengthBucket caps a morpheme length for use as an input feature.
func LengthBucket(length int) string {
	if length > 5 {
		return "6+"
	}
	return strconv.Itoa(length)
}

// Affixes extracts the initial and final letters of a morpheme, at most
// three of each. Morphemes shorter than three letters are their own
// affixes.
func Affixes(surface string) (initial, final string) {
	runes := []rune(surface)
	if len(runes) < 3 {
		return surface, surface
	}
	return string(runes[:3]), string(runes[len(runes)-3:])
}
