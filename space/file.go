package space

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/glost/schema"
	"github.com/revelaction/glost/unit"
)

// EOS separates sentences in Lost reference and search space files.
const EOS = "EOS"

// ReferenceSentence renders the reference lines of one sentence: start
// index, end index, pipe-joined inputs and pipe-joined outputs per
// unit, then the morpheme count line.
func ReferenceSentence(units []unit.Unit, sch schema.Schema) []string {
	var lines []string
	for i, u := range units {
		lines = append(lines, fmt.Sprintf("%d\t%d\t%s\t%s",
			i, i+1,
			strings.Join(u.Inputs(sch), "|"),
			strings.Join(u.Outputs(sch), "|")))
	}
	lines = append(lines, fmt.Sprintf("%d", len(units)))
	return lines
}

// WriteFile writes sentences in the Lost framing: each sentence's lines
// followed by an EOS line.
func WriteFile(w io.Writer, sentences [][]string) error {
	for _, lines := range sentences {
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, EOS); err != nil {
			return err
		}
	}
	return nil
}

// WriteUnits writes encoded sentences in the space-separated unit
// format, sentences separated by blank lines.
func WriteUnits(w io.Writer, sentences [][]unit.Unit) error {
	for i, units := range sentences {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for _, u := range units {
			if _, err := fmt.Fprintln(w, u.String()); err != nil {
				return err
			}
		}
	}
	return nil
}
