// Package dict builds and stores the training dictionary: the majority
// label observed for each source morpheme over the aligned training
// sentences.
package dict

import (
	"encoding/json"
	"sort"

	"github.com/revelaction/glost/align"
)

// Entry is the dictionary record of one morpheme.
type Entry struct {
	// Label is the majority aligned label.
	Label string `json:"label"`

	// Freq is how often that label was observed.
	Freq int `json:"freq"`

	// POS tags the label's aligned word.
	POS string `json:"pos"`

	// Reference is the gold lexical gloss seen with the label. Kept
	// only when the dictionary is built for reference-carrying unit
	// layouts; empty otherwise.
	Reference string `json:"reference,omitempty"`
}

// Options steer the dictionary fold.
type Options struct {
	// Reference retains the gold gloss alongside the label.
	Reference bool

	// UseGold falls back to the gold gloss for morphemes that never
	// aligned to anything.
	UseGold bool
}

// Dictionary maps source morphemes to their majority entries.
type Dictionary struct {
	entries map[string]Entry
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{entries: make(map[string]Entry)}
}

// Get returns the full entry for a morpheme.
func (d *Dictionary) Get(morpheme string) (Entry, bool) {
	e, ok := d.entries[morpheme]
	return e, ok
}

// Lookup returns the label and POS for a morpheme. It satisfies
// align.Lexicon.
func (d *Dictionary) Lookup(morpheme string) (label, pos string, ok bool) {
	e, found := d.entries[morpheme]
	if !found {
		return "", "", false
	}
	return e.Label, e.POS, true
}

// Set stores an entry, replacing any previous one.
func (d *Dictionary) Set(morpheme string, e Entry) {
	d.entries[morpheme] = e
}

// Len returns the number of morphemes.
func (d *Dictionary) Len() int { return len(d.entries) }

// Each calls fn for every morpheme in sorted order, stopping at the
// first error.
func (d *Dictionary) Each(fn func(morpheme string, e Entry) error) error {
	for _, m := range d.Morphemes() {
		if err := fn(m, d.entries[m]); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON renders the dictionary as a plain morpheme-to-entry map.
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.entries)
}

// UnmarshalJSON loads a morpheme-to-entry map.
func (d *Dictionary) UnmarshalJSON(data []byte) error {
	d.entries = make(map[string]Entry)
	return json.Unmarshal(data, &d.entries)
}

// Morphemes returns all keys in sorted order.
func (d *Dictionary) Morphemes() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// observation keys the fold: one distinct aligned record.
type observation struct {
	morpheme  string
	reference string
	label     string
	pos       string
}

// Build folds the aligned training sentences into a dictionary. For
// each morpheme the most frequent non-empty, non-unknown label wins;
// on a frequency tie the earlier observation is kept. With UseGold a
// morpheme whose every observation is unknown falls back to its gold
// gloss.
func Build(sentences [][]align.Entry, opts Options) *Dictionary {
	counts := make(map[observation]int)
	var order []observation
	for _, entries := range sentences {
		for _, e := range entries {
			obs := observation{
				morpheme:  e.Morpheme,
				reference: e.Reference,
				label:     e.Label,
				pos:       e.POS,
			}
			if _, seen := counts[obs]; !seen {
				order = append(order, obs)
			}
			counts[obs]++
		}
	}

	d := New()
	for _, obs := range order {
		freq := counts[obs]
		usable := obs.label != "" && obs.label != align.Unknown

		current, seen := d.entries[obs.morpheme]
		switch {
		case seen:
			if usable && current.Freq < freq {
				d.Set(obs.morpheme, entry(obs.label, freq, obs.pos, obs.reference, opts))
			}
		case usable:
			d.Set(obs.morpheme, entry(obs.label, freq, obs.pos, obs.reference, opts))
		case opts.UseGold:
			d.Set(obs.morpheme, entry(obs.reference, freq, obs.pos, obs.reference, opts))
		}
	}
	return d
}

func entry(label string, freq int, pos, reference string, opts Options) Entry {
	e := Entry{Label: label, Freq: freq, POS: pos}
	if opts.Reference {
		e.Reference = reference
	}
	return e
}
