package main

import (
	"fmt"
	"io"
	"os"

	"github.com/revelaction/glost/align"
	"github.com/revelaction/glost/annotate"
	"github.com/revelaction/glost/file"
	"github.com/revelaction/glost/igt"

	"github.com/gosuri/uiprogress"
)

// batch bundles a corpus with its per-sentence derived data: the
// annotated translations and, for glossed corpora with an alignment
// file, the alignment entries.
type batch struct {
	corpus  *igt.Corpus
	tokens  [][]annotate.Token
	pairs   [][]align.Pair
	aligned [][]align.Entry
}

type batchOptions struct {
	corpusPath  string
	alignPath   string
	covered     bool
	lang        string
	taggerURL   string
	tilde       bool
	expand      bool
	punctuation bool
	lexicon     align.Lexicon
}

func newAnnotator(taggerURL, lang string) (annotate.Annotator, error) {
	if taggerURL != "" {
		return annotate.NewClient(taggerURL), nil
	}
	return annotate.NewTagger(lang)
}

// loadBatch reads, preprocesses, annotates and aligns a corpus. Fatal
// errors identify the offending sentence.
func loadBatch(opts batchOptions, ui UI) (*batch, error) {
	c, err := file.ReadCorpus(opts.corpusPath, opts.covered)
	if err != nil {
		return nil, err
	}

	igt.PreprocessAll(c, opts.tilde)

	for i := range c.Sentences {
		if err := c.Sentences[i].Check(opts.covered); err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i, err)
		}
	}

	annotator, err := newAnnotator(opts.taggerURL, opts.lang)
	if err != nil {
		return nil, err
	}

	var pairs [][]align.Pair
	if opts.alignPath != "" {
		pairs, err = file.ReadAlignments(opts.alignPath)
		if err != nil {
			return nil, err
		}
		if len(pairs) != c.Len() {
			return nil, fmt.Errorf("alignment/corpus mismatch: %d alignment lines, %d sentences",
				len(pairs), c.Len())
		}
	}

	b := &batch{corpus: c, pairs: pairs}
	engine := &align.Engine{
		Expand:      opts.expand,
		Dict:        opts.lexicon,
		Punctuation: opts.punctuation,
	}

	// Start progress indicator
	uiprogress.Start()
	bar := uiprogress.AddBar(c.Len())
	bar.AppendCompleted()
	bar.PrependElapsed()

	for i := range c.Sentences {
		s := &c.Sentences[i]

		tokens, err := annotator.Annotate(s.Translation, opts.lang)
		if err != nil {
			uiprogress.Stop()
			return nil, fmt.Errorf("sentence %d: %w", i, err)
		}
		b.tokens = append(b.tokens, tokens)

		if pairs != nil && !opts.covered {
			entries, err := engine.Align(s, pairs[i], tokens)
			if err != nil {
				uiprogress.Stop()
				return nil, fmt.Errorf("sentence %d: %w", i, err)
			}
			b.aligned = append(b.aligned, entries)
		}

		bar.Incr()
	}

	// stop rendering
	uiprogress.Stop()

	return b, nil
}

// openOut returns the writer for an output path; empty or "-" means
// the UI output stream.
func openOut(path string, ui UI) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return ui.Out, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
