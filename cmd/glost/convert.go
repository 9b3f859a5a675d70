package main

import (
	"github.com/revelaction/glost/align"
	"github.com/revelaction/glost/schema"
	"github.com/revelaction/glost/space"
	"github.com/revelaction/glost/unit"
)

func convertCommand(opts ConvertOptions, corpusPath string, ui UI) error {
	sch := schema.MustFor(opts.Schema)

	// A stored dictionary widens sparse alignments; covered corpora
	// are never aligned, so skip it there.
	var lex align.Lexicon
	if !opts.Test && opts.DictPath != "" {
		p := &Pool{}
		defer p.Close()

		repo, err := NewDictRepository(p, opts.DictPath)
		if err != nil {
			return err
		}
		d, err := repo.Read(opts.Name)
		if err != nil {
			return err
		}
		lex = d
	}

	b, err := loadBatch(batchOptions{
		corpusPath:  corpusPath,
		alignPath:   opts.Align,
		covered:     opts.Test,
		lang:        opts.Lang,
		taggerURL:   opts.TaggerURL,
		tilde:       opts.Tilde,
		expand:      opts.Expand || lex != nil,
		lexicon:     lex,
		punctuation: opts.Punctuation,
	}, ui)
	if err != nil {
		return err
	}

	enc := &unit.Encoder{Schema: sch, Punctuation: opts.Punctuation, Gold: opts.Gold}

	sentences, err := encodeAll(enc, b, opts.Test)
	if err != nil {
		return err
	}

	w, closeOut, err := openOut(opts.Out, ui)
	if err != nil {
		return err
	}
	if err := space.WriteUnits(w, sentences); err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}

	if opts.Ref == "" {
		return nil
	}

	refSentences := make([][]string, 0, len(sentences))
	for _, units := range sentences {
		refSentences = append(refSentences, space.ReferenceSentence(units, sch))
	}

	rw, closeRef, err := openOut(opts.Ref, ui)
	if err != nil {
		return err
	}
	if err := space.WriteFile(rw, refSentences); err != nil {
		_ = closeRef()
		return err
	}
	return closeRef()
}
