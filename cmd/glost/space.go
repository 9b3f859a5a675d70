package main

import (
	"fmt"

	"github.com/revelaction/glost/align"
	"github.com/revelaction/glost/dict"
	"github.com/revelaction/glost/file"
	"github.com/revelaction/glost/schema"
	"github.com/revelaction/glost/space"
	"github.com/revelaction/glost/unit"
)

func spaceCommand(opts SpaceOptions, corpusPath string, ui UI) error {
	sch := schema.MustFor(opts.Schema)

	var d *dict.Dictionary
	if opts.DictPath != "" {
		p := &Pool{}
		defer p.Close()

		repo, err := NewDictRepository(p, opts.DictPath)
		if err != nil {
			return err
		}
		d, err = repo.Read(opts.Name)
		if err != nil {
			return err
		}
	}

	// The dictionary also feeds the aligner, like the generator.
	var lex align.Lexicon
	if d != nil {
		lex = d
	}

	enc := &unit.Encoder{Schema: sch, Punctuation: opts.Punctuation}

	// grammatical label set of the training split
	train, err := loadBatch(batchOptions{
		corpusPath:  opts.Train,
		alignPath:   opts.TrainAlign,
		lang:        opts.Lang,
		taggerURL:   opts.TaggerURL,
		tilde:       opts.Tilde,
		expand:      lex != nil,
		lexicon:     lex,
		punctuation: opts.Punctuation,
	}, ui)
	if err != nil {
		return err
	}

	trainUnits, err := encodeAll(enc, train, false)
	if err != nil {
		return err
	}
	gram := space.GramLabels(trainUnits, sch, opts.Punctuation)

	b := train
	units := trainUnits
	if opts.Test || opts.Train != corpusPath || opts.TrainAlign != opts.Align {
		b, err = loadBatch(batchOptions{
			corpusPath:  corpusPath,
			alignPath:   opts.Align,
			covered:     opts.Test,
			lang:        opts.Lang,
			taggerURL:   opts.TaggerURL,
			tilde:       opts.Tilde,
			expand:      lex != nil,
			lexicon:     lex,
			punctuation: opts.Punctuation,
		}, ui)
		if err != nil {
			return err
		}
		units, err = encodeAll(enc, b, opts.Test)
		if err != nil {
			return err
		}
	}

	var stop map[string]struct{}
	if opts.StopWords != "" {
		stop, err = file.ReadStopWords(opts.StopWords)
		if err != nil {
			return err
		}
	}

	g := &space.Generator{
		Schema:             sch,
		Gram:               gram,
		Test:               opts.Test,
		Dict:               d,
		Punctuation:        opts.Punctuation,
		WithoutTranslation: opts.WithoutTranslation,
		StopWords:          stop,
	}

	sentences := make([][]string, 0, len(units))
	for i := range units {
		lines, err := g.Sentence(units[i], b.tokens[i])
		if err != nil {
			return fmt.Errorf("sentence %d: %w", i, err)
		}
		sentences = append(sentences, lines)
	}

	w, closeOut, err := openOut(opts.Out, ui)
	if err != nil {
		return err
	}
	if err := space.WriteFile(w, sentences); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}

func encodeAll(enc *unit.Encoder, b *batch, test bool) ([][]unit.Unit, error) {
	var sentences [][]unit.Unit
	for i := range b.corpus.Sentences {
		s := &b.corpus.Sentences[i]

		var units []unit.Unit
		var err error
		if test {
			units, err = enc.EncodeTest(s, b.tokens[i])
		} else {
			units, err = enc.Encode(s, b.aligned[i], b.tokens[i])
		}
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i, err)
		}
		sentences = append(sentences, units)
	}
	return sentences, nil
}
