package main

import (
	"github.com/revelaction/glost/inspect"
	"github.com/revelaction/glost/render"
	"github.com/revelaction/glost/schema"
	"github.com/revelaction/glost/unit"
)

func inspectCommand(opts InspectOptions, corpusPath string, ui UI) error {
	sch := schema.MustFor(opts.Schema)

	b, err := loadBatch(batchOptions{
		corpusPath: corpusPath,
		alignPath:  opts.Align,
		covered:    opts.Test,
		lang:       opts.Lang,
		taggerURL:  opts.TaggerURL,
		tilde:      opts.Tilde,
	}, ui)
	if err != nil {
		return err
	}

	var units [][]unit.Unit
	if opts.Test || b.aligned != nil {
		enc := &unit.Encoder{Schema: sch}
		units, err = encodeAll(enc, b, opts.Test)
		if err != nil {
			return err
		}
	}

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !opts.NoColor
	r.HasPrefix = !opts.NoPrefix
	r.Format = opts.Format
	r.Schema = sch

	// now present the REPL over the corpus
	h := inspect.NewHandler(b.corpus, b.aligned, units, r)
	return h.Run()
}
