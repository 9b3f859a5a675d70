package main

import (
	"fmt"

	"github.com/revelaction/glost/dict"
	"github.com/revelaction/glost/schema"
)

func dictCommand(opts DictOptions, corpusPath string, ui UI) error {
	sch := schema.MustFor(opts.Schema)

	b, err := loadBatch(batchOptions{
		corpusPath: corpusPath,
		alignPath:  opts.Align,
		lang:       opts.Lang,
		taggerURL:  opts.TaggerURL,
		tilde:      opts.Tilde,
		expand:     true,
	}, ui)
	if err != nil {
		return err
	}

	d := dict.Build(b.aligned, dict.Options{
		Reference: sch.Both,
		UseGold:   opts.UseGold || sch.UseGold,
	})

	p := &Pool{}
	defer p.Close()

	repo, err := NewDictRepository(p, opts.DictPath)
	if err != nil {
		return err
	}

	if err := repo.Write(opts.Name, d); err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "📖 %s: %d morphemes\n", opts.Name, d.Len())
	return nil
}
