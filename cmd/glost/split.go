package main

import (
	"fmt"
	"os"

	"github.com/revelaction/glost/file"
	"github.com/revelaction/glost/igt"
)

func splitCommand(opts SplitOptions, corpusPath string, ui UI) error {
	c, err := file.ReadCorpus(corpusPath, false)
	if err != nil {
		return err
	}

	sp, err := igt.SplitCorpus(c, opts.Train, opts.Dev, opts.Test)
	if err != nil {
		return err
	}

	parts := []struct {
		ext    string
		corpus *igt.Corpus
	}{
		{".train", sp.Train},
		{".dev", sp.Dev},
		{".test", sp.Test},
	}

	for _, part := range parts {
		if part.corpus.Len() == 0 {
			continue
		}
		if err := writeCorpus(opts.Prefix+part.ext, part.corpus); err != nil {
			return err
		}
	}

	fmt.Fprintf(ui.Out, "🔧 %s: %d train, %d dev, %d test\n",
		opts.Prefix, sp.Train.Len(), sp.Dev.Len(), sp.Test.Len())
	return nil
}

func writeCorpus(path string, c *igt.Corpus) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := igt.Write(f, c); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
