package main

import (
	"fmt"

	"github.com/revelaction/glost/file"
	"github.com/revelaction/glost/render"
	"github.com/revelaction/glost/stat"
)

func statCommand(opts StatOptions, corpusPath, predictedPath string, ui UI) error {
	c, err := file.ReadCorpus(corpusPath, opts.Test)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(c)
	stats := hdl.Get()

	var accuracy *float64
	if predictedPath != "" {
		pred, err := file.ReadCorpus(predictedPath, false)
		if err != nil {
			return err
		}

		pairs, err := stat.LabelPairs(c, pred)
		if err != nil {
			return err
		}
		acc, err := stat.Accuracy(pairs)
		if err != nil {
			return err
		}
		accuracy = &acc
	}

	if opts.JSON {
		report := struct {
			stat.Stats
			Accuracy *float64 `json:"accuracy,omitempty"`
		}{Stats: stats, Accuracy: accuracy}
		return render.NewJSONRenderer(ui.Out).Render(report)
	}

	fmt.Fprintf(ui.Out, "Num sentences %d, num morphemes per sentence %d\n",
		stats.NumSentences, stats.MorphemesPerSentenceMean)
	fmt.Fprintf(ui.Out, "Num words %d, num morphemes %d (%d grammatical, %d lexical)\n",
		stats.NumWords, stats.NumMorphemes, stats.NumGrammatical, stats.NumLexical)

	if accuracy != nil {
		fmt.Fprintf(ui.Out, "Accuracy %.4f\n", *accuracy)
	}

	return nil
}
