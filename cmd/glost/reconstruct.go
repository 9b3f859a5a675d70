package main

import (
	"github.com/revelaction/glost/file"
	"github.com/revelaction/glost/igt"
)

func reconstructCommand(opts ReconstructOptions, coveredPath, decodedPath string, ui UI) error {
	covered, err := file.ReadCorpus(coveredPath, true)
	if err != nil {
		return err
	}

	decoded, err := file.ReadLines(decodedPath)
	if err != nil {
		return err
	}

	rec, err := igt.Reconstruct(covered, decoded)
	if err != nil {
		return err
	}

	out := rec
	if opts.Fill {
		out, err = igt.FillCovered(covered, rec)
		if err != nil {
			return err
		}
	}

	w, closeOut, err := openOut(opts.Out, ui)
	if err != nil {
		return err
	}
	if err := igt.Write(w, out); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}
