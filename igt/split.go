package igt

import "fmt"

// Split holds the three standard partitions of a corpus.
type Split struct {
	Train *Corpus
	Dev   *Corpus
	Test  *Corpus
}

// SplitCorpus partitions c: the first trainSize sentences train, the
// last testSize sentences test, and the devSize sentences immediately
// before the test block dev. Zero sizes yield empty partitions.
func SplitCorpus(c *Corpus, trainSize, devSize, testSize int) (*Split, error) {
	n := c.Len()
	if trainSize < 0 || devSize < 0 || testSize < 0 {
		return nil, fmt.Errorf("negative split size")
	}
	if trainSize+devSize+testSize > n {
		return nil, fmt.Errorf("split sizes %d+%d+%d exceed corpus of %d sentences",
			trainSize, devSize, testSize, n)
	}

	sub := func(lo, hi int) *Corpus {
		out := &Corpus{Test: c.Test}
		out.Sentences = append(out.Sentences, c.Sentences[lo:hi]...)
		return out
	}

	return &Split{
		Train: sub(0, trainSize),
		Dev:   sub(n-testSize-devSize, n-testSize),
		Test:  sub(n-testSize, n),
	}, nil
}
