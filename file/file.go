package file

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/revelaction/glost/align"
	"github.com/revelaction/glost/igt"
)

// ReadCorpus opens path and parses it as an interlinear glossed text file.
// Covered files carry no gloss tier.
func ReadCorpus(path string, covered bool) (*igt.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := igt.Read(f, covered)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// ReadAlignments reads a word alignment file in the eflomal/fast_align
// output format: one line per sentence, pairs like "0-0 1-2" separated by
// spaces. An empty line means the sentence has no aligned pairs.
func ReadAlignments(path string) ([][]align.Pair, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	pairs := make([][]align.Pair, 0, len(lines))
	for i, line := range lines {
		p, err := align.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}

// ReadLines returns the lines of path. A trailing newline does not produce
// an extra empty line.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// ReadStopWords reads one lemma per line. Blank lines and lines starting
// with "#" are skipped.
func ReadStopWords(path string) (map[string]struct{}, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	words := map[string]struct{}{}
	for _, line := range lines {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words[w] = struct{}{}
	}

	return words, nil
}
