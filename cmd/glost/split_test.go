package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/revelaction/glost/file"
)

func TestSplitCommand(t *testing.T) {
	dir := t.TempDir()

	var b strings.Builder
	sentences := []string{"uno", "dos", "tres", "cuatro"}
	for _, s := range sentences {
		b.WriteString("\\m " + s + "\n\\g " + s + "\n\\l " + s + "\n\n")
	}
	corpus := writeTemp(t, dir, "corpus.txt", b.String())

	var buf bytes.Buffer
	ui := UI{Out: &buf, Err: &buf}

	opts := SplitOptions{Train: 2, Dev: 1, Test: 1, Prefix: corpus}
	if err := splitCommand(opts, corpus, ui); err != nil {
		t.Fatalf("splitCommand: %v", err)
	}

	tests := []struct {
		ext   string
		count int
		first string
	}{
		{".train", 2, "uno"},
		{".dev", 1, "tres"},
		{".test", 1, "cuatro"},
	}
	for _, tc := range tests {
		c, err := file.ReadCorpus(corpus+tc.ext, false)
		if err != nil {
			t.Fatalf("ReadCorpus %s: %v", tc.ext, err)
		}
		if c.Len() != tc.count {
			t.Errorf("%s: %d sentences, want %d", tc.ext, c.Len(), tc.count)
		}
		if c.Sentences[0].Source != tc.first {
			t.Errorf("%s: first source %q, want %q", tc.ext, c.Sentences[0].Source, tc.first)
		}
	}

	if !strings.Contains(buf.String(), "2 train, 1 dev, 1 test") {
		t.Errorf("summary = %q", buf.String())
	}
}

func TestParseSplitArgsNoSizes(t *testing.T) {
	dir := t.TempDir()
	corpus := writeTemp(t, dir, "corpus.txt", "\\m a\n\\g a\n\\l a\n")

	var buf bytes.Buffer
	ui := UI{Out: &buf, Err: &buf}

	if _, _, err := parseSplitArgs([]string{corpus}, ui); err == nil {
		t.Fatal("expected an error for all-zero sizes")
	}
}
