package file

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadCorpus(t *testing.T) {
	path := write(t, "corpus.txt", "\\m juan-s trabaj-a\n\\g Juan-PL work-PRS\n\\l john works\n")

	c, err := ReadCorpus(path, false)
	if err != nil {
		t.Fatalf("ReadCorpus: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 sentence, got %d", c.Len())
	}
	if c.Sentences[0].Translation != "john works" {
		t.Errorf("unexpected translation %q", c.Sentences[0].Translation)
	}
}

func TestReadAlignments(t *testing.T) {
	path := write(t, "corpus.align", "0-0 1-1\n\n2-0\n")

	pairs, err := ReadAlignments(path)
	if err != nil {
		t.Fatalf("ReadAlignments: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("expected 3 sentences, got %d", len(pairs))
	}
	if len(pairs[0]) != 2 {
		t.Errorf("sentence 0: expected 2 pairs, got %d", len(pairs[0]))
	}
	if len(pairs[1]) != 0 {
		t.Errorf("sentence 1: expected no pairs, got %d", len(pairs[1]))
	}
	if pairs[2][0].Gloss != 2 || pairs[2][0].Word != 0 {
		t.Errorf("sentence 2: unexpected pair %+v", pairs[2][0])
	}
}

func TestReadAlignmentsMalformed(t *testing.T) {
	path := write(t, "corpus.align", "0-0 x-1\n")

	if _, err := ReadAlignments(path); err == nil {
		t.Fatal("expected error for malformed pair")
	}
}

func TestReadStopWords(t *testing.T) {
	path := write(t, "stop.txt", "# determiners\nthe\n\na\n")

	words, err := ReadStopWords(path)
	if err != nil {
		t.Fatalf("ReadStopWords: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 stop words, got %d", len(words))
	}
	if _, ok := words["the"]; !ok {
		t.Errorf("missing stop word 'the': %v", words)
	}
	if _, ok := words["a"]; !ok {
		t.Errorf("missing stop word 'a': %v", words)
	}
}
