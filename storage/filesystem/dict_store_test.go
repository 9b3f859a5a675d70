package filesystem

import (
	"testing"

	"github.com/revelaction/glost/dict"
)

func TestDictStoreRoundTrip(t *testing.T) {
	store := NewDictStore(t.TempDir())

	d := dict.New()
	d.Set("nta", dict.Entry{Label: "no", Freq: 3, POS: "DET"})
	d.Set("trabaj", dict.Entry{Label: "work", Freq: 5, POS: "VERB", Reference: "work"})

	if err := store.Write("train", d); err != nil {
		t.Fatalf("Write: %v", err)
	}

	names, err := store.Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if len(names) != 1 || names[0] != "train" {
		t.Fatalf("Names = %v", names)
	}

	loaded, err := store.Read("train")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("Len = %d", loaded.Len())
	}
	e, ok := loaded.Get("trabaj")
	if !ok || e.Label != "work" || e.Freq != 5 || e.Reference != "work" {
		t.Errorf("entry = %+v", e)
	}
}

func TestDictStoreReadMissing(t *testing.T) {
	store := NewDictStore(t.TempDir())
	if _, err := store.Read("absent"); err == nil {
		t.Fatal("want error for missing dictionary")
	}
}
