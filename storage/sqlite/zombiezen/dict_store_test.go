package zombiezen

import (
	"path/filepath"
	"testing"

	"github.com/revelaction/glost/dict"
)

func testStore(t *testing.T) *DictStore {
	t.Helper()
	pool, err := NewPool(filepath.Join(t.TempDir(), "glost.db"))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if err := CreateSchemas(pool, "dicts.sql"); err != nil {
		t.Fatalf("CreateSchemas: %v", err)
	}
	return NewDictStore(pool)
}

func TestDictStoreRoundTrip(t *testing.T) {
	store := testStore(t)

	d := dict.New()
	d.Set("nta", dict.Entry{Label: "no", Freq: 3, POS: "DET"})
	d.Set("trabaj", dict.Entry{Label: "work", Freq: 5, POS: "VERB", Reference: "work"})

	if err := store.Write("train", d); err != nil {
		t.Fatalf("Write: %v", err)
	}

	loaded, err := store.Read("train")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("Len = %d", loaded.Len())
	}
	e, ok := loaded.Get("nta")
	if !ok || e.Label != "no" || e.POS != "DET" {
		t.Errorf("entry = %+v", e)
	}
}

func TestDictStoreRewrite(t *testing.T) {
	store := testStore(t)

	d := dict.New()
	d.Set("old", dict.Entry{Label: "old", Freq: 1, POS: "X"})
	if err := store.Write("train", d); err != nil {
		t.Fatalf("Write: %v", err)
	}

	d2 := dict.New()
	d2.Set("new", dict.Entry{Label: "new", Freq: 2, POS: "X"})
	if err := store.Write("train", d2); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	loaded, err := store.Read("train")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("Len = %d after rewrite", loaded.Len())
	}
	if _, ok := loaded.Get("old"); ok {
		t.Error("old entry survived rewrite")
	}
}
