package filesystem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/revelaction/glost/dict"
	"github.com/revelaction/glost/storage"
)

// DictStore keeps each dictionary as one JSON file under a root
// directory, named <name>.json.
type DictStore struct {
	root string
}

var _ storage.DictRepository = (*DictStore)(nil)

func NewDictStore(root string) *DictStore {
	return &DictStore{root: root}
}

func (h *DictStore) Names() ([]string, error) {
	files, err := os.ReadDir(h.root)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(file.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

func (h *DictStore) Read(name string) (*dict.Dictionary, error) {
	data, err := os.ReadFile(h.path(name))
	if err != nil {
		return nil, err
	}

	d := dict.New()
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary %s: %w", name, err)
	}
	return d, nil
}

// Write stores the dictionary atomically: the JSON goes to a temporary
// file first and is renamed into place.
func (h *DictStore) Write(name string, d *dict.Dictionary) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return err
	}

	tmp := h.path(name) + fmt.Sprintf(".%d.%d.tmp", time.Now().UnixNano(), rand.Int31())
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, h.path(name))
}

func (h *DictStore) path(name string) string {
	return filepath.Join(h.root, name+".json")
}
