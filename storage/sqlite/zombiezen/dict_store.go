package zombiezen

import (
	"context"
	"fmt"

	"github.com/revelaction/glost/dict"
	"github.com/revelaction/glost/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DictStore struct {
	pool *sqlitex.Pool
}

var _ storage.DictRepository = (*DictStore)(nil)

func NewDictStore(pool *sqlitex.Pool) *DictStore {
	return &DictStore{pool: pool}
}

func (h *DictStore) Names() ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var names []string
	err = sqlitex.Execute(conn, "SELECT name FROM dicts ORDER BY name", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			names = append(names, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (h *DictStore) Read(name string) (*dict.Dictionary, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	id, err := h.dictID(conn, name)
	if err != nil {
		return nil, err
	}

	d := dict.New()
	err = sqlitex.Execute(conn,
		"SELECT morpheme, label, freq, pos, reference FROM dict_entries WHERE dict_id = ?",
		&sqlitex.ExecOptions{
			Args: []interface{}{id},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				d.Set(stmt.ColumnText(0), dict.Entry{
					Label:     stmt.ColumnText(1),
					Freq:      stmt.ColumnInt(2),
					POS:       stmt.ColumnText(3),
					Reference: stmt.ColumnText(4),
				})
				return nil
			},
		})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (h *DictStore) Write(name string, d *dict.Dictionary) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT OR IGNORE INTO dicts (name) VALUES (?)", &sqlitex.ExecOptions{
		Args: []interface{}{name},
	})
	if err != nil {
		return fmt.Errorf("failed to insert dict: %w", err)
	}

	id, err := h.dictID(conn, name)
	if err != nil {
		return err
	}

	err = sqlitex.Execute(conn, "DELETE FROM dict_entries WHERE dict_id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
	})
	if err != nil {
		return fmt.Errorf("failed to clear dict entries: %w", err)
	}

	return d.Each(func(morpheme string, e dict.Entry) error {
		err := sqlitex.Execute(conn,
			"INSERT INTO dict_entries (dict_id, morpheme, label, freq, pos, reference) VALUES (?, ?, ?, ?, ?, ?)",
			&sqlitex.ExecOptions{
				Args: []interface{}{id, morpheme, e.Label, e.Freq, e.POS, e.Reference},
			})
		if err != nil {
			return fmt.Errorf("failed to insert entry for %q: %w", morpheme, err)
		}
		return nil
	})
}

func (h *DictStore) dictID(conn *sqlite.Conn, name string) (int64, error) {
	var id int64
	found := false
	err := sqlitex.Execute(conn, "SELECT id FROM dicts WHERE name = ?", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			id = stmt.ColumnInt64(0)
			found = true
			return nil
		},
	})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("dict not found: %s", name)
	}
	return id, nil
}
