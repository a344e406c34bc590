package itemdb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vending-server/internal/domain/item"
)

type file struct {
	Items []item.Definition `yaml:"items"`
}

// DB is an immutable item database loaded once at startup.
type DB struct {
	defs map[item.NameID]item.Definition
}

var _ item.Catalog = (*DB)(nil)

func Load(path string) (*DB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read item db %s: %w", path, err)
	}
	db, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse item db %s: %w", path, err)
	}
	return db, nil
}

func Parse(data []byte) (*DB, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return New(f.Items...)
}

// New builds a DB from definitions; ids must be positive and unique.
func New(defs ...item.Definition) (*DB, error) {
	db := &DB{defs: make(map[item.NameID]item.Definition, len(defs))}
	for _, d := range defs {
		if d.NameID <= 0 {
			return nil, fmt.Errorf("item %q has invalid id %d", d.Name, d.NameID)
		}
		if _, dup := db.defs[d.NameID]; dup {
			return nil, fmt.Errorf("duplicate item id %d", d.NameID)
		}
		if d.Slots > item.MaxSlots {
			d.Slots = item.MaxSlots
		}
		db.defs[d.NameID] = d
	}
	return db, nil
}

func (db *DB) Lookup(id item.NameID) (item.Definition, bool) {
	d, ok := db.defs[id]
	return d, ok
}

func (db *DB) Len() int {
	return len(db.defs)
}
