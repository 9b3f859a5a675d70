package storage

import (
	"github.com/revelaction/glost/dict"
)

// DictReader defines read operations for training dictionary storage
type DictReader interface {
	// Read returns a stored dictionary by name
	Read(name string) (*dict.Dictionary, error)

	// Names returns the names of all stored dictionaries, sorted
	Names() ([]string, error)
}

// DictWriter defines write operations for training dictionary storage
type DictWriter interface {
	// Write persists a dictionary under a name, replacing any previous one
	Write(name string, d *dict.Dictionary) error
}

// DictRepository combines read and write operations
type DictRepository interface {
	DictReader
	DictWriter
}
