// Package badgerkv implements a metadata handler on an embedded Badger
// key-value store. Each file is one JSON encoded record under "file:<id>".
package badgerkv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/iomigrate/pkg/iohandler"
	"github.com/dgraph-io/badger/v4"
)

const keyPrefix = "file:"

// Metadata is a domain.MetadataHandler backed by Badger.
type Metadata struct {
	db *badger.DB
}

// Open opens, or creates, the database in the given directory.
func Open(path string) (*Metadata, error) {
	return OpenWithOptions(badger.DefaultOptions(path).WithLogger(nil))
}

// OpenWithOptions opens the database with explicit options, such as an
// in-memory database.
func OpenWithOptions(opts badger.Options) (*Metadata, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open failed: %w", err)
	}
	return &Metadata{db: db}, nil
}

// Close closes the database.
func (m *Metadata) Close() error { return m.db.Close() }

func key(id string) []byte {
	return []byte(keyPrefix + id)
}

// Create stores the record of the file.
func (m *Metadata) Create(ctx context.Context, file *domain.BinaryFileCreateStruct) (domain.BinaryFile, error) {
	id, err := iohandler.CleanID(file.ID)
	if err != nil {
		return domain.BinaryFile{}, err
	}
	rec := domain.BinaryFile{
		ID:       id,
		Size:     file.Size,
		MTime:    file.MTime.UTC(),
		MimeType: file.MimeType,
	}
	buf, err := json.Marshal(rec)
	if err != nil {
		return domain.BinaryFile{}, err
	}
	err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(id), buf)
	})
	if err != nil {
		return domain.BinaryFile{}, err
	}
	return rec, nil
}

// Delete removes the record of the file.
func (m *Metadata) Delete(ctx context.Context, id string) error {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(id)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return domain.BinaryFileNotFoundError{ID: id}
			}
			return err
		}
		return txn.Delete(key(id))
	})
}

// Load reads the record of the file.
func (m *Metadata) Load(ctx context.Context, id string) (domain.BinaryFile, error) {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return domain.BinaryFile{}, err
	}
	var out domain.BinaryFile
	err = m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.BinaryFile{}, domain.BinaryFileNotFoundError{ID: id}
	}
	if err != nil {
		return domain.BinaryFile{}, err
	}
	return out, nil
}

// Exists reports whether a record is stored for the file.
func (m *Metadata) Exists(ctx context.Context, id string) (bool, error) {
	_, err := m.Load(ctx, id)
	switch err.(type) {
	case nil:
		return true, nil
	case domain.BinaryFileNotFoundError:
		return false, nil
	default:
		return false, err
	}
}

// MimeType returns the stored MIME type of the file.
func (m *Metadata) MimeType(ctx context.Context, id string) (string, error) {
	f, err := m.Load(ctx, id)
	if err != nil {
		return "", err
	}
	return f.MimeType, nil
}

// DeleteDirectory removes the records of every file below the path.
func (m *Metadata) DeleteDirectory(ctx context.Context, path string) error {
	prefix, err := iohandler.DirectoryPrefix(path)
	if err != nil {
		return err
	}
	return m.db.DropPrefix(key(prefix))
}

func (m *Metadata) scan(ctx context.Context, fn func(id string) bool) error {
	prefix := []byte(keyPrefix)
	return m.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !fn(string(it.Item().Key()[len(prefix):])) {
				return nil
			}
		}
		return nil
	})
}

// CountFiles counts the stored records.
func (m *Metadata) CountFiles(ctx context.Context) (int, error) {
	n := 0
	err := m.scan(ctx, func(string) bool {
		n++
		return true
	})
	return n, err
}

// LoadFileList returns a page of the IDs in key order.
func (m *Metadata) LoadFileList(ctx context.Context, limit int, offset int) ([]string, error) {
	ids := []string{}
	i := 0
	err := m.scan(ctx, func(id string) bool {
		if i >= offset {
			ids = append(ids, id)
		}
		i++
		return limit <= 0 || len(ids) < limit
	})
	return ids, err
}

var (
	_ domain.MetadataHandler = &Metadata{}
	_ domain.FileLister      = &Metadata{}
)
