// Package dfs implements a metadata handler backed by an SQL table laid out
// like the file table of a distributed file system cluster: one row per file
// keyed by the hash of its name, with the content kept elsewhere.
package dfs

import (
	"context"
	"crypto/md5" //nolint:gosec
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/iomigrate/pkg/iohandler"
	_ "modernc.org/sqlite" // pure Go driver
)

const schema = `
CREATE TABLE IF NOT EXISTS dfsfile (
	name_hash TEXT NOT NULL PRIMARY KEY,
	name      TEXT NOT NULL,
	name_trunk TEXT NOT NULL,
	datatype  TEXT NOT NULL DEFAULT 'application/octet-stream',
	scope     TEXT NOT NULL DEFAULT '',
	size      INTEGER NOT NULL DEFAULT 0,
	mtime     INTEGER NOT NULL DEFAULT 0,
	expired   INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS dfsfile_name ON dfsfile (name);
`

const defaultMimeType = "application/octet-stream"

// Config defines the SQLite connection parameters.
type Config struct {
	Path         string
	BusyTimeout  time.Duration
	MaxOpenConns int
}

// Metadata is a domain.MetadataHandler storing rows in the dfsfile table.
type Metadata struct {
	db *sql.DB
}

// Open connects to the database, applies the connection PRAGMAs and creates
// the table when it is missing.
func Open(ctx context.Context, conf Config) (*Metadata, error) {
	if conf.BusyTimeout <= 0 {
		conf.BusyTimeout = 5 * time.Second
	}
	if conf.MaxOpenConns <= 0 {
		conf.MaxOpenConns = 1
	}
	// The PRAGMAs go into the DSN so that they apply to every pooled connection.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		conf.Path, conf.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("dfs: open failed: %w", err)
	}
	db.SetMaxOpenConns(conf.MaxOpenConns)
	db.SetMaxIdleConns(conf.MaxOpenConns)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("dfs: ping failed: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("dfs: create schema: %w", err)
	}
	return &Metadata{db: db}, nil
}

// Close releases the connection pool.
func (m *Metadata) Close() error {
	return m.db.Close()
}

func nameHash(id string) string {
	sum := md5.Sum([]byte(id)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// nameTrunk is the part of the name shared by every variation of a file.
func nameTrunk(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[:i+1]
	}
	return ""
}

// scope classifies files by their top level directory.
func scope(id string) string {
	switch {
	case strings.HasPrefix(id, "images/"):
		return "image"
	case strings.HasPrefix(id, "original/"):
		return "binaryfile"
	case strings.HasPrefix(id, "media/"):
		return "mediafile"
	default:
		return "UNKNOWN_SCOPE"
	}
}

// Create inserts or replaces the row of the file.
func (m *Metadata) Create(ctx context.Context, file *domain.BinaryFileCreateStruct) (domain.BinaryFile, error) {
	id, err := iohandler.CleanID(file.ID)
	if err != nil {
		return domain.BinaryFile{}, err
	}
	mimeType := file.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	mtime := file.MTime
	if mtime.IsZero() {
		mtime = time.Now()
	}
	_, err = m.db.ExecContext(ctx, `
		INSERT INTO dfsfile (name_hash, name, name_trunk, datatype, scope, size, mtime, expired)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0)
		ON CONFLICT(name_hash) DO UPDATE SET
			datatype = excluded.datatype,
			size = excluded.size,
			mtime = excluded.mtime,
			expired = 0`,
		nameHash(id), id, nameTrunk(id), mimeType, scope(id), file.Size, mtime.Unix())
	if err != nil {
		return domain.BinaryFile{}, fmt.Errorf("dfs: insert %s: %w", id, err)
	}
	return domain.BinaryFile{
		ID:       id,
		Size:     file.Size,
		MTime:    time.Unix(mtime.Unix(), 0).UTC(),
		MimeType: mimeType,
	}, nil
}

// Delete removes the row of the file.
func (m *Metadata) Delete(ctx context.Context, id string) error {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return err
	}
	res, err := m.db.ExecContext(ctx, `DELETE FROM dfsfile WHERE name_hash = ?`, nameHash(id))
	if err != nil {
		return fmt.Errorf("dfs: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.BinaryFileNotFoundError{ID: id}
	}
	return nil
}

// Load reads the row of the file. Expired rows count as missing.
func (m *Metadata) Load(ctx context.Context, id string) (domain.BinaryFile, error) {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return domain.BinaryFile{}, err
	}
	var (
		size     int64
		mtime    int64
		mimeType string
	)
	err = m.db.QueryRowContext(ctx,
		`SELECT size, mtime, datatype FROM dfsfile WHERE name_hash = ? AND expired = 0`,
		nameHash(id)).Scan(&size, &mtime, &mimeType)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BinaryFile{}, domain.BinaryFileNotFoundError{ID: id}
	}
	if err != nil {
		return domain.BinaryFile{}, fmt.Errorf("dfs: load %s: %w", id, err)
	}
	return domain.BinaryFile{
		ID:       id,
		Size:     size,
		MTime:    time.Unix(mtime, 0).UTC(),
		MimeType: mimeType,
	}, nil
}

// Exists reports whether a live row exists for the file.
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

// MimeType returns the stored data type of the file.
func (m *Metadata) MimeType(ctx context.Context, id string) (string, error) {
	f, err := m.Load(ctx, id)
	if err != nil {
		return "", err
	}
	return f.MimeType, nil
}

// DeleteDirectory removes the rows of every file below the path.
func (m *Metadata) DeleteDirectory(ctx context.Context, path string) error {
	prefix, err := iohandler.DirectoryPrefix(path)
	if err != nil {
		return err
	}
	if prefix == "" {
		_, err = m.db.ExecContext(ctx, `DELETE FROM dfsfile`)
		return err
	}
	_, err = m.db.ExecContext(ctx, `DELETE FROM dfsfile WHERE substr(name, 1, ?) = ?`, len(prefix), prefix)
	return err
}

// CountFiles counts the live rows.
func (m *Metadata) CountFiles(ctx context.Context) (int, error) {
	var n int
	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dfsfile WHERE expired = 0`).Scan(&n)
	return n, err
}

// LoadFileList returns a page of the live file names ordered by name.
func (m *Metadata) LoadFileList(ctx context.Context, limit int, offset int) ([]string, error) {
	if limit <= 0 {
		limit = -1
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := m.db.QueryContext(ctx,
		`SELECT name FROM dfsfile WHERE expired = 0 ORDER BY name LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		ids = append(ids, name)
	}
	return ids, rows.Err()
}

var (
	_ domain.MetadataHandler = &Metadata{}
	_ domain.FileLister      = &Metadata{}
)
