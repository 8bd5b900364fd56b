// Package memory implements IO handlers that keep everything in process
// memory. They back tests and dry runs and can be registered like any other
// backend.
package memory

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/iomigrate/pkg/iohandler"
)

// Metadata is an in-memory domain.MetadataHandler.
type Metadata struct {
	lock  sync.RWMutex
	files map[string]domain.BinaryFile
}

// NewMetadata creates an empty handler.
func NewMetadata() *Metadata {
	return &Metadata{files: make(map[string]domain.BinaryFile)}
}

// Create stores the metadata of the file.
func (m *Metadata) Create(ctx context.Context, file *domain.BinaryFileCreateStruct) (domain.BinaryFile, error) {
	id, err := iohandler.CleanID(file.ID)
	if err != nil {
		return domain.BinaryFile{}, err
	}
	stored := domain.BinaryFile{
		ID:       id,
		Size:     file.Size,
		MTime:    file.MTime,
		MimeType: file.MimeType,
	}
	m.lock.Lock()
	m.files[id] = stored
	m.lock.Unlock()
	return stored, nil
}

// Delete removes the metadata of the file.
func (m *Metadata) Delete(ctx context.Context, id string) error {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return err
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, ok := m.files[id]; !ok {
		return domain.BinaryFileNotFoundError{ID: id}
	}
	delete(m.files, id)
	return nil
}

// Load returns the metadata of the file.
func (m *Metadata) Load(ctx context.Context, id string) (domain.BinaryFile, error) {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return domain.BinaryFile{}, err
	}
	m.lock.RLock()
	defer m.lock.RUnlock()
	f, ok := m.files[id]
	if !ok {
		return domain.BinaryFile{}, domain.BinaryFileNotFoundError{ID: id}
	}
	return f, nil
}

// Exists reports whether metadata is stored for the file.
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

// DeleteDirectory removes the metadata of every file below the path.
func (m *Metadata) DeleteDirectory(ctx context.Context, path string) error {
	prefix, err := iohandler.DirectoryPrefix(path)
	if err != nil {
		return err
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	for id := range m.files {
		if strings.HasPrefix(id, prefix) {
			delete(m.files, id)
		}
	}
	return nil
}

// CountFiles returns the number of stored files.
func (m *Metadata) CountFiles(ctx context.Context) (int, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.files), nil
}

// LoadFileList returns a page of the sorted file IDs.
func (m *Metadata) LoadFileList(ctx context.Context, limit int, offset int) ([]string, error) {
	m.lock.RLock()
	ids := make([]string, 0, len(m.files))
	for id := range m.files {
		ids = append(ids, id)
	}
	m.lock.RUnlock()
	sort.Strings(ids)
	return iohandler.Page(ids, limit, offset), nil
}

// Binarydata is an in-memory domain.BinarydataHandler.
type Binarydata struct {
	// URLPrefix is prepended to IDs to build URIs.
	URLPrefix string

	lock  sync.RWMutex
	blobs map[string][]byte
}

// NewBinarydata creates an empty handler.
func NewBinarydata(urlPrefix string) *Binarydata {
	return &Binarydata{URLPrefix: urlPrefix, blobs: make(map[string][]byte)}
}

// Create reads the whole input and stores it.
func (b *Binarydata) Create(ctx context.Context, file *domain.BinaryFileCreateStruct) error {
	id, err := iohandler.CleanID(file.ID)
	if err != nil {
		return err
	}
	if file.Input == nil {
		return domain.InvalidArgumentError{Argument: "input", Reason: "must not be nil"}
	}
	content, err := io.ReadAll(file.Input)
	if err != nil {
		return err
	}
	b.lock.Lock()
	b.blobs[id] = content
	b.lock.Unlock()
	return nil
}

// Delete removes the content of the file.
func (b *Binarydata) Delete(ctx context.Context, id string) error {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return err
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	if _, ok := b.blobs[id]; !ok {
		return domain.BinaryFileNotFoundError{ID: id}
	}
	delete(b.blobs, id)
	return nil
}

// Contents returns a copy of the content of the file.
func (b *Binarydata) Contents(ctx context.Context, id string) ([]byte, error) {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return nil, err
	}
	b.lock.RLock()
	defer b.lock.RUnlock()
	content, ok := b.blobs[id]
	if !ok {
		return nil, domain.BinaryFileNotFoundError{ID: id}
	}
	return append([]byte(nil), content...), nil
}

// Resource opens the content of the file for reading.
func (b *Binarydata) Resource(ctx context.Context, id string) (io.ReadCloser, error) {
	content, err := b.Contents(ctx, id)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// URI returns the public URI of the file.
func (b *Binarydata) URI(id string) string {
	return iohandler.JoinURI(b.URLPrefix, id)
}

// IDFromURI returns the ID of the file behind a URI.
func (b *Binarydata) IDFromURI(uri string) (string, error) {
	return iohandler.SplitURI(b.URLPrefix, uri)
}

// DeleteDirectory removes the content of every file below the path.
func (b *Binarydata) DeleteDirectory(ctx context.Context, path string) error {
	prefix, err := iohandler.DirectoryPrefix(path)
	if err != nil {
		return err
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	for id := range b.blobs {
		if strings.HasPrefix(id, prefix) {
			delete(b.blobs, id)
		}
	}
	return nil
}

var (
	_ domain.MetadataHandler   = &Metadata{}
	_ domain.FileLister        = &Metadata{}
	_ domain.BinarydataHandler = &Binarydata{}
)
