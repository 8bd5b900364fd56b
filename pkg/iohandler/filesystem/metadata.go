package filesystem

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/iomigrate/pkg/iohandler"
)

// sniffLength is the number of bytes http.DetectContentType considers.
const sniffLength = 512

// Metadata is a domain.MetadataHandler that reads metadata from the files
// below Root.
type Metadata struct {
	Root string
}

// NewMetadata creates a handler rooted at the given directory.
func NewMetadata(root string) *Metadata {
	return &Metadata{Root: root}
}

// ReadsFrom reports whether b stores its files below the same directory.
func (m *Metadata) ReadsFrom(b domain.BinarydataHandler) bool {
	o, ok := b.(*Binarydata)
	return ok && sameRoot(m.Root, o.Root)
}

func (m *Metadata) path(id string) (string, string, error) {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return "", "", err
	}
	return id, filepath.Join(m.Root, filepath.FromSlash(id)), nil
}

// Create applies the modification time to the already written file and
// returns its metadata.
func (m *Metadata) Create(ctx context.Context, file *domain.BinaryFileCreateStruct) (domain.BinaryFile, error) {
	id, p, err := m.path(file.ID)
	if err != nil {
		return domain.BinaryFile{}, err
	}
	if !file.MTime.IsZero() {
		if err := os.Chtimes(p, file.MTime, file.MTime); err != nil {
			return domain.BinaryFile{}, notFound(id, err)
		}
	}
	stored, err := m.Load(ctx, id)
	if err != nil {
		return domain.BinaryFile{}, err
	}
	if file.MimeType != "" {
		stored.MimeType = file.MimeType
	}
	return stored, nil
}

// Delete only checks that the file exists. The metadata disappears with
// the binary data.
func (m *Metadata) Delete(ctx context.Context, id string) error {
	_, err := m.Load(ctx, id)
	return err
}

// Load stats the file.
func (m *Metadata) Load(ctx context.Context, id string) (domain.BinaryFile, error) {
	id, p, err := m.path(id)
	if err != nil {
		return domain.BinaryFile{}, err
	}
	info, err := os.Stat(p)
	if err != nil {
		return domain.BinaryFile{}, notFound(id, err)
	}
	if info.IsDir() {
		return domain.BinaryFile{}, domain.BinaryFileNotFoundError{ID: id}
	}
	return domain.BinaryFile{
		ID:       id,
		Size:     info.Size(),
		MTime:    info.ModTime().UTC(),
		MimeType: mime.TypeByExtension(path.Ext(id)),
	}, nil
}

// Exists reports whether the file exists.
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

// MimeType derives the type from the extension and falls back to sniffing
// the content.
func (m *Metadata) MimeType(ctx context.Context, id string) (string, error) {
	id, p, err := m.path(id)
	if err != nil {
		return "", err
	}
	if t := mime.TypeByExtension(path.Ext(id)); t != "" {
		return t, nil
	}
	f, err := os.Open(p)
	if err != nil {
		return "", notFound(id, err)
	}
	defer f.Close()
	buf := make([]byte, sniffLength)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// DeleteDirectory is a no-op for the same reason as Delete.
func (m *Metadata) DeleteDirectory(ctx context.Context, dir string) error {
	_, err := iohandler.DirectoryPrefix(dir)
	return err
}

// CountFiles counts the regular files below Root.
func (m *Metadata) CountFiles(ctx context.Context) (int, error) {
	ids, err := m.ids(ctx)
	return len(ids), err
}

// LoadFileList returns a page of the file IDs in lexical order.
func (m *Metadata) LoadFileList(ctx context.Context, limit int, offset int) ([]string, error) {
	ids, err := m.ids(ctx)
	if err != nil {
		return nil, err
	}
	return iohandler.Page(ids, limit, offset), nil
}

// ids walks Root and returns the sorted IDs of the regular files.
func (m *Metadata) ids(ctx context.Context) ([]string, error) {
	var ids []string
	err := filepath.WalkDir(m.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == m.Root && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipDir
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(m.Root, p)
		if err != nil {
			return err
		}
		ids = append(ids, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	// WalkDir order is lexical per directory only.
	sort.Strings(ids)
	return ids, nil
}

var (
	_ domain.MetadataHandler = &Metadata{}
	_ domain.FileLister      = &Metadata{}
	_ domain.BinarydataBound = &Metadata{}
)
