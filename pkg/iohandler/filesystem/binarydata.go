package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/iomigrate/pkg/iohandler"
	"github.com/google/renameio/v2"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Binarydata is a domain.BinarydataHandler that stores content below Root.
type Binarydata struct {
	Root      string
	URLPrefix string
}

// NewBinarydata creates a handler rooted at the given directory.
func NewBinarydata(root string, urlPrefix string) *Binarydata {
	return &Binarydata{Root: root, URLPrefix: urlPrefix}
}

// SharesStorageWith reports whether other is a filesystem handler on the
// same directory.
func (b *Binarydata) SharesStorageWith(other domain.BinarydataHandler) bool {
	o, ok := other.(*Binarydata)
	return ok && sameRoot(b.Root, o.Root)
}

func sameRoot(a string, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

func (b *Binarydata) path(id string) (string, string, error) {
	id, err := iohandler.CleanID(id)
	if err != nil {
		return "", "", err
	}
	return id, filepath.Join(b.Root, filepath.FromSlash(id)), nil
}

// Create streams the input into the file and atomically replaces any
// previous content.
func (b *Binarydata) Create(ctx context.Context, file *domain.BinaryFileCreateStruct) error {
	_, p, err := b.path(file.ID)
	if err != nil {
		return err
	}
	if file.Input == nil {
		return domain.InvalidArgumentError{Argument: "input", Reason: "must not be nil"}
	}
	if err := os.MkdirAll(filepath.Dir(p), dirPermissions); err != nil {
		return fmt.Errorf("create directory for %s: %w", file.ID, err)
	}
	pending, err := renameio.NewPendingFile(p, renameio.WithPermissions(filePermissions))
	if err != nil {
		return fmt.Errorf("create pending file for %s: %w", file.ID, err)
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := io.Copy(pending, file.Input); err != nil {
		return fmt.Errorf("write %s: %w", file.ID, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", file.ID, err)
	}
	if !file.MTime.IsZero() {
		if err := os.Chtimes(p, file.MTime, file.MTime); err != nil {
			return fmt.Errorf("set modification time of %s: %w", file.ID, err)
		}
	}
	return nil
}

// Delete removes the file.
func (b *Binarydata) Delete(ctx context.Context, id string) error {
	id, p, err := b.path(id)
	if err != nil {
		return err
	}
	return notFound(id, os.Remove(p))
}

// Contents reads the whole file.
func (b *Binarydata) Contents(ctx context.Context, id string) ([]byte, error) {
	id, p, err := b.path(id)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(p)
	return content, notFound(id, err)
}

// Resource opens the file for reading.
func (b *Binarydata) Resource(ctx context.Context, id string) (io.ReadCloser, error) {
	id, p, err := b.path(id)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, notFound(id, err)
	}
	return f, nil
}

// URI returns the public URI of the file.
func (b *Binarydata) URI(id string) string {
	return iohandler.JoinURI(b.URLPrefix, id)
}

// IDFromURI returns the ID of the file behind a URI.
func (b *Binarydata) IDFromURI(uri string) (string, error) {
	return iohandler.SplitURI(b.URLPrefix, uri)
}

// DeleteDirectory removes the directory and everything below it. An empty
// path is rejected rather than wiping the root.
func (b *Binarydata) DeleteDirectory(ctx context.Context, path string) error {
	prefix, err := iohandler.DirectoryPrefix(path)
	if err != nil {
		return err
	}
	if prefix == "" {
		return domain.InvalidArgumentError{Argument: "path", Reason: "refusing to delete the storage root"}
	}
	return os.RemoveAll(filepath.Join(b.Root, filepath.FromSlash(prefix)))
}

func notFound(id string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return domain.BinaryFileNotFoundError{ID: id}
	}
	return err
}

var (
	_ domain.BinarydataHandler = &Binarydata{}
	_ domain.SharedStorage     = &Binarydata{}
)
