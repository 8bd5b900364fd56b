package domain

import (
	"context"
	"io"
	"time"
)

// BinaryFile describes a stored file. The ID is a slash separated path
// relative to the root of the storage, for example "images/1/2/photo.png".
type BinaryFile struct {
	ID       string    `json:"id"`
	Size     int64     `json:"size"`
	MTime    time.Time `json:"mtime"`
	URI      string    `json:"uri,omitempty"`
	MimeType string    `json:"mimeType,omitempty"`
}

// BinaryFileCreateStruct carries everything needed to store a file. Metadata
// handlers ignore Input while binarydata handlers only need ID and Input.
type BinaryFileCreateStruct struct {
	ID       string
	Size     int64
	MTime    time.Time
	MimeType string
	Input    io.Reader
}

// MetadataHandler stores and retrieves the descriptive attributes of
// stored files. Every method that receives the ID of a file that does
// not exist must emit a BinaryFileNotFoundError.
type MetadataHandler interface {
	// Create stores the metadata described by the struct, replacing any
	// previous record with the same ID.
	Create(ctx context.Context, file *BinaryFileCreateStruct) (BinaryFile, error)
	Delete(ctx context.Context, id string) error
	Load(ctx context.Context, id string) (BinaryFile, error)
	Exists(ctx context.Context, id string) (bool, error)
	MimeType(ctx context.Context, id string) (string, error)
	// DeleteDirectory removes the metadata of every file stored below the
	// given path.
	DeleteDirectory(ctx context.Context, path string) error
}

// BinarydataHandler stores and retrieves the raw content of stored files.
// Every method that receives the ID of a file that does not exist must
// emit a BinaryFileNotFoundError.
type BinarydataHandler interface {
	// Create consumes the Input of the struct and stores it under the ID,
	// replacing any previous content.
	Create(ctx context.Context, file *BinaryFileCreateStruct) error
	Delete(ctx context.Context, id string) error
	Contents(ctx context.Context, id string) ([]byte, error)
	// Resource opens the content for streaming. Callers must close it.
	Resource(ctx context.Context, id string) (io.ReadCloser, error)
	// URI maps an ID to the public URI of the file.
	URI(id string) string
	// IDFromURI is the inverse of URI. It emits an InvalidArgumentError
	// for URIs that this handler did not produce.
	IDFromURI(uri string) (string, error)
	DeleteDirectory(ctx context.Context, path string) error
}

// FileLister enumerates the IDs of the files known to a storage. IDs are
// returned in a stable order so that paging with limit and offset visits
// every file exactly once while the storage is not modified.
type FileLister interface {
	CountFiles(ctx context.Context) (int, error)
	LoadFileList(ctx context.Context, limit int, offset int) ([]string, error)
}

// SharedStorage is implemented by binarydata handlers that can tell whether
// another handler reads and writes the same stored content, such as two
// handlers on one mount.
type SharedStorage interface {
	SharesStorageWith(other BinarydataHandler) bool
}

// BinarydataBound is implemented by metadata handlers that derive their
// records from the content of a binarydata handler instead of storing them.
// Such a handler can only be paired with binarydata handlers it reads from.
type BinarydataBound interface {
	ReadsFrom(b BinarydataHandler) bool
}
