// Package filesystem implements IO handlers on top of a local directory.
//
// Binary data is written through a pending file that is atomically renamed
// into place, so readers never observe partially written content. Metadata
// is not stored separately: it is read from the file system entry of the
// binary data, which means the binary data must be written first.
package filesystem
