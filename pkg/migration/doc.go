// Package migration copies stored files from one pair of IO handlers to
// another.
//
// A Handler holds the four resolved handlers of a migration: the metadata and
// binarydata handlers files are read from and the metadata and binarydata
// handlers they are written to. A FileMigrator builds on it to copy a single
// file and a Runner pages through every file known to the source metadata
// handler.
//
// Missing source files are logged and skipped. When both sides share their
// binary storage only the metadata is written. Otherwise binary data is
// written first, and if the destination metadata then cannot be written the
// binary data is removed again, but only when this attempt created it. Content
// that was already at the destination, and any metadata pointing to it, stays.
package migration
