// Package iohandler contains the helpers shared by the IO handler backends.
// Each sub-package implements domain.MetadataHandler, domain.BinarydataHandler
// or both on top of one storage technology. Metadata handlers also implement
// domain.FileLister so they can act as the source of a migration.
package iohandler
