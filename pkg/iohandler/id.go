package iohandler

import (
	"path"
	"strings"

	"github.com/asecurityteam/iomigrate/pkg/domain"
)

// CleanID normalizes a file ID to a relative slash separated path. Empty IDs
// and IDs that escape the storage root are rejected.
func CleanID(id string) (string, error) {
	trimmed := strings.TrimLeft(strings.TrimSpace(id), "/")
	if trimmed == "" {
		return "", domain.InvalidArgumentError{Argument: "id", Reason: "must not be empty"}
	}
	cleaned := path.Clean(trimmed)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", domain.InvalidArgumentError{Argument: "id", Reason: "must stay below the storage root"}
	}
	return cleaned, nil
}

// DirectoryPrefix turns a directory path into the prefix shared by the IDs of
// the files stored below it. An empty path matches every file.
func DirectoryPrefix(dir string) (string, error) {
	trimmed := strings.Trim(strings.TrimSpace(dir), "/")
	if trimmed == "" {
		return "", nil
	}
	cleaned, err := CleanID(trimmed)
	if err != nil {
		return "", err
	}
	return cleaned + "/", nil
}

// JoinURI builds the public URI of a file below a URL prefix.
func JoinURI(prefix string, id string) string {
	if prefix == "" {
		return "/" + strings.TrimLeft(id, "/")
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(id, "/")
}

// SplitURI is the inverse of JoinURI.
func SplitURI(prefix string, uri string) (string, error) {
	base := strings.TrimRight(prefix, "/") + "/"
	if !strings.HasPrefix(uri, base) {
		return "", domain.InvalidArgumentError{Argument: "uri", Reason: "not below " + base}
	}
	return CleanID(strings.TrimPrefix(uri, base))
}

// Page applies limit and offset to a sorted list of IDs.
func Page(ids []string, limit int, offset int) []string {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(ids) {
		return []string{}
	}
	end := len(ids)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]string, end-offset)
	copy(out, ids[offset:end])
	return out
}
