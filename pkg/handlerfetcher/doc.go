// Package handlerfetcher contains implementations of domain.HandlerFetcher
// that decide which functions of the service can be invoked by name.
package handlerfetcher
