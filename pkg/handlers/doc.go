// Package handlers holds the http.Handler implementations of the service API.
// The migration functions themselves are lambda.Handler values and live in
// the root package.
package handlers
