// Package security contains the authenticated principal types used when the
// repository user is only known by reference.
package security
