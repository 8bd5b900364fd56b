// Package domain holds the types and interfaces shared by the packages of the
// service: the IO handler contracts, the handler factories, the function
// fetcher, the user reference and the domain errors.
//
// Apart from the Error() methods of the domain errors, which are tested, the
// package contains no executable code.
package domain
