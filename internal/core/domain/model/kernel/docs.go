// Package kernel provides core domain primitives shared by the print order portal.
//
// The package includes:
//   - UUID: A value object for opaque identifiers such as session tokens
//   - Clock: The time source used to stamp orders, with a fixed variant for tests
//
// These primitives are immutable and safe for concurrent use.
package kernel
