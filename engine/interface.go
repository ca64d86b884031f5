// Package engine defines the contract the hasher requires from a BLAKE3
// implementation and provides adapters for the libraries that satisfy it.
package engine

import "io"

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./interface.go

// Engine constructs primitives in one of the three BLAKE3 modes.
type Engine interface {
	Name() string
	New() Primitive
	NewKeyed(key []byte) (Primitive, error)
	NewDerived(context string) (Primitive, error)
}

// Primitive is an incremental hash context. Write never returns an error.
// Sum and XOF do not change the accumulated input.
type Primitive interface {
	io.Writer
	// Sum appends the native 32 byte digest to b.
	Sum(b []byte) []byte
	// XOF takes a snapshot of the current state. Later writes to the
	// primitive are not visible through the returned stream.
	XOF() Stream
	Clone() Primitive
	Reset()
}

// Stream is the extendable output of a finalized primitive.
type Stream interface {
	// Read always fills p completely.
	io.Reader
	SetPosition(pos uint64) error
	// Clone returns a stream over the same output with its own cursor.
	Clone() Stream
}
