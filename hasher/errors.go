package hasher

import "errors"

var (
	// ErrInvalidKeyLength is returned when keyed construction gets a key
	// that is not KeySize bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrInvalidArgumentCount is returned when the construction parameters
	// do not match the requested mode.
	ErrInvalidArgumentCount = errors.New("invalid argument count")
	// ErrBufferLengthMismatch is returned when a caller supplied buffer is
	// not exactly the requested length.
	ErrBufferLengthMismatch = errors.New("buffer length mismatch")
	// ErrInvalidLength is returned for negative output lengths.
	ErrInvalidLength = errors.New("invalid output length")
	// ErrPositionOutOfRange is returned when a read or seek falls outside
	// the addressable output.
	ErrPositionOutOfRange = errors.New("position out of range")
)
