package types

import "errors"

// Sentinel errors for the tree library.
var (
	// ErrTreeNotFound indicates no stored tree has the requested name.
	ErrTreeNotFound = errors.New("tree not found")

	// ErrInvalidTreeName indicates an empty name or one over MaxTreeNameLength.
	ErrInvalidTreeName = errors.New("invalid tree name")

	// ErrDocumentTooLarge indicates a serialized tree over MaxDocumentSize.
	ErrDocumentTooLarge = errors.New("tree document exceeds maximum size")

	// ErrChecksumMismatch indicates a stored document no longer matches its checksum.
	ErrChecksumMismatch = errors.New("tree document checksum mismatch")
)
