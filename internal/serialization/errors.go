package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrPayloadTooLarge    = errors.New("payload exceeds maximum size")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrInvalidSnapshot    = errors.New("invalid snapshot")
)

// ValidationError provides detailed information about snapshot validation failures.
type ValidationError struct {
	Type    string // Type of error (e.g., "unknown_node", "operand_count")
	Node    int64  // Node id involved, -1 if none
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Node >= 0 {
		return fmt.Sprintf("%s: node %d: %s", e.Type, e.Node, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Is reports whether the target error matches ErrInvalidSnapshot.
func (e *ValidationError) Is(err error) bool {
	return err == ErrInvalidSnapshot
}
