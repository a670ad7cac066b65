package serialization

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// ReaderOptions configures snapshot reading behavior.
type ReaderOptions struct {
	// SkipChecksumValidation disables SHA-256 checksum validation.
	SkipChecksumValidation bool
}

// Read decodes and validates a snapshot from r.
func Read(r io.Reader) (*Snapshot, error) {
	return ReadWithOptions(r, ReaderOptions{})
}

// ReadWithOptions decodes a snapshot from r with the given options.
func ReadWithOptions(r io.Reader, opts ReaderOptions) (*Snapshot, error) {
	fixedHeader := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixedHeader); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}

	if string(fixedHeader[0:4]) != MagicBytes {
		return nil, fmt.Errorf("%w: got %q, expected %q", ErrInvalidMagic, fixedHeader[0:4], MagicBytes)
	}

	version := binary.LittleEndian.Uint32(fixedHeader[4:8])
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	// 0x0C-0x13: payload size
	payloadSize := binary.LittleEndian.Uint64(fixedHeader[12:20])
	if payloadSize > MaxPayloadSize {
		return nil, ErrPayloadTooLarge
	}

	// 0x14-0x33: SHA-256 checksum
	var stored [ChecksumSize]byte
	copy(stored[:], fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize])

	payload := make([]byte, payloadSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(payload), stored); err != nil {
			return nil, err
		}
	}

	var s Snapshot
	if err := msgpack.NewDecoder(bytes.NewReader(payload)).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if err := ValidateSnapshot(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadFile reads a snapshot from the file at path.
func ReadFile(path string) (*Snapshot, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for snapshot loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}
