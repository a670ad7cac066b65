package serialization

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Encode validates s and returns its complete .grad encoding.
func Encode(s *Snapshot) ([]byte, error) {
	if err := ValidateSnapshot(s); err != nil {
		return nil, err
	}

	var payload bytes.Buffer
	enc := msgpack.NewEncoder(&payload)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if payload.Len() > MaxPayloadSize {
		return nil, ErrPayloadTooLarge
	}

	flags := uint32(0)
	if s.Backward {
		flags |= FlagHasGradients
	}

	header := make([]byte, FixedHeaderSize)
	copy(header[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(header[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(header[8:12], flags)
	binary.LittleEndian.PutUint64(header[12:20], uint64(payload.Len()))
	checksum := ComputeChecksum(payload.Bytes())
	copy(header[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	return append(header, payload.Bytes()...), nil
}

// Write encodes s to w.
func Write(w io.Writer, s *Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// WriteFile encodes s into a new file at path.
func WriteFile(path string, s *Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	//nolint:gosec // G306: snapshots are not secret
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	return nil
}
