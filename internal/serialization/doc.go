// Package serialization provides the native .grad snapshot format for
// computation graphs after a backward pass.
//
// The .grad format is a small binary container around a MessagePack payload:
//
//	Format Structure:
//	  [4 bytes: Magic "GRAD"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Flags (uint32 LE)]
//	  [8 bytes: Payload Size (uint64 LE)]
//	  [32 bytes: SHA-256 checksum of the payload]
//	  [Payload: MessagePack-encoded Snapshot]
//
// A Snapshot carries every node reachable from a root (value, gradient,
// operator symbol) and every operand edge, which is all the diagram export
// needs. Snapshots are validated on read.
//
// Example usage:
//
//	if err := serialization.WriteFile("graph.grad", snap); err != nil {
//	    log.Fatal(err)
//	}
//
//	snap, err := serialization.ReadFile("graph.grad")
//	if err != nil {
//	    log.Fatal(err)
//	}
package serialization
