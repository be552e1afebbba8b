// Package wire provides the byte-level primitives of the codec: a
// forward-only, length-tracked Cursor for decoding and an append-only
// Writer for encoding.
//
// All multi-byte integers on this protocol are little-endian; Cursor
// and Writer expose fixed-width accessors only, as the protocol has no
// variable-length integer encoding.
//
// # Region limits
//
// Variable packets carry their own total length as the first body
// field. The struct decoder uses Cursor.PushLimit/PopLimit to narrow
// the readable region to that declared size, so "repeat until
// exhausted" and "consume rest as string" policies stop at the packet
// boundary rather than the physical end of the read buffer:
//
//	[u16 tag][u16 length][ ...body bounded by length... ][next packet...]
//	                      ^-- PushLimit(length - consumed)
//
// Any read past the current region fails with an out_of_bounds error;
// reads never panic and never return partial data.
//
// # Ownership
//
// A Cursor borrows its byte slice and is discarded after one decode.
// Slices returned by ReadBytes alias the underlying buffer. Writers
// may be pooled via GetWriter/PutWriter; bytes obtained from
// Writer.Bytes are invalid after PutWriter.
package wire
