// Package packet frames codec-encoded structs with their two-byte
// header tags.
//
// A Registry holds the tag-to-type table for one protocol surface.
// DecodeNext reads whatever packet sits at the cursor, returning
// *Unknown for tags without a registered schema; DecodeExpect enforces
// a specific packet during handshakes. Encode writes the tag and
// back-patches the packet's self-describing length field when its type
// declares one.
package packet
