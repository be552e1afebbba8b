// Package protocol defines the packets exchanged between a Ragnarok
// Online client and the login, character and map servers, along with
// the shared field types they are built from.
//
// Packet structs carry no behavior of their own; NewRegistry binds
// each one to its header tag so the packet and codec layers can move
// them on and off the wire. Types whose wire form is not a plain
// little-endian integer, such as WorldPosition and StatusUpdate,
// implement their own codecs.
package protocol
