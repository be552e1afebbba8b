// Package codec maps Go structs onto the little-endian binary layout
// used by the game protocol.
//
// A Compiler inspects a struct type once, reading its `ro` field tags,
// and produces an immutable schema table. Encoder and Decoder then
// walk that table for every value, so the reflection cost is paid a
// single time per type.
//
// Field layout is declared with the `ro` tag:
//
//	type CharacterName struct {
//	    Name string `ro:"length:24"`      // fixed 24-byte region, zero padded
//	}
//
//	type ServerMessage struct {
//	    PacketLength uint16 `ro:"packet_length"`          // self-describing size
//	    Message      string `ro:"length_from:packet_length-4"`
//	}
//
//	type QuestList struct {
//	    PacketLength uint16  `ro:"packet_length"`
//	    QuestCount   uint32
//	    Quests       []Quest `ro:"repeat_from:quest_count"`
//	}
//
// Untagged fields consume their natural width. Untagged strings are
// null-terminated. A slice tagged repeat_rest consumes elements until
// the enclosing length region runs out.
//
// Types with hand-written wire formats implement Marshaler and
// Unmarshaler; the compiler prefers those over reflection. Enum types
// and constant wire offsets are declared process-wide with
// RegisterEnum and RegisterWireOffset from init functions.
//
// All failures are *errors.Error values carrying the phase, the kind
// and the field path of the fault.
package codec
