package packet

import (
	"fmt"
	"reflect"
	"sort"

	"go.uber.org/zap"

	"github.com/seaglass-games/ronet/codec"
	"github.com/seaglass-games/ronet/errors"
	"github.com/seaglass-games/ronet/wire"
)

// headerSize is the width of the tag prefixing every packet. The tag
// counts toward a packet's self-declared total length.
const headerSize = 2

// Unknown carries a packet whose header tag has no registered type.
// The payload is everything left in the buffer, since only the schema
// of a known packet reveals where it ends.
type Unknown struct {
	Payload []byte
	Tag     uint16
}

type entry struct {
	goType reflect.Type
	tag    uint16
	ping   bool
}

// Option configures a packet registration.
type Option func(*entry)

// Ping marks a packet as part of the keepalive exchange, letting
// transport code filter it from ordinary traffic.
func Ping() Option {
	return func(e *entry) { e.ping = true }
}

// Registry maps header tags to packet types in both directions. All
// registrations happen up front; afterwards a Registry is safe for
// concurrent use.
type Registry struct {
	byTag   map[uint16]*entry
	byType  map[reflect.Type]*entry
	decoder *codec.Decoder
	encoder *codec.Encoder
}

func NewRegistry() *Registry {
	compiler := codec.NewCompiler()
	return &Registry{
		byTag:   make(map[uint16]*entry),
		byType:  make(map[reflect.Type]*entry),
		decoder: codec.NewDecoderWithCompiler(compiler),
		encoder: codec.NewEncoderWithCompiler(compiler),
	}
}

// Register binds a header tag to the packet type of prototype. The
// prototype value itself is discarded; only its type matters. Register
// panics on conflicts since registrations are wired at startup.
func (r *Registry) Register(tag uint16, prototype any, opts ...Option) {
	t := reflect.TypeOf(prototype)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("packet: Register of non-struct type %v", t))
	}
	if prev, dup := r.byTag[tag]; dup {
		panic(fmt.Sprintf("packet: tag 0x%04X registered for both %v and %v", tag, prev.goType, t))
	}
	if _, dup := r.byType[t]; dup {
		panic(fmt.Sprintf("packet: type %v registered twice", t))
	}

	e := &entry{goType: t, tag: tag}
	for _, opt := range opts {
		opt(e)
	}
	r.byTag[tag] = e
	r.byType[t] = e
}

// Entry describes one registration.
type Entry struct {
	GoType reflect.Type
	Tag    uint16
	Ping   bool
}

// Entries returns every registration sorted by tag.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.byTag))
	for _, e := range r.byTag {
		out = append(out, Entry{GoType: e.goType, Tag: e.tag, Ping: e.ping})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// DecodeNext reads the packet at the cursor's position and returns a
// pointer to its decoded struct. An unregistered tag is not an error:
// the remaining bytes come back as *Unknown so a capture session can
// skip past traffic it has no schema for.
func (r *Registry) DecodeNext(cur *wire.Cursor) (any, error) {
	tag, err := cur.ReadU16()
	if err != nil {
		return nil, err
	}

	e, ok := r.byTag[tag]
	if !ok {
		rest, err := cur.ReadBytes(cur.Remaining())
		if err != nil {
			return nil, err
		}
		Logger().Debug("unrecognized packet header",
			zap.Uint16("tag", tag),
			zap.Int("payload_bytes", len(rest)))
		payload := make([]byte, len(rest))
		copy(payload, rest)
		return &Unknown{Tag: tag, Payload: payload}, nil
	}

	out := reflect.New(e.goType)
	if err := r.decoder.DecodeFramed(cur, out.Interface(), headerSize); err != nil {
		return nil, err
	}
	return out.Interface(), nil
}

// DecodeExpect reads the next packet, requiring it to be the one out
// points at. A different registered tag fails with mismatched_header.
// Used during fixed handshake sequences where the peer's next packet
// is known in advance.
func (r *Registry) DecodeExpect(cur *wire.Cursor, out any) error {
	e, err := r.lookupType(out)
	if err != nil {
		return err
	}

	tag, err := cur.ReadU16()
	if err != nil {
		return err
	}
	if tag != e.tag {
		return errors.MismatchedHeader(e.tag, tag)
	}

	return r.decoder.DecodeFramed(cur, out, headerSize)
}

// Encode returns the full wire bytes of pkt: its registered header tag
// followed by the encoded body, with any self-describing length field
// filled in.
func (r *Registry) Encode(pkt any) ([]byte, error) {
	w := wire.GetWriter()
	defer wire.PutWriter(w)
	if err := r.EncodeTo(w, pkt); err != nil {
		return nil, err
	}
	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	return out, nil
}

// EncodeTo appends pkt's header tag and body to w.
func (r *Registry) EncodeTo(w *wire.Writer, pkt any) error {
	e, err := r.lookupType(pkt)
	if err != nil {
		return err
	}
	w.WriteU16(e.tag)
	return r.encoder.EncodeFramed(w, pkt, headerSize)
}

// Tag returns the header tag registered for pkt's type.
func (r *Registry) Tag(pkt any) (uint16, bool) {
	e, err := r.lookupType(pkt)
	if err != nil {
		return 0, false
	}
	return e.tag, true
}

// IsPing reports whether pkt's type was registered as keepalive
// traffic. An *Unknown is never a ping.
func (r *Registry) IsPing(pkt any) bool {
	e, err := r.lookupType(pkt)
	if err != nil {
		return false
	}
	return e.ping
}

func (r *Registry) lookupType(pkt any) (*entry, error) {
	t := reflect.TypeOf(pkt)
	if t == nil {
		return nil, errors.NilPointer(errors.PhaseDispatch, "<nil>")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	e, ok := r.byType[t]
	if !ok {
		return nil, errors.New(errors.PhaseDispatch, errors.KindUnsupported).
			GoType(t.String()).
			Detail("type has no registered header tag").
			Build()
	}
	return e, nil
}
