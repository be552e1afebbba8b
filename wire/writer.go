package wire

import (
	"encoding/binary"
	"sync"
)

// Writer accumulates wire bytes for one encode operation. Writes are
// append-only except for the Patch methods, which exist so a packet's
// self-describing length field can be fixed up after its body size is
// known. All multi-byte writes are little-endian.
type Writer struct {
	buf []byte
}

const writerInitCap = 64

var writerPool = sync.Pool{
	New: func() any {
		return &Writer{buf: make([]byte, 0, writerInitCap)}
	},
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, writerInitCap)}
}

// GetWriter fetches a reset Writer from the pool.
func GetWriter() *Writer {
	return writerPool.Get().(*Writer)
}

// PutWriter resets w and returns it to the pool. The caller must not
// retain slices obtained from Bytes afterwards.
func PutWriter(w *Writer) {
	const maxPooledCap = 64 << 10
	if w == nil || cap(w.buf) > maxPooledCap {
		return
	}
	w.buf = w.buf[:0]
	writerPool.Put(w)
}

// Bytes returns the written bytes. The slice aliases the writer's
// internal buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteBytes appends data.
func (w *Writer) WriteBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

// WriteZeros appends n zero bytes.
func (w *Writer) WriteZeros(n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}

// WriteU8 appends a single byte.
func (w *Writer) WriteU8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteU16 appends a little-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// WriteU32 appends a little-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteU64 appends a little-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// PatchU16 overwrites the two bytes at pos with a little-endian
// uint16. pos must refer to bytes already written.
func (w *Writer) PatchU16(pos int, v uint16) {
	binary.LittleEndian.PutUint16(w.buf[pos:pos+2], v)
}

// PatchU32 overwrites the four bytes at pos with a little-endian
// uint32. pos must refer to bytes already written.
func (w *Writer) PatchU32(pos int, v uint32) {
	binary.LittleEndian.PutUint32(w.buf[pos:pos+4], v)
}
