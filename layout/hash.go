// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hasher accumulates the layout fingerprint of a widget tree.
// Widgets feed it their kind first and then every field that
// influences their layout, always in the same order. Fields that only
// affect drawing must not be written.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewHasher returns an empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// Reset discards everything written so far.
func (h *Hasher) Reset() {
	h.d.Reset()
}

// Sum64 returns the fingerprint of everything written so far.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}

// WriteKind writes the discriminant of a widget type.
func (h *Hasher) WriteKind(kind string) {
	h.WriteString(kind)
}

// WriteUint64 writes v.
func (h *Hasher) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	h.d.Write(h.buf[:8])
}

// WriteUint32 writes v.
func (h *Hasher) WriteUint32(v uint32) {
	binary.LittleEndian.PutUint32(h.buf[:], v)
	h.d.Write(h.buf[:4])
}

// WriteUint16 writes v.
func (h *Hasher) WriteUint16(v uint16) {
	binary.LittleEndian.PutUint16(h.buf[:], v)
	h.d.Write(h.buf[:2])
}

// WriteBool writes b.
func (h *Hasher) WriteBool(b bool) {
	h.buf[0] = 0
	if b {
		h.buf[0] = 1
	}
	h.d.Write(h.buf[:1])
}

// WriteFloat32 writes the bits of f.
func (h *Hasher) WriteFloat32(f float32) {
	h.WriteUint32(math.Float32bits(f))
}

// WriteBytes writes b, prefixed with its length.
func (h *Hasher) WriteBytes(b []byte) {
	h.WriteUint64(uint64(len(b)))
	h.d.Write(b)
}

// WriteString writes s, prefixed with its length.
func (h *Hasher) WriteString(s string) {
	h.WriteUint64(uint64(len(s)))
	h.d.WriteString(s)
}

// WriteLength writes a sizing policy.
func (h *Hasher) WriteLength(l Length) {
	h.buf[0] = byte(l.kind)
	h.d.Write(h.buf[:1])
	h.WriteUint16(l.value)
}

// WritePadding writes p.
func (h *Hasher) WritePadding(p Padding) {
	h.WriteUint16(p.Top)
	h.WriteUint16(p.Right)
	h.WriteUint16(p.Bottom)
	h.WriteUint16(p.Left)
}

// WriteAlignment writes a.
func (h *Hasher) WriteAlignment(a Alignment) {
	h.buf[0] = byte(a)
	h.d.Write(h.buf[:1])
}
