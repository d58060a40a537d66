/*
Package buffer implements the append-and-consume byte cursor the codec
layer builds keys and values on top of.

Integers are written big-endian so that lexicographic byte order of an
encoded key equals numeric order of the integer it carries. Strings are
written as raw UTF-8 followed by a single 0x00 terminator byte; PutString
rejects strings that contain the terminator with a CodecError, since an
embedded terminator would corrupt key ordering on read-back.
*/
package buffer

import "github.com/krotik/vertexdb/errs"

// StringTerm is the one-byte string terminator.
const StringTerm = 0x00

// Buffer is a growable write cursor / shrinking read cursor over a byte
// slice. A single Buffer is never used for both writing and reading at
// once; Bytes() hands off the accumulated value to a reader.
type Buffer struct {
	buf []byte
	pos int
}

// New returns an empty write buffer.
func New() *Buffer {
	return &Buffer{}
}

// From wraps an existing byte slice for reading.
func From(data []byte) *Buffer {
	return &Buffer{buf: data}
}

// HasTerminator reports whether s contains the string terminator byte.
func HasTerminator(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == StringTerm {
			return true
		}
	}
	return false
}

// PutU8 appends a single byte.
func (b *Buffer) PutU8(v uint8) {
	b.buf = append(b.buf, v)
}

// PutU32 appends a big-endian uint32.
func (b *Buffer) PutU32(v uint32) {
	b.buf = append(b.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// PutU64 appends a big-endian uint64.
func (b *Buffer) PutU64(v uint64) {
	b.buf = append(b.buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// PutString appends s as raw UTF-8 followed by the terminator byte. It
// returns a CodecError if s contains an embedded terminator, since that
// would corrupt key ordering on read-back.
func (b *Buffer) PutString(s string) error {
	if HasTerminator(s) {
		return errs.Codecf("string contains embedded terminator byte: %q", s)
	}
	b.buf = append(b.buf, s...)
	b.buf = append(b.buf, StringTerm)
	return nil
}

// PutSlice appends raw bytes verbatim (no terminator, no length prefix).
func (b *Buffer) PutSlice(data []byte) {
	b.buf = append(b.buf, data...)
}

// Bytes returns the accumulated bytes.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// GetU8 consumes and returns a single byte.
func (b *Buffer) GetU8() (uint8, error) {
	if b.pos+1 > len(b.buf) {
		return 0, errs.Codecf("truncated buffer: want 1 byte, have %d", len(b.buf)-b.pos)
	}
	v := b.buf[b.pos]
	b.pos++
	return v, nil
}

// GetU32 consumes and returns a big-endian uint32.
func (b *Buffer) GetU32() (uint32, error) {
	if b.pos+4 > len(b.buf) {
		return 0, errs.Codecf("truncated buffer: want 4 bytes, have %d", len(b.buf)-b.pos)
	}
	v := uint32(b.buf[b.pos])<<24 | uint32(b.buf[b.pos+1])<<16 | uint32(b.buf[b.pos+2])<<8 | uint32(b.buf[b.pos+3])
	b.pos += 4
	return v, nil
}

// GetU64 consumes and returns a big-endian uint64.
func (b *Buffer) GetU64() (uint64, error) {
	if b.pos+8 > len(b.buf) {
		return 0, errs.Codecf("truncated buffer: want 8 bytes, have %d", len(b.buf)-b.pos)
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b.buf[b.pos+i])
	}
	b.pos += 8
	return v, nil
}

// GetStringRaw consumes bytes up to (and including) the next terminator
// and returns the bytes before it.
func (b *Buffer) GetStringRaw() ([]byte, error) {
	start := b.pos
	for {
		if b.pos >= len(b.buf) {
			return nil, errs.Codecf("truncated buffer: unterminated string")
		}
		if b.buf[b.pos] == StringTerm {
			s := b.buf[start:b.pos]
			b.pos++
			return s, nil
		}
		b.pos++
	}
}

// GetString consumes a terminated string and decodes it as UTF-8.
func (b *Buffer) GetString() (string, error) {
	raw, err := b.GetStringRaw()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Advance skips n bytes of the read cursor.
func (b *Buffer) Advance(n int) error {
	if b.pos+n > len(b.buf) {
		return errs.Codecf("truncated buffer: cannot advance %d bytes", n)
	}
	b.pos += n
	return nil
}

// HasRemaining reports whether unread bytes remain.
func (b *Buffer) HasRemaining() bool {
	return b.pos < len(b.buf)
}

// Remaining returns the unconsumed tail of the buffer.
func (b *Buffer) Remaining() []byte {
	return b.buf[b.pos:]
}
