package buffer_test

import (
	"testing"

	"github.com/krotik/vertexdb/buffer"
)

func TestPutGetRoundTrip(t *testing.T) {
	b := buffer.New()
	b.PutU8(7)
	b.PutU32(233)
	b.PutU64(1 << 40)
	if err := b.PutString("hello"); err != nil {
		t.Fatal(err)
	}

	r := buffer.From(b.Bytes())
	u8, err := r.GetU8()
	if err != nil || u8 != 7 {
		t.Fatalf("GetU8: %v, %v", u8, err)
	}
	u32, err := r.GetU32()
	if err != nil || u32 != 233 {
		t.Fatalf("GetU32: %v, %v", u32, err)
	}
	u64, err := r.GetU64()
	if err != nil || u64 != 1<<40 {
		t.Fatalf("GetU64: %v, %v", u64, err)
	}
	s, err := r.GetString()
	if err != nil || s != "hello" {
		t.Fatalf("GetString: %q, %v", s, err)
	}
	if r.HasRemaining() {
		t.Fatalf("expected buffer fully consumed")
	}
}

func TestAdvance(t *testing.T) {
	b := buffer.From([]byte{0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3})
	v, err := b.GetU32()
	if err != nil || v != 1 {
		t.Fatalf("got %v, %v", v, err)
	}
	if err := b.Advance(4); err != nil {
		t.Fatal(err)
	}
	v, err = b.GetU32()
	if err != nil || v != 3 {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestPutStringRejectsEmbeddedTerminator(t *testing.T) {
	b := buffer.New()
	if err := b.PutString("bad\x00value"); err == nil {
		t.Fatalf("expected error for embedded terminator byte")
	}
}

func TestGetU8TruncatedBuffer(t *testing.T) {
	b := buffer.From(nil)
	if _, err := b.GetU8(); err == nil {
		t.Fatalf("expected error reading from empty buffer")
	}
}

func TestGetStringUnterminated(t *testing.T) {
	b := buffer.From([]byte("nouterm"))
	if _, err := b.GetString(); err == nil {
		t.Fatalf("expected error for unterminated string")
	}
}
