package fragments_test

import (
	"bytes"
	"testing"

	"github.com/danderson/gvariant/fragments"
)

func TestDecoderPrimitives(t *testing.T) {
	buf := []byte{
		0x2a,
		0x00, // pad
		0x00, 0x42,
		0x00, 0x00, 0x00, 0x2a,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x42,
	}
	d := fragments.NewDecoder(buf, fragments.BigEndian)

	if got, err := d.Uint8(); err != nil || got != 42 {
		t.Fatalf("Uint8() = %d, %v; want 42, nil", got, err)
	}
	if got, err := d.Uint16(); err != nil || got != 66 {
		t.Fatalf("Uint16() = %d, %v; want 66, nil", got, err)
	}
	if got, err := d.Uint32(); err != nil || got != 42 {
		t.Fatalf("Uint32() = %d, %v; want 42, nil", got, err)
	}
	if got, err := d.Uint64(); err != nil || got != 66 {
		t.Fatalf("Uint64() = %d, %v; want 66, nil", got, err)
	}
	if d.Pos() != len(buf) {
		t.Fatalf("Pos() = %d, want %d", d.Pos(), len(buf))
	}
}

func TestDecoderFloat64(t *testing.T) {
	buf := []byte{0x40, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	d := fragments.NewDecoder(buf, fragments.BigEndian)
	got, err := d.Float64()
	if err != nil {
		t.Fatalf("Float64() err: %v", err)
	}
	if got != 3.25 {
		t.Fatalf("Float64() = %v, want 3.25", got)
	}
}

func TestDecoderUnderflow(t *testing.T) {
	d := fragments.NewDecoder([]byte{0x01}, fragments.LittleEndian)
	if _, err := d.Uint64(); err == nil {
		t.Fatalf("Uint64() on short buffer did not error")
	}
}

func TestDecoderSub(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	d := fragments.NewDecoder(buf, fragments.LittleEndian)
	sub, err := d.Sub(1, 4)
	if err != nil {
		t.Fatalf("Sub() err: %v", err)
	}
	if got, want := sub.Bytes(), buf[1:4]; !bytes.Equal(got, want) {
		t.Fatalf("Sub().Bytes() = % x, want % x", got, want)
	}
	if _, err := d.Sub(0, 10); err == nil {
		t.Fatalf("Sub() with out-of-range end did not error")
	}
}

func TestDecoderOffsetAt(t *testing.T) {
	// Two elements, 1-byte offsets: payload "ab" then offsets 1, 2.
	buf := []byte{'a', 'b', 0x01, 0x02}
	d := fragments.NewDecoder(buf, fragments.LittleEndian)
	last, err := d.OffsetAt(0, 1)
	if err != nil || last != 2 {
		t.Fatalf("OffsetAt(0,1) = %d, %v; want 2, nil", last, err)
	}
	first, err := d.OffsetAt(1, 1)
	if err != nil || first != 1 {
		t.Fatalf("OffsetAt(1,1) = %d, %v; want 1, nil", first, err)
	}
}

func TestOffsetWidth(t *testing.T) {
	tests := []struct {
		sliceLen int
		want     int
	}{
		{0, 1},
		{255, 1},
		{256, 2},
		{1 << 16, 4},
	}
	for _, tc := range tests {
		if got := fragments.OffsetWidth(tc.sliceLen); got != tc.want {
			t.Errorf("OffsetWidth(%d) = %d, want %d", tc.sliceLen, got, tc.want)
		}
	}
}

func TestChooseOffsetWidth(t *testing.T) {
	tests := []struct {
		payloadLen int
		numOffsets int
		want       int
	}{
		{0, 0, 0},
		{10, 1, 1},
		{255, 1, 2}, // 255 + 1*1 = 256, not < 256, so width 1 doesn't fit
		{1 << 16, 1, 4},
	}
	for _, tc := range tests {
		got, err := fragments.ChooseOffsetWidth(tc.payloadLen, tc.numOffsets)
		if err != nil {
			t.Errorf("ChooseOffsetWidth(%d, %d) err: %v", tc.payloadLen, tc.numOffsets, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ChooseOffsetWidth(%d, %d) = %d, want %d", tc.payloadLen, tc.numOffsets, got, tc.want)
		}
	}
}
