package fragments

import (
	"fmt"
	"math"
)

// A Decoder reads GVariant wire data out of a single bounded, borrowed
// byte slice.
//
// Unlike a stream decoder, GVariant's variable-width containers store
// their framing information (element counts, end offsets) in a
// trailer at the *end* of their slice, so a Decoder must be able to
// address its buffer randomly rather than only sequentially. Methods
// that advance the read cursor (used for the front-to-back portion of
// primitive and tuple decoding) insert padding as needed to conform to
// GVariant alignment rules; [Decoder.Bytes] and [Decoder.OffsetAt]
// address the buffer directly and do not touch the cursor.
type Decoder struct {
	// Order is the byte order used when decoding multi-byte
	// primitive values. It has no effect on framing offsets, which
	// are always little-endian.
	Order ByteOrder

	buf []byte
	pos int
}

// NewDecoder returns a Decoder over buf (not copied; buf must not be
// mutated while the Decoder or any value derived from it is in use).
func NewDecoder(buf []byte, order ByteOrder) *Decoder {
	return &Decoder{Order: order, buf: buf}
}

// Len returns the total length of the Decoder's underlying slice.
func (d *Decoder) Len() int { return len(d.buf) }

// Pos returns the current read cursor, in bytes from the start of the
// slice.
func (d *Decoder) Pos() int { return d.pos }

// Bytes returns the full underlying slice, unaffected by the read
// cursor.
func (d *Decoder) Bytes() []byte { return d.buf }

// Remaining returns the portion of the slice at and after the current
// read cursor.
func (d *Decoder) Remaining() []byte { return d.buf[d.pos:] }

// Sub returns a new Decoder over buf[start:end], sharing d's byte
// order. start and end must satisfy 0 <= start <= end <= d.Len().
func (d *Decoder) Sub(start, end int) (*Decoder, error) {
	if start < 0 || end > len(d.buf) || start > end {
		return nil, &BufferUnderflowError{Wanted: end - start, Available: len(d.buf) - start}
	}
	return NewDecoder(d.buf[start:end], d.Order), nil
}

// Pad advances the read cursor as needed to make the next read happen
// at a multiple of align bytes relative to the start of the slice. If
// the cursor is already correctly aligned, it is not moved.
func (d *Decoder) Pad(align int) error {
	extra := d.pos % align
	if extra == 0 {
		return nil
	}
	skip := align - extra
	if d.pos+skip > len(d.buf) {
		return &BufferUnderflowError{Wanted: skip, Available: len(d.buf) - d.pos}
	}
	d.pos += skip
	return nil
}

// Read consumes and returns the next n bytes with no padding or
// framing.
func (d *Decoder) Read(n int) ([]byte, error) {
	if d.pos+n > len(d.buf) {
		return nil, &BufferUnderflowError{Wanted: n, Available: len(d.buf) - d.pos}
	}
	bs := d.buf[d.pos : d.pos+n]
	d.pos += n
	return bs, nil
}

// Uint8 reads a uint8.
func (d *Decoder) Uint8() (uint8, error) {
	bs, err := d.Read(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

// Uint16 pads to a 2-byte boundary and reads a uint16 in d.Order.
func (d *Decoder) Uint16() (uint16, error) {
	if err := d.Pad(2); err != nil {
		return 0, err
	}
	bs, err := d.Read(2)
	if err != nil {
		return 0, err
	}
	return d.Order.Uint16(bs), nil
}

// Uint32 pads to a 4-byte boundary and reads a uint32 in d.Order.
func (d *Decoder) Uint32() (uint32, error) {
	if err := d.Pad(4); err != nil {
		return 0, err
	}
	bs, err := d.Read(4)
	if err != nil {
		return 0, err
	}
	return d.Order.Uint32(bs), nil
}

// Uint64 pads to an 8-byte boundary and reads a uint64 in d.Order.
func (d *Decoder) Uint64() (uint64, error) {
	if err := d.Pad(8); err != nil {
		return 0, err
	}
	bs, err := d.Read(8)
	if err != nil {
		return 0, err
	}
	return d.Order.Uint64(bs), nil
}

// Float64 pads to an 8-byte boundary and reads an IEEE-754 double in
// d.Order.
func (d *Decoder) Float64() (float64, error) {
	bits, err := d.Uint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// OffsetAt reads the idx-th framing offset of the given width, per
// [OffsetWidth], counting back from the end of the slice: idx 0 is
// the offset stored in the slice's last width bytes. It does not
// touch the read cursor.
func (d *Decoder) OffsetAt(idx, width int) (int, error) {
	end := len(d.buf) - idx*width
	start := end - width
	if start < 0 {
		return 0, &BufferUnderflowError{Wanted: width, Available: end}
	}
	bs := d.buf[start:end]
	switch width {
	case 1:
		return int(bs[0]), nil
	case 2:
		return int(LittleEndian.Uint16(bs)), nil
	case 4:
		return int(LittleEndian.Uint32(bs)), nil
	default:
		return 0, fmt.Errorf("fragments: invalid framing offset width %d", width)
	}
}
