package fragments

import "math"

// An Encoder accumulates a GVariant-encoded byte sequence.
//
// Methods insert padding as needed to conform to GVariant alignment
// rules, except for [Encoder.Write] which outputs bytes verbatim.
type Encoder struct {
	// Order is the byte order used when encoding multi-byte
	// primitive values. It has no effect on framing offsets, which
	// are always written little-endian regardless of Order.
	Order ByteOrder
	// Out is the encoded output so far.
	Out []byte
}

// NewEncoder returns an Encoder that appends to out (which may be
// nil) using the given byte order for multi-byte primitives.
func NewEncoder(out []byte, order ByteOrder) *Encoder {
	return &Encoder{Order: order, Out: out}
}

// Pad inserts padding bytes as needed to make the message a multiple
// of align bytes. If the message is already correctly aligned, no
// padding is inserted.
func (e *Encoder) Pad(align int) {
	extra := len(e.Out) % align
	if extra == 0 {
		return
	}
	var pad [8]byte
	e.Out = append(e.Out, pad[:align-extra]...)
	return
}

// Write writes bs as-is to the output. It is the caller's
// responsibility to ensure correct padding and encoding.
func (e *Encoder) Write(bs []byte) {
	e.Out = append(e.Out, bs...)
}

// CString appends the UTF-8 bytes of s followed by a single NUL
// terminator, with no length prefix and no alignment padding (the
// wire form of strings, object paths, and signature strings).
func (e *Encoder) CString(s string) {
	e.Out = append(e.Out, s...)
	e.Out = append(e.Out, 0)
}

// Uint8 writes a uint8.
func (e *Encoder) Uint8(u8 uint8) {
	e.Out = append(e.Out, u8)
}

// Uint16 writes uint16.
func (e *Encoder) Uint16(u16 uint16) {
	e.Pad(2)
	e.Out = e.Order.AppendUint16(e.Out, u16)
}

// Uint32 writes uint32.
func (e *Encoder) Uint32(u32 uint32) {
	e.Pad(4)
	e.Out = e.Order.AppendUint32(e.Out, u32)
}

// Uint64 writes uint64.
func (e *Encoder) Uint64(u64 uint64) {
	e.Pad(8)
	e.Out = e.Order.AppendUint64(e.Out, u64)
}

// Float64 pads to an 8-byte boundary and appends f as an IEEE-754
// double in e.Order.
func (e *Encoder) Float64(f float64) {
	e.Pad(8)
	e.Out = e.Order.AppendUint64(e.Out, math.Float64bits(f))
}

// Offset appends a little-endian framing offset of the given width (1,
// 2, or 4 bytes; see [OffsetWidth]). Framing offsets are never padded
// and are always little-endian, regardless of [Encoder.Order].
func (e *Encoder) Offset(off uint64, width int) {
	switch width {
	case 1:
		e.Out = append(e.Out, uint8(off))
	case 2:
		e.Out = LittleEndian.AppendUint16(e.Out, uint16(off))
	case 4:
		e.Out = LittleEndian.AppendUint32(e.Out, uint32(off))
	default:
		panic("fragments: invalid framing offset width")
	}
}
