package gvariant

import "github.com/danderson/gvariant/fragments"

type arrayCodec[T any] struct {
	elem Codec[T]
}

// ArrayOf returns a [Codec] for the GVariant "aT" type, where T is
// elem's Go type.
//
// If elem has a fixed size, the array is encoded as a flat
// concatenation of elements with no framing: element count is
// recovered at decode time by dividing the slice length by the
// element size. Otherwise the array is encoded as the concatenation
// of its (individually aligned) elements followed by a trailer of
// little-endian framing offsets, one per element, giving each
// element's ending byte position relative to the start of the array.
// The offset width (1, 2, or 4 bytes) is the smallest that can
// address the fully encoded array; see [fragments.ChooseOffsetWidth].
func ArrayOf[T any](elem Codec[T]) Codec[[]T] {
	return arrayCodec[T]{elem}
}

func (c arrayCodec[T]) Alignment() int { return c.elem.Alignment() }

func (arrayCodec[T]) FixedSize() (int, bool) { return 0, false }

func (c arrayCodec[T]) Decode(dec *fragments.Decoder) ([]T, error) {
	buf := dec.Remaining()
	if len(buf) == 0 {
		return []T{}, nil
	}

	if size, ok := c.elem.FixedSize(); ok {
		return c.decodeFixed(dec, buf, size)
	}
	return c.decodeVariable(dec, buf)
}

func (c arrayCodec[T]) decodeFixed(dec *fragments.Decoder, buf []byte, size int) ([]T, error) {
	if size == 0 {
		return nil, malformedErr("array", "array of fixed-zero-size elements must be empty, got %d bytes", len(buf))
	}
	if len(buf)%size != 0 {
		return nil, malformedErr("array", "length %d is not a multiple of element size %d", len(buf), size)
	}
	n := len(buf) / size
	out := make([]T, n)
	for i := range out {
		sub, err := dec.Sub(i*size, (i+1)*size)
		if err != nil {
			return nil, err
		}
		v, err := c.elem.Decode(sub)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	if _, err := dec.Read(len(buf)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c arrayCodec[T]) decodeVariable(dec *fragments.Decoder, buf []byte) ([]T, error) {
	width := fragments.OffsetWidth(len(buf))
	last, err := dec.OffsetAt(0, width)
	if err != nil {
		return nil, malformedErr("array", "reading final framing offset: %v", err)
	}
	dataLen := last
	if dataLen < 0 || dataLen > len(buf) {
		return nil, malformedErr("array", "final framing offset %d out of range for %d byte array", dataLen, len(buf))
	}
	trailerLen := len(buf) - dataLen
	if trailerLen%width != 0 {
		return nil, malformedErr("array", "offset trailer of %d bytes is not a multiple of offset width %d", trailerLen, width)
	}
	n := trailerLen / width

	align := c.elem.Alignment()
	offsets := make([]int, n)
	for i := 0; i < n; i++ {
		off, err := dec.OffsetAt(n-1-i, width)
		if err != nil {
			return nil, err
		}
		offsets[i] = off
	}

	out := make([]T, n)
	start := 0
	for i := 0; i < n; i++ {
		start = alignUp(start, align)
		end := offsets[i]
		if end < start || end > dataLen {
			return nil, malformedErr("array", "element %d framing offset %d out of range", i, end)
		}
		sub, err := dec.Sub(start, end)
		if err != nil {
			return nil, err
		}
		v, err := c.elem.Decode(sub)
		if err != nil {
			return nil, err
		}
		out[i] = v
		start = end
	}
	if _, err := dec.Read(len(buf)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c arrayCodec[T]) Encode(v []T, enc *fragments.Encoder) error {
	if size, ok := c.elem.FixedSize(); ok {
		if size == 0 {
			if len(v) != 0 {
				return usageErr("cannot encode %d elements of fixed-zero-size type", len(v))
			}
			return nil
		}
		for _, item := range v {
			enc.Pad(c.elem.Alignment())
			if err := c.elem.Encode(item, enc); err != nil {
				return err
			}
		}
		return nil
	}

	start := len(enc.Out)
	offsets := make([]int, len(v))
	for i, item := range v {
		enc.Pad(c.elem.Alignment())
		if err := c.elem.Encode(item, enc); err != nil {
			return err
		}
		offsets[i] = len(enc.Out) - start
	}
	payloadLen := len(enc.Out) - start
	width, err := fragments.ChooseOffsetWidth(payloadLen, len(offsets))
	if err != nil {
		return err
	}
	for _, off := range offsets {
		enc.Offset(uint64(off), width)
	}
	return nil
}

func alignUp(pos, align int) int {
	if align <= 1 {
		return pos
	}
	if r := pos % align; r != 0 {
		return pos + (align - r)
	}
	return pos
}
