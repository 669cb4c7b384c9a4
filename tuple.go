package gvariant

import "github.com/danderson/gvariant/fragments"

type tupleCodec struct {
	components []Codec[Value]
	// offsetIdx[i] is the trailer slot (0-based, in field order) that
	// holds the end offset for component i, or -1 if component i needs
	// no stored offset (it is fixed-size, or it is the last
	// component).
	offsetIdx []int
	numOffsets int
	align int
	fixedSize int
	isFixed bool
}

// TupleOf returns a [Codec] for the GVariant "(T1T2...)" structure
// type, over the heterogeneous positional list [Tuple]. A structure
// of zero components is GVariant's unit type "()", which has the
// fixed size 1 and is encoded as a single NUL byte.
//
// Structure alignment is the maximum alignment of its components (1
// for the unit type). Components with a fixed size are packed with no
// framing; each other component but the last gets an entry in a
// trailer of little-endian end offsets, stored in the reverse of
// field order so that a decoder reading the trailer from the end of
// the buffer recovers them in field order. The structure's last
// component never needs a stored offset: its end is implicitly the
// start of the offsets trailer.
func TupleOf(components ...Codec[Value]) Codec[Tuple] {
	c := &tupleCodec{components: components}
	c.offsetIdx = make([]int, len(components))

	align := 1
	for _, comp := range components {
		if a := comp.Alignment(); a > align {
			align = a
		}
	}
	c.align = align

	slot := 0
	for i, comp := range components {
		_, fixed := comp.FixedSize()
		if i == len(components)-1 || fixed {
			c.offsetIdx[i] = -1
		} else {
			c.offsetIdx[i] = slot
			slot++
		}
	}
	c.numOffsets = slot

	c.fixedSize, c.isFixed = tupleFixedSize(components, align)
	return c
}

func tupleFixedSize(components []Codec[Value], align int) (int, bool) {
	if len(components) == 0 {
		return 1, true
	}
	pos := 0
	for _, comp := range components {
		size, ok := comp.FixedSize()
		if !ok {
			return 0, false
		}
		pos = alignUp(pos, comp.Alignment())
		pos += size
	}
	pos = alignUp(pos, align)
	return pos, true
}

func (c *tupleCodec) Alignment() int { return c.align }

func (c *tupleCodec) FixedSize() (int, bool) {
	if c.isFixed {
		return c.fixedSize, true
	}
	return 0, false
}

func (c *tupleCodec) Decode(dec *fragments.Decoder) (Tuple, error) {
	if len(c.components) == 0 {
		if err := checkFixedLen(dec, 1, "tuple"); err != nil {
			return Tuple{}, err
		}
		if _, err := dec.Read(1); err != nil {
			return Tuple{}, err
		}
		return Tuple{Items: []Value{}}, nil
	}

	buf := dec.Remaining()
	if c.isFixed && len(buf) != c.fixedSize {
		return Tuple{}, malformedErr("tuple", "expected %d bytes, got %d", c.fixedSize, len(buf))
	}
	width := 0
	dataLen := len(buf)
	if c.numOffsets > 0 {
		width = fragments.OffsetWidth(len(buf))
		trailerLen := c.numOffsets * width
		if trailerLen > len(buf) {
			return Tuple{}, malformedErr("tuple", "offset trailer of %d bytes longer than %d byte buffer", trailerLen, len(buf))
		}
		dataLen = len(buf) - trailerLen
	}

	offsets := make([]int, c.numOffsets)
	for j := 0; j < c.numOffsets; j++ {
		off, err := dec.OffsetAt(j, width)
		if err != nil {
			return Tuple{}, err
		}
		offsets[j] = off
	}

	items := make([]Value, len(c.components))
	pos := 0
	for i, comp := range c.components {
		pos = alignUp(pos, comp.Alignment())
		var end int
		if idx := c.offsetIdx[i]; idx >= 0 {
			end = offsets[idx]
		} else if size, ok := comp.FixedSize(); ok {
			end = pos + size
		} else {
			end = dataLen
		}
		if end < pos || end > dataLen {
			return Tuple{}, malformedErr("tuple", "component %d framing offset %d out of range", i, end)
		}
		sub, err := dec.Sub(pos, end)
		if err != nil {
			return Tuple{}, err
		}
		v, err := comp.Decode(sub)
		if err != nil {
			return Tuple{}, err
		}
		items[i] = v
		pos = end
	}

	if _, err := dec.Read(len(buf)); err != nil {
		return Tuple{}, err
	}
	return Tuple{Items: items}, nil
}

func (c *tupleCodec) Encode(v Tuple, enc *fragments.Encoder) error {
	if len(c.components) == 0 {
		enc.Uint8(0)
		return nil
	}
	if len(v.Items) != len(c.components) {
		return usageErr("tuple has %d components, got %d values", len(c.components), len(v.Items))
	}

	start := len(enc.Out)
	offsets := make([]int, c.numOffsets)
	for i, comp := range c.components {
		enc.Pad(comp.Alignment())
		if err := comp.Encode(v.Items[i], enc); err != nil {
			return err
		}
		if idx := c.offsetIdx[i]; idx >= 0 {
			offsets[idx] = len(enc.Out) - start
		}
	}

	if c.isFixed {
		enc.Pad(c.align)
	}
	if c.numOffsets == 0 {
		return nil
	}
	payloadLen := len(enc.Out) - start
	width, err := fragments.ChooseOffsetWidth(payloadLen, c.numOffsets)
	if err != nil {
		return err
	}
	for j := c.numOffsets - 1; j >= 0; j-- {
		enc.Offset(uint64(offsets[j]), width)
	}
	return nil
}
