package gvariant

import "github.com/danderson/gvariant/fragments"

type maybeCodec[T any] struct {
	inner Codec[T]
}

// MaybeOf returns a [Codec] for the GVariant "mT" type: either
// Nothing (a nil *T) or Just a value of T.
//
// Nothing is always the empty byte string. Just a value is encoded as
// inner's own encoding, with a single trailing zero byte appended if
// inner is variable-width (needed so that a decoder can tell apart "0
// bytes" (Nothing) from "variable-width value that happens to encode
// to 0 bytes"). If inner has a fixed size, Just a value is exactly
// that many bytes with no marker, since any nonempty slice
// unambiguously means Just.
func MaybeOf[T any](inner Codec[T]) Codec[*T] {
	return maybeCodec[T]{inner}
}

func (c maybeCodec[T]) Alignment() int { return c.inner.Alignment() }

func (maybeCodec[T]) FixedSize() (int, bool) { return 0, false }

func (c maybeCodec[T]) Decode(dec *fragments.Decoder) (*T, error) {
	buf := dec.Remaining()
	if len(buf) == 0 {
		if _, err := dec.Read(0); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if size, ok := c.inner.FixedSize(); ok {
		if len(buf) != size {
			return nil, malformedErr("maybe", "fixed-size inner expects %d bytes, got %d", size, len(buf))
		}
		sub, err := dec.Sub(0, len(buf))
		if err != nil {
			return nil, err
		}
		v, err := c.inner.Decode(sub)
		if err != nil {
			return nil, err
		}
		if _, err := dec.Read(len(buf)); err != nil {
			return nil, err
		}
		return &v, nil
	}

	if buf[len(buf)-1] != 0 {
		return nil, malformedErr("maybe", "missing trailing zero marker byte")
	}
	sub, err := dec.Sub(0, len(buf)-1)
	if err != nil {
		return nil, err
	}
	v, err := c.inner.Decode(sub)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Read(len(buf)); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c maybeCodec[T]) Encode(v *T, enc *fragments.Encoder) error {
	if v == nil {
		return nil
	}
	if err := c.inner.Encode(*v, enc); err != nil {
		return err
	}
	if _, ok := c.inner.FixedSize(); !ok {
		enc.Uint8(0)
	}
	return nil
}
