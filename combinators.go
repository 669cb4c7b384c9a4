package gvariant

import "github.com/danderson/gvariant/fragments"

type byteOrderCodec[T any] struct {
	inner Codec[T]
	order fragments.ByteOrder
}

// WithByteOrder wraps inner so that its multi-byte primitives are
// always decoded and encoded in the given order, regardless of the
// order threaded in by the caller. It does not affect framing
// offsets, which remain little-endian; alignment and fixed size are
// unchanged.
func WithByteOrder[T any](inner Codec[T], order fragments.ByteOrder) Codec[T] {
	return byteOrderCodec[T]{inner, order}
}

func (c byteOrderCodec[T]) Alignment() int          { return c.inner.Alignment() }
func (c byteOrderCodec[T]) FixedSize() (int, bool)  { return c.inner.FixedSize() }

func (c byteOrderCodec[T]) Decode(dec *fragments.Decoder) (T, error) {
	buf := dec.Remaining()
	forced := fragments.NewDecoder(buf, c.order)
	v, err := c.inner.Decode(forced)
	if err != nil {
		var zero T
		return zero, err
	}
	// dec is scoped to exactly this codec's bytes, so consume all of
	// them regardless of how far forced's own cursor ended up.
	if _, err := dec.Read(len(buf)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func (c byteOrderCodec[T]) Encode(v T, enc *fragments.Encoder) error {
	forced := fragments.NewEncoder(enc.Out, c.order)
	if err := c.inner.Encode(v, forced); err != nil {
		return err
	}
	enc.Out = forced.Out
	return nil
}

type mapCodec[T, U any] struct {
	inner      Codec[T]
	decodeMap  func(T) (U, error)
	encodeMap  func(U) (T, error)
}

// Map adapts a Codec[T] into a Codec[U] by post-processing decoded
// values with decodeMap and pre-processing values with encodeMap
// before encoding. Alignment and fixed size are inherited from inner.
// Used to wrap raw wire shapes into typed newtypes, enums, or domain
// records.
func Map[T, U any](inner Codec[T], decodeMap func(T) (U, error), encodeMap func(U) (T, error)) Codec[U] {
	return mapCodec[T, U]{inner, decodeMap, encodeMap}
}

func (c mapCodec[T, U]) Alignment() int         { return c.inner.Alignment() }
func (c mapCodec[T, U]) FixedSize() (int, bool) { return c.inner.FixedSize() }

func (c mapCodec[T, U]) Decode(dec *fragments.Decoder) (U, error) {
	t, err := c.inner.Decode(dec)
	if err != nil {
		var zero U
		return zero, err
	}
	return c.decodeMap(t)
}

func (c mapCodec[T, U]) Encode(v U, enc *fragments.Encoder) error {
	t, err := c.encodeMap(v)
	if err != nil {
		return err
	}
	return c.inner.Encode(t, enc)
}

type contramapCodec[T any] struct {
	inner           Codec[T]
	decodeTransform func([]byte) ([]byte, error)
	encodeTransform func([]byte) ([]byte, error)
}

// Contramap wraps inner so that the raw bytes it sees are
// transformed before use: decodeTransform runs on the input slice
// before inner.Decode sees it, and encodeTransform runs on inner's
// encoded output before it is appended to the caller's buffer. Used
// to slice windows of a buffer or apply reversible byte transforms
// such as compression.
//
// Alignment and fixed size are inherited from inner. A transform that
// changes length (e.g. compression) therefore requires inner to
// report itself as variable-width, since the wrapped codec's own
// FixedSize would otherwise disagree with the bytes actually
// produced.
func Contramap[T any](inner Codec[T], decodeTransform, encodeTransform func([]byte) ([]byte, error)) Codec[T] {
	return contramapCodec[T]{inner, decodeTransform, encodeTransform}
}

func (c contramapCodec[T]) Alignment() int         { return c.inner.Alignment() }
func (c contramapCodec[T]) FixedSize() (int, bool) { return c.inner.FixedSize() }

func (c contramapCodec[T]) Decode(dec *fragments.Decoder) (T, error) {
	raw, err := c.decodeTransform(dec.Remaining())
	if err != nil {
		var zero T
		return zero, err
	}
	sub := fragments.NewDecoder(raw, dec.Order)
	v, err := c.inner.Decode(sub)
	if err != nil {
		var zero T
		return zero, err
	}
	if _, err := dec.Read(len(dec.Remaining())); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func (c contramapCodec[T]) Encode(v T, enc *fragments.Encoder) error {
	tmp := fragments.NewEncoder(nil, enc.Order)
	if err := c.inner.Encode(v, tmp); err != nil {
		return err
	}
	out, err := c.encodeTransform(tmp.Out)
	if err != nil {
		return err
	}
	enc.Write(out)
	return nil
}

type predicateCodec[T any] struct {
	decodePredicate func([]byte) bool
	encodeSelect    func(T) bool
	ifTrue, ifElse  Codec[T]
}

// Predicate dispatches decoding between two codecs based on
// decodePredicate's inspection of the raw input bytes, and dispatches
// encoding between them based on encodeSelect's inspection of the
// value to encode.
//
// The source format this library's design is modeled on has no
// principled inverse for a decode-time-only predicate codec: it
// always encodes via one fixed branch regardless of what was
// originally decoded. That asymmetry is a foot-gun, so Predicate
// instead requires the caller to supply an explicit encodeSelect,
// making the encode-side choice a deliberate decision rather than an
// inherited ambiguity.
//
// ifTrue and ifElse must agree on Alignment and FixedSize; Predicate
// returns a [UsageError] if they do not.
func Predicate[T any](decodePredicate func([]byte) bool, encodeSelect func(T) bool, ifTrue, ifElse Codec[T]) (Codec[T], error) {
	if ifTrue.Alignment() != ifElse.Alignment() {
		return nil, usageErr("predicate branches have different alignment (%d vs %d)", ifTrue.Alignment(), ifElse.Alignment())
	}
	tSize, tOK := ifTrue.FixedSize()
	eSize, eOK := ifElse.FixedSize()
	if tOK != eOK || tSize != eSize {
		return nil, usageErr("predicate branches have incompatible fixed size")
	}
	return predicateCodec[T]{decodePredicate, encodeSelect, ifTrue, ifElse}, nil
}

func (c predicateCodec[T]) Alignment() int         { return c.ifTrue.Alignment() }
func (c predicateCodec[T]) FixedSize() (int, bool) { return c.ifTrue.FixedSize() }

func (c predicateCodec[T]) Decode(dec *fragments.Decoder) (T, error) {
	if c.decodePredicate(dec.Remaining()) {
		return c.ifTrue.Decode(dec)
	}
	return c.ifElse.Decode(dec)
}

func (c predicateCodec[T]) Encode(v T, enc *fragments.Encoder) error {
	if c.encodeSelect(v) {
		return c.ifTrue.Encode(v, enc)
	}
	return c.ifElse.Encode(v, enc)
}
