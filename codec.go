package gvariant

import "github.com/danderson/gvariant/fragments"

// A Codec knows how to decode and encode values of type T to and from
// the GVariant wire format.
//
// Codecs are stateless, immutable value objects: constructing one
// (via [BoolCodec], [ArrayOf], [Map], and the other factories in this
// package) performs no I/O and is safe to share across goroutines.
// Decode reads from a borrowed, read-only byte slice and never
// mutates caller-visible state; Encode appends to a caller-owned
// [fragments.Encoder].
type Codec[T any] interface {
	// Alignment returns the byte multiple to which this codec's
	// encoding must be padded within a composite. It is always 1, 2,
	// 4, or 8.
	Alignment() int

	// FixedSize returns the codec's wire size in bytes and true, if
	// the encoded length is a function of the type alone. It returns
	// (0, false) if the encoded length depends on the value's
	// content.
	FixedSize() (size int, ok bool)

	// Decode reads a T out of dec, which is scoped to exactly the
	// bytes this codec is responsible for (the caller has already
	// located the codec's bounded sub-slice within any enclosing
	// composite).
	Decode(dec *fragments.Decoder) (T, error)

	// Encode appends the wire encoding of v to enc. The caller is
	// responsible for positioning enc at a boundary consistent with
	// this codec's Alignment before calling Encode.
	Encode(v T, enc *fragments.Encoder) error
}
