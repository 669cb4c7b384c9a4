package gvariant

import "github.com/danderson/gvariant/fragments"

// Encode appends the GVariant encoding of v to out using codec, in
// the given byte order, and returns the extended slice. out may be
// nil.
func Encode[T any](codec Codec[T], out []byte, v T, order fragments.ByteOrder) ([]byte, error) {
	enc := fragments.NewEncoder(out, order)
	if err := codec.Encode(v, enc); err != nil {
		return nil, err
	}
	return enc.Out, nil
}

// Decode decodes a T from buf using codec, in the given byte order.
// buf must contain exactly codec's encoding and nothing else; trailing
// or missing bytes are a [MalformedInputError] for fixed-size codecs,
// since top-level values have no surrounding container to tell a
// decoder where they end.
func Decode[T any](codec Codec[T], buf []byte, order fragments.ByteOrder) (T, error) {
	dec := fragments.NewDecoder(buf, order)
	return codec.Decode(dec)
}
