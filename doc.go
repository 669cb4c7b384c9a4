// Package gvariant decodes and encodes values in the GVariant binary
// serialization format, as defined by the GNOME project.
//
// GVariant describes values with a compact type grammar called a
// signature ("b", "ay", "a{sv}", ...). [Parse] compiles a signature
// string into a [Codec] tree over the dynamically typed [Value];
// [Signature.Codec] exposes that tree for decoding and encoding.
//
// Callers who already know their value's shape at compile time can
// instead build a [Codec] tree directly from the factories in this
// package ([BoolCodec], [Uint8Codec], [ArrayOf], [TupleOf],
// [MaybeOf], ...) and use [Map] to project the decoded shape onto a
// domain-specific Go type. This avoids both reflection and the
// indirection of the dynamic [Value] representation.
//
// # Wire format
//
// Every [Codec] has an alignment (1, 2, 4, or 8) and either a fixed
// size or none, meaning its encoded length depends on its content.
// Composite types store enough framing information — a trailer of
// little-endian offsets, or a single marker byte — to let a decoder
// find the boundaries of their variable-width children without a
// separate length prefix. See the per-type documentation on
// [ArrayOf], [TupleOf], [MaybeOf], and [VariantCodec] for the exact
// layout rules.
//
// # Byte order
//
// Multi-byte integers and floats are read and written in whatever
// [fragments.ByteOrder] is threaded through a given [Codec.Decode] or
// [Codec.Encode] call; GVariant itself does not mandate an order.
// Framing offsets are always little-endian, regardless of that
// choice.
package gvariant
