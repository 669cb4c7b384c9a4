package gvariant

import "github.com/creachadair/mds/mapset"

// validDictKeyCodes is the set of signature type codes permitted as
// the key type of a dict entry. GVariant requires dict entry keys to
// be a basic (non-container) type.
var validDictKeyCodes = mapset.New[byte](
	'b', 'y', 'n', 'q', 'i', 'u', 'x', 't', 'd', 's', 'o', 'g',
)

// basicCodec returns the Value-typed [Codec] for the basic type named
// by code, and true if code names a basic type. Composite codes ('a',
// '(', '{', 'm', 'v') are handled by the signature parser directly,
// since they require recursing into a sub-signature.
func basicCodec(code byte) (Codec[Value], bool) {
	c, ok := basicCodecs[code]
	return c, ok
}

var basicCodecs = map[byte]Codec[Value]{
	'b': Map(BoolCodec(),
		func(b bool) (Value, error) { return Bool(b), nil },
		func(v Value) (bool, error) { return asValue[Bool](v, "b") }),
	'y': Map(Uint8Codec(),
		func(b uint8) (Value, error) { return Byte(b), nil },
		func(v Value) (uint8, error) { b, err := asValue[Byte](v, "y"); return uint8(b), err }),
	'n': Map(Int16Codec(),
		func(i int16) (Value, error) { return Int16(i), nil },
		func(v Value) (int16, error) { i, err := asValue[Int16](v, "n"); return int16(i), err }),
	'q': Map(Uint16Codec(),
		func(u uint16) (Value, error) { return Uint16(u), nil },
		func(v Value) (uint16, error) { u, err := asValue[Uint16](v, "q"); return uint16(u), err }),
	'i': Map(Int32Codec(),
		func(i int32) (Value, error) { return Int32(i), nil },
		func(v Value) (int32, error) { i, err := asValue[Int32](v, "i"); return int32(i), err }),
	'u': Map(Uint32Codec(),
		func(u uint32) (Value, error) { return Uint32(u), nil },
		func(v Value) (uint32, error) { u, err := asValue[Uint32](v, "u"); return uint32(u), err }),
	'x': Map(Int64Codec(),
		func(i int64) (Value, error) { return Int64(i), nil },
		func(v Value) (int64, error) { i, err := asValue[Int64](v, "x"); return int64(i), err }),
	't': Map(Uint64Codec(),
		func(u uint64) (Value, error) { return Uint64(u), nil },
		func(v Value) (uint64, error) { u, err := asValue[Uint64](v, "t"); return uint64(u), err }),
	'd': Map(Float64Codec(),
		func(f float64) (Value, error) { return Float64(f), nil },
		func(v Value) (float64, error) { f, err := asValue[Float64](v, "d"); return float64(f), err }),
	's': Map(StringCodec(),
		func(s string) (Value, error) { return Str(s), nil },
		func(v Value) (string, error) { s, err := asValue[Str](v, "s"); return string(s), err }),
	'o': Map(StringCodec(),
		func(s string) (Value, error) { return ObjectPath(s), nil },
		func(v Value) (string, error) { s, err := asValue[ObjectPath](v, "o"); return string(s), err }),
	'g': Map(StringCodec(),
		func(s string) (Value, error) { return Sig(s), nil },
		func(v Value) (string, error) { s, err := asValue[Sig](v, "g"); return string(s), err }),
}

// asValue type-asserts v to T, returning a [UsageError] that names the
// signature code if v holds some other concrete Value type.
func asValue[T Value](v Value, code string) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, usageErr("cannot encode %T as gvariant type %q", v, code)
	}
	return t, nil
}
