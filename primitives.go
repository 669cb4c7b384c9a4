package gvariant

import "github.com/danderson/gvariant/fragments"

func checkFixedLen(dec *fragments.Decoder, want int, typ string) error {
	if got := len(dec.Remaining()); got != want {
		return malformedErr(typ, "expected %d bytes, got %d", want, got)
	}
	return nil
}

type boolCodec struct{}

// BoolCodec returns a [Codec] for the GVariant "b" type: a single
// byte, zero for false and nonzero for true.
func BoolCodec() Codec[bool] { return boolCodec{} }

func (boolCodec) Alignment() int            { return 1 }
func (boolCodec) FixedSize() (int, bool)    { return 1, true }
func (boolCodec) Decode(dec *fragments.Decoder) (bool, error) {
	if err := checkFixedLen(dec, 1, "bool"); err != nil {
		return false, err
	}
	b, err := dec.Uint8()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}
func (boolCodec) Encode(v bool, enc *fragments.Encoder) error {
	if v {
		enc.Uint8(1)
	} else {
		enc.Uint8(0)
	}
	return nil
}

type uint8Codec struct{}

// Uint8Codec returns a [Codec] for the GVariant "y" type.
func Uint8Codec() Codec[uint8] { return uint8Codec{} }

func (uint8Codec) Alignment() int         { return 1 }
func (uint8Codec) FixedSize() (int, bool) { return 1, true }
func (uint8Codec) Decode(dec *fragments.Decoder) (uint8, error) {
	if err := checkFixedLen(dec, 1, "uint8"); err != nil {
		return 0, err
	}
	return dec.Uint8()
}
func (uint8Codec) Encode(v uint8, enc *fragments.Encoder) error {
	enc.Uint8(v)
	return nil
}

type int16Codec struct{}

// Int16Codec returns a [Codec] for the GVariant "n" type.
func Int16Codec() Codec[int16] { return int16Codec{} }

func (int16Codec) Alignment() int         { return 2 }
func (int16Codec) FixedSize() (int, bool) { return 2, true }
func (int16Codec) Decode(dec *fragments.Decoder) (int16, error) {
	if err := checkFixedLen(dec, 2, "int16"); err != nil {
		return 0, err
	}
	u, err := dec.Uint16()
	return int16(u), err
}
func (int16Codec) Encode(v int16, enc *fragments.Encoder) error {
	enc.Uint16(uint16(v))
	return nil
}

type uint16Codec struct{}

// Uint16Codec returns a [Codec] for the GVariant "q" type.
func Uint16Codec() Codec[uint16] { return uint16Codec{} }

func (uint16Codec) Alignment() int         { return 2 }
func (uint16Codec) FixedSize() (int, bool) { return 2, true }
func (uint16Codec) Decode(dec *fragments.Decoder) (uint16, error) {
	if err := checkFixedLen(dec, 2, "uint16"); err != nil {
		return 0, err
	}
	return dec.Uint16()
}
func (uint16Codec) Encode(v uint16, enc *fragments.Encoder) error {
	enc.Uint16(v)
	return nil
}

type int32Codec struct{}

// Int32Codec returns a [Codec] for the GVariant "i" type.
func Int32Codec() Codec[int32] { return int32Codec{} }

func (int32Codec) Alignment() int         { return 4 }
func (int32Codec) FixedSize() (int, bool) { return 4, true }
func (int32Codec) Decode(dec *fragments.Decoder) (int32, error) {
	if err := checkFixedLen(dec, 4, "int32"); err != nil {
		return 0, err
	}
	u, err := dec.Uint32()
	return int32(u), err
}
func (int32Codec) Encode(v int32, enc *fragments.Encoder) error {
	enc.Uint32(uint32(v))
	return nil
}

type uint32Codec struct{}

// Uint32Codec returns a [Codec] for the GVariant "u" type.
func Uint32Codec() Codec[uint32] { return uint32Codec{} }

func (uint32Codec) Alignment() int         { return 4 }
func (uint32Codec) FixedSize() (int, bool) { return 4, true }
func (uint32Codec) Decode(dec *fragments.Decoder) (uint32, error) {
	if err := checkFixedLen(dec, 4, "uint32"); err != nil {
		return 0, err
	}
	return dec.Uint32()
}
func (uint32Codec) Encode(v uint32, enc *fragments.Encoder) error {
	enc.Uint32(v)
	return nil
}

type int64Codec struct{}

// Int64Codec returns a [Codec] for the GVariant "x" type.
func Int64Codec() Codec[int64] { return int64Codec{} }

func (int64Codec) Alignment() int         { return 8 }
func (int64Codec) FixedSize() (int, bool) { return 8, true }
func (int64Codec) Decode(dec *fragments.Decoder) (int64, error) {
	if err := checkFixedLen(dec, 8, "int64"); err != nil {
		return 0, err
	}
	u, err := dec.Uint64()
	return int64(u), err
}
func (int64Codec) Encode(v int64, enc *fragments.Encoder) error {
	enc.Uint64(uint64(v))
	return nil
}

type uint64Codec struct{}

// Uint64Codec returns a [Codec] for the GVariant "t" type.
func Uint64Codec() Codec[uint64] { return uint64Codec{} }

func (uint64Codec) Alignment() int         { return 8 }
func (uint64Codec) FixedSize() (int, bool) { return 8, true }
func (uint64Codec) Decode(dec *fragments.Decoder) (uint64, error) {
	if err := checkFixedLen(dec, 8, "uint64"); err != nil {
		return 0, err
	}
	return dec.Uint64()
}
func (uint64Codec) Encode(v uint64, enc *fragments.Encoder) error {
	enc.Uint64(v)
	return nil
}

type float64Codec struct{}

// Float64Codec returns a [Codec] for the GVariant "d" type: an
// IEEE-754 double.
func Float64Codec() Codec[float64] { return float64Codec{} }

func (float64Codec) Alignment() int         { return 8 }
func (float64Codec) FixedSize() (int, bool) { return 8, true }
func (float64Codec) Decode(dec *fragments.Decoder) (float64, error) {
	if err := checkFixedLen(dec, 8, "float64"); err != nil {
		return 0, err
	}
	return dec.Float64()
}
func (float64Codec) Encode(v float64, enc *fragments.Encoder) error {
	enc.Float64(v)
	return nil
}

type stringCodec struct{}

// StringCodec returns a [Codec] for the GVariant "s" type (and, with
// identical wire semantics, "o" and "g"): the value's UTF-8 bytes
// followed by a single NUL terminator, with no length prefix.
// Alignment 1, variable width.
func StringCodec() Codec[string] { return stringCodec{} }

func (stringCodec) Alignment() int         { return 1 }
func (stringCodec) FixedSize() (int, bool) { return 0, false }
func (stringCodec) Decode(dec *fragments.Decoder) (string, error) {
	buf := dec.Remaining()
	if len(buf) == 0 || buf[len(buf)-1] != 0 {
		return "", malformedErr("string", "missing trailing NUL")
	}
	s := string(buf[:len(buf)-1])
	if _, err := dec.Read(len(buf)); err != nil {
		return "", err
	}
	return s, nil
}
func (stringCodec) Encode(v string, enc *fragments.Encoder) error {
	enc.CString(v)
	return nil
}
