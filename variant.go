package gvariant

import "github.com/danderson/gvariant/fragments"

type variantCodec struct{}

// VariantCodec returns a [Codec] for the GVariant "v" type: a value
// of any type, paired with a signature string describing it.
//
// A variant is encoded as the payload's own bytes, followed by a
// single zero byte, followed by the ASCII signature string (with no
// length prefix or trailing NUL of its own). Decoding locates the
// separator by scanning backward from the end of the slice for the
// last zero byte, since a valid signature string never itself
// contains one; everything before that byte is payload and
// everything after it is signature.
//
// Variant alignment is 8, which is also the maximum alignment any
// GVariant type can have. Consequently the payload always begins at
// an offset that already satisfies its own alignment requirement, no
// matter what type it turns out to be, and needs no further padding
// relative to the start of the variant.
func VariantCodec() Codec[Variant] { return variantCodec{} }

func (variantCodec) Alignment() int { return 8 }

func (variantCodec) FixedSize() (int, bool) { return 0, false }

func (variantCodec) Decode(dec *fragments.Decoder) (Variant, error) {
	buf := dec.Remaining()
	sep := -1
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i] == 0 {
			sep = i
			break
		}
	}
	if sep < 0 {
		return Variant{}, malformedErr("variant", "missing signature separator")
	}

	sig, err := Parse(string(buf[sep+1:]))
	if err != nil {
		return Variant{}, malformedErr("variant", "parsing inner signature: %v", err)
	}

	sub, err := dec.Sub(0, sep)
	if err != nil {
		return Variant{}, err
	}
	v, err := sig.Codec().Decode(sub)
	if err != nil {
		return Variant{}, err
	}
	if _, err := dec.Read(len(buf)); err != nil {
		return Variant{}, err
	}
	return Variant{Sig: sig, Val: v}, nil
}

func (variantCodec) Encode(v Variant, enc *fragments.Encoder) error {
	if v.Sig.IsZero() {
		return usageErr("cannot encode a variant with a zero Signature")
	}
	if err := v.Sig.Codec().Encode(v.Val, enc); err != nil {
		return err
	}
	enc.Uint8(0)
	enc.Write([]byte(v.Sig.String()))
	return nil
}
