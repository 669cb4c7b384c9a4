package gvariant

import "strings"

// A Signature describes the type of a GVariant value as a compiled
// [Codec] over [Value], along with the type grammar string it was
// parsed from.
type Signature struct {
	str   string
	codec Codec[Value]
}

// Parse parses a single complete GVariant type signature, such as
// "s", "a{sv}", or "(ii)", and compiles it into a [Codec] over
// [Value]. It returns a [SignatureParseError] if sig contains
// anything other than exactly one complete type.
//
// Results are memoized process-wide, since compiling a signature
// walks its entire grammar tree and callers typically parse the same
// small set of signatures repeatedly.
func Parse(sig string) (Signature, error) {
	if e, ok := signatures.get(sig); ok {
		if e.err != nil {
			return Signature{}, e.err
		}
		return Signature{str: sig, codec: e.codec}, nil
	}

	s, rest, err := parseOne(sig, sig)
	if err == nil && rest != "" {
		err = &SignatureParseError{Signature: sig, Pos: len(sig) - len(rest), Reason: "unexpected trailing data"}
	}
	if err != nil {
		signatures.set(sig, sigCacheEntry{err: err})
		return Signature{}, err
	}
	signatures.set(sig, sigCacheEntry{codec: s.codec})
	return s, nil
}

// ParseBytes is [Parse] for a raw signature byte string, as found in
// the trailer of an encoded [Variant].
func ParseBytes(b []byte) (Signature, error) {
	return Parse(string(b))
}

func mustParse(sig string) Signature {
	s, err := Parse(sig)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the signature's original grammar string.
func (s Signature) String() string { return s.str }

// Codec returns the compiled [Codec] for this signature's type.
func (s Signature) Codec() Codec[Value] { return s.codec }

// IsZero reports whether s is the zero Signature, which does not name
// any type.
func (s Signature) IsZero() bool { return s.codec == nil }

// parseOne consumes one complete type from the front of sig (a
// suffix of orig, used only to compute error positions) and returns
// its compiled Signature along with whatever of sig remains
// unconsumed.
func parseOne(orig, sig string) (Signature, string, error) {
	if sig == "" {
		return Signature{}, "", &SignatureParseError{Signature: orig, Pos: len(orig), Reason: "expected a type, found end of signature"}
	}
	c := sig[0]

	if codec, ok := basicCodec(c); ok {
		return Signature{str: string(c), codec: codec}, sig[1:], nil
	}

	switch c {
	case 'v':
		codec := Map(VariantCodec(),
			func(v Variant) (Value, error) { return v, nil },
			func(v Value) (Variant, error) { return asValue[Variant](v, "v") })
		return Signature{str: "v", codec: codec}, sig[1:], nil

	case 'm':
		elem, rest, err := parseOne(orig, sig[1:])
		if err != nil {
			return Signature{}, "", err
		}
		str := "m" + elem.str
		mc := MaybeOf(elem.codec)
		codec := Map(mc,
			func(p *Value) (Value, error) {
				if p == nil {
					return Maybe{Elem: elem}, nil
				}
				return Maybe{Elem: elem, Val: *p}, nil
			},
			func(v Value) (*Value, error) {
				m, err := asValue[Maybe](v, str)
				if err != nil {
					return nil, err
				}
				if m.Val == nil {
					return nil, nil
				}
				val := m.Val
				return &val, nil
			})
		return Signature{str: str, codec: codec}, rest, nil

	case 'a':
		if len(sig) > 1 && sig[1] == '{' {
			return parseDict(orig, sig)
		}
		elem, rest, err := parseOne(orig, sig[1:])
		if err != nil {
			return Signature{}, "", err
		}
		str := "a" + elem.str
		ac := ArrayOf(elem.codec)
		codec := Map(ac,
			func(items []Value) (Value, error) { return Array{Elem: elem, Items: items}, nil },
			func(v Value) ([]Value, error) {
				a, err := asValue[Array](v, str)
				if err != nil {
					return nil, err
				}
				return a.Items, nil
			})
		return Signature{str: str, codec: codec}, rest, nil

	case '(':
		var (
			comps []Codec[Value]
			parts []string
			rest  = sig[1:]
		)
		for rest != "" && rest[0] != ')' {
			comp, r, err := parseOne(orig, rest)
			if err != nil {
				return Signature{}, "", err
			}
			comps = append(comps, comp.codec)
			parts = append(parts, comp.str)
			rest = r
		}
		if rest == "" {
			return Signature{}, "", &SignatureParseError{Signature: orig, Pos: len(orig), Reason: "missing closing ) in structure type"}
		}
		rest = rest[1:]
		str := "(" + strings.Join(parts, "") + ")"
		tc := TupleOf(comps...)
		codec := Map(tc,
			func(t Tuple) (Value, error) { return t, nil },
			func(v Value) (Tuple, error) { return asValue[Tuple](v, str) })
		return Signature{str: str, codec: codec}, rest, nil

	case '{':
		return parseDictEntry(orig, sig)

	default:
		return Signature{}, "", &SignatureParseError{Signature: orig, Pos: len(orig) - len(sig), Reason: "unknown type code " + string(c)}
	}
}

// parseDictKV parses the "{K V}" body shared by a bare dict-entry type
// and the "a{KV}" dictionary shorthand. sig[0] must be '{'. It returns
// the key and value Signatures and whatever follows the closing '}'.
func parseDictKV(orig, sig string) (Signature, Signature, string, error) {
	rest := sig[1:]
	keySig, rest, err := parseOne(orig, rest)
	if err != nil {
		return Signature{}, Signature{}, "", err
	}
	if keySig.str == "" || len(keySig.str) != 1 || !validDictKeyCodes.Has(keySig.str[0]) {
		return Signature{}, Signature{}, "", &SignatureParseError{Signature: orig, Pos: len(orig) - len(sig), Reason: "dict entry key must be a basic type"}
	}
	valSig, rest, err := parseOne(orig, rest)
	if err != nil {
		return Signature{}, Signature{}, "", err
	}
	if rest == "" || rest[0] != '}' {
		return Signature{}, Signature{}, "", &SignatureParseError{Signature: orig, Pos: len(orig) - len(rest), Reason: "missing closing } in dict entry type"}
	}
	return keySig, valSig, rest[1:], nil
}

// parseDictEntry parses a bare "{K V}" dict-entry type, the standalone
// signature for a [DictEntry] value found outside of an enclosing
// array. sig[0] must be '{'.
func parseDictEntry(orig, sig string) (Signature, string, error) {
	keySig, valSig, rest, err := parseDictKV(orig, sig)
	if err != nil {
		return Signature{}, "", err
	}
	str := "{" + keySig.str + valSig.str + "}"
	ec := DictEntryOf(keySig.codec, valSig.codec)
	codec := Map(ec,
		func(e DictEntry) (Value, error) { return e, nil },
		func(v Value) (DictEntry, error) { return asValue[DictEntry](v, str) })
	return Signature{str: str, codec: codec}, rest, nil
}

func parseDict(orig, sig string) (Signature, string, error) {
	// sig[0] == 'a', sig[1] == '{'
	keySig, valSig, rest, err := parseDictKV(orig, sig[1:])
	if err != nil {
		return Signature{}, "", err
	}
	str := "a{" + keySig.str + valSig.str + "}"
	dc := DictOf(keySig, valSig, keySig.codec, valSig.codec)
	codec := Map(dc,
		func(d Dict) (Value, error) { return d, nil },
		func(v Value) (Dict, error) { return asValue[Dict](v, str) })
	return Signature{str: str, codec: codec}, rest, nil
}
