package gvariant

import "fmt"

// A Value is a dynamically typed GVariant value, as produced by
// decoding with a [Signature]'s compiled [Codec] rather than with a
// statically typed codec built from this package's factories.
//
// Value's concrete types are [Bool], [Byte], [Int16], [Uint16],
// [Int32], [Uint32], [Int64], [Uint64], [Float64], [Str],
// [ObjectPath], [Sig], [Maybe], [Array], [Tuple], [DictEntry], [Dict],
// and [Variant]. The basic leaf types are comparable, so a Value
// holding one of them can be used as a Go map key or compared with
// ==; the composite types are not: [Array], [Tuple] and [Dict] carry
// slices, and [Maybe], [DictEntry] and [Variant] panic on == when a
// nested part (a slice-carrying Value or a [Signature]) is not
// comparable.
type Value interface {
	isValue()
}

// Bool is the Value form of the GVariant "b" type.
type Bool bool

// Byte is the Value form of the GVariant "y" type.
type Byte uint8

// Int16 is the Value form of the GVariant "n" type.
type Int16 int16

// Uint16 is the Value form of the GVariant "q" type.
type Uint16 uint16

// Int32 is the Value form of the GVariant "i" type.
type Int32 int32

// Uint32 is the Value form of the GVariant "u" type.
type Uint32 uint32

// Int64 is the Value form of the GVariant "x" type.
type Int64 int64

// Uint64 is the Value form of the GVariant "t" type.
type Uint64 uint64

// Float64 is the Value form of the GVariant "d" type.
type Float64 float64

// Str is the Value form of the GVariant "s" type.
type Str string

// ObjectPath is the Value form of the GVariant "o" type. It shares
// string's wire encoding; this package does not validate that the
// text is a well formed object path.
type ObjectPath string

// Sig is the Value form of the GVariant "g" type signature string.
// It shares string's wire encoding.
type Sig string

func (Bool) isValue()       {}
func (Byte) isValue()       {}
func (Int16) isValue()      {}
func (Uint16) isValue()     {}
func (Int32) isValue()      {}
func (Uint32) isValue()     {}
func (Int64) isValue()      {}
func (Uint64) isValue()     {}
func (Float64) isValue()    {}
func (Str) isValue()        {}
func (ObjectPath) isValue() {}
func (Sig) isValue()        {}

// Maybe is the Value form of the GVariant "mT" type: either Nothing
// (Val is nil) or Just a Val of the element type named by Elem.
type Maybe struct {
	Elem Signature
	Val  Value
}

func (Maybe) isValue() {}

// Array is the Value form of the GVariant "aT" type, for any element
// type T other than a dict entry. Elem is the element type's
// signature, carried separately so that an empty array's element type
// is still known.
type Array struct {
	Elem  Signature
	Items []Value
}

func (Array) isValue() {}

// Tuple is the Value form of the GVariant "(T1T2...)" structure type.
// A zero-length Tuple is the GVariant unit type "()".
type Tuple struct {
	Items []Value
}

func (Tuple) isValue() {}

// DictEntry is the Value form of the GVariant "{KV}" type. It appears
// as the element type of a [Dict], and on its own as the value of a
// bare "{KV}" signature.
type DictEntry struct {
	Key Value
	Val Value
}

func (DictEntry) isValue() {}

// Dict is the Value form of an array of dict entries, i.e. "a{KV}".
// It is encoded identically to an [Array] of [DictEntry] values, but
// it additionally enforces that keys are unique and exposes ordered
// lookup. Entries preserves decode (or construction) order.
type Dict struct {
	KeySig Signature
	ValSig Signature
	Entries []DictEntry
}

func (Dict) isValue() {}

// Lookup returns the value associated with key and true, or the zero
// Value and false if key is not present.
func (d Dict) Lookup(key Value) (Value, bool) {
	for _, e := range d.Entries {
		if e.Key == key {
			return e.Val, true
		}
	}
	return nil, false
}

// Variant is the Value form of the GVariant "v" type: a value paired
// with the signature that describes it.
type Variant struct {
	Sig Signature
	Val Value
}

func (Variant) isValue() {}

func (v Maybe) String() string {
	if v.Val == nil {
		return fmt.Sprintf("Nothing(%s)", v.Elem)
	}
	return fmt.Sprintf("Just(%v)", v.Val)
}
