package gvariant

// DictEntryOf returns a [Codec] for the GVariant "{KV}" dict entry
// type. A dict entry is encoded identically to a two-component
// [TupleOf](key, val); it decodes to a [DictEntry] rather than a
// [Tuple].
func DictEntryOf(key, val Codec[Value]) Codec[DictEntry] {
	pair := TupleOf(key, val)
	return Map(pair,
		func(t Tuple) (DictEntry, error) { return DictEntry{Key: t.Items[0], Val: t.Items[1]}, nil },
		func(e DictEntry) (Tuple, error) { return Tuple{Items: []Value{e.Key, e.Val}}, nil })
}

// DictOf returns a [Codec] for the GVariant "a{KV}" dictionary
// shorthand: an array of dict entries, decoded (and re-checked on
// encode) for unique keys. keySig and valSig are recorded on the
// resulting [Dict] so that an empty dictionary still carries its
// element type.
func DictOf(keySig, valSig Signature, key, val Codec[Value]) Codec[Dict] {
	entries := ArrayOf(DictEntryOf(key, val))
	return Map(entries,
		func(es []DictEntry) (Dict, error) {
			if err := checkUniqueKeys(es); err != nil {
				return Dict{}, err
			}
			return Dict{KeySig: keySig, ValSig: valSig, Entries: es}, nil
		},
		func(d Dict) ([]DictEntry, error) {
			if err := checkUniqueKeys(d.Entries); err != nil {
				return nil, err
			}
			return d.Entries, nil
		})
}

func checkUniqueKeys(es []DictEntry) error {
	seen := make(map[Value]bool, len(es))
	for _, e := range es {
		if seen[e.Key] {
			return malformedErr("dict", "duplicate key %v", e.Key)
		}
		seen[e.Key] = true
	}
	return nil
}
