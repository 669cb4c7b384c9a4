package gvariant

import "fmt"

// MalformedInputError is returned by a [Codec]'s Decode method when
// the input slice cannot be interpreted under that codec: a fixed
// size codec given the wrong number of bytes, a string missing its
// trailing NUL, a variant missing its payload/signature separator, a
// tuple whose components run past the end of the slice, framing
// offsets that disagree with the slice length, and so on.
type MalformedInputError struct {
	// Type is a short name for the codec that rejected the input.
	Type string
	// Reason is an explanation of what was wrong with the input.
	Reason error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("gvariant: malformed %s: %s", e.Type, e.Reason)
}

func (e *MalformedInputError) Unwrap() error { return e.Reason }

func malformedErr(typ string, reason string, args ...any) error {
	return &MalformedInputError{Type: typ, Reason: fmt.Errorf(reason, args...)}
}

// SignatureParseError is returned when a signature string does not
// conform to the GVariant type grammar.
type SignatureParseError struct {
	// Signature is the full string that failed to parse.
	Signature string
	// Pos is the byte offset within Signature where the error was
	// detected.
	Pos int
	// Reason explains what was wrong at Pos.
	Reason string
}

func (e *SignatureParseError) Error() string {
	return fmt.Sprintf("gvariant: invalid signature %q at byte %d: %s", e.Signature, e.Pos, e.Reason)
}

// UsageError is returned when a [Codec] is constructed or used
// incorrectly by the caller, as opposed to a decode-time failure
// caused by input data: predicate branches with incompatible alignment
// or size, a value handed to Encode that does not fit the codec (a
// [Tuple] with the wrong number of items, a [Value] of the wrong
// concrete type, a [Variant] with a zero [Signature]), and similar
// programmer errors.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("gvariant: invalid codec usage: %s", e.Reason)
}

func usageErr(reason string, args ...any) error {
	return &UsageError{Reason: fmt.Sprintf(reason, args...)}
}
