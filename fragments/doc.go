// Package fragments provides low-level encoding and decoding helpers
// for the GVariant wire format.
//
// The provided encoder and decoder are low level tools, and do not by
// themselves enforce that a sequence of calls produces a valid
// GVariant encoding. You should not need to use this package directly
// unless you are implementing a new codec, in which case your code
// will be handed an [Encoder] or [Decoder] and is expected to
// produce, or consume, correctly padded and framed wire data with it.
package fragments
