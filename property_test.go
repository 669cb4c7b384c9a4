package gvariant_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/danderson/gvariant"
	"github.com/danderson/gvariant/fragments"
	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"
)

// genValue produces a random Value conforming to sig, bounded by
// maxDepth to guarantee termination for recursive container types.
func genValue(r *rand.Rand, sig gvariant.Signature, maxDepth int) gvariant.Value {
	s := sig.String()
	if s == "" {
		panic("empty signature")
	}
	switch s[0] {
	case 'b':
		return gvariant.Bool(r.IntN(2) == 0)
	case 'y':
		return gvariant.Byte(uint8(r.IntN(256)))
	case 'n':
		return gvariant.Int16(int16(r.IntN(1 << 16)))
	case 'q':
		return gvariant.Uint16(uint16(r.IntN(1 << 16)))
	case 'i':
		return gvariant.Int32(r.Int32())
	case 'u':
		return gvariant.Uint32(r.Uint32())
	case 'x':
		return gvariant.Int64(r.Int64())
	case 't':
		return gvariant.Uint64(r.Uint64())
	case 'd':
		return gvariant.Float64(r.Float64())
	case 's':
		return gvariant.Str(randString(r))
	case 'o':
		return gvariant.ObjectPath("/" + randString(r))
	case 'g':
		return gvariant.Sig("s")
	case 'v':
		inner := randSignature(r, maxDepth-1)
		return gvariant.Variant{Sig: inner, Val: genValue(r, inner, maxDepth-1)}
	case 'm':
		elem := mustParseFrom(s[1:])
		if maxDepth <= 0 || r.IntN(2) == 0 {
			return gvariant.Maybe{Elem: elem}
		}
		v := genValue(r, elem, maxDepth-1)
		return gvariant.Maybe{Elem: elem, Val: v}
	case 'a':
		if len(s) > 1 && s[1] == '{' {
			keyStr := s[2:3]
			valStr := s[3 : len(s)-1]
			keySig := mustParseFrom(keyStr)
			valSig := mustParseFrom(valStr)
			n := 0
			if maxDepth > 0 {
				n = r.IntN(4)
			}
			entries := make([]gvariant.DictEntry, 0, n)
			seen := map[gvariant.Value]bool{}
			for len(entries) < n {
				k := genValue(r, keySig, 0)
				if seen[k] {
					continue
				}
				seen[k] = true
				entries = append(entries, gvariant.DictEntry{Key: k, Val: genValue(r, valSig, maxDepth-1)})
			}
			return gvariant.Dict{KeySig: keySig, ValSig: valSig, Entries: entries}
		}
		elem := mustParseFrom(s[1:])
		n := 0
		if maxDepth > 0 {
			n = r.IntN(4)
		}
		items := make([]gvariant.Value, n)
		for i := range items {
			items[i] = genValue(r, elem, maxDepth-1)
		}
		return gvariant.Array{Elem: elem, Items: items}
	case '(':
		comps := splitTupleSig(s)
		items := make([]gvariant.Value, len(comps))
		for i, c := range comps {
			items[i] = genValue(r, mustParseFrom(c), maxDepth-1)
		}
		return gvariant.Tuple{Items: items}
	default:
		panic("unhandled signature code " + string(s[0]))
	}
}

func mustParseFrom(s string) gvariant.Signature {
	sig, err := gvariant.Parse(s)
	if err != nil {
		panic(err)
	}
	return sig
}

func randString(r *rand.Rand) string {
	n := r.IntN(8)
	bs := make([]byte, n)
	for i := range bs {
		bs[i] = byte('a' + r.IntN(26))
	}
	return string(bs)
}

func randBasicSignature(r *rand.Rand) gvariant.Signature {
	codes := []string{"b", "y", "n", "q", "i", "u", "x", "t", "d", "s"}
	return mustParseFrom(codes[r.IntN(len(codes))])
}

// randSignature produces a random signature, widening into container
// types (including variant-of-variant) as maxDepth allows, so that a
// generated Variant's inner value is not always a bare primitive.
func randSignature(r *rand.Rand, maxDepth int) gvariant.Signature {
	if maxDepth <= 0 || r.IntN(3) == 0 {
		return randBasicSignature(r)
	}
	switch r.IntN(4) {
	case 0:
		return mustParseFrom("a" + randSignature(r, maxDepth-1).String())
	case 1:
		return mustParseFrom("m" + randSignature(r, maxDepth-1).String())
	case 2:
		return mustParseFrom("v")
	default:
		n := 1 + r.IntN(3)
		parts := make([]string, n)
		for i := range parts {
			parts[i] = randSignature(r, maxDepth-1).String()
		}
		return mustParseFrom("(" + strings.Join(parts, "") + ")")
	}
}

// consumeOneSig splits one complete type off the front of s (assumed
// well-formed) and returns it along with whatever remains.
func consumeOneSig(s string) (string, string) {
	switch s[0] {
	case 'a', 'm':
		elem, rest := consumeOneSig(s[1:])
		return s[:1] + elem, rest
	case '(':
		rest := s[1:]
		for rest[0] != ')' {
			_, r := consumeOneSig(rest)
			rest = r
		}
		return s[:len(s)-len(rest)+1], rest[1:]
	case '{':
		rest := s[1:]
		_, rest = consumeOneSig(rest)
		_, rest = consumeOneSig(rest)
		return s[:len(s)-len(rest)+1], rest[1:]
	default:
		return s[:1], s[1:]
	}
}

// splitTupleSig splits the inside of a "(...)" signature into its
// component signature strings.
func splitTupleSig(s string) []string {
	inner := s[1 : len(s)-1]
	var parts []string
	for inner != "" {
		var part string
		part, inner = consumeOneSig(inner)
		parts = append(parts, part)
	}
	return parts
}

func TestPropertyRoundTrip(t *testing.T) {
	sigs := []string{
		"b", "y", "i", "s", "d", "ab", "as", "mi", "ms",
		"(si)", "a(si)", "()", "a{sv}", "a{ss}",
		"(ii(s)a{sb})", "mmi", "aai", "{si}", "v", "av",
	}
	r := rand.New(rand.NewPCG(1, 2))

	for _, sigStr := range sigs {
		sig := mustParseFrom(sigStr)
		for i := 0; i < 20; i++ {
			v := genValue(r, sig, 3)
			enc, err := gvariant.Encode(sig.Codec(), nil, v, fragments.LittleEndian)
			if err != nil {
				t.Fatalf("sig %q: Encode(%s): %v", sigStr, pretty.Sprint(v), err)
			}
			got, err := gvariant.Decode(sig.Codec(), enc, fragments.LittleEndian)
			if err != nil {
				t.Fatalf("sig %q: Decode(% x): %v", sigStr, enc, err)
			}
			if diff := cmp.Diff(v, got, sigCmp); diff != "" {
				t.Fatalf("sig %q round trip mismatch for %s (-want +got):\n%s", sigStr, pretty.Sprint(v), diff)
			}
		}
	}
}
