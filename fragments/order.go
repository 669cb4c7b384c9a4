package fragments

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// A ByteOrder selects the multi-byte integer and float encoding used
// by an integer or float codec. It does not affect framing offsets,
// which the GVariant format always stores little-endian regardless of
// the chosen ByteOrder (see [OffsetWidth]).
type ByteOrder interface {
	byteOrder
	name() string
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

type wrapStd struct {
	byteOrder
	n string
}

func (w wrapStd) name() string { return w.n }

var (
	BigEndian    ByteOrder = wrapStd{binary.BigEndian, "BigEndian"}
	LittleEndian ByteOrder = wrapStd{binary.LittleEndian, "LittleEndian"}
	// NativeEndian is the host's native byte order, resolved at
	// startup via cpu feature detection rather than unsafe pointer
	// tricks.
	NativeEndian ByteOrder = func() ByteOrder {
		if cpu.IsBigEndian {
			return wrapStd{binary.BigEndian, "NativeEndian(Big)"}
		}
		return wrapStd{binary.LittleEndian, "NativeEndian(Little)"}
	}()
)
