package parcel

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// A ByteOrder is the byte ordering used for multi-byte fields in a
// parcel.
type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// hostOrder resolves the machine's native ordering to a concrete
// order, so that encoded output is stable and comparable.
func hostOrder() ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

var (
	BigEndian    ByteOrder = binary.BigEndian
	LittleEndian ByteOrder = binary.LittleEndian
	// NativeEndian is the default ordering for parcels: the format
	// moves data between processes on one machine, so both sides
	// agree on the host's ordering.
	NativeEndian = hostOrder()
)
