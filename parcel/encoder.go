package parcel

// An Encoder provides utilities to write a parcel payload to a byte
// slice.
//
// Methods insert zero padding as needed to keep every field on a
// 4-byte cell boundary, except for [Encoder.Write] which outputs
// bytes verbatim.
type Encoder struct {
	// Order is the byte order to use when encoding multi-byte
	// values. A zero Order is invalid; use [NativeEndian] unless the
	// payload is destined for a foreign-endian peer.
	Order ByteOrder
	// Out is the encoded output.
	Out []byte
}

// Pad inserts padding bytes as needed to make the payload a multiple
// of 4 bytes. If the payload is already correctly aligned, no padding
// is inserted.
func (e *Encoder) Pad() {
	extra := len(e.Out) % 4
	if extra == 0 {
		return
	}
	var pad [4]byte
	e.Out = append(e.Out, pad[:4-extra]...)
}

// Write writes bs as-is to the output. It is the caller's
// responsibility to ensure correct padding.
func (e *Encoder) Write(bs []byte) {
	e.Out = append(e.Out, bs...)
}

// Uint32 writes a uint32.
func (e *Encoder) Uint32(u32 uint32) {
	e.Pad()
	e.Out = e.Order.AppendUint32(e.Out, u32)
}

// Int32 writes an int32.
func (e *Encoder) Int32(i32 int32) {
	e.Uint32(uint32(i32))
}

// Int64 writes an int64. The value occupies two cells; the parcel
// format does not align 8-byte values beyond the cell boundary.
func (e *Encoder) Int64(i64 int64) {
	e.Pad()
	e.Out = e.Order.AppendUint64(e.Out, uint64(i64))
}

// Bool writes b as a full cell, 1 for true and 0 for false.
func (e *Encoder) Bool(b bool) {
	if b {
		e.Int32(1)
	} else {
		e.Int32(0)
	}
}

// Bytes writes a length-prefixed byte blob, zero-padded to the next
// cell boundary.
func (e *Encoder) Bytes(bs []byte) {
	e.Int32(int32(len(bs)))
	e.Out = append(e.Out, bs...)
	e.Pad()
}

// String writes a length-prefixed UTF-8 string, zero-padded to the
// next cell boundary.
func (e *Encoder) String(s string) {
	e.Int32(int32(len(s)))
	e.Out = append(e.Out, s...)
	e.Pad()
}

// Int32Vector writes a length-prefixed vector of int32 values. A nil
// vector encodes the same as an empty one.
func (e *Encoder) Int32Vector(vs []int32) {
	e.Int32(int32(len(vs)))
	for _, v := range vs {
		e.Int32(v)
	}
}
