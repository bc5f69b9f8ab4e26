package parcel

import (
	"fmt"
	"io"
)

// MaxCount is the largest element count a decoder accepts for any
// length-prefixed field. Real capability payloads hold tens of
// elements; a count beyond this bound indicates a corrupt stream.
const MaxCount = 1 << 20

// A DecodeError describes a structural failure while reading a
// parcel: a truncated stream, or a length prefix that cannot be
// satisfied by the remaining input.
type DecodeError struct {
	// Offset is the payload offset at which decoding failed.
	Offset int
	// Reason is the underlying cause.
	Reason error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("parcel decode at offset %d: %v", e.Offset, e.Reason)
}

func (e DecodeError) Unwrap() error {
	return e.Reason
}

// A Decoder provides utilities to read a parcel payload from a byte
// stream.
//
// Methods advance the read cursor in whole 4-byte cells, except for
// [Decoder.Read] which reads bytes verbatim.
type Decoder struct {
	// Order is the byte order to use when reading multi-byte
	// values. It must match the order the payload was encoded with.
	Order ByteOrder
	// In is the input stream to read.
	In io.Reader

	// offset is the number of bytes consumed off the front of In so
	// far, used to report error positions and to consume cell
	// padding.
	offset int
}

// Offset reports the number of bytes consumed so far.
func (d *Decoder) Offset() int { return d.offset }

func (d *Decoder) fail(err error) error {
	if err == io.EOF && d.offset > 0 {
		// EOF mid-payload is a truncation, not a clean end.
		err = io.ErrUnexpectedEOF
	}
	return DecodeError{d.offset, err}
}

func (d *Decoder) failf(format string, args ...any) error {
	return DecodeError{d.offset, fmt.Errorf(format, args...)}
}

// Pad consumes padding bytes as needed to make the next read happen
// on a cell boundary. If the decoder is already correctly aligned, no
// bytes are consumed.
func (d *Decoder) Pad() error {
	extra := d.offset % 4
	if extra == 0 {
		return nil
	}
	skip := 4 - extra
	if _, err := io.CopyN(io.Discard, d.In, int64(skip)); err != nil {
		return d.fail(err)
	}
	d.offset += skip
	return nil
}

// Read reads n bytes, with no framing or padding.
func (d *Decoder) Read(n int) ([]byte, error) {
	bs := make([]byte, n)
	if _, err := io.ReadFull(d.In, bs); err != nil {
		return nil, d.fail(err)
	}
	d.offset += n
	return bs, nil
}

// Uint32 reads a uint32.
func (d *Decoder) Uint32() (uint32, error) {
	if err := d.Pad(); err != nil {
		return 0, err
	}
	bs, err := d.Read(4)
	if err != nil {
		return 0, err
	}
	return d.Order.Uint32(bs), nil
}

// Int32 reads an int32.
func (d *Decoder) Int32() (int32, error) {
	u, err := d.Uint32()
	return int32(u), err
}

// Int64 reads an int64.
func (d *Decoder) Int64() (int64, error) {
	if err := d.Pad(); err != nil {
		return 0, err
	}
	bs, err := d.Read(8)
	if err != nil {
		return 0, err
	}
	return int64(d.Order.Uint64(bs)), nil
}

// Bool reads a bool cell. Any nonzero value decodes as true.
func (d *Decoder) Bool() (bool, error) {
	v, err := d.Int32()
	return v != 0, err
}

// Count reads a length prefix and validates it: negative counts and
// counts beyond [MaxCount] are structural errors.
func (d *Decoder) Count() (int, error) {
	n, err := d.Int32()
	if err != nil {
		return 0, err
	}
	if n < 0 || n > MaxCount {
		return 0, d.failf("count %d out of range", n)
	}
	return int(n), nil
}

// Bytes reads a length-prefixed byte blob and consumes its cell
// padding.
func (d *Decoder) Bytes() ([]byte, error) {
	n, err := d.Count()
	if err != nil {
		return nil, err
	}
	bs, err := d.Read(n)
	if err != nil {
		return nil, err
	}
	if err := d.Pad(); err != nil {
		return nil, err
	}
	return bs, nil
}

// String reads a length-prefixed UTF-8 string and consumes its cell
// padding.
func (d *Decoder) String() (string, error) {
	bs, err := d.Bytes()
	return string(bs), err
}

// Int32Vector reads a length-prefixed vector of int32 values. An
// empty vector decodes as nil.
func (d *Decoder) Int32Vector() ([]int32, error) {
	n, err := d.Count()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	vs := make([]int32, n)
	for i := range vs {
		if vs[i], err = d.Int32(); err != nil {
			return nil, err
		}
	}
	return vs, nil
}
