package parcel_test

import (
	"bytes"
	"testing"

	"github.com/Project-PenguinOS/frameworks-base/parcel"
)

func TestEncoder(t *testing.T) {
	tests := []struct {
		name string
		in   func(*parcel.Encoder)
		want []byte
	}{
		{
			"raw bytes",
			func(e *parcel.Encoder) {
				e.Write([]byte{1, 2, 3})
			},
			[]byte{0x01, 0x02, 0x03},
		},

		{
			"int32",
			func(e *parcel.Encoder) {
				e.Int32(0x12345678)
			},
			[]byte{0x78, 0x56, 0x34, 0x12},
		},

		{
			"negative int32",
			func(e *parcel.Encoder) {
				e.Int32(-2)
			},
			[]byte{0xfe, 0xff, 0xff, 0xff},
		},

		{
			"int64",
			func(e *parcel.Encoder) {
				e.Int64(0x1122334455667788)
			},
			[]byte{0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11},
		},

		{
			"bools",
			func(e *parcel.Encoder) {
				e.Bool(true)
				e.Bool(false)
			},
			[]byte{
				0x01, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00,
			},
		},

		{
			"cell padding after raw write",
			func(e *parcel.Encoder) {
				e.Write([]byte{0xaa})
				e.Int32(0x42)
			},
			[]byte{
				0xaa,
				0x00, 0x00, 0x00, // pad
				0x42, 0x00, 0x00, 0x00,
			},
		},

		{
			"byte blob",
			func(e *parcel.Encoder) {
				e.Bytes([]byte{1, 2, 3, 4, 5})
			},
			[]byte{
				0x05, 0x00, 0x00, 0x00, // length
				0x01, 0x02, 0x03, 0x04, 0x05, // val
				0x00, 0x00, 0x00, // pad
			},
		},

		{
			"string",
			func(e *parcel.Encoder) {
				e.String("foo")
			},
			[]byte{
				0x03, 0x00, 0x00, 0x00, // length
				0x66, 0x6f, 0x6f, // val
				0x00, // pad
			},
		},

		{
			"int32 vector",
			func(e *parcel.Encoder) {
				e.Int32Vector([]int32{1, -1, 0x16})
			},
			[]byte{
				0x03, 0x00, 0x00, 0x00, // count
				0x01, 0x00, 0x00, 0x00,
				0xff, 0xff, 0xff, 0xff,
				0x16, 0x00, 0x00, 0x00,
			},
		},

		{
			"empty int32 vector",
			func(e *parcel.Encoder) {
				e.Int32Vector(nil)
			},
			[]byte{0x00, 0x00, 0x00, 0x00},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := &parcel.Encoder{Order: parcel.LittleEndian}
			tc.in(e)
			if !bytes.Equal(e.Out, tc.want) {
				t.Errorf("wrong output:\n  got: % x\n want: % x", e.Out, tc.want)
			}
		})
	}
}

func TestEncoderBigEndian(t *testing.T) {
	e := &parcel.Encoder{Order: parcel.BigEndian}
	e.Int32(0x12345678)
	want := []byte{0x12, 0x34, 0x56, 0x78}
	if !bytes.Equal(e.Out, want) {
		t.Errorf("wrong output:\n  got: % x\n want: % x", e.Out, want)
	}
}
