package overlay

import (
	"bytes"
	"fmt"

	"github.com/Project-PenguinOS/frameworks-base/parcel"
)

// Parcel layout, in order:
//
//	bool  SupportMixedColorSpaces
//	int32 combination count
//	per combination:
//	  int32 vector of pixel formats
//	  int32 vector of dataspaces
//
// The layout carries no version tag; versioning, if any, belongs to
// the enclosing transport.

// MarshalParcel serializes p into enc. A nil descriptor writes
// nothing, matching callers that guard a possibly-absent native
// object before writing.
func (p *Properties) MarshalParcel(enc *parcel.Encoder) {
	if p == nil {
		return
	}
	enc.Bool(p.SupportMixedColorSpaces)
	enc.Int32(int32(len(p.Combinations)))
	for _, c := range p.Combinations {
		writeIDVector(enc, c.PixelFormats)
		writeIDVector(enc, c.Dataspaces)
	}
}

// ReadProperties deserializes one descriptor from dec. On a
// structural failure (truncated stream, invalid count) it returns a
// nil descriptor and the error; it never returns a partially read
// value.
func ReadProperties(dec *parcel.Decoder) (*Properties, error) {
	var p Properties
	var err error
	if p.SupportMixedColorSpaces, err = dec.Bool(); err != nil {
		return nil, fmt.Errorf("reading overlay properties: %w", err)
	}
	n, err := dec.Count()
	if err != nil {
		return nil, fmt.Errorf("reading overlay properties: %w", err)
	}
	for i := 0; i < n; i++ {
		var c Combination
		if c.PixelFormats, err = readIDVector[PixelFormat](dec); err != nil {
			return nil, fmt.Errorf("reading overlay combination %d: %w", i, err)
		}
		if c.Dataspaces, err = readIDVector[Dataspace](dec); err != nil {
			return nil, fmt.Errorf("reading overlay combination %d: %w", i, err)
		}
		p.Combinations = append(p.Combinations, c)
	}
	return &p, nil
}

// MarshalBinary encodes p as a host-endian parcel payload.
func (p *Properties) MarshalBinary() ([]byte, error) {
	enc := parcel.Encoder{Order: parcel.NativeEndian}
	p.MarshalParcel(&enc)
	return enc.Out, nil
}

// UnmarshalBinary decodes a host-endian parcel payload into p,
// replacing its contents. On error p is left unmodified.
func (p *Properties) UnmarshalBinary(bs []byte) error {
	dec := parcel.Decoder{Order: parcel.NativeEndian, In: bytes.NewReader(bs)}
	q, err := ReadProperties(&dec)
	if err != nil {
		return err
	}
	*p = *q
	return nil
}

func writeIDVector[T ~int32](enc *parcel.Encoder, vs []T) {
	enc.Int32(int32(len(vs)))
	for _, v := range vs {
		enc.Int32(int32(v))
	}
}

func readIDVector[T ~int32](dec *parcel.Decoder) ([]T, error) {
	raw, err := dec.Int32Vector()
	if err != nil || raw == nil {
		return nil, err
	}
	vs := make([]T, len(raw))
	for i, v := range raw {
		vs[i] = T(v)
	}
	return vs, nil
}
