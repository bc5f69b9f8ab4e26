package overlay

import (
	"maps"
	"slices"

	"github.com/creachadair/mds/mapset"
)

// Properties describes the rendering configurations the display's
// overlay planes support. The zero value declares no combinations and
// no optional capabilities.
//
// A nil *Properties is a valid "no capabilities" descriptor: all
// query methods report unsupported. A Properties value is not safe
// for concurrent mutation; the owner must serialize access if it
// shares a descriptor across goroutines.
type Properties struct {
	// Combinations lists the jointly supported format/dataspace
	// pairings, in the order the composer reported them.
	Combinations []Combination
	// SupportMixedColorSpaces reports whether overlay planes with
	// different color spaces can be composed in one frame.
	SupportMixedColorSpaces bool
}

// A Combination is one jointly supported pairing: every format in
// PixelFormats works with every dataspace in Dataspaces. Element
// order and duplicates are preserved from the producer; queries treat
// both lists as membership sets.
type Combination struct {
	PixelFormats []PixelFormat
	Dataspaces   []Dataspace
}

// Supports reports whether some single combination contains both f
// and d. A format and a dataspace drawn from two different
// combinations are not jointly supported.
func (p *Properties) Supports(f PixelFormat, d Dataspace) bool {
	if p == nil {
		return false
	}
	for _, c := range p.Combinations {
		if slices.Contains(c.PixelFormats, f) && slices.Contains(c.Dataspaces, d) {
			return true
		}
	}
	return false
}

// SupportsFP16ForHDR reports whether the overlays can take HDR
// content directly: FP16 pixel storage jointly with a BT.2020 PQ
// dataspace.
func (p *Properties) SupportsFP16ForHDR() bool {
	return p.Supports(PixelFormatRGBAFP16, DataspaceBT2020PQ)
}

// SupportsMixedColorSpaces reports whether overlay planes with
// different color spaces can be composed in one frame.
func (p *Properties) SupportsMixedColorSpaces() bool {
	return p != nil && p.SupportMixedColorSpaces
}

// PixelFormats returns the sorted union of formats across all
// combinations. Membership in the result says nothing about which
// dataspaces a format works with; use [Properties.Supports] for joint
// queries.
func (p *Properties) PixelFormats() []PixelFormat {
	if p == nil {
		return nil
	}
	var set mapset.Set[PixelFormat]
	for _, c := range p.Combinations {
		set.Add(c.PixelFormats...)
	}
	return slices.Sorted(maps.Keys(set))
}

// Dataspaces returns the sorted union of dataspaces across all
// combinations.
func (p *Properties) Dataspaces() []Dataspace {
	if p == nil {
		return nil
	}
	var set mapset.Set[Dataspace]
	for _, c := range p.Combinations {
		set.Add(c.Dataspaces...)
	}
	return slices.Sorted(maps.Keys(set))
}

// Clone returns a deep copy of p, sharing no storage with the
// original. Clone of nil is nil.
func (p *Properties) Clone() *Properties {
	if p == nil {
		return nil
	}
	q := &Properties{
		Combinations:            make([]Combination, len(p.Combinations)),
		SupportMixedColorSpaces: p.SupportMixedColorSpaces,
	}
	for i, c := range p.Combinations {
		q.Combinations[i] = Combination{
			PixelFormats: slices.Clone(c.PixelFormats),
			Dataspaces:   slices.Clone(c.Dataspaces),
		}
	}
	return q
}
