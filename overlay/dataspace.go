package overlay

import (
	"fmt"
	"strconv"
)

// A Dataspace identifies how pixel values should be interpreted: a
// color standard, a transfer function and a range, packed into one
// int32 as in the graphics HAL's dataspace enumeration.
type Dataspace int32

// Bitfield layout of a packed dataspace.
const (
	dataspaceStandardShift = 16
	dataspaceTransferShift = 22
	dataspaceRangeShift    = 27

	DataspaceStandardMask Dataspace = 0x3f << dataspaceStandardShift
	DataspaceTransferMask Dataspace = 0x1f << dataspaceTransferShift
	DataspaceRangeMask    Dataspace = 0x7 << dataspaceRangeShift
)

const (
	DataspaceStandardBT709  Dataspace = 1 << dataspaceStandardShift
	DataspaceStandardBT2020 Dataspace = 6 << dataspaceStandardShift
	DataspaceStandardDCIP3  Dataspace = 10 << dataspaceStandardShift

	DataspaceTransferLinear Dataspace = 1 << dataspaceTransferShift
	DataspaceTransferSRGB   Dataspace = 2 << dataspaceTransferShift
	DataspaceTransferST2084 Dataspace = 7 << dataspaceTransferShift
	DataspaceTransferHLG    Dataspace = 8 << dataspaceTransferShift

	DataspaceRangeFull    Dataspace = 1 << dataspaceRangeShift
	DataspaceRangeLimited Dataspace = 2 << dataspaceRangeShift
)

// Common packed dataspaces.
const (
	DataspaceUnknown   Dataspace = 0
	DataspaceSRGB                = DataspaceStandardBT709 | DataspaceTransferSRGB | DataspaceRangeFull
	DataspaceDisplayP3           = DataspaceStandardDCIP3 | DataspaceTransferSRGB | DataspaceRangeFull
	DataspaceBT2020PQ            = DataspaceStandardBT2020 | DataspaceTransferST2084 | DataspaceRangeFull
	DataspaceBT2020HLG           = DataspaceStandardBT2020 | DataspaceTransferHLG | DataspaceRangeFull
)

var dataspaceNames = map[Dataspace]string{
	DataspaceUnknown:   "UNKNOWN",
	DataspaceSRGB:      "SRGB",
	DataspaceDisplayP3: "DISPLAY_P3",
	DataspaceBT2020PQ:  "BT2020_PQ",
	DataspaceBT2020HLG: "BT2020_HLG",
}

// Standard reports the color standard bits of d.
func (d Dataspace) Standard() Dataspace { return d & DataspaceStandardMask }

// Transfer reports the transfer function bits of d.
func (d Dataspace) Transfer() Dataspace { return d & DataspaceTransferMask }

// Range reports the range bits of d.
func (d Dataspace) Range() Dataspace { return d & DataspaceRangeMask }

func (d Dataspace) String() string {
	if n, ok := dataspaceNames[d]; ok {
		return n
	}
	return fmt.Sprintf("Dataspace(%#x)", int32(d))
}

// ParseDataspace parses a dataspace name as printed by
// [Dataspace.String], or a decimal/hex number.
func ParseDataspace(s string) (Dataspace, error) {
	for d, n := range dataspaceNames {
		if n == s {
			return d, nil
		}
	}
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown dataspace %q", s)
	}
	return Dataspace(v), nil
}
