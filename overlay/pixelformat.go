package overlay

import (
	"fmt"
	"strconv"
)

// A PixelFormat identifies a hardware pixel format. Values follow the
// graphics HAL's format enumeration; the package treats them as
// opaque and does not validate their range.
type PixelFormat int32

const (
	PixelFormatRGBA8888    PixelFormat = 0x1
	PixelFormatRGBX8888    PixelFormat = 0x2
	PixelFormatRGB888      PixelFormat = 0x3
	PixelFormatRGB565      PixelFormat = 0x4
	PixelFormatBGRA8888    PixelFormat = 0x5
	PixelFormatRGBAFP16    PixelFormat = 0x16
	PixelFormatRGBA1010102 PixelFormat = 0x2b
)

var pixelFormatNames = map[PixelFormat]string{
	PixelFormatRGBA8888:    "RGBA_8888",
	PixelFormatRGBX8888:    "RGBX_8888",
	PixelFormatRGB888:      "RGB_888",
	PixelFormatRGB565:      "RGB_565",
	PixelFormatBGRA8888:    "BGRA_8888",
	PixelFormatRGBAFP16:    "RGBA_FP16",
	PixelFormatRGBA1010102: "RGBA_1010102",
}

func (f PixelFormat) String() string {
	if n, ok := pixelFormatNames[f]; ok {
		return n
	}
	return fmt.Sprintf("PixelFormat(%#x)", int32(f))
}

// ParsePixelFormat parses a format name as printed by
// [PixelFormat.String], or a decimal/hex number.
func ParsePixelFormat(s string) (PixelFormat, error) {
	for f, n := range pixelFormatNames {
		if n == s {
			return f, nil
		}
	}
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown pixel format %q", s)
	}
	return PixelFormat(v), nil
}
