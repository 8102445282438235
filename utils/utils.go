package utils

import (
	"github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
)

// EXIF orientation values. 1 is upright; 5-8 involve a 90 degree rotation,
// so the effective width and height swap.
const (
	OrientationTopLeft     = 1
	OrientationTopRight    = 2
	OrientationBottomRight = 3
	OrientationBottomLeft  = 4
	OrientationLeftTop     = 5
	OrientationRightTop    = 6
	OrientationRightBottom = 7
	OrientationLeftBottom  = 8
)

// GetOrientation reads the EXIF Orientation tag from raw image bytes.
// Images without EXIF data, or with an out-of-range value, report upright.
func GetOrientation(data []byte) int {
	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil {
		return OrientationTopLeft
	}

	im := exifcommon.NewIfdMapping()
	ti := exif.NewTagIndex()
	if err := exifcommon.LoadStandardIfds(im); err != nil {
		return OrientationTopLeft
	}

	_, index, err := exif.Collect(im, ti, rawExif)
	if err != nil {
		return OrientationTopLeft
	}

	tag, err := index.RootIfd.FindTagWithName("Orientation")
	if err != nil || len(tag) == 0 {
		return OrientationTopLeft
	}
	val, err := tag[0].Value()
	if err != nil {
		return OrientationTopLeft
	}

	var orientation int
	switch v := val.(type) {
	case uint16:
		orientation = int(v)
	case []uint16:
		if len(v) > 0 {
			orientation = int(v[0])
		}
	}
	if orientation < OrientationTopLeft || orientation > OrientationLeftBottom {
		return OrientationTopLeft
	}
	return orientation
}

// SwapsDimensions reports whether the orientation rotates the image a
// quarter turn, swapping the effective width and height.
func SwapsDimensions(orientation int) bool {
	return orientation >= OrientationLeftTop && orientation <= OrientationLeftBottom
}
