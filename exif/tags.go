package exif

// Registry maps EXIF tag identifiers to field names. Built once at init and
// never mutated, so it is safe for concurrent readers.
var Registry = map[uint16]string{
	0x010F: "Make",
	0x0110: "Model",
	0x0112: "Orientation",
	0x011A: "XResolution",
	0x011B: "YResolution",
	0x0132: "DateTime",
	0x829A: "ExposureTime",
	0x829D: "FNumber",
	0x8827: "ISOSpeedRatings",
	0x9003: "DateTimeOriginal",
	0x9004: "DateTimeDigitized",
	0x920A: "FocalLength",
	0xA001: "ColorSpace",
	0xA002: "PixelXDimension",
	0xA003: "PixelYDimension",
	0xA430: "CameraOwnerName",
	0xA431: "BodySerialNumber",
	0xA432: "LensSpecification",
	0xA433: "LensMake",
	0xA434: "LensModel",
}

// GPSRegistry maps GPS tag identifiers to field names.
var GPSRegistry = map[uint16]string{
	0x0001: "GPSLatitudeRef",
	0x0002: "GPSLatitude",
	0x0003: "GPSLongitudeRef",
	0x0004: "GPSLongitude",
	0x0005: "GPSAltitudeRef",
	0x0006: "GPSAltitude",
	0x001D: "GPSDateStamp",
}

// TIFF field type codes.
const (
	typeByte      = 1
	typeASCII     = 2
	typeShort     = 3
	typeLong      = 4
	typeRational  = 5
	typeUndefined = 7
	typeSLong     = 9
	typeSRational = 10
)

// typeSizes gives the per-element byte width of each supported field type.
var typeSizes = map[uint16]int{
	typeByte:      1,
	typeASCII:     1,
	typeShort:     2,
	typeLong:      4,
	typeRational:  8,
	typeUndefined: 1,
	typeSLong:     4,
	typeSRational: 8,
}

// typeWidth returns the per-element byte width for a field type. Unknown
// type codes fall back to a width of 1; this limits full TIFF coverage but
// keeps value-size arithmetic deterministic for malformed entries.
func typeWidth(typ uint16) int {
	if w, ok := typeSizes[typ]; ok {
		return w
	}
	return 1
}
