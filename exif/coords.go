package exif

import (
	"fmt"

	"github.com/tsawler/metaprobe/model"
)

// ResolveCoordinates converts a decoded GPS section into signed decimal
// coordinates. Both GPSLatitude and GPSLongitude must be present with
// numeric values, otherwise nil is returned. A GPSLatitudeRef of "S"
// negates latitude and a GPSLongitudeRef of "W" negates longitude; a
// missing reference defaults to the positive hemisphere.
func ResolveCoordinates(gps *model.Section) *model.Coordinates {
	if gps == nil {
		return nil
	}

	lat, ok := gps.GetFloat("GPSLatitude")
	if !ok {
		return nil
	}
	lon, ok := gps.GetFloat("GPSLongitude")
	if !ok {
		return nil
	}

	if ref, ok := gps.GetString("GPSLatitudeRef"); ok && ref == "S" {
		lat = -lat
	}
	if ref, ok := gps.GetString("GPSLongitudeRef"); ok && ref == "W" {
		lon = -lon
	}

	return &model.Coordinates{
		Latitude:  lat,
		Longitude: lon,
		MapLink:   fmt.Sprintf("https://www.google.com/maps?q=%v,%v", lat, lon),
	}
}
