package models

import "fmt"

// Location is a (latitude, longitude) pair in decimal degrees.
type Location struct {
	Lat float64 `json:"latitude" parquet:"name=latitude,type=DOUBLE"`
	Lon float64 `json:"longitude" parquet:"name=longitude,type=DOUBLE"`
	// Synthetic marks a generated placeholder position, never a geocoding result.
	Synthetic bool `json:"synthetic,omitempty" parquet:"name=synthetic,type=BOOLEAN"`
}

// Valid reports whether the pair lies within the WGS84 degree ranges.
func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lon >= -180 && l.Lon <= 180
}

func (l Location) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", l.Lat, l.Lon)
}
