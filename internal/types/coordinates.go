package types

import (
	"fmt"
	"strconv"
)

// Coords is a point picked on the map, in decimal degrees
type Coords struct {
	Latitude  float64 `json:"latitude" example:"19.076"`
	Longitude float64 `json:"longitude" example:"72.8777"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate checks the coordinate lies on the globe
func (c Coords) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: %v", ErrInvalidLatitude, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: %v", ErrInvalidLongitude, c.Longitude)
	}
	return nil
}

// Key renders the exact coordinate; equal keys mean equal float values.
func (c Coords) Key() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

func (c Coords) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Latitude, c.Longitude)
}
