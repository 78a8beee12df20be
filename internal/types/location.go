package types

// UnknownPlace is reported when the geocoder cannot name a location
const UnknownPlace = "Unknown"

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	Name        string `json:"name" example:"Mumbai"`
	State       string `json:"state,omitempty" example:"Maharashtra"`
	Country     string `json:"country,omitempty" example:"India"`
	CountryCode string `json:"country_code,omitempty" example:"in"`
	DisplayName string `json:"display_name,omitempty"`
}

// Known reports whether the geocoder produced a usable place name
func (l LocationInfo) Known() bool {
	return l.Name != "" && l.Name != UnknownPlace
}
