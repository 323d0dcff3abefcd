// Package units provides shared constants and validation for pitch size units
package units

// Unit constants
const (
	Meters      = "m"
	Centimeters = "cm"
	Yards       = "yd"
	Feet        = "ft"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{Meters, Centimeters, Yards, Feet}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "m, cm, yd, ft"
}

// ToMeters converts a length in the given units to meters.
// Pitch sizes are always handed to the dimensions package in meters.
func ToMeters(length float64, units string) float64 {
	switch units {
	case Centimeters:
		return length / 100
	case Yards:
		return length * 0.9144
	case Feet:
		return length * 0.3048
	default:
		return length
	}
}

// FromMeters converts a length in meters to the given units.
func FromMeters(meters float64, units string) float64 {
	switch units {
	case Centimeters:
		return meters * 100
	case Yards:
		return meters / 0.9144
	case Feet:
		return meters / 0.3048
	default:
		return meters
	}
}
