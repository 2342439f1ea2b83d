package domain

import "fmt"

// BloodType is one of the eight standard ABO/Rh combinations.
type BloodType string

const (
	BloodTypeAPos  BloodType = "A+"
	BloodTypeANeg  BloodType = "A-"
	BloodTypeBPos  BloodType = "B+"
	BloodTypeBNeg  BloodType = "B-"
	BloodTypeABPos BloodType = "AB+"
	BloodTypeABNeg BloodType = "AB-"
	BloodTypeOPos  BloodType = "O+"
	BloodTypeONeg  BloodType = "O-"
)

// BloodTypes lists all recognized blood types in a fixed order.
var BloodTypes = []BloodType{ //nolint: gochecknoglobals
	BloodTypeAPos, BloodTypeANeg,
	BloodTypeBPos, BloodTypeBNeg,
	BloodTypeABPos, BloodTypeABNeg,
	BloodTypeOPos, BloodTypeONeg,
}

// ParseBloodType validates a raw string against the known ABO/Rh set.
// Matching is exact; no cross-type compatibility is implied.
func ParseBloodType(raw string) (BloodType, error) {
	for _, bt := range BloodTypes {
		if BloodType(raw) == bt {
			return bt, nil
		}
	}

	return "", fmt.Errorf("unknown blood type %q", raw)
}
