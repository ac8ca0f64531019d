package almanac

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=CategoryEnum -output=category_string.go

type CategoryEnum int

const (
	_ CategoryEnum = iota // skip zero value, use it as a default (invalid) value for CategoryEnum

	CategorySeed
	CategorySoil
	CategoryFertilizer
	CategoryWater
	CategoryLight
	CategoryTemperature
	CategoryHumidity
	CategoryLocation

	// CategoryTotal is a constant that represents the exclusive upper bound of category values
	CategoryTotal = int(iota)
)

var ErrUnknownCategory = errors.New("unknown category")

// categoryNames holds the lowercase tokens used by the puzzle text and manifests.
var categoryNames = map[CategoryEnum]string{
	CategorySeed:        "seed",
	CategorySoil:        "soil",
	CategoryFertilizer:  "fertilizer",
	CategoryWater:       "water",
	CategoryLight:       "light",
	CategoryTemperature: "temperature",
	CategoryHumidity:    "humidity",
	CategoryLocation:    "location",
}

// IsValid returns true for one of the declared categories.
func (c CategoryEnum) IsValid() bool {
	return c >= CategorySeed && c <= CategoryLocation
}

// Name returns the lowercase token for the category, e.g. "seed".
func (c CategoryEnum) Name() string {
	return categoryNames[c]
}

// ParseCategory resolves a lowercase token (e.g. "soil") to its category.
func ParseCategory(s string) (CategoryEnum, error) {
	for cat, name := range categoryNames {
		if name == s {
			return cat, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
