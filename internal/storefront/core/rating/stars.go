package rating

import "github.com/shopspring/decimal"

// Star is one glyph of a rendered rating.
type Star string

const (
	Full  Star = "full"
	Half  Star = "half"
	Empty Star = "empty"
)

const maxStars = 5

var (
	halfStep = decimal.RequireFromString("0.5")
	topScore = decimal.NewFromInt(maxStars)
)

// Breakdown renders a 0-5 rating as five stars: floor(rating) full stars, one
// half star when the fractional part is at least .5, and empty stars for the rest.
// Out-of-range ratings are clamped.
func Breakdown(value decimal.Decimal) []Star {
	value = decimal.Min(decimal.Max(value, decimal.Zero), topScore)

	floor := value.Floor()
	whole := int(floor.IntPart())
	half := 0
	if value.Sub(floor).GreaterThanOrEqual(halfStep) {
		half = 1
	}

	stars := make([]Star, 0, maxStars)
	for range whole {
		stars = append(stars, Full)
	}
	for range half {
		stars = append(stars, Half)
	}
	for len(stars) < maxStars {
		stars = append(stars, Empty)
	}
	return stars
}
