package ingest

import (
	"regexp"
	"strconv"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

var priceRangePattern = regexp.MustCompile(`\$(\d+)-(\d+)`)

// BucketPrice maps a "$low-high" descriptor to a tier by the mean of the
// bounds: below 15 Budget, below 25 Moderate, below 35 Upscale, else Premium.
// Anything without a usable range is Moderate.
func BucketPrice(price string) models.PriceTier {
	m := priceRangePattern.FindStringSubmatch(price)
	if m == nil {
		return models.PriceModerate
	}
	low, errLow := strconv.ParseFloat(m[1], 64)
	high, errHigh := strconv.ParseFloat(m[2], 64)
	if errLow != nil || errHigh != nil {
		return models.PriceModerate
	}

	mean := (low + high) / 2
	switch {
	case mean < 15:
		return models.PriceBudget
	case mean < 25:
		return models.PriceModerate
	case mean < 35:
		return models.PriceUpscale
	default:
		return models.PricePremium
	}
}
