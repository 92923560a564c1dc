package order

import (
	"regexp"
	"strings"
)

// skuPattern: uppercase letters, digits, underscore, hyphen, length 3-32.
var skuPattern = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type SKUValidation struct {
	Valid       bool
	InvalidSKUs []string
}

// ValidateSKUs normalizes the raw codes (trim, drop empties, de-duplicate)
// and checks each retained code against the SKU pattern. Duplicates never
// cause rejection on their own. Empty input after normalization is valid.
// Failures are reported in the result, first-seen order; nothing is raised.
func ValidateSKUs(skus []string) SKUValidation {
	seen := make(map[string]struct{}, len(skus))
	var invalid []string

	for _, raw := range skus {
		sku := strings.TrimSpace(raw)
		if sku == "" {
			continue
		}
		if _, dup := seen[sku]; dup {
			continue
		}
		seen[sku] = struct{}{}

		if !skuPattern.MatchString(sku) {
			invalid = append(invalid, sku)
		}
	}

	return SKUValidation{
		Valid:       len(invalid) == 0,
		InvalidSKUs: invalid,
	}
}
