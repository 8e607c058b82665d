package report

import "strings"

// ProductIdentity derives the key used to attach a unit cost to an order
// row. The parent SKU groups variants of one product under a single cost;
// rows without one fall back to the product name as-is. The cost map and the
// join back onto rows must both go through this function, otherwise costs
// silently fail to apply.
func ProductIdentity(parentSKU, productName string) string {
	if sku := strings.TrimSpace(parentSKU); sku != "" {
		return sku
	}
	return productName
}
