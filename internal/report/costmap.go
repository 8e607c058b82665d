package report

import (
	"sort"
	"strings"

	"github.com/zksindonesia/zprofit/internal/domain"
)

// CostMap maps a product identity to its unit cost (HPP). It is built fresh
// per run from the identities observed in the current upload and never
// survives the run.
type CostMap map[string]float64

// UnitCost returns the unit cost for an identity, or 0 when the identity is
// unknown. The map is constructed from the same rows it is joined back onto,
// so a miss means the caller simply never priced the product.
func (m CostMap) UnitCost(identity string) float64 {
	return m[identity]
}

// costSeed pairs an uppercase keyword with a typical unit cost for products
// whose identity contains it.
type costSeed struct {
	Keyword string
	Cost    float64
}

// defaultCostSeeds is matched in order against the uppercased identity; the
// first hit wins. The figures are the usual acquisition costs of the
// product lines ZKS carries, maintained by hand.
var defaultCostSeeds = []costSeed{
	{Keyword: "SERUM", Cost: 22000},
	{Keyword: "SUNSCREEN", Cost: 25000},
	{Keyword: "CREAM", Cost: 18000},
	{Keyword: "TONER", Cost: 15000},
	{Keyword: "PARFUM", Cost: 27000},
	{Keyword: "MASKER", Cost: 8000},
	{Keyword: "LIPSTIK", Cost: 12000},
}

// SeedCost suggests a starting unit cost for a product identity. The seed is
// only a suggestion for the input form; whatever the caller enters wins.
func SeedCost(identity string) float64 {
	upper := strings.ToUpper(identity)
	for _, s := range defaultCostSeeds {
		if strings.Contains(upper, s.Keyword) {
			return s.Cost
		}
	}
	return 0
}

// DistinctIdentities returns the sorted set of product identities observed
// in the rows. Sorting keeps the cost-entry form and the report ordering
// stable across runs of the same upload.
func DistinctIdentities(rows []domain.OrderRow) []string {
	seen := make(map[string]struct{}, len(rows))
	identities := make([]string, 0, len(rows))
	for _, row := range rows {
		id := row.Identity
		if id == "" {
			id = ProductIdentity(row.ParentSKU, row.ProductName)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		identities = append(identities, id)
	}
	sort.Strings(identities)
	return identities
}

// SeededCostMap builds the cost map for one run: every identity gets its
// keyword seed as a starting value, then the caller-supplied overrides are
// laid on top. Overrides for identities outside the upload are ignored.
func SeededCostMap(identities []string, overrides map[string]float64) CostMap {
	costs := make(CostMap, len(identities))
	for _, id := range identities {
		costs[id] = SeedCost(id)
		if v, ok := overrides[id]; ok && v >= 0 {
			costs[id] = v
		}
	}
	return costs
}

// ApplyCosts stamps each row's unit cost from the cost map.
func ApplyCosts(rows []domain.OrderRow, costs CostMap) {
	for i := range rows {
		rows[i].UnitCost = costs.UnitCost(rows[i].Identity)
	}
}

// TotalCOGS sums unit cost times quantity over the rows. Callers pass rows
// that already exclude cancelled orders.
func TotalCOGS(rows []domain.OrderRow) float64 {
	var total float64
	for _, row := range rows {
		total += row.TotalCost()
	}
	return total
}
