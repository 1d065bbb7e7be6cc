// Package report derives a consistent Profit & Loss, Cash Flow and Balance
// Sheet from one classified transaction list. No ledger backs the numbers:
// the balance sheet is synthesized from the same flow totals the other two
// statements are built from.
package report

import (
	"fmt"
	"os"

	hjson "github.com/hjson/hjson-go/v4"
)

// Assumptions are the named modeling constants of the engine. Each proxy
// ratio stands in for a sub-ledger that does not exist; swapping in real
// sub-ledger data means replacing the ratio, not the builder.
type Assumptions struct {
	// P&L
	TaxRate float64 `json:"taxRate"` // flat, floored at zero on losses

	// Depreciation policy
	UsefulLifeMonths int `json:"usefulLifeMonths"` // straight line

	// Balance sheet proxies, applied to flow totals
	ReceivablesPctOfRevenue float64 `json:"receivablesPctOfRevenue"`
	InventoryPctOfCOGS      float64 `json:"inventoryPctOfCogs"`
	PrepaidPctOfOpex        float64 `json:"prepaidPctOfOpex"`
	PayablesPctOfCOGS       float64 `json:"payablesPctOfCogs"`
	AccruedPctOfOpex        float64 `json:"accruedPctOfOpex"`

	// Liquidity
	CashConversionCycleDays float64 `json:"cashConversionCycleDays"` // fixed assumption
}

// DefaultAssumptions returns the standard illustrative constants.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		TaxRate:                 0.20,
		UsefulLifeMonths:        36,
		ReceivablesPctOfRevenue: 0.10,
		InventoryPctOfCOGS:      0.15,
		PrepaidPctOfOpex:        0.05,
		PayablesPctOfCOGS:       0.08,
		AccruedPctOfOpex:        0.03,
		CashConversionCycleDays: 45,
	}
}

// LoadAssumptions reads overrides from an HJSON file on top of the defaults.
// HJSON so the file can carry a comment per constant explaining what real
// data it stands in for.
func LoadAssumptions(path string) (Assumptions, error) {
	a := DefaultAssumptions()
	raw, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("failed to read assumptions file: %w", err)
	}
	if err := hjson.Unmarshal(raw, &a); err != nil {
		return a, fmt.Errorf("failed to parse assumptions file: %w", err)
	}
	return a, nil
}
