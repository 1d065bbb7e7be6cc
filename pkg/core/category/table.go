// Package category holds the single shared mapping from classifier categories
// to statement buckets. Every builder keys off this table instead of carrying
// its own string switch, so the enumeration can evolve in one place.
package category

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/NIgan1989/finsights-engine/pkg/models"
)

// Bucket is the P&L destination of an operating, non-capitalized expense.
type Bucket string

const (
	BucketCOGS Bucket = "cogs"
	BucketOpex Bucket = "opex"
)

// FinancingRole names the cash flow financing detail line a category feeds.
type FinancingRole string

const (
	RoleNone               FinancingRole = ""
	RoleDebtProceeds       FinancingRole = "debt-proceeds"
	RoleDebtRepayment      FinancingRole = "debt-repayment"
	RoleDividends          FinancingRole = "dividends"
	RoleEquityContribution FinancingRole = "equity-contribution"
	RoleWithdrawal         FinancingRole = "withdrawal"
)

// Mapping is everything the builders need to know about one category.
type Mapping struct {
	Bucket           Bucket        `yaml:"bucket"`
	FinancialIncome  bool          `yaml:"financialIncome"`
	FinancialExpense bool          `yaml:"financialExpense"`
	AssetSale        bool          `yaml:"assetSale"`
	Financing        FinancingRole `yaml:"financing"`
}

// Table resolves categories to mappings. Unknown categories fall back to a
// zero Mapping, which lands expenses in opex and touches nothing else.
type Table struct {
	entries map[models.Category]Mapping
}

// Default returns the compiled-in table matching the classifier enumeration.
func Default() *Table {
	return &Table{entries: map[models.Category]Mapping{
		// Production cost allow-list.
		models.CatPurchasedGoods:     {Bucket: BucketCOGS},
		models.CatRawMaterials:       {Bucket: BucketCOGS},
		models.CatProductionWages:    {Bucket: BucketCOGS},
		models.CatProductionRent:     {Bucket: BucketCOGS},
		models.CatProductionServices: {Bucket: BucketCOGS},

		// Financial income and expense.
		models.CatLoanInterest:   {FinancialExpense: true},
		models.CatInterestIncome: {FinancialIncome: true},
		models.CatPositiveFX:     {FinancialIncome: true},

		// Investing detail.
		models.CatAssetSaleProceeds: {AssetSale: true},

		// Financing detail lines.
		models.CatLoanProceeds:       {Financing: RoleDebtProceeds},
		models.CatLoanRepayment:      {Financing: RoleDebtRepayment},
		models.CatDividendsPaid:      {Financing: RoleDividends},
		models.CatOwnerContribution:  {Financing: RoleEquityContribution},
		models.CatPersonalWithdrawal: {Financing: RoleWithdrawal},
	}}
}

// Lookup returns the mapping for a category. The zero Mapping is a valid
// answer for categories with no special role.
func (t *Table) Lookup(c models.Category) Mapping {
	return t.entries[c]
}

// ExpenseBucket classifies an operating, non-capitalized expense into COGS or
// opex. Everything outside the COGS allow-list is opex.
func (t *Table) ExpenseBucket(c models.Category) Bucket {
	if t.entries[c].Bucket == BucketCOGS {
		return BucketCOGS
	}
	return BucketOpex
}

// fileFormat is the YAML override shape: lists of category strings per role.
type fileFormat struct {
	COGS             []string `yaml:"cogs"`
	FinancialIncome  []string `yaml:"financialIncome"`
	FinancialExpense []string `yaml:"financialExpense"`
	AssetSales       []string `yaml:"assetSales"`
	Financing        struct {
		DebtProceeds        []string `yaml:"debtProceeds"`
		DebtRepayments      []string `yaml:"debtRepayments"`
		Dividends           []string `yaml:"dividends"`
		EquityContributions []string `yaml:"equityContributions"`
		Withdrawals         []string `yaml:"withdrawals"`
	} `yaml:"financing"`
}

// LoadFile replaces the default table with one described by a YAML file.
// Categories absent from the file get the zero Mapping.
func LoadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category table: %w", err)
	}
	return Parse(raw)
}

// Parse builds a table from YAML bytes.
func Parse(raw []byte) (*Table, error) {
	var f fileFormat
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse category table: %w", err)
	}

	t := &Table{entries: make(map[models.Category]Mapping)}
	patch := func(names []string, apply func(*Mapping)) {
		for _, name := range names {
			m := t.entries[models.Category(name)]
			apply(&m)
			t.entries[models.Category(name)] = m
		}
	}

	patch(f.COGS, func(m *Mapping) { m.Bucket = BucketCOGS })
	patch(f.FinancialIncome, func(m *Mapping) { m.FinancialIncome = true })
	patch(f.FinancialExpense, func(m *Mapping) { m.FinancialExpense = true })
	patch(f.AssetSales, func(m *Mapping) { m.AssetSale = true })
	patch(f.Financing.DebtProceeds, func(m *Mapping) { m.Financing = RoleDebtProceeds })
	patch(f.Financing.DebtRepayments, func(m *Mapping) { m.Financing = RoleDebtRepayment })
	patch(f.Financing.Dividends, func(m *Mapping) { m.Financing = RoleDividends })
	patch(f.Financing.EquityContributions, func(m *Mapping) { m.Financing = RoleEquityContribution })
	patch(f.Financing.Withdrawals, func(m *Mapping) { m.Financing = RoleWithdrawal })

	return t, nil
}
