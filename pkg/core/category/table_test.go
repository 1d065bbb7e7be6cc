package category

import (
	"testing"

	"github.com/NIgan1989/finsights-engine/pkg/models"
)

func TestDefault_COGSAllowList(t *testing.T) {
	table := Default()
	cogs := []models.Category{
		models.CatPurchasedGoods,
		models.CatRawMaterials,
		models.CatProductionWages,
		models.CatProductionRent,
		models.CatProductionServices,
	}
	for _, c := range cogs {
		if table.ExpenseBucket(c) != BucketCOGS {
			t.Errorf("expected %s in COGS", c)
		}
	}
	// Everything else falls back to opex, including unknown strings.
	if table.ExpenseBucket(models.CatMarketing) != BucketOpex {
		t.Error("marketing must be opex")
	}
	if table.ExpenseBucket(models.Category("unknown-future-category")) != BucketOpex {
		t.Error("unknown categories must default to opex")
	}
}

func TestDefault_Roles(t *testing.T) {
	table := Default()
	if !table.Lookup(models.CatLoanInterest).FinancialExpense {
		t.Error("loan-interest must be a financial expense")
	}
	if !table.Lookup(models.CatInterestIncome).FinancialIncome {
		t.Error("interest-income must be financial income")
	}
	if !table.Lookup(models.CatAssetSaleProceeds).AssetSale {
		t.Error("asset-sale-proceeds must flag asset sales")
	}
	if table.Lookup(models.CatLoanProceeds).Financing != RoleDebtProceeds {
		t.Error("loan-proceeds must map to debt proceeds")
	}
	if table.Lookup(models.CatSavingsTransfer).Financing != RoleNone {
		t.Error("savings-transfer has no enumerated financing role")
	}
}

func TestParse_YAMLOverride(t *testing.T) {
	raw := []byte(`
cogs:
  - purchased-goods
  - subcontractors
financialExpense:
  - loan-interest
financing:
  debtProceeds:
    - loan-proceeds
  dividends:
    - dividends-paid
`)

	table, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if table.ExpenseBucket(models.Category("subcontractors")) != BucketCOGS {
		t.Error("override must admit new COGS categories")
	}
	if table.ExpenseBucket(models.CatRawMaterials) != BucketOpex {
		t.Error("categories absent from the override fall back to opex")
	}
	if table.Lookup(models.CatDividendsPaid).Financing != RoleDividends {
		t.Error("dividends role lost in override")
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("cogs: {not: [a, list")); err == nil {
		t.Error("expected a parse error")
	}
}
