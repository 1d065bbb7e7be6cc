package report

import (
	"testing"
	"time"

	"github.com/NIgan1989/finsights-engine/pkg/core/aggregate"
	"github.com/NIgan1989/finsights-engine/pkg/core/category"
	"github.com/NIgan1989/finsights-engine/pkg/models"
)

func buildAllFor(t *testing.T, txs []models.Transaction) (models.PnLData, models.CashFlowData, models.BalanceSheetData) {
	t.Helper()
	table := category.Default()
	a := DefaultAssumptions()
	agg := aggregate.Aggregate(txs, table)
	dep := aggregate.Depreciate(agg.TotalCapEx, agg.MonthsInPeriod(), a.UsefulLifeMonths)
	pnl := buildPnL(agg, dep, txs, table, a)
	cf := buildCashFlow(agg, txs, pnl.NetProfit, dep.Total, table, a)
	bs := buildBalanceSheet(pnl, cf, txs, agg.TotalCapEx, table, a)
	return pnl, cf, bs
}

func TestBuildBalanceSheet_ProxyLines(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Date: date(2024, time.January, 1), Amount: 10000, Type: models.TxIncome, Category: models.CatCoreRevenue, TransactionType: models.ActivityOperating},
		{ID: "2", Date: date(2024, time.January, 2), Amount: 2000, Type: models.TxExpense, Category: models.CatPurchasedGoods, TransactionType: models.ActivityOperating},
		{ID: "3", Date: date(2024, time.January, 3), Amount: 1000, Type: models.TxExpense, Category: models.CatOfficeRent, TransactionType: models.ActivityOperating},
	}

	pnl, cf, bs := buildAllFor(t, txs)

	approx(t, "cash = cumulative net cash flow", bs.Assets.Current.Cash,
		cf.OperatingActivities+cf.InvestingActivities+cf.FinancingActivities)
	approx(t, "receivables 10%", bs.Assets.Current.AccountsReceivable, 1000)
	approx(t, "inventory 15% of COGS", bs.Assets.Current.Inventory, 300)
	approx(t, "prepaid 5% of opex", bs.Assets.Current.PrepaidExpenses, 50)
	approx(t, "payables 8% of COGS", bs.Liabilities.Current.AccountsPayable, 160)
	approx(t, "accrued 3% of opex", bs.Liabilities.Current.AccruedExpenses, 30)
	approx(t, "taxes payable exact", bs.Liabilities.Current.TaxesPayable, pnl.Taxes)
	if bs.Basis != models.BalanceSheetBasisProxy {
		t.Errorf("expected proxy basis marker, got %q", bs.Basis)
	}
}

func TestBuildBalanceSheet_EquipmentNetOfDepreciation(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Date: date(2024, time.January, 1), Amount: 3600, Type: models.TxExpense, Category: models.CatEquipment, TransactionType: models.ActivityInvesting, IsCapitalized: true},
		{ID: "2", Date: date(2024, time.December, 31), Amount: 100, Type: models.TxIncome, Category: models.CatCoreRevenue, TransactionType: models.ActivityOperating},
	}

	_, _, bs := buildAllFor(t, txs)
	nc := bs.Assets.NonCurrent
	approx(t, "equipment at cost", nc.Equipment, 3600)
	// 12-month period at 100/month.
	approx(t, "accumulated depreciation", nc.AccumulatedDepreciation, -1200)
	approx(t, "net equipment", nc.NetEquipment, 2400)
	approx(t, "non-current total", nc.Total, 2400)
}

func TestBuildBalanceSheet_DebtAndEquity(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Date: date(2024, time.January, 1), Amount: 5000, Type: models.TxIncome, Category: models.CatLoanProceeds, TransactionType: models.ActivityFinancing},
		{ID: "2", Date: date(2024, time.February, 1), Amount: 1500, Type: models.TxExpense, Category: models.CatLoanRepayment, TransactionType: models.ActivityFinancing},
		{ID: "3", Date: date(2024, time.March, 1), Amount: 2000, Type: models.TxIncome, Category: models.CatOwnerContribution, TransactionType: models.ActivityFinancing},
		{ID: "4", Date: date(2024, time.April, 1), Amount: 400, Type: models.TxExpense, Category: models.CatPersonalWithdrawal, TransactionType: models.ActivityFinancing},
		{ID: "5", Date: date(2024, time.May, 1), Amount: 300, Type: models.TxExpense, Category: models.CatDividendsPaid, TransactionType: models.ActivityFinancing},
		{ID: "6", Date: date(2024, time.May, 2), Amount: 1000, Type: models.TxIncome, Category: models.CatCoreRevenue, TransactionType: models.ActivityOperating},
	}

	pnl, _, bs := buildAllFor(t, txs)

	approx(t, "loans payable", bs.Liabilities.NonCurrent.LoansPayable, 3500) // 5000 - 1500
	approx(t, "authorized capital", bs.Equity.AuthorizedCapital, 2000)
	approx(t, "retained earnings", bs.Equity.RetainedEarnings, pnl.NetProfit-300)
	approx(t, "withdrawals", bs.Equity.Withdrawals, 700) // 400 personal + 300 dividends
	approx(t, "total equity", bs.Equity.Total,
		bs.Equity.AuthorizedCapital+bs.Equity.RetainedEarnings-bs.Equity.Withdrawals)
	approx(t, "liabilities + equity", bs.TotalLiabilitiesAndEquity, bs.Liabilities.Total+bs.Equity.Total)
}

func TestBuildBalanceSheet_RatioGuards(t *testing.T) {
	// A single capitalized purchase: no current liabilities, no equity flows.
	txs := []models.Transaction{
		{ID: "1", Date: date(2024, time.January, 1), Amount: 500, Type: models.TxExpense, Category: models.CatEquipment, TransactionType: models.ActivityInvesting, IsCapitalized: true},
	}

	_, _, bs := buildAllFor(t, txs)
	r := bs.Ratios
	if r.CurrentRatio != 0 || r.QuickRatio != 0 || r.DebtToEquity != 0 {
		t.Errorf("zero-denominator ratios must be exactly 0, got %+v", r)
	}
}
