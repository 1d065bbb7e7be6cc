package report

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/NIgan1989/finsights-engine/pkg/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Errorf("%s: expected %.4f, got %.4f", name, want, got)
	}
}

func TestGenerate_EmptyInput(t *testing.T) {
	r := NewEngine().Generate(nil)

	if r.PnL.TotalRevenue != 0 || r.PnL.NetProfit != 0 || r.CashFlow.NetCashFlow != 0 {
		t.Error("empty input must yield an all-zero report")
	}
	if r.PnL.MonthlyData == nil || len(r.PnL.MonthlyData) != 0 {
		t.Error("expected empty (non-nil) P&L monthly series")
	}
	if r.PnL.ExpenseByCategory == nil || len(r.PnL.ExpenseByCategory) != 0 {
		t.Error("expected empty (non-nil) expense breakdown")
	}
	if r.CashFlow.MonthlyData == nil || len(r.CashFlow.MonthlyData) != 0 {
		t.Error("expected empty (non-nil) cash flow monthly series")
	}
	if r.DateRange.Start != "" || r.DateRange.End != "" {
		t.Errorf("expected empty date range, got %+v", r.DateRange)
	}
	if r.BalanceSheet.Basis != models.BalanceSheetBasisProxy {
		t.Errorf("expected proxy basis marker, got %q", r.BalanceSheet.Basis)
	}
}

// TestGenerate_Scenario walks the canonical three-transaction case:
// income 5000 core-revenue operating, expense 1500 office-rent operating,
// expense 3000 equipment investing capitalized, all in one month.
func TestGenerate_Scenario(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Date: date(2024, time.April, 5), Amount: 5000, Type: models.TxIncome, Category: models.CatCoreRevenue, TransactionType: models.ActivityOperating},
		{ID: "2", Date: date(2024, time.April, 10), Amount: 1500, Type: models.TxExpense, Category: models.CatOfficeRent, TransactionType: models.ActivityOperating},
		{ID: "3", Date: date(2024, time.April, 20), Amount: 3000, Type: models.TxExpense, Category: models.CatEquipment, TransactionType: models.ActivityInvesting, IsCapitalized: true},
	}

	r := NewEngine().Generate(txs)

	approx(t, "totalRevenue", r.PnL.TotalRevenue, 5000)
	approx(t, "totalOperatingExpenses", r.PnL.TotalOperatingExpenses, 1500)
	approx(t, "ebitda", r.PnL.EBITDA, 3500)
	// One-month period: 3000/36 × 1.
	approx(t, "depreciation", r.PnL.Depreciation, 83.3333)
	approx(t, "ebit", r.PnL.EBIT, 3416.6667)
	approx(t, "taxes", r.PnL.Taxes, 683.3333)
	approx(t, "netProfit", r.PnL.NetProfit, 2733.3333)

	approx(t, "operatingActivities", r.CashFlow.OperatingActivities, 3500)
	approx(t, "investingActivities", r.CashFlow.InvestingActivities, -3000)
	approx(t, "netCashFlow", r.CashFlow.NetCashFlow, 500)

	approx(t, "equipment", r.BalanceSheet.Assets.NonCurrent.Equipment, 3000)
	approx(t, "cash", r.BalanceSheet.Assets.Current.Cash, 500)
	// 5000 × 0.10 receivables proxy.
	approx(t, "receivables", r.BalanceSheet.Assets.Current.AccountsReceivable, 500)

	if r.DateRange.Start != "2024-04-05" || r.DateRange.End != "2024-04-20" {
		t.Errorf("unexpected date range %+v", r.DateRange)
	}
}

func TestGenerate_RatioBackPatch(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Date: date(2024, time.January, 1), Amount: 5000, Type: models.TxIncome, Category: models.CatCoreRevenue, TransactionType: models.ActivityOperating},
		{ID: "2", Date: date(2024, time.January, 2), Amount: 1000, Type: models.TxExpense, Category: models.CatUtilities, TransactionType: models.ActivityOperating},
	}

	r := NewEngine().Generate(txs)

	// Balance sheet totals exist, so the patched ratios must be non-zero.
	bs := r.BalanceSheet
	if bs.Assets.Total == 0 || bs.Equity.Total == 0 || bs.Liabilities.Current.Total == 0 {
		t.Fatalf("scenario expected non-zero balance sheet totals: %+v", bs)
	}
	approx(t, "roa", r.PnL.Ratios.ROA, r.PnL.NetProfit/bs.Assets.Total)
	approx(t, "roe", r.PnL.Ratios.ROE, r.PnL.NetProfit/bs.Equity.Total)
	approx(t, "operatingCashFlowRatio", r.CashFlow.Liquidity.OperatingCashFlowRatio,
		r.CashFlow.OperatingActivities/bs.Liabilities.Current.Total)
}

func TestGenerate_Idempotent(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Date: date(2024, time.February, 1), Amount: 900, Type: models.TxIncome, Category: models.CatCoreRevenue, TransactionType: models.ActivityOperating},
		{ID: "2", Date: date(2024, time.March, 1), Amount: 300, Type: models.TxExpense, Category: models.CatRawMaterials, TransactionType: models.ActivityOperating},
		{ID: "3", Date: date(2024, time.March, 15), Amount: 240, Type: models.TxExpense, Category: models.CatEquipment, TransactionType: models.ActivityInvesting, IsCapitalized: true},
	}

	e := NewEngine()
	first := e.Generate(txs)
	second := e.Generate(txs)
	if !reflect.DeepEqual(first, second) {
		t.Error("two generations over the same list must be identical")
	}
}

func TestGenerate_InputOrderIrrelevant(t *testing.T) {
	a := models.Transaction{ID: "1", Date: date(2024, time.January, 1), Amount: 100, Type: models.TxIncome, Category: models.CatCoreRevenue, TransactionType: models.ActivityOperating}
	b := models.Transaction{ID: "2", Date: date(2024, time.February, 1), Amount: 40, Type: models.TxExpense, Category: models.CatMarketing, TransactionType: models.ActivityOperating}

	e := NewEngine()
	fwd := e.Generate([]models.Transaction{a, b})
	rev := e.Generate([]models.Transaction{b, a})
	if !reflect.DeepEqual(fwd, rev) {
		t.Error("report must not depend on input order")
	}
}

func TestGenerate_DoesNotMutateInput(t *testing.T) {
	txs := []models.Transaction{
		{ID: "2", Date: date(2024, time.March, 1), Amount: 10, Type: models.TxIncome, Category: models.CatCoreRevenue, TransactionType: models.ActivityOperating},
		{ID: "1", Date: date(2024, time.January, 1), Amount: 20, Type: models.TxIncome, Category: models.CatCoreRevenue, TransactionType: models.ActivityOperating},
	}
	NewEngine().Generate(txs)
	if txs[0].ID != "2" || txs[1].ID != "1" {
		t.Error("engine must not reorder the caller's slice")
	}
}
