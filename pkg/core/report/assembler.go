package report

import (
	"sort"

	"github.com/NIgan1989/finsights-engine/pkg/core/aggregate"
	"github.com/NIgan1989/finsights-engine/pkg/core/category"
	"github.com/NIgan1989/finsights-engine/pkg/models"
)

// dateFormat renders the report period bounds.
const dateFormat = "2006-01-02"

// Engine assembles complete financial reports. It is stateless between
// calls: given the same transaction list it produces an identical report.
type Engine struct {
	table       *category.Table
	assumptions Assumptions
}

// NewEngine creates an engine with the default category table and
// assumptions.
func NewEngine() *Engine {
	return &Engine{table: category.Default(), assumptions: DefaultAssumptions()}
}

// NewEngineWith creates an engine with an injected category table and
// assumption set.
func NewEngineWith(table *category.Table, a Assumptions) *Engine {
	return &Engine{table: table, assumptions: a}
}

// Generate derives the three statements from a classified transaction list.
// The list may arrive in any order; invalid records (unparseable dates,
// non-finite amounts) must be rejected upstream — the engine assumes clean
// classified input and never returns an error.
//
// Build order is fixed because each stage consumes the previous one:
// aggregate → depreciation → P&L → cash flow → balance sheet. ROA, ROE and
// the operating cash flow ratio need balance sheet totals that in turn need
// the finalized flow totals, so they are filled in by a final patch pass
// rather than threaded through the builders.
func (e *Engine) Generate(txs []models.Transaction) models.FinancialReport {
	if len(txs) == 0 {
		return emptyReport()
	}

	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	agg := aggregate.Aggregate(sorted, e.table)
	dep := aggregate.Depreciate(agg.TotalCapEx, agg.MonthsInPeriod(), e.assumptions.UsefulLifeMonths)

	pnl := buildPnL(agg, dep, sorted, e.table, e.assumptions)
	cf := buildCashFlow(agg, sorted, pnl.NetProfit, dep.Total, e.table, e.assumptions)
	bs := buildBalanceSheet(pnl, cf, sorted, agg.TotalCapEx, e.table, e.assumptions)

	finalizeRatios(&pnl, &cf, bs)

	return models.FinancialReport{
		PnL:          pnl,
		CashFlow:     cf,
		BalanceSheet: bs,
		DateRange: models.DateRange{
			Start: agg.FirstDate.Format(dateFormat),
			End:   agg.LastDate.Format(dateFormat),
		},
	}
}

// finalizeRatios back-patches the three ratios that depend on balance sheet
// totals.
func finalizeRatios(pnl *models.PnLData, cf *models.CashFlowData, bs models.BalanceSheetData) {
	pnl.Ratios.ROA = safeDiv(pnl.NetProfit, bs.Assets.Total)
	pnl.Ratios.ROE = safeDiv(pnl.NetProfit, bs.Equity.Total)
	cf.Liquidity.OperatingCashFlowRatio = safeDiv(cf.OperatingActivities, bs.Liabilities.Current.Total)
}

// emptyReport is the canonical all-zero report for an empty transaction
// list. Required terminal case, not an error.
func emptyReport() models.FinancialReport {
	return models.FinancialReport{
		PnL: models.PnLData{
			MonthlyData:       []models.MonthlyPnL{},
			ExpenseByCategory: []models.CategoryAmount{},
		},
		CashFlow: models.CashFlowData{
			MonthlyData: []models.MonthlyCashFlow{},
		},
		BalanceSheet: models.BalanceSheetData{Basis: models.BalanceSheetBasisProxy},
		DateRange:    models.DateRange{},
	}
}
