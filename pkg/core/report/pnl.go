package report

import (
	"sort"

	"github.com/NIgan1989/finsights-engine/pkg/core/aggregate"
	"github.com/NIgan1989/finsights-engine/pkg/core/category"
	"github.com/NIgan1989/finsights-engine/pkg/models"
)

// depreciationLabel is the synthetic expense breakdown entry for the
// depreciation charge, which never appears as a transaction category.
const depreciationLabel = "Amortization/Depreciation"

// buildPnL derives the Profit & Loss statement. Each step depends on the one
// before it, so the order is fixed:
// revenue/COGS/opex → gross profit → EBITDA → EBIT → EBT → taxes → net profit.
// ROA and ROE stay zero here; the assembler patches them once balance sheet
// totals exist.
func buildPnL(agg *aggregate.Result, dep aggregate.DepreciationSchedule, txs []models.Transaction, table *category.Table, a Assumptions) models.PnLData {
	totalRevenue, totalCOGS, totalOpex := agg.Totals()

	grossProfit := totalRevenue - totalCOGS
	ebitda := grossProfit - totalOpex
	ebit := ebitda - dep.Total

	var finIncome, finExpense float64
	for _, tx := range txs {
		m := table.Lookup(tx.Category)
		switch {
		case tx.Type == models.TxIncome && m.FinancialIncome:
			finIncome += tx.Amount
		case tx.Type == models.TxExpense && m.FinancialExpense:
			finExpense += tx.Amount
		}
	}

	ebt := ebit + finIncome - finExpense
	taxes := ebt * a.TaxRate
	if taxes < 0 {
		taxes = 0 // no refund modeled on losses
	}
	netProfit := ebt - taxes

	pnl := models.PnLData{
		TotalRevenue:           totalRevenue,
		CostOfGoodsSold:        totalCOGS,
		GrossProfit:            grossProfit,
		TotalOperatingExpenses: totalOpex,
		EBITDA:                 ebitda,
		Depreciation:           dep.Total,
		EBIT:                   ebit,
		FinancialIncome:        finIncome,
		FinancialExpense:       finExpense,
		EBT:                    ebt,
		Taxes:                  taxes,
		NetProfit:              netProfit,
		MonthlyData:            monthlyPnL(agg),
		ExpenseByCategory:      expenseBreakdown(agg, dep.Total),
		Ratios: models.PnLRatios{
			GrossMargin:     safeDiv(grossProfit, totalRevenue),
			OperatingMargin: safeDiv(ebit, totalRevenue),
			NetMargin:       safeDiv(netProfit, totalRevenue),
		},
	}
	return pnl
}

func monthlyPnL(agg *aggregate.Result) []models.MonthlyPnL {
	series := make([]models.MonthlyPnL, 0, len(agg.Buckets))
	for _, label := range agg.SortedMonths() {
		b := agg.Buckets[label]
		series = append(series, models.MonthlyPnL{
			Month:    b.Month,
			Revenue:  b.Revenue,
			COGS:     b.COGS,
			Expenses: b.Opex,
			Profit:   b.Revenue - b.COGS - b.Opex,
		})
	}
	return series
}

// expenseBreakdown sorts category totals descending by value and appends the
// synthetic depreciation entry when a charge exists.
func expenseBreakdown(agg *aggregate.Result, totalDepreciation float64) []models.CategoryAmount {
	breakdown := make([]models.CategoryAmount, 0, len(agg.ExpenseByCategory)+1)
	for cat, amount := range agg.ExpenseByCategory {
		breakdown = append(breakdown, models.CategoryAmount{Category: string(cat), Amount: amount})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category // stable output for equal values
	})
	if totalDepreciation > 0 {
		breakdown = append(breakdown, models.CategoryAmount{Category: depreciationLabel, Amount: totalDepreciation})
	}
	return breakdown
}
