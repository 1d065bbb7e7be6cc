package report

import (
	"github.com/NIgan1989/finsights-engine/pkg/core/aggregate"
	"github.com/NIgan1989/finsights-engine/pkg/core/category"
	"github.com/NIgan1989/finsights-engine/pkg/models"
)

// buildCashFlow partitions cash movements into the three activity buckets and
// reconciles net profit to operating cash. A bucket's value is income minus
// expense within that activity.
//
// The working capital line is a plug (operating − netProfit − depreciation):
// without a receivables/payables sub-ledger there is nothing to derive it
// from. The financing detail carries an explicit Other line so unmatched
// financing categories stay visible instead of silently vanishing.
func buildCashFlow(agg *aggregate.Result, txs []models.Transaction, netProfit, totalDepreciation float64, table *category.Table, a Assumptions) models.CashFlowData {
	var operating, investing, financing float64
	var capEx, disposals float64
	var details models.FinancingCashFlowDetails

	for _, tx := range txs {
		signed := tx.Amount
		if tx.Type == models.TxExpense {
			signed = -tx.Amount
		}

		switch tx.TransactionType {
		case models.ActivityOperating:
			operating += signed
		case models.ActivityInvesting:
			investing += signed
			m := table.Lookup(tx.Category)
			if tx.Type == models.TxExpense && tx.IsCapitalized {
				capEx += tx.Amount
			}
			if tx.Type == models.TxIncome && m.AssetSale {
				disposals += tx.Amount
			}
		case models.ActivityFinancing:
			financing += signed
			switch table.Lookup(tx.Category).Financing {
			case category.RoleDebtProceeds:
				details.DebtProceeds += signed
			case category.RoleDebtRepayment:
				details.DebtRepayments += signed
			case category.RoleDividends:
				details.DividendsPaid += signed
			case category.RoleEquityContribution:
				details.EquityContributions += signed
			default:
				// Withdrawals and anything outside the enumerated subset.
				details.Other += signed
			}
		}
	}

	return models.CashFlowData{
		NetCashFlow:         operating + investing + financing,
		OperatingActivities: operating,
		InvestingActivities: investing,
		FinancingActivities: financing,
		OperatingDetails: models.OperatingCashFlowDetails{
			NetProfit:             netProfit,
			Depreciation:          totalDepreciation,
			WorkingCapitalChanges: operating - netProfit - totalDepreciation,
		},
		InvestingDetails: models.InvestingCashFlowDetails{
			CapitalExpenditures: -capEx,
			AssetDisposals:      disposals,
			Investments:         investing - (-capEx) - disposals,
		},
		FinancingDetails: details,
		MonthlyData:      monthlyCashFlow(agg),
		Liquidity: models.LiquidityMetrics{
			// OperatingCashFlowRatio patched by the assembler.
			CashConversionCycle: a.CashConversionCycleDays,
		},
	}
}

func monthlyCashFlow(agg *aggregate.Result) []models.MonthlyCashFlow {
	series := make([]models.MonthlyCashFlow, 0, len(agg.Buckets))
	for _, label := range agg.SortedMonths() {
		b := agg.Buckets[label]
		series = append(series, models.MonthlyCashFlow{
			Month:   b.Month,
			Inflow:  b.CashInflow,
			Outflow: b.CashOutflow,
			Net:     b.CashInflow - b.CashOutflow,
		})
	}
	return series
}
