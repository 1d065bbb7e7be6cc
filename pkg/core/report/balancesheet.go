package report

import (
	"github.com/NIgan1989/finsights-engine/pkg/core/category"
	"github.com/NIgan1989/finsights-engine/pkg/models"
)

// buildBalanceSheet synthesizes a balance sheet from the already-finalized
// P&L and cash flow totals. No opening-balance ledger exists, so most lines
// are proxies: fixed ratios applied to flow totals (see Assumptions). Because
// every line traces back to the same totals, assets match liabilities plus
// equity only by construction — there is no independent double-entry
// reconciliation here, and the sheet carries the proxy basis marker so
// callers cannot mistake the balancing for a correctness guarantee.
func buildBalanceSheet(pnl models.PnLData, cf models.CashFlowData, txs []models.Transaction, totalCapEx float64, table *category.Table, a Assumptions) models.BalanceSheetData {
	// Cumulative net cash flow stands in for a period-end cash balance.
	cash := cf.OperatingActivities + cf.InvestingActivities + cf.FinancingActivities

	current := models.CurrentAssets{
		Cash:               cash,
		AccountsReceivable: pnl.TotalRevenue * a.ReceivablesPctOfRevenue,
		Inventory:          pnl.CostOfGoodsSold * a.InventoryPctOfCOGS,
		PrepaidExpenses:    pnl.TotalOperatingExpenses * a.PrepaidPctOfOpex,
	}
	current.Total = current.Cash + current.AccountsReceivable + current.Inventory + current.PrepaidExpenses

	nonCurrent := models.NonCurrentAssets{
		Equipment:               totalCapEx,
		AccumulatedDepreciation: -pnl.Depreciation,
	}
	nonCurrent.NetEquipment = nonCurrent.Equipment + nonCurrent.AccumulatedDepreciation
	nonCurrent.Total = nonCurrent.NetEquipment

	assets := models.Assets{
		Current:    current,
		NonCurrent: nonCurrent,
		Total:      current.Total + nonCurrent.Total,
	}

	currentLiab := models.CurrentLiabilities{
		AccountsPayable: pnl.CostOfGoodsSold * a.PayablesPctOfCOGS,
		AccruedExpenses: pnl.TotalOperatingExpenses * a.AccruedPctOfOpex,
		TaxesPayable:    pnl.Taxes, // exact, from the P&L
	}
	currentLiab.Total = currentLiab.AccountsPayable + currentLiab.AccruedExpenses + currentLiab.TaxesPayable

	// Financing detail values are signed (repayments negative), so the
	// outstanding balance is proceeds plus repayments.
	nonCurrentLiab := models.NonCurrentLiabilities{
		LoansPayable: cf.FinancingDetails.DebtProceeds + cf.FinancingDetails.DebtRepayments,
	}
	nonCurrentLiab.Total = nonCurrentLiab.LoansPayable

	liabilities := models.Liabilities{
		Current:    currentLiab,
		NonCurrent: nonCurrentLiab,
		Total:      currentLiab.Total + nonCurrentLiab.Total,
	}

	var dividends, withdrawals, contributions float64
	for _, tx := range txs {
		switch table.Lookup(tx.Category).Financing {
		case category.RoleDividends:
			dividends += tx.Amount
		case category.RoleWithdrawal:
			withdrawals += tx.Amount
		case category.RoleEquityContribution:
			if tx.Type == models.TxIncome {
				contributions += tx.Amount
			}
		}
	}

	equity := models.Equity{
		AuthorizedCapital: contributions,
		RetainedEarnings:  pnl.NetProfit - dividends,
		Contributions:     contributions,
		Withdrawals:       withdrawals + dividends,
	}
	equity.Total = equity.AuthorizedCapital + equity.RetainedEarnings - equity.Withdrawals

	bs := models.BalanceSheetData{
		Basis:                     models.BalanceSheetBasisProxy,
		Assets:                    assets,
		Liabilities:               liabilities,
		Equity:                    equity,
		TotalLiabilitiesAndEquity: liabilities.Total + equity.Total,
		Ratios: models.BalanceSheetRatios{
			CurrentRatio:  safeDiv(current.Total, currentLiab.Total),
			QuickRatio:    safeDiv(current.Total-current.Inventory, currentLiab.Total),
			DebtToEquity:  safeDiv(liabilities.Total, equity.Total),
			AssetTurnover: safeDiv(pnl.TotalRevenue, assets.Total),
		},
	}
	return bs
}
