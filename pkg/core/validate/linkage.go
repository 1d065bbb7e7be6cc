// Package validate provides cross-statement linkage checks for generated
// reports. The checks report, they never mutate: a proxy balance sheet is
// expected to carry a gap between assets and liabilities plus equity, and the
// caller decides what to do with it.
package validate

import (
	"math"

	"github.com/NIgan1989/finsights-engine/pkg/models"
)

// LinkageReport contains all cross-statement validation results for one
// generated report.
type LinkageReport struct {
	PnLToCF      *NetProfitLinkage  `json:"pnl_to_cf"`
	CFInternal   *CashFlowInternal  `json:"cf_internal"`
	BalanceCheck *BalanceSheetCheck `json:"balance_check"`
	AllPassed    bool               `json:"all_passed"`
	FailedChecks []string           `json:"failed_checks,omitempty"`
}

// NetProfitLinkage validates: P&L net profit == CF operating detail start.
type NetProfitLinkage struct {
	PnLNetProfit float64 `json:"pnl_net_profit"`
	CFNetProfit  float64 `json:"cf_net_profit"`
	Difference   float64 `json:"difference"`
	IsLinked     bool    `json:"is_linked"`
	Tolerance    float64 `json:"tolerance"`
}

// CashFlowInternal validates that the activity buckets sum to the net cash
// flow and that the financing detail lines sum to the financing total.
type CashFlowInternal struct {
	NetCashFlow    float64 `json:"net_cash_flow"`
	ActivitySum    float64 `json:"activity_sum"`
	FinancingTotal float64 `json:"financing_total"`
	FinancingSum   float64 `json:"financing_detail_sum"`
	IsLinked       bool    `json:"is_linked"`
	Tolerance      float64 `json:"tolerance"`
}

// BalanceSheetCheck reports the gap between total assets and total
// liabilities plus equity. On a proxy-basis sheet the gap is informational:
// the two sides are derived from the same flow totals, not reconciled
// double-entry, so a non-zero gap fails the check only on a ledger-basis
// sheet.
type BalanceSheetCheck struct {
	Basis                     string  `json:"basis"`
	TotalAssets               float64 `json:"total_assets"`
	TotalLiabilitiesAndEquity float64 `json:"total_liabilities_and_equity"`
	Gap                       float64 `json:"gap"`
	Enforced                  bool    `json:"enforced"`
	IsLinked                  bool    `json:"is_linked"`
	Tolerance                 float64 `json:"tolerance"`
}

// CheckReport runs all linkage checks against a generated report.
func CheckReport(r *models.FinancialReport, tolerance float64) *LinkageReport {
	report := &LinkageReport{AllPassed: true}

	report.PnLToCF = checkNetProfitLinkage(r, tolerance)
	if !report.PnLToCF.IsLinked {
		report.AllPassed = false
		report.FailedChecks = append(report.FailedChecks, "P&L net profit → CF operating detail")
	}

	report.CFInternal = checkCashFlowInternal(r, tolerance)
	if !report.CFInternal.IsLinked {
		report.AllPassed = false
		report.FailedChecks = append(report.FailedChecks, "CF activity and financing detail sums")
	}

	report.BalanceCheck = checkBalance(r, tolerance)
	if !report.BalanceCheck.IsLinked {
		report.AllPassed = false
		report.FailedChecks = append(report.FailedChecks, "Assets == Liabilities + Equity")
	}

	return report
}

func checkNetProfitLinkage(r *models.FinancialReport, tolerance float64) *NetProfitLinkage {
	diff := r.PnL.NetProfit - r.CashFlow.OperatingDetails.NetProfit
	return &NetProfitLinkage{
		PnLNetProfit: r.PnL.NetProfit,
		CFNetProfit:  r.CashFlow.OperatingDetails.NetProfit,
		Difference:   diff,
		IsLinked:     math.Abs(diff) <= tolerance,
		Tolerance:    tolerance,
	}
}

func checkCashFlowInternal(r *models.FinancialReport, tolerance float64) *CashFlowInternal {
	cf := r.CashFlow
	activitySum := cf.OperatingActivities + cf.InvestingActivities + cf.FinancingActivities
	d := cf.FinancingDetails
	financingSum := d.DebtProceeds + d.DebtRepayments + d.DividendsPaid + d.EquityContributions + d.Other

	return &CashFlowInternal{
		NetCashFlow:    cf.NetCashFlow,
		ActivitySum:    activitySum,
		FinancingTotal: cf.FinancingActivities,
		FinancingSum:   financingSum,
		IsLinked: math.Abs(cf.NetCashFlow-activitySum) <= tolerance &&
			math.Abs(cf.FinancingActivities-financingSum) <= tolerance,
		Tolerance: tolerance,
	}
}

func checkBalance(r *models.FinancialReport, tolerance float64) *BalanceSheetCheck {
	bs := r.BalanceSheet
	gap := bs.Assets.Total - bs.TotalLiabilitiesAndEquity
	enforced := bs.Basis != models.BalanceSheetBasisProxy

	return &BalanceSheetCheck{
		Basis:                     bs.Basis,
		TotalAssets:               bs.Assets.Total,
		TotalLiabilitiesAndEquity: bs.TotalLiabilitiesAndEquity,
		Gap:                       gap,
		Enforced:                  enforced,
		IsLinked:                  !enforced || math.Abs(gap) <= tolerance,
		Tolerance:                 tolerance,
	}
}
