package models

// =============================================================================
// FINANCIAL REPORT STRUCTURES
// One report per generation call. All values are derived; the report holds no
// back-reference to the source transactions.
// =============================================================================

// DateRange is the inclusive reporting period, taken from the first and last
// transaction dates. Empty strings for an empty report.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MonthlyPnL is one point of the P&L chart series.
type MonthlyPnL struct {
	Month    string  `json:"month"` // "Jan 2006"
	Revenue  float64 `json:"revenue"`
	COGS     float64 `json:"costOfGoodsSold"`
	Expenses float64 `json:"operatingExpenses"`
	Profit   float64 `json:"profit"` // revenue - cogs - opex
}

// CategoryAmount is one line of the expense breakdown, sorted descending.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// PnLRatios holds profitability ratios. ROA and ROE stay zero until the
// assembler patches them from balance sheet totals.
type PnLRatios struct {
	GrossMargin     float64 `json:"grossMargin"`
	OperatingMargin float64 `json:"operatingMargin"`
	NetMargin       float64 `json:"netMargin"`
	ROA             float64 `json:"roa"`
	ROE             float64 `json:"roe"`
}

// PnLData is the derived Profit & Loss statement.
type PnLData struct {
	TotalRevenue           float64 `json:"totalRevenue"`
	CostOfGoodsSold        float64 `json:"costOfGoodsSold"`
	GrossProfit            float64 `json:"grossProfit"`
	TotalOperatingExpenses float64 `json:"totalOperatingExpenses"`
	EBITDA                 float64 `json:"ebitda"`
	Depreciation           float64 `json:"depreciation"`
	EBIT                   float64 `json:"ebit"`
	FinancialIncome        float64 `json:"financialIncome"`
	FinancialExpense       float64 `json:"financialExpense"`
	EBT                    float64 `json:"ebt"`
	Taxes                  float64 `json:"taxes"`
	NetProfit              float64 `json:"netProfit"`

	MonthlyData       []MonthlyPnL     `json:"monthlyData"`
	ExpenseByCategory []CategoryAmount `json:"expenseByCategory"`
	Ratios            PnLRatios        `json:"ratios"`
}

// MonthlyCashFlow is one point of the cash flow chart series.
type MonthlyCashFlow struct {
	Month   string  `json:"month"`
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
	Net     float64 `json:"netFlow"`
}

// OperatingCashFlowDetails reconciles accrual net profit to operating cash.
// WorkingCapitalChanges is a plug (operating − netProfit − depreciation);
// no receivables/payables sub-ledger exists to derive it from.
type OperatingCashFlowDetails struct {
	NetProfit             float64 `json:"netProfit"`
	Depreciation          float64 `json:"depreciation"`
	WorkingCapitalChanges float64 `json:"workingCapitalChanges"`
}

// InvestingCashFlowDetails breaks the investing bucket down.
type InvestingCashFlowDetails struct {
	CapitalExpenditures float64 `json:"capitalExpenditures"` // negative
	AssetDisposals      float64 `json:"assetDisposals"`
	Investments         float64 `json:"investments"` // residual
}

// FinancingCashFlowDetails breaks the financing bucket down. Other absorbs
// financing categories outside the enumerated subset so the lines always sum
// to the bucket total.
type FinancingCashFlowDetails struct {
	DebtProceeds        float64 `json:"debtProceeds"`
	DebtRepayments      float64 `json:"debtRepayments"` // negative
	DividendsPaid       float64 `json:"dividendsPaid"`  // negative
	EquityContributions float64 `json:"equityContributions"`
	Other               float64 `json:"other"`
}

// LiquidityMetrics holds liquidity figures. OperatingCashFlowRatio stays zero
// until the assembler patches it from balance sheet totals.
// CashConversionCycle is a fixed assumption, not computed from turns.
type LiquidityMetrics struct {
	OperatingCashFlowRatio float64 `json:"operatingCashFlowRatio"`
	CashConversionCycle    float64 `json:"cashConversionCycle"` // days
}

// CashFlowData is the derived Cash Flow statement.
type CashFlowData struct {
	NetCashFlow         float64 `json:"netCashFlow"`
	OperatingActivities float64 `json:"operatingActivities"`
	InvestingActivities float64 `json:"investingActivities"`
	FinancingActivities float64 `json:"financingActivities"`

	OperatingDetails OperatingCashFlowDetails `json:"operatingDetails"`
	InvestingDetails InvestingCashFlowDetails `json:"investingDetails"`
	FinancingDetails FinancingCashFlowDetails `json:"financingDetails"`

	MonthlyData []MonthlyCashFlow `json:"monthlyData"`
	Liquidity   LiquidityMetrics  `json:"liquidity"`
}

// CurrentAssets are proxy current asset lines.
type CurrentAssets struct {
	Cash               float64 `json:"cash"`
	AccountsReceivable float64 `json:"accountsReceivable"`
	Inventory          float64 `json:"inventory"`
	PrepaidExpenses    float64 `json:"prepaidExpenses"`
	Total              float64 `json:"total"`
}

// NonCurrentAssets carry equipment at cost net of accumulated depreciation.
type NonCurrentAssets struct {
	Equipment               float64 `json:"equipment"`
	AccumulatedDepreciation float64 `json:"accumulatedDepreciation"` // negative
	NetEquipment            float64 `json:"netEquipment"`
	Total                   float64 `json:"total"`
}

// Assets groups the asset side of the sheet.
type Assets struct {
	Current    CurrentAssets    `json:"current"`
	NonCurrent NonCurrentAssets `json:"nonCurrent"`
	Total      float64          `json:"total"`
}

// CurrentLiabilities are proxy current liability lines.
type CurrentLiabilities struct {
	AccountsPayable float64 `json:"accountsPayable"`
	AccruedExpenses float64 `json:"accruedExpenses"`
	TaxesPayable    float64 `json:"taxesPayable"`
	Total           float64 `json:"total"`
}

// NonCurrentLiabilities hold outstanding debt.
type NonCurrentLiabilities struct {
	LoansPayable float64 `json:"loansPayable"`
	Total        float64 `json:"total"`
}

// Liabilities groups the liability side of the sheet.
type Liabilities struct {
	Current    CurrentLiabilities    `json:"current"`
	NonCurrent NonCurrentLiabilities `json:"nonCurrent"`
	Total      float64               `json:"total"`
}

// Equity groups the capital accounts.
type Equity struct {
	AuthorizedCapital float64 `json:"authorizedCapital"`
	RetainedEarnings  float64 `json:"retainedEarnings"`
	Contributions     float64 `json:"contributions"`
	Withdrawals       float64 `json:"withdrawals"`
	Total             float64 `json:"total"`
}

// BalanceSheetRatios holds leverage and liquidity ratios.
type BalanceSheetRatios struct {
	CurrentRatio  float64 `json:"currentRatio"`
	QuickRatio    float64 `json:"quickRatio"`
	DebtToEquity  float64 `json:"debtToEquity"`
	AssetTurnover float64 `json:"assetTurnover"`
}

// BalanceSheetBasisProxy marks a sheet synthesized from flow totals via fixed
// ratios. There is no real ledger behind it, so assets equal liabilities plus
// equity only by construction; a double-entry mode would carry its own marker
// and an explicit reconciliation assertion.
const BalanceSheetBasisProxy = "proxy-flows"

// BalanceSheetData is the synthesized Balance Sheet.
type BalanceSheetData struct {
	Basis                     string             `json:"basis"`
	Assets                    Assets             `json:"assets"`
	Liabilities               Liabilities        `json:"liabilities"`
	Equity                    Equity             `json:"equity"`
	TotalLiabilitiesAndEquity float64            `json:"totalLiabilitiesAndEquity"`
	Ratios                    BalanceSheetRatios `json:"ratios"`
}

// FinancialReport is the aggregate root returned by one generation call.
type FinancialReport struct {
	PnL          PnLData          `json:"pnl"`
	CashFlow     CashFlowData     `json:"cashFlow"`
	BalanceSheet BalanceSheetData `json:"balanceSheet"`
	DateRange    DateRange        `json:"dateRange"`
}
