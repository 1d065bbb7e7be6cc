package models

import (
	"time"
)

// TxType is the direction of a transaction. Amounts are always positive
// magnitudes; direction is carried here, never by sign.
type TxType string

const (
	TxIncome  TxType = "income"
	TxExpense TxType = "expense"
)

// Activity is the cash flow statement activity a transaction belongs to.
type Activity string

const (
	ActivityOperating Activity = "operating"
	ActivityInvesting Activity = "investing"
	ActivityFinancing Activity = "financing"
)

// Category is one value of the fixed, versioned classifier enumeration.
// Bucket assignment throughout the engine keys exactly on these strings, so
// any change here is a breaking change to the classification tables.
type Category string

// Expense categories.
const (
	CatPurchasedGoods     Category = "purchased-goods"
	CatRawMaterials       Category = "raw-materials"
	CatProductionWages    Category = "production-wages"
	CatProductionRent     Category = "production-rent"
	CatProductionServices Category = "production-services"
	CatMarketing          Category = "marketing"
	CatSalesCommissions   Category = "sales-commissions"
	CatLogistics          Category = "logistics"
	CatAdminWages         Category = "admin-wages"
	CatOfficeRent         Category = "office-rent"
	CatUtilities          Category = "utilities"
	CatCommunications     Category = "communications"
	CatOfficeSupplies     Category = "office-supplies"
	CatConsultingAudit    Category = "consulting-audit"
	CatInsurance          Category = "insurance"
	CatHospitality        Category = "hospitality"
	CatTravel             Category = "travel"
	CatTraining           Category = "training"
	CatSoftwareSubs       Category = "software-subscriptions"
	CatOtherTaxes         Category = "other-taxes"
	CatBankFees           Category = "bank-fees"
	CatFines              Category = "fines"
	CatLoanInterest       Category = "loan-interest"
	CatNegativeFX         Category = "negative-fx"
	CatEquipment          Category = "equipment"
	CatVehicles           Category = "vehicles"
	CatRealEstate         Category = "real-estate"
	CatIntangibles        Category = "intangibles"
	CatAssetUpgrades      Category = "asset-upgrades"
	CatLoanRepayment      Category = "loan-repayment"
	CatLeasePayments      Category = "lease-payments"
	CatDividendsPaid      Category = "dividends-paid"
	CatEquityBuyback      Category = "equity-buyback"
	CatSavingsTransfer    Category = "savings-transfer"
	CatPersonalWithdrawal Category = "personal-withdrawals"
	CatOther              Category = "other"
)

// Income categories.
const (
	CatCoreRevenue       Category = "core-revenue"
	CatAncillaryServices Category = "ancillary-services"
	CatCommissionIncome  Category = "commission-income"
	CatRentalIncome      Category = "rental-income"
	CatRoyalties         Category = "royalties"
	CatInterestIncome    Category = "interest-income"
	CatPositiveFX        Category = "positive-fx"
	CatDividendsReceived Category = "dividends-received"
	CatAssetSaleProceeds Category = "asset-sale-proceeds"
	CatLoanProceeds      Category = "loan-proceeds"
	CatOwnerContribution Category = "owner-contribution"
	CatOtherIncome       Category = "other-income"
)

// Transaction is a classified bank movement. It is immutable once built:
// the engine never mutates it, and user edits re-enter as a fresh list
// through the classifier path.
type Transaction struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	Description     string    `json:"description"`
	Amount          float64   `json:"amount"` // always > 0
	Type            TxType    `json:"type"`
	Category        Category  `json:"category"`
	TransactionType Activity  `json:"transactionType"`
	IsCapitalized   bool      `json:"isCapitalized"` // meaningful for expenses only
}
