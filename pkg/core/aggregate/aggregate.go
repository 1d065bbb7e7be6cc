// Package aggregate groups a classified transaction list into the per-month
// and per-category sums the statement builders consume.
package aggregate

import (
	"sort"
	"time"

	"github.com/NIgan1989/finsights-engine/pkg/core/category"
	"github.com/NIgan1989/finsights-engine/pkg/models"
)

// monthLabelFormat renders a calendar month the way the dashboard charts it.
const monthLabelFormat = "Jan 2006"

// MonthlyBucket accumulates one calendar month of flows. Discarded once the
// builders have consumed it.
type MonthlyBucket struct {
	Month       string
	Revenue     float64
	COGS        float64
	Opex        float64
	CashInflow  float64
	CashOutflow float64
}

// Result is the aggregated view of one transaction list.
type Result struct {
	Buckets           map[string]*MonthlyBucket
	ExpenseByCategory map[models.Category]float64 // operating, non-capitalized only
	TotalCapEx        float64
	FirstDate         time.Time
	LastDate          time.Time
}

// Aggregate walks the transaction list once and fills the monthly buckets.
// Income adds to cash inflow, and to revenue when operating. Expenses add to
// cash outflow; operating non-capitalized ones split into COGS vs opex via
// the category table, capitalized ones only feed TotalCapEx.
// Pure: the input list is read-only and may arrive in any order.
func Aggregate(txs []models.Transaction, table *category.Table) *Result {
	res := &Result{
		Buckets:           make(map[string]*MonthlyBucket),
		ExpenseByCategory: make(map[models.Category]float64),
	}

	for _, tx := range txs {
		if res.FirstDate.IsZero() || tx.Date.Before(res.FirstDate) {
			res.FirstDate = tx.Date
		}
		if tx.Date.After(res.LastDate) {
			res.LastDate = tx.Date
		}

		label := tx.Date.Format(monthLabelFormat)
		b, ok := res.Buckets[label]
		if !ok {
			b = &MonthlyBucket{Month: label}
			res.Buckets[label] = b
		}

		switch tx.Type {
		case models.TxIncome:
			b.CashInflow += tx.Amount
			if tx.TransactionType == models.ActivityOperating {
				b.Revenue += tx.Amount
			}
		case models.TxExpense:
			b.CashOutflow += tx.Amount
			if tx.IsCapitalized {
				res.TotalCapEx += tx.Amount
				continue
			}
			if tx.TransactionType != models.ActivityOperating {
				continue
			}
			if table.ExpenseBucket(tx.Category) == category.BucketCOGS {
				b.COGS += tx.Amount
			} else {
				b.Opex += tx.Amount
			}
			res.ExpenseByCategory[tx.Category] += tx.Amount
		}
	}

	return res
}

// SortedMonths returns bucket labels in calendar order. "Jan 2006" labels do
// not sort lexically, so each label is parsed back into a date first.
func (r *Result) SortedMonths() []string {
	labels := make([]string, 0, len(r.Buckets))
	for label := range r.Buckets {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ti, _ := time.Parse(monthLabelFormat, labels[i])
		tj, _ := time.Parse(monthLabelFormat, labels[j])
		return ti.Before(tj)
	})
	return labels
}

// MonthsInPeriod is the inclusive calendar-month span of the reporting
// period. Zero for an empty result.
func (r *Result) MonthsInPeriod() int {
	if r.FirstDate.IsZero() {
		return 0
	}
	years := r.LastDate.Year() - r.FirstDate.Year()
	months := int(r.LastDate.Month()) - int(r.FirstDate.Month())
	return years*12 + months + 1
}

// Totals sums revenue, COGS and opex across all buckets.
func (r *Result) Totals() (revenue, cogs, opex float64) {
	for _, b := range r.Buckets {
		revenue += b.Revenue
		cogs += b.COGS
		opex += b.Opex
	}
	return revenue, cogs, opex
}
