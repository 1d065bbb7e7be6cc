// Package classify is the transaction classification collaborator. The
// engine consumes its output and never calls it; input adapters run it on
// raw statement rows before report generation.
package classify

import (
	"context"

	"github.com/NIgan1989/finsights-engine/pkg/models"
)

// Request is one unclassified transaction.
type Request struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Type        models.TxType `json:"type"`
}

// Result is the classifier's verdict for one transaction.
type Result struct {
	ID              string          `json:"id"`
	Category        models.Category `json:"category"`
	TransactionType models.Activity `json:"transactionType"`
	IsCapitalized   bool            `json:"isCapitalized"`
}

// Classifier assigns a category, activity and capitalization flag to each
// request. Implementations must return one result per request, in order.
type Classifier interface {
	Classify(ctx context.Context, reqs []Request) ([]Result, error)
}
