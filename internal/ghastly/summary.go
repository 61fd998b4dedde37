package ghastly

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Summary aggregates the approved subset of a prediction list for the admin
// view: combined odds are the product over approved predictions (identity 1)
// and the combined comment is their concatenation (identity "").
type Summary struct {
	Approved []Prediction
	Odds     decimal.Decimal
	Comment  string
}

// Summarize partitions out the approved predictions and folds their odds and
// comments.
func Summarize(predictions []Prediction) Summary {
	summary := Summary{Odds: decimal.NewFromInt(1)}
	var comment strings.Builder
	for _, pred := range predictions {
		if !pred.Approved {
			continue
		}
		summary.Approved = append(summary.Approved, pred)
		summary.Odds = summary.Odds.Mul(pred.Odds)
		comment.WriteString(pred.Comment)
	}
	summary.Comment = comment.String()
	return summary
}
