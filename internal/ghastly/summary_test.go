package ghastly

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		predictions  []Prediction
		wantOdds     string
		wantComment  string
		wantApproved int
	}{
		{
			name: "approved odds multiply and comments concatenate",
			predictions: []Prediction{
				{ID: 1, Odds: decimal.NewFromInt(2), Comment: "a", Approved: true},
				{ID: 2, Odds: decimal.NewFromInt(3), Comment: "b", Approved: true},
			},
			wantOdds:     "6",
			wantComment:  "ab",
			wantApproved: 2,
		},
		{
			name:         "empty list yields identities",
			predictions:  nil,
			wantOdds:     "1",
			wantComment:  "",
			wantApproved: 0,
		},
		{
			name: "unapproved predictions are skipped",
			predictions: []Prediction{
				{ID: 1, Odds: decimal.NewFromInt(2), Comment: "a", Approved: true},
				{ID: 2, Odds: decimal.NewFromInt(10), Comment: "noise", Approved: false},
				{ID: 3, Odds: decimal.RequireFromString("1.5"), Comment: "c", Approved: true},
			},
			wantOdds:     "3",
			wantComment:  "ac",
			wantApproved: 2,
		},
		{
			name: "nothing approved yields identities",
			predictions: []Prediction{
				{ID: 1, Odds: decimal.NewFromInt(4), Comment: "x", Approved: false},
			},
			wantOdds:     "1",
			wantComment:  "",
			wantApproved: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.predictions)

			assert.True(t, summary.Odds.Equal(decimal.RequireFromString(tt.wantOdds)),
				"odds = %s, want %s", summary.Odds, tt.wantOdds)
			assert.Equal(t, tt.wantComment, summary.Comment)
			assert.Len(t, summary.Approved, tt.wantApproved)
		})
	}
}
