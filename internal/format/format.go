// Package format turns raw numeric and date fields into display-ready values.
// All functions are pure and stateless.
package format

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"go-rental-inventory/internal/model"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Currency renders an amount as INR with Indian digit grouping and exactly
// two fraction digits, e.g. 125500 -> "₹1,25,500.00".
func Currency(amount float64) string {
	return printer.Sprintf("₹%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// Date renders as zero-padded day/month with a four digit year (dd/mm/yyyy).
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// UtilizationPercent is the share of a product's total quantity currently
// held by parties, rounded to the nearest integer. A total of zero yields 0
// rather than a division fault. The yard share is 100 minus this value, never
// computed independently, so the two always sum to exactly 100.
func UtilizationPercent(partyStock, totalQuantity int) int {
	if totalQuantity == 0 {
		return 0
	}
	return int(math.Round(float64(partyStock) / float64(totalQuantity) * 100))
}

// GroupByDate buckets transactions by display date. Keys come back in
// first-seen order and fetch order is preserved within each date; the result
// is consumed for display grouping only, never persisted.
func GroupByDate(txs []model.Transaction) ([]string, map[string][]model.Transaction) {
	keys := make([]string, 0)
	groups := make(map[string][]model.Transaction)
	for _, tx := range txs {
		key := Date(tx.TransactionDate)
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], tx)
	}
	return keys, groups
}
