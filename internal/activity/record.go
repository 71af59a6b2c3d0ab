// Package activity reshapes fetched capital-activity documents into the
// normalized rows the export file is built from.
package activity

import (
	"sort"
	"strconv"
)

// Kind selects which side of a capital-activity record carries the cash
// movement: calls are money in, distributions are money out.
type Kind int

const (
	KindCall Kind = iota
	KindDistribution
)

func (k Kind) String() string {
	if k == KindDistribution {
		return "distribution"
	}
	return "call"
}

// Record is one normalized cash event. Exactly one of CashIn/CashOut is
// non-zero. Date is ISO YYYY-MM-DD, so lexicographic order is date order.
// Records are never mutated after Normalize builds them.
type Record struct {
	ClientNameOrEmail string
	AssetName         string
	Date              string
	CashIn            float64
	CashOut           float64
}

// SortByDateDesc orders records newest-first. The sort is stable, so records
// sharing a date keep their input order within a run.
func SortByDateDesc(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
}

// FormatAmount renders a cash amount without trailing zeros, matching how the
// amounts arrive from the API (5000 stays "5000", not "5000.00").
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
