package financier

import (
	"sort"

	"github.com/shopspring/decimal"
)

// topCategories caps the number of entries in a Stats category ranking.
const topCategories = 5

// CategoryAmount is a per-category total in a Stats ranking.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Stats is the derived aggregate over a set of transactions.
//
// Stats is never authoritative: every bucket's Stats is recomputed from
// scratch with ComputeStats after each mutation of its subtree, never
// patched incrementally.
type Stats struct {
	TotalIncome          decimal.Decimal  `json:"totalIncome"`
	TotalExpense         decimal.Decimal  `json:"totalExpense"`
	NetAmount            decimal.Decimal  `json:"netAmount"`
	TopIncomeCategories  []CategoryAmount `json:"topIncomeCategories"`
	TopExpenseCategories []CategoryAmount `json:"topExpenseCategories"`
}

// EmptyStats returns the all-zero Stats with empty (non-nil) rankings.
func EmptyStats() Stats {
	return Stats{
		TopIncomeCategories:  []CategoryAmount{},
		TopExpenseCategories: []CategoryAmount{},
	}
}

// Equal reports whether two Stats carry the same values.
func (s Stats) Equal(o Stats) bool {
	if !s.TotalIncome.Equal(o.TotalIncome) ||
		!s.TotalExpense.Equal(o.TotalExpense) ||
		!s.NetAmount.Equal(o.NetAmount) {
		return false
	}
	eq := func(a, b []CategoryAmount) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i].Category != b[i].Category || !a[i].Amount.Equal(b[i].Amount) {
				return false
			}
		}
		return true
	}
	return eq(s.TopIncomeCategories, o.TopIncomeCategories) &&
		eq(s.TopExpenseCategories, o.TopExpenseCategories)
}

// ComputeStats aggregates a sequence of transactions into a Stats value.
//
// It is pure and total: the empty input yields the all-zero Stats. Category
// totals are summed per category across the whole set regardless of type;
// each ranking then keeps only the categories that have at least one
// transaction of the matching type, sorted by amount descending. Ties keep
// the first-encountered category first, so the ranking is deterministic for
// a given input order.
func ComputeStats(transactions []Transaction) Stats {
	stats := EmptyStats()

	totals := make(map[string]decimal.Decimal)
	var order []string
	hasIncome := make(map[string]bool)
	hasExpense := make(map[string]bool)

	for _, tx := range transactions {
		if tx.Type == Income {
			stats.TotalIncome = stats.TotalIncome.Add(tx.Amount)
			hasIncome[tx.Category] = true
		} else {
			stats.TotalExpense = stats.TotalExpense.Add(tx.Amount)
			hasExpense[tx.Category] = true
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	stats.NetAmount = stats.TotalIncome.Sub(stats.TotalExpense)

	ranked := make([]CategoryAmount, 0, len(order))
	for _, category := range order {
		ranked = append(ranked, CategoryAmount{Category: category, Amount: totals[category]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})

	for _, ca := range ranked {
		if hasIncome[ca.Category] && len(stats.TopIncomeCategories) < topCategories {
			stats.TopIncomeCategories = append(stats.TopIncomeCategories, ca)
		}
		if hasExpense[ca.Category] && len(stats.TopExpenseCategories) < topCategories {
			stats.TopExpenseCategories = append(stats.TopExpenseCategories, ca)
		}
	}

	return stats
}
