package financier

import (
	"sort"
	"strconv"
	"time"
)

// BusinessInfo describes the business owning the ledger.
type BusinessInfo struct {
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	StartDate time.Time `json:"startDate"`
	Settings  *Settings `json:"settings,omitempty"`
}

// Settings holds the configurable preferences of the business.
type Settings struct {
	FiscalYearStart int         `json:"fiscalYearStart"`
	WeekStart       int         `json:"weekStart"`
	Categories      CategorySet `json:"categories"`
}

// CategorySet lists the configured category names per transaction type.
type CategorySet struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// Store is the whole persisted ledger document: the business description
// plus the Year → Month → Week → Day bucket tree.
//
// Buckets exist if and only if they have ever held a transaction; they are
// created lazily and never pruned, so a Day emptied by deletions stays in
// the tree with all-zero Stats.
type Store struct {
	BusinessInfo BusinessInfo           `json:"businessInfo"`
	Years        map[string]*YearBucket `json:"transactions"`
}

// YearBucket aggregates a calendar year, keyed by 4-digit year string.
type YearBucket struct {
	Stats  Stats                   `json:"stats"`
	Months map[string]*MonthBucket `json:"months"`
}

// MonthBucket aggregates a month, keyed "1" through "12".
type MonthBucket struct {
	Stats Stats                  `json:"stats"`
	Weeks map[string]*WeekBucket `json:"weeks"`
}

// WeekBucket aggregates a week, keyed by the year-scoped week number.
type WeekBucket struct {
	Stats Stats                 `json:"stats"`
	Days  map[string]*DayBucket `json:"days"`
}

// DayBucket is a leaf: its transactions are kept in insertion order.
type DayBucket struct {
	Stats        Stats         `json:"stats"`
	Transactions []Transaction `json:"transactions"`
}

// NewStore creates an empty store with the default business settings.
func NewStore() *Store {
	return &Store{
		BusinessInfo: BusinessInfo{
			Currency:  "USD",
			StartDate: time.Now().UTC(),
			Settings: &Settings{
				FiscalYearStart: 1,
				WeekStart:       0,
				Categories: CategorySet{
					Income:  []string{"Sales", "Services", "Other Income"},
					Expense: []string{"Supplies", "Utilities", "Rent", "Salaries", "Other Expenses"},
				},
			},
		},
		Years: make(map[string]*YearBucket),
	}
}

// path locates a Day bucket in the tree by its four ancestor keys.
type path struct {
	year, month, week, day string
}

// pathOf derives the bucket path owning a calendar date.
func pathOf(d Date) path {
	return path{
		year:  strconv.Itoa(d.Year()),
		month: strconv.Itoa(int(d.Month())),
		week:  strconv.Itoa(d.WeekNumber()),
		day:   d.String(),
	}
}

func (s *Store) yearBucket(p path) *YearBucket {
	if s.Years == nil {
		return nil
	}
	return s.Years[p.year]
}

func (s *Store) monthBucket(p path) *MonthBucket {
	y := s.yearBucket(p)
	if y == nil {
		return nil
	}
	return y.Months[p.month]
}

func (s *Store) weekBucket(p path) *WeekBucket {
	m := s.monthBucket(p)
	if m == nil {
		return nil
	}
	return m.Weeks[p.week]
}

func (s *Store) dayBucket(p path) *DayBucket {
	w := s.weekBucket(p)
	if w == nil {
		return nil
	}
	return w.Days[p.day]
}

// ensureDay creates the buckets on the path as needed and returns the Day
// bucket, reporting whether the Day did not exist before this call.
func (s *Store) ensureDay(p path) (day *DayBucket, created bool) {
	if s.Years == nil {
		s.Years = make(map[string]*YearBucket)
	}
	y := s.Years[p.year]
	if y == nil {
		y = &YearBucket{Stats: EmptyStats(), Months: make(map[string]*MonthBucket)}
		s.Years[p.year] = y
	}
	m := y.Months[p.month]
	if m == nil {
		m = &MonthBucket{Stats: EmptyStats(), Weeks: make(map[string]*WeekBucket)}
		y.Months[p.month] = m
	}
	w := m.Weeks[p.week]
	if w == nil {
		w = &WeekBucket{Stats: EmptyStats(), Days: make(map[string]*DayBucket)}
		m.Weeks[p.week] = w
	}
	d := w.Days[p.day]
	if d == nil {
		d = &DayBucket{Stats: EmptyStats(), Transactions: []Transaction{}}
		w.Days[p.day] = d
		created = true
	}
	return d, created
}

// sortedKeys returns map keys in a deterministic chronological order:
// numerically when the keys are numbers (months, weeks), lexicographically
// otherwise (4-digit years and ISO dates already sort chronologically).
func sortedKeys[V any](m map[string]V, numeric bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	if numeric {
		sort.Slice(keys, func(i, j int) bool {
			a, _ := strconv.Atoi(keys[i])
			b, _ := strconv.Atoi(keys[j])
			return a < b
		})
	} else {
		sort.Strings(keys)
	}
	return keys
}

// flatten returns the leaf transactions of a week in chronological bucket
// order, preserving each day's insertion order.
func (w *WeekBucket) flatten() []Transaction {
	var txs []Transaction
	for _, k := range sortedKeys(w.Days, false) {
		txs = append(txs, w.Days[k].Transactions...)
	}
	return txs
}

func (m *MonthBucket) flatten() []Transaction {
	var txs []Transaction
	for _, k := range sortedKeys(m.Weeks, true) {
		txs = append(txs, m.Weeks[k].flatten()...)
	}
	return txs
}

func (y *YearBucket) flatten() []Transaction {
	var txs []Transaction
	for _, k := range sortedKeys(y.Months, true) {
		txs = append(txs, y.Months[k].flatten()...)
	}
	return txs
}

// recompute refreshes Stats bottom-up along the path of a touched Day.
//
// Each level is recomputed from its full leaf set, never merged from its
// children's Stats, so category rankings at higher levels stay globally
// correct.
func (s *Store) recompute(p path) {
	day := s.dayBucket(p)
	if day == nil {
		return
	}
	day.Stats = ComputeStats(day.Transactions)

	week := s.weekBucket(p)
	week.Stats = ComputeStats(week.flatten())

	month := s.monthBucket(p)
	month.Stats = ComputeStats(month.flatten())

	year := s.yearBucket(p)
	year.Stats = ComputeStats(year.flatten())
}

// walkDays visits every Day bucket in chronological order.
func (s *Store) walkDays(fn func(p path, day *DayBucket)) {
	for _, yk := range sortedKeys(s.Years, false) {
		y := s.Years[yk]
		for _, mk := range sortedKeys(y.Months, true) {
			m := y.Months[mk]
			for _, wk := range sortedKeys(m.Weeks, true) {
				w := m.Weeks[wk]
				for _, dk := range sortedKeys(w.Days, false) {
					fn(path{year: yk, month: mk, week: wk, day: dk}, w.Days[dk])
				}
			}
		}
	}
}

// AllTransactions returns every leaf transaction in chronological bucket
// order, preserving each day's insertion order.
func (s *Store) AllTransactions() []Transaction {
	var txs []Transaction
	s.walkDays(func(_ path, day *DayBucket) {
		txs = append(txs, day.Transactions...)
	})
	return txs
}
