package renderer

import (
	"fmt"
	"text/template"

	"github.com/etnz/financier"
)

type categoryRow struct {
	Category string
	Amount   string
}

type summaryReport struct {
	Title        string
	TotalIncome  string
	TotalExpense string
	NetAmount    string
	TopIncome    []categoryRow
	TopExpense   []categoryRow
}

var summaryTmpl = template.Must(template.New("summary").Parse(`# {{.Title}}

| | |
|---|---|
| Total income | {{.TotalIncome}} |
| Total expense | {{.TotalExpense}} |
| Net | {{.NetAmount}} |

{{if .TopIncome}}## Top income categories

| Category | Amount |
|---|---|
{{range .TopIncome -}}
| {{.Category}} | {{.Amount}} |
{{end}}
{{end -}}
{{if .TopExpense}}## Top expense categories

| Category | Amount |
|---|---|
{{range .TopExpense -}}
| {{.Category}} | {{.Amount}} |
{{end}}
{{end -}}
`))

// Summary renders a bucket's stats as a markdown report, amounts formatted
// in the given currency.
func Summary(period financier.Period, on financier.Date, stats financier.Stats, currency string) string {
	report := summaryReport{
		Title:        fmt.Sprintf("%s summary for %s", period, on),
		TotalIncome:  financier.M(stats.TotalIncome, currency).String(),
		TotalExpense: financier.M(stats.TotalExpense, currency).String(),
		NetAmount:    financier.M(stats.NetAmount, currency).SignedString(),
	}
	for _, ca := range stats.TopIncomeCategories {
		report.TopIncome = append(report.TopIncome, categoryRow{ca.Category, financier.M(ca.Amount, currency).String()})
	}
	for _, ca := range stats.TopExpenseCategories {
		report.TopExpense = append(report.TopExpense, categoryRow{ca.Category, financier.M(ca.Amount, currency).String()})
	}
	return renderTemplate(summaryTmpl, report)
}
