package renderer

import (
	"text/template"

	"github.com/etnz/financier"
)

type transactionRow struct {
	Date        string
	Type        string
	Category    string
	Description string
	Amount      string
	ID          string
}

type transactionReport struct {
	Title string
	Rows  []transactionRow
}

var transactionsTmpl = template.Must(template.New("transactions").Parse(`# {{.Title}}

{{if .Rows -}}
| Date | Type | Category | Description | Amount | ID |
|---|---|---|---|---|---|
{{range .Rows -}}
| {{.Date}} | {{.Type}} | {{.Category}} | {{.Description}} | {{.Amount}} | {{.ID}} |
{{end -}}
{{else -}}
No transactions.
{{end -}}
`))

// Transactions renders a transaction listing as a markdown table, amounts
// formatted in the given currency.
func Transactions(title string, txs []financier.Transaction, currency string) string {
	report := transactionReport{Title: title}
	for _, tx := range txs {
		report.Rows = append(report.Rows, transactionRow{
			Date:        tx.Day().String(),
			Type:        string(tx.Type),
			Category:    tx.Category,
			Description: tx.Description,
			Amount:      financier.M(tx.Amount, currency).String(),
			ID:          tx.ID,
		})
	}
	return renderTemplate(transactionsTmpl, report)
}
