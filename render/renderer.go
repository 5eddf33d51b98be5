package render

import (
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"shoptrack/model"
)

// Amounts are shown the way the storefront expects them: pt-BR digit
// grouping with an R$ prefix.
var printer = message.NewPrinter(language.BrazilianPortuguese)

func formatAmount(v float64) string {
	return printer.Sprintf("R$ %.2f", v)
}

// StoresListHTML generates the <li> items for the registered stores.
func StoresListHTML(stores []model.Store) string {
	var sb strings.Builder
	for _, store := range stores {
		sb.WriteString(fmt.Sprintf(`<li>%s</li>`, html.EscapeString(store.Name)))
	}
	return sb.String()
}

// ProductsTableHTML generates the table body fragment for the product
// catalog view.
func ProductsTableHTML(products []model.Product) string {
	var sb strings.Builder
	sb.WriteString(`<thead><tr><th>Produto</th><th>Preço</th><th>Estoque</th></tr></thead>`)
	sb.WriteString(`<tbody>`)
	if len(products) == 0 {
		sb.WriteString(`<tr><td colspan="3">Nenhum produto cadastrado.</td></tr>`)
	} else {
		for _, p := range products {
			sb.WriteString(`<tr>`)
			sb.WriteString(fmt.Sprintf(`<td>%s</td>`, html.EscapeString(p.Name)))
			sb.WriteString(fmt.Sprintf(`<td class="right">%s</td>`, formatAmount(p.Price)))
			sb.WriteString(fmt.Sprintf(`<td class="right">%d</td>`, p.Stock))
			sb.WriteString(`</tr>`)
		}
	}
	sb.WriteString(`</tbody>`)
	return sb.String()
}

// SalesTableHTML generates the table fragment for the sales history
// view, one row per recorded sale in insertion order.
func SalesTableHTML(sales []model.Sale) string {
	var sb strings.Builder
	sb.WriteString(`<thead><tr><th>Loja</th><th>Produto</th><th>Preço</th><th>Qtd</th><th>Total</th><th>Data</th></tr></thead>`)
	sb.WriteString(`<tbody>`)
	if len(sales) == 0 {
		sb.WriteString(`<tr><td colspan="6">Nenhuma venda registrada.</td></tr>`)
	} else {
		for _, sale := range sales {
			sb.WriteString(`<tr>`)
			sb.WriteString(fmt.Sprintf(`<td>%s</td>`, html.EscapeString(sale.StoreName)))
			sb.WriteString(fmt.Sprintf(`<td>%s</td>`, html.EscapeString(sale.ProductName)))
			sb.WriteString(fmt.Sprintf(`<td class="right">%s</td>`, formatAmount(sale.Price)))
			sb.WriteString(fmt.Sprintf(`<td class="right">%d</td>`, sale.Quantity))
			sb.WriteString(fmt.Sprintf(`<td class="right">%s</td>`, formatAmount(sale.Total)))
			sb.WriteString(fmt.Sprintf(`<td class="center">%s</td>`, html.EscapeString(sale.Date)))
			sb.WriteString(`</tr>`)
		}
	}
	sb.WriteString(`</tbody>`)
	return sb.String()
}

// ReportTableHTML generates the table fragment for one dashboard
// bucket table. keyLabel names the first column (Dia, Semana, Mês).
func ReportTableHTML(keyLabel string, rows []model.ReportRow) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<thead><tr><th>%s</th><th>Receita</th><th>Lucro estimado</th></tr></thead>`, html.EscapeString(keyLabel)))
	sb.WriteString(`<tbody>`)
	if len(rows) == 0 {
		sb.WriteString(`<tr><td colspan="3">Sem dados no período.</td></tr>`)
	} else {
		for _, row := range rows {
			sb.WriteString(`<tr>`)
			sb.WriteString(fmt.Sprintf(`<td>%s</td>`, html.EscapeString(row.Key)))
			sb.WriteString(fmt.Sprintf(`<td class="right">%s</td>`, formatAmount(row.Revenue)))
			sb.WriteString(fmt.Sprintf(`<td class="right">%s</td>`, formatAmount(row.Profit)))
			sb.WriteString(`</tr>`)
		}
	}
	sb.WriteString(`</tbody>`)
	return sb.String()
}
