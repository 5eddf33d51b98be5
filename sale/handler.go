package sale

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"shoptrack/render"
	"shoptrack/tracker"
)

// RecordSaleHandler records a sale against a store and product. The id
// and quantity fields arrive as raw strings from the UI selects.
func RecordSaleHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			StoreID   string `json:"storeId"`
			ProductID string `json:"productId"`
			Quantity  string `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		sale, err := trk.RecordSale(payload.StoreID, payload.ProductID, payload.Quantity)
		if err != nil {
			var vErr *tracker.ValidationError
			switch {
			case errors.As(err, &vErr):
				http.Error(w, vErr.Error(), http.StatusBadRequest)
			case errors.Is(err, tracker.ErrInsufficientStock):
				http.Error(w, "Estoque insuficiente!", http.StatusConflict)
			default:
				log.Errorf("record sale failed: %v", err)
				http.Error(w, "Failed to record sale", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sale)
	}
}

// ListSalesHandler returns the sales history in insertion order.
func ListSalesHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(trk.Sales())
	}
}

// SalesTableFragmentHandler returns the sales history as an HTML table
// fragment.
func SalesTableFragmentHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(render.SalesTableHTML(trk.Sales())))
	}
}

func quoteAll(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportSalesCSVHandler downloads the sales history as a CSV file. The
// UTF-8 BOM keeps accented product names readable in spreadsheets.
func ExportSalesCSVHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales := trk.Sales()

		var buf bytes.Buffer
		buf.Write([]byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM

		header := []string{"Loja", "Produto", "Preço", "Quantidade", "Total", "Data"}
		buf.WriteString(strings.Join(header, ",") + "\r\n")

		for _, sale := range sales {
			record := []string{
				quoteAll(sale.StoreName),
				quoteAll(sale.ProductName),
				quoteAll(fmt.Sprintf("%.2f", sale.Price)),
				quoteAll(fmt.Sprintf("%d", sale.Quantity)),
				quoteAll(fmt.Sprintf("%.2f", sale.Total)),
				quoteAll(sale.Date),
			}
			buf.WriteString(strings.Join(record, ",") + "\r\n")
		}

		filename := fmt.Sprintf("vendas_%s.csv", time.Now().Format("20060102"))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
		w.Write(buf.Bytes())
	}
}
