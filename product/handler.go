package product

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"shoptrack/render"
	"shoptrack/tracker"
)

// AddProductHandler registers a new product. Price and stock arrive as
// the raw strings the form submitted; parsing and validation live in
// the tracker.
func AddProductHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Name  string `json:"name"`
			Price string `json:"price"`
			Stock string `json:"stock"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		product, err := trk.AddProduct(payload.Name, payload.Price, payload.Stock)
		if err != nil {
			var vErr *tracker.ValidationError
			if errors.As(err, &vErr) {
				http.Error(w, vErr.Error(), http.StatusBadRequest)
				return
			}
			log.Errorf("add product failed: %v", err)
			http.Error(w, "Failed to add product", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(product)
	}
}

// ListProductsHandler returns the product catalog in insertion order.
func ListProductsHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(trk.Products())
	}
}

// ProductsTableFragmentHandler returns the catalog as an HTML table
// fragment.
func ProductsTableFragmentHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(render.ProductsTableHTML(trk.Products())))
	}
}
