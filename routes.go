package main

import (
	"net/http"

	"shoptrack/backup"
	"shoptrack/dashboard"
	"shoptrack/product"
	"shoptrack/sale"
	"shoptrack/shop"
	"shoptrack/tracker"
)

func SetupRoutes(mux *http.ServeMux, trk *tracker.Tracker) {

	mux.HandleFunc("/api/stores", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			shop.ListStoresHandler(trk)(w, r)
		case http.MethodPost:
			shop.AddStoreHandler(trk)(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/stores/list_fragment", shop.StoresListFragmentHandler(trk))

	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			product.ListProductsHandler(trk)(w, r)
		case http.MethodPost:
			product.AddProductHandler(trk)(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/products/table", product.ProductsTableFragmentHandler(trk))

	mux.HandleFunc("/api/sales", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			sale.ListSalesHandler(trk)(w, r)
		case http.MethodPost:
			sale.RecordSaleHandler(trk)(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/sales/table", sale.SalesTableFragmentHandler(trk))
	mux.HandleFunc("/api/sales/export_csv", sale.ExportSalesCSVHandler(trk))

	mux.HandleFunc("/api/dashboard", dashboard.GetDashboardHandler(trk))
	mux.HandleFunc("/api/dashboard/table", dashboard.ReportTableFragmentHandler(trk))

	mux.HandleFunc("/api/data/export", backup.ExportAllHandler(trk))
	mux.HandleFunc("/api/data/import", backup.ImportAllHandler(trk))

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
}
