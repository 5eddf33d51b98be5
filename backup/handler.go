package backup

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"shoptrack/model"
	"shoptrack/tracker"
)

// Snapshot is the single-document form of all three collections, using
// the same field names as the individual persisted payloads.
type Snapshot struct {
	Stores   []model.Store   `json:"stores"`
	Products []model.Product `json:"products"`
	Sales    []model.Sale    `json:"sales"`
}

// validate rejects snapshots that would break the collections'
// invariants: ids are the 1-based insertion position (new ids derive
// from the collection length), stock never goes negative and sales
// carry positive quantities.
func (s Snapshot) validate() error {
	for i, store := range s.Stores {
		if store.ID != i+1 {
			return fmt.Errorf("store at position %d: id %d out of sequence", i+1, store.ID)
		}
	}
	for i, product := range s.Products {
		if product.ID != i+1 {
			return fmt.Errorf("product at position %d: id %d out of sequence", i+1, product.ID)
		}
		if product.Stock < 0 {
			return fmt.Errorf("product %d: negative stock", product.ID)
		}
		if math.IsNaN(product.Price) || math.IsInf(product.Price, 0) || product.Price < 0 {
			return fmt.Errorf("product %d: invalid price", product.ID)
		}
	}
	for i, sale := range s.Sales {
		if sale.Quantity <= 0 {
			return fmt.Errorf("sale at position %d: quantity must be positive", i+1)
		}
	}
	return nil
}

// ExportAllHandler downloads every collection as one JSON document.
func ExportAllHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := Snapshot{
			Stores:   trk.Stores(),
			Products: trk.Products(),
			Sales:    trk.Sales(),
		}

		filename := fmt.Sprintf("shoptrack_backup_%s.json", time.Now().Format("20060102"))
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
		json.NewEncoder(w).Encode(snapshot)
	}
}

// ImportAllHandler replaces every collection with the uploaded
// snapshot and persists the result.
func ImportAllHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var snapshot Snapshot
		if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
			http.Error(w, "Invalid backup document", http.StatusBadRequest)
			return
		}
		if err := snapshot.validate(); err != nil {
			http.Error(w, "Invalid backup document: "+err.Error(), http.StatusBadRequest)
			return
		}

		trk.ReplaceAll(snapshot.Stores, snapshot.Products, snapshot.Sales)
		log.Infof("backup imported: %d stores, %d products, %d sales",
			len(snapshot.Stores), len(snapshot.Products), len(snapshot.Sales))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Backup importado."})
	}
}
