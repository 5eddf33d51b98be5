package shop

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"shoptrack/render"
	"shoptrack/tracker"
)

// AddStoreHandler registers a new store from the submitted form value.
func AddStoreHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		store, err := trk.AddStore(payload.Name)
		if err != nil {
			var vErr *tracker.ValidationError
			if errors.As(err, &vErr) {
				http.Error(w, vErr.Error(), http.StatusBadRequest)
				return
			}
			log.Errorf("add store failed: %v", err)
			http.Error(w, "Failed to add store", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store)
	}
}

// ListStoresHandler returns the registered stores in insertion order.
func ListStoresHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(trk.Stores())
	}
}

// StoresListFragmentHandler returns the stores list as an HTML fragment
// for the UI to drop into its <ul>.
func StoresListFragmentHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(render.StoresListHTML(trk.Stores())))
	}
}
