package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
)

type record map[string]any

func (r record) str(key string) string {
	s, _ := r[key].(string)
	return s
}

// readRecords loads the array stored under key in a fixture file.
func readRecords(path, key string) ([]record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file map[string][]record
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file[key], nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// listHandler serves a fixture list with the tourType, state, country and
// limit query filters the real backend supports.
func listHandler(path, key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		records, err := readRecords(path, key)
		if err != nil {
			http.Error(w, "Failed to read data: "+err.Error(), http.StatusInternalServerError)
			return
		}

		q := r.URL.Query()
		filtered := make([]record, 0, len(records))
		for _, rec := range records {
			if v := q.Get("tourType"); v != "" && !strings.EqualFold(rec.str("tourType"), v) {
				continue
			}
			if v := q.Get("state"); v != "" && !strings.EqualFold(rec.str("state"), v) {
				continue
			}
			if v := q.Get("country"); v != "" && !strings.EqualFold(rec.str("country"), v) {
				continue
			}
			filtered = append(filtered, rec)
		}

		if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit >= 0 && limit < len(filtered) {
			filtered = filtered[:limit]
		}

		writeJSON(w, http.StatusOK, map[string]any{key: filtered})
	}
}

var (
	DestinationsHandler    = listHandler("mock/files/destinations.json", "destinations")
	PackagesHandler        = listHandler("mock/files/packages.json", "packages")
	FixedDeparturesHandler = listHandler("mock/files/fixed_departures.json", "fixedDepartures")
)

func FixedDepartureBySlugHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/api/fixed-departures/slug/")
	records, err := readRecords("mock/files/fixed_departures.json", "fixedDepartures")
	if err != nil {
		http.Error(w, "Failed to read data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	for _, rec := range records {
		if rec.str("slug") == slug {
			writeJSON(w, http.StatusOK, map[string]any{"fixedDeparture": rec})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "fixed departure not found"})
}
