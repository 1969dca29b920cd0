package main

import (
	"net/http"
	"strings"
)

const maxSuggestions = 5

type toSuggestion func(record) map[string]any

// SuggestHandler matches q against the title, name and destination fields of
// a fixture list and returns at most five entries.
func SuggestHandler(path, key string, convert toSuggestion) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
		if q == "" {
			writeJSON(w, http.StatusOK, map[string]any{"suggestions": []any{}})
			return
		}

		records, err := readRecords(path, key)
		if err != nil {
			http.Error(w, "Failed to read data: "+err.Error(), http.StatusInternalServerError)
			return
		}

		out := make([]map[string]any, 0, maxSuggestions)
		for _, rec := range records {
			if len(out) == maxSuggestions {
				break
			}
			haystack := strings.ToLower(rec.str("title") + " " + rec.str("name") + " " + rec.str("destination") + " " + rec.str("state"))
			if strings.Contains(haystack, q) {
				out = append(out, convert(rec))
			}
		}

		writeJSON(w, http.StatusOK, map[string]any{"suggestions": out})
	}
}

func packageSuggestion(rec record) map[string]any {
	return map[string]any{
		"id":          rec["_id"],
		"title":       rec["title"],
		"destination": rec["destination"],
		"price":       rec["price"],
		"duration":    rec["duration"],
		"category":    "package",
		"slug":        rec["slug"],
		"image":       rec["image"],
	}
}

func departureSuggestion(rec record) map[string]any {
	s := map[string]any{
		"id":          rec["_id"],
		"title":       rec["title"],
		"destination": rec["destination"],
		"price":       rec["price"],
		"duration":    rec["duration"],
		"category":    "fixed-departure",
		"slug":        rec["slug"],
		"image":       rec["image"],
	}
	if deps, ok := rec["departures"].([]any); ok && len(deps) > 0 {
		if first, ok := deps[0].(map[string]any); ok {
			s["departureDate"] = first["date"]
		}
	}
	return s
}

func destinationSuggestion(rec record) map[string]any {
	return map[string]any{
		"id":          rec["_id"],
		"title":       rec["name"],
		"destination": strings.Trim(rec.str("state")+", "+rec.str("country"), ", "),
		"price":       rec["startingPrice"],
		"duration":    rec["duration"],
		"category":    "destination",
		"slug":        rec["slug"],
		"image":       rec["image"],
		"country":     rec["country"],
	}
}

func holidayTypeSuggestion(rec record) map[string]any {
	return map[string]any{
		"id":         rec["_id"],
		"title":      rec["name"],
		"category":   "holiday-type",
		"slug":       rec["slug"],
		"image":      rec["image"],
		"states":     rec["states"],
		"isFeatured": rec["isFeatured"],
	}
}
