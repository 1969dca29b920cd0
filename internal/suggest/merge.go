package suggest

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

var categoryPriority = map[string]int{
	"holiday":         0,
	"holiday-type":    1,
	"fixed-departure": 2,
	"destination":     3,
}

const otherPriority = 4

func priority(category string) int {
	if p, ok := categoryPriority[strings.ToLower(category)]; ok {
		return p
	}
	return otherPriority
}

type record map[string]json.RawMessage

// merge concatenates the per-source lists in order and folds entries sharing
// an id into the first one, later keys overwriting earlier ones. Entries that
// are not objects or have no id are dropped.
func merge(lists [][]json.RawMessage) []Suggestion {
	order := make([]string, 0)
	byID := make(map[string]record)

	for _, list := range lists {
		for _, raw := range list {
			var rec record
			if err := json.Unmarshal(raw, &rec); err != nil || rec == nil {
				continue
			}
			id := recordID(rec["id"])
			if id == "" {
				continue
			}

			existing, seen := byID[id]
			if !seen {
				byID[id] = rec
				order = append(order, id)
				continue
			}
			for k, v := range rec {
				existing[k] = v
			}
		}
	}

	out := make([]Suggestion, 0, len(order))
	for _, id := range order {
		s, ok := decode(byID[id])
		if !ok {
			continue
		}
		s.ID = id
		out = append(out, s)
	}
	return out
}

// recordID accepts string and numeric ids.
func recordID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// decode keeps going past fields of the wrong type, leaving them zero.
func decode(rec record) (Suggestion, bool) {
	body, err := json.Marshal(rec)
	if err != nil {
		return Suggestion{}, false
	}

	var s Suggestion
	var typeErr *json.UnmarshalTypeError
	if err := json.Unmarshal(body, &s); err != nil && !errors.As(err, &typeErr) {
		return Suggestion{}, false
	}
	return s, true
}

// rank orders by category priority, then price ascending, and keeps the
// first MaxResults. Missing prices count as 0.
func rank(items []Suggestion) []Suggestion {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := priority(items[i].Category), priority(items[j].Category)
		if pi != pj {
			return pi < pj
		}
		return items[i].Price.Or(0) < items[j].Price.Or(0)
	})

	if len(items) > MaxResults {
		items = items[:MaxResults]
	}
	return items
}
