package listing

import "encoding/json"

// PageMark is one slot of the page-number control. Ellipsis marks a gap.
type PageMark int

const Ellipsis PageMark = 0

func (m PageMark) MarshalJSON() ([]byte, error) {
	if m == Ellipsis {
		return json.Marshal("…")
	}
	return json.Marshal(int(m))
}

func (m *PageMark) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*m = PageMark(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*m = Ellipsis
	return nil
}

// Range is the 1-based "Showing From–To of Total" caption. From and To are 0
// when the page is empty.
type Range struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Total int `json:"total"`
}

type Page[T any] struct {
	Items       []T        `json:"items"`
	PageSize    int        `json:"page_size"`
	TotalPages  int        `json:"total_pages"`
	CurrentPage int        `json:"current_page"`
	Range       Range      `json:"range"`
	Window      []PageMark `json:"window"`
}

// Paginate slices one page out of items. currentPage is clamped into
// [1, max(totalPages, 1)] and a pageSize below 1 is treated as 1.
func Paginate[T any](items []T, pageSize, currentPage int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	currentPage = max(1, min(currentPage, max(totalPages, 1)))

	start := (currentPage - 1) * pageSize
	end := min(start+pageSize, total)
	start = min(start, end)

	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	r := Range{Total: total}
	if len(pageItems) > 0 {
		r.From = start + 1
		r.To = end
	}

	return Page[T]{
		Items:       pageItems,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		Range:       r,
		Window:      PageWindow(totalPages, currentPage),
	}
}

// PageWindow lays out a compact page control:
//
//	total <= 5          1 2 3 4 5
//	current <= 3        1 2 3 4 … N
//	current >= N-2      1 … N-3 N-2 N-1 N
//	otherwise           1 … c-1 c c+1 … N
func PageWindow(totalPages, currentPage int) []PageMark {
	n := PageMark(totalPages)
	c := PageMark(currentPage)

	switch {
	case totalPages <= 5:
		marks := make([]PageMark, 0, totalPages)
		for p := PageMark(1); p <= n; p++ {
			marks = append(marks, p)
		}
		return marks
	case c <= 3:
		return []PageMark{1, 2, 3, 4, Ellipsis, n}
	case c >= n-2:
		return []PageMark{1, Ellipsis, n - 3, n - 2, n - 1, n}
	default:
		return []PageMark{1, Ellipsis, c - 1, c, c + 1, Ellipsis, n}
	}
}
