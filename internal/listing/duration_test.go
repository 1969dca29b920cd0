package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDays(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"9N/10D", 10},
		{"4N/5D", 5},
		{"7 Days", 7},
		{"7 days / 6 nights", 7},
		{"1 Day", 1},
		{"6 Nights", 6},
		{"Weekend getaway", 0},
		{"", 0},
		{"99999999999999999999D", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDays(tt.in))
		})
	}
}
