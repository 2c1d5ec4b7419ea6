package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skumap/skumap/pkg/errors"
	"github.com/skumap/skumap/pkg/inventory"
)

func TestCleanKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{" abc ", "ABC"},
		{"ABC", "ABC"},
		{"sku-1|x", "SKU-1|X"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, inventory.CleanKey(tt.raw))
	}
}

func TestParseQty(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		tests := []struct {
			raw  string
			want int
		}{
			{"42", 42},
			{" 42 ", 42},
			{"-7", -7},
			{"1,200", 1200},
			{"", 0},
			{"   ", 0},
			{"NULL", 0},
			{"null", 0},
			{"NaN", 0},
		}
		for _, tt := range tests {
			got, err := inventory.ParseQty(tt.raw)
			require.NoError(t, err, "raw=%q", tt.raw)
			assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
		}
	})

	t.Run("non-numeric fails", func(t *testing.T) {
		for _, raw := range []string{"abc", "12.5", "(3)", "1 2"} {
			_, err := inventory.ParseQty(raw)
			var parseErr *errors.ParseError
			assert.ErrorAs(t, err, &parseErr, "raw=%q", raw)
		}
	})
}

func TestParseQtyLenient(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"42", 42},
		{"", 0},
		{"NULL", 0},
		{"nan", 0},
		{"1,200", 1200},
		{"(123)", -123},
		{"( 45 )", -45},
		{"41820.0", 41820},
		{"2.5", 3},
		{"-2.5", -3},
		{"2.4", 2},
		{"abc", 0},
		{"(abc)", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, inventory.ParseQtyLenient(tt.raw), "raw=%q", tt.raw)
	}
}
