package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "plain digits", raw: "12345", want: 12345},
		{name: "thousands dots", raw: "12.345", want: 12345},
		{name: "rupiah prefix", raw: "Rp12.345", want: 12345},
		{name: "rupiah with space", raw: "Rp 1.234.567", want: 1234567},
		{name: "fraction truncated", raw: "Rp1.234,56", want: 1234},
		{name: "negative deduction", raw: "-Rp10.000", want: -10000},
		{name: "minus after prefix", raw: "Rp-10.000", want: -10000},
		{name: "empty", raw: "", want: 0},
		{name: "whitespace only", raw: "   ", want: 0},
		{name: "garbage", raw: "tidak ada", want: 0},
		{name: "zero", raw: "0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAmount(tt.raw))
		})
	}
}

func TestNormalizeCell(t *testing.T) {
	assert.Equal(t, 150000.0, NormalizeCell(150000.0))
	assert.Equal(t, 7.0, NormalizeCell(7))
	assert.Equal(t, 7.0, NormalizeCell(int64(7)))
	assert.Equal(t, 12345.0, NormalizeCell("Rp12.345"))
	assert.Equal(t, 0.0, NormalizeCell(nil))
}
