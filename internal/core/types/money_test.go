package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain integer", "450", "450"},
		{"fractional", "180.50", "180.5"},
		{"surrounding whitespace", " 220 ", "220"},
		{"empty degrades to zero", "", "0"},
		{"garbage degrades to zero", "abc", "0"},
		{"negative degrades to zero", "-5", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.input).String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₹810.00", FormatAmount("₹", MustMoney("810")))
	assert.Equal(t, "Rs.101.25", FormatAmount("Rs.", MustMoney("101.25")))
	assert.Equal(t, "₹0.00", FormatAmount("₹", Zero()))
}
