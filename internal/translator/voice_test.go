package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVoiceAmount(t *testing.T) {
	tests := []struct {
		transcript string
		amount     float64
		ok         bool
	}{
		{"Pay fifteen dollars to Uber", 15, true},
		{"pay $12.50 to the bakery", 12.5, true},
		{"pay $ 3 to bob", 3, true},
		{"send 40 bucks to alice", 40, true},
		{"twenty-five dollars to the gym", 25, true},
		{"pay one hundred and five to landlord", 105, true},
		{"pay a hundred to landlord", 100, true},
		{"two hundred fifty to the shop", 250, true},
		{"ninety nine cents", 99, true},
		{"pay the usual to the usual place", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.transcript, func(t *testing.T) {
			amount, _, ok := parseVoiceAmount(tt.transcript)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.amount, amount)
		})
	}
}

func TestParseVoiceMerchant(t *testing.T) {
	tests := []struct {
		transcript string
		merchant   string
	}{
		{"Pay fifteen dollars to Uber for my ride", "uber"},
		{"I want to pay ten dollars to Blue Bottle Coffee", "blue_bottle_coffee"},
		{"pay $5 to Joe's Pizza for lunch", "joes_pizza"},
		{"pay five dollars", ""},
		{"to", ""},
	}

	for _, tt := range tests {
		t.Run(tt.transcript, func(t *testing.T) {
			_, end, _ := parseVoiceAmount(tt.transcript)
			assert.Equal(t, tt.merchant, parseVoiceMerchant(tt.transcript, end))
		})
	}
}
