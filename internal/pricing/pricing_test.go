package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice_ZeroCirculatingSupply(t *testing.T) {
	for _, maxSupply := range []int64{1, 1000, 1_000_000, 1_000_000_000} {
		assert.Equal(t, BasePrice, Price(maxSupply, 0))
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name              string
		maxSupply         int64
		circulatingSupply int64
		expected          float64
	}{
		{"equal supplies", 1000, 1000, 0.05},
		{"scarce circulation", 1_000_000, 100, 500.0},
		{"half circulating", 1_000_000, 500_000, 0.1},
		{"full circulation", 1_000_000, 1_000_000, 0.05},
		{"rounds to 6 digits", 1000, 3, 16.666667},
		{"over max supply", 1000, 2000, 0.025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Price(tt.maxSupply, tt.circulatingSupply))
		})
	}
}

func TestMarketCap(t *testing.T) {
	tests := []struct {
		name              string
		price             float64
		circulatingSupply int64
		expected          float64
	}{
		{"zero supply", 0.05, 0, 0.0},
		{"simple product", 500.0, 100, 50000.0},
		{"rounds to 2 digits", 16.666667, 3, 50.0},
		{"fractional price", 0.025, 2000, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MarketCap(tt.price, tt.circulatingSupply))
		})
	}
}

func TestPriceTimesSupplyMatchesMarketCap(t *testing.T) {
	maxSupply := int64(1_000_000)
	circulating := int64(100)

	p := Price(maxSupply, circulating)
	assert.Equal(t, 500.0, p)
	assert.Equal(t, 50000.0, MarketCap(p, circulating))
}
