package pricing

import "github.com/shopspring/decimal"

// BasePrice is the unit price of a token with zero circulating supply.
const BasePrice = 0.05

var basePrice = decimal.NewFromFloat(BasePrice)

// Price returns the unit price for a token given its maximum and
// circulating supply: BasePrice * (maxSupply / circulatingSupply),
// rounded to 6 fractional digits. A token with nothing in circulation
// is quoted at BasePrice.
func Price(maxSupply, circulatingSupply int64) float64 {
	if circulatingSupply == 0 {
		return BasePrice
	}

	p := basePrice.
		Mul(decimal.NewFromInt(maxSupply)).
		Div(decimal.NewFromInt(circulatingSupply)).
		Round(6)

	f, _ := p.Float64()
	return f
}

// MarketCap returns price * circulatingSupply rounded to 2 fractional digits.
func MarketCap(price float64, circulatingSupply int64) float64 {
	m := decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(circulatingSupply)).
		Round(2)

	f, _ := m.Float64()
	return f
}
