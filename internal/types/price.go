package types

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Price is a predicted amount in whole currency units
type Price struct {
	Amount   float64 `json:"amount" example:"45000"`
	Symbol   string  `json:"symbol" example:"₹"`
	Currency string  `json:"currency" example:"INR"`
}

var pricePrinter = message.NewPrinter(language.English)

func NewRupees(amount float64) Price {
	return Price{Amount: amount, Symbol: "₹", Currency: "INR"}
}

// Format renders the price with thousands separators and two decimals, e.g. "₹45,000.00 INR"
func (p Price) Format() string {
	return pricePrinter.Sprintf("%s%.2f %s", p.Symbol, p.Amount, p.Currency)
}

func (p Price) String() string {
	return p.Format()
}
