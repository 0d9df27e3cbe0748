// README: Common money value object with fixed-rate conversion and locale grouped formatting.
package types

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	INR = "INR"
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
)

var ErrUnsupportedCurrency = errors.New("unsupported currency pair")

type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func NewMoney(amount float64, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// fallbackRates are direct offline rates; other pairs pivot through USD.
var fallbackRates = map[[2]string]float64{
	{INR, USD}: 0.012,
	{USD, INR}: 83.0,
	{EUR, USD}: 1.08,
	{USD, EUR}: 0.93,
}

// Rate returns how many units of to one unit of from buys.
func Rate(from, to string) (float64, error) {
	if from == to {
		return 1, nil
	}
	if r, ok := fallbackRates[[2]string{from, to}]; ok {
		return r, nil
	}
	toUSD, ok1 := fallbackRates[[2]string{from, USD}]
	fromUSD, ok2 := fallbackRates[[2]string{USD, to}]
	if ok1 && ok2 {
		return toUSD * fromUSD, nil
	}
	return 0, fmt.Errorf("%w: %s->%s", ErrUnsupportedCurrency, from, to)
}

func (m Money) Convert(to string) (Money, error) {
	r, err := Rate(m.Currency, to)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount * r, Currency: to}, nil
}

func (m Money) Add(o Money) (Money, error) {
	c, err := o.Convert(m.Currency)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount + c.Amount, Currency: m.Currency}, nil
}

var symbols = map[string]string{
	INR: "₹",
	USD: "$",
	EUR: "€",
	GBP: "£",
}

// Format prints rupees without decimals and every other currency with two,
// thousands grouped.
func (m Money) Format() string {
	symbol, ok := symbols[m.Currency]
	if !ok {
		symbol = m.Currency + " "
	}
	amount := m.Amount
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	p := message.NewPrinter(language.English)
	if m.Currency == INR {
		return sign + symbol + p.Sprintf("%.0f", amount)
	}
	return sign + symbol + p.Sprintf("%.2f", amount)
}

func (m Money) String() string {
	return m.Format()
}
