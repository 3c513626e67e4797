package model

import "time"

// MaxExchangeCards is a hard ceiling on live exchange cards. Creation beyond
// the cap is rejected rather than evicting an older card.
const MaxExchangeCards = 3

// ExchangeCard is a currency-pair viewer holding the last fetched rate.
type ExchangeCard struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	// Amount is a display multiplier, defaulting to 1.
	Amount float64 `json:"amount"`
	// Rate is nil until a fetch succeeds; a failed fetch stores 0.
	Rate *float64 `json:"rate"`
	// LastUpdated stays unchanged when a refresh fails, which is how
	// staleness is surfaced.
	LastUpdated *time.Time `json:"lastUpdated"`
}
