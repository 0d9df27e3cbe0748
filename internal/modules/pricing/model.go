// README: Price quote value returned by the pricing service.
package pricing

import (
	"errors"
	"time"
)

var ErrNoPrice = errors.New("no price for symbol")

const (
	SourceCache = "cache"
	SourceFeed  = "feed"
)

type Quote struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
}
