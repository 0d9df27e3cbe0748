// README: Pricing service; serves live quotes from cache within TTL, else from the holdings feed.
package pricing

import (
	"context"
	"log"
	"time"
)

// Feed supplies the uncached price for a symbol.
type Feed interface {
	CatalogPrice(ctx context.Context, symbol string) (float64, error)
}

type Service struct {
	cache Cache
	feed  Feed
	ttl   time.Duration
	now   func() time.Time
}

func NewService(cache Cache, feed Feed, ttl time.Duration) *Service {
	return &Service{cache: cache, feed: feed, ttl: ttl, now: time.Now}
}

// Quote returns the cached price when fresh, otherwise reads the feed and
// caches the result. Cache errors degrade to a feed read.
func (s *Service) Quote(ctx context.Context, symbol string) (Quote, error) {
	if s.cache != nil {
		q, ok, err := s.cache.Get(ctx, symbol)
		if err != nil {
			log.Printf("pricing: cache get %s: %v", symbol, err)
		} else if ok {
			q.Source = SourceCache
			return q, nil
		}
	}

	price, err := s.feed.CatalogPrice(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}
	if price <= 0 {
		return Quote{}, ErrNoPrice
	}
	q := Quote{Symbol: symbol, Price: price, Source: SourceFeed, FetchedAt: s.now().UTC()}
	if s.cache != nil {
		if err := s.cache.Set(ctx, q, s.ttl); err != nil {
			log.Printf("pricing: cache set %s: %v", symbol, err)
		}
	}
	return q, nil
}

// LivePrices resolves each symbol independently; symbols without any price are omitted.
func (s *Service) LivePrices(ctx context.Context, symbols []string) (map[string]float64, error) {
	out := make(map[string]float64, len(symbols))
	for _, sym := range symbols {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		q, err := s.Quote(ctx, sym)
		if err != nil {
			log.Printf("pricing: quote %s: %v", sym, err)
			continue
		}
		out[sym] = q.Price
	}
	return out, nil
}
