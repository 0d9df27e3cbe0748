// README: Session service; issues ids and records the last exchange per session.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

func NewService(store Store, ttl time.Duration) *Service {
	return &Service{store: store, ttl: ttl, now: time.Now}
}

// Resolve returns id when the caller supplied one, otherwise a fresh uuid.
func (s *Service) Resolve(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return uuid.NewString()
}

func (s *Service) Record(ctx context.Context, id, query, response, language string) (Session, error) {
	sess := Session{
		ID:           id,
		LastQuery:    query,
		LastResponse: response,
		Language:     language,
		Timestamp:    s.now().UTC(),
	}
	if err := s.store.Put(ctx, sess, s.ttl); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
