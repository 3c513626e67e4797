package rates

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack/internal/common"
	"github.com/fintrackhq/fintrack/internal/model"
	"github.com/fintrackhq/fintrack/internal/store"
)

// Service manages exchange cards for one profile. Rates refresh on demand
// only; a card never expires by itself.
type Service struct {
	store   *store.Store
	fetcher Fetcher
	now     func() time.Time
}

// NewService creates a card service over the profile's store and a rate
// fetcher.
func NewService(s *store.Store, fetcher Fetcher) *Service {
	return &Service{store: s, fetcher: fetcher, now: time.Now}
}

// Cards returns the live cards.
func (s *Service) Cards(ctx context.Context) ([]model.ExchangeCard, error) {
	return s.store.ExchangeCards(ctx)
}

// Create adds a new card and fetches its initial rate. Creation is rejected
// once the cap is reached: this is a hard ceiling, not a cache that evicts.
func (s *Service) Create(ctx context.Context, from, to string) (model.ExchangeCard, error) {
	if from == "" || to == "" {
		return model.ExchangeCard{}, fmt.Errorf("both currencies are required")
	}

	cards, err := s.store.ExchangeCards(ctx)
	if err != nil {
		return model.ExchangeCard{}, err
	}
	if len(cards) >= model.MaxExchangeCards {
		return model.ExchangeCard{}, fmt.Errorf("%w: at most %d cards", common.ErrCardLimit, model.MaxExchangeCards)
	}

	card := model.ExchangeCard{
		ID:     uuid.NewString(),
		From:   from,
		To:     to,
		Amount: 1,
	}
	s.fetchInto(ctx, &card)

	if err := s.store.SaveExchangeCards(ctx, append(cards, card)); err != nil {
		return model.ExchangeCard{}, err
	}
	return card, nil
}

// Refresh re-fetches the rate for one card. A failed fetch leaves LastUpdated
// untouched so the staleness stays visible.
func (s *Service) Refresh(ctx context.Context, id string) (model.ExchangeCard, error) {
	return s.mutate(ctx, id, func(card *model.ExchangeCard) {
		s.fetchInto(ctx, card)
	})
}

// Swap exchanges the card's currencies and re-fetches the rate for the new
// direction.
func (s *Service) Swap(ctx context.Context, id string) (model.ExchangeCard, error) {
	return s.mutate(ctx, id, func(card *model.ExchangeCard) {
		card.From, card.To = card.To, card.From
		s.fetchInto(ctx, card)
	})
}

// UpdateAmount changes the display multiplier. Purely local, no network call.
func (s *Service) UpdateAmount(ctx context.Context, id string, amount float64) (model.ExchangeCard, error) {
	return s.mutate(ctx, id, func(card *model.ExchangeCard) {
		card.Amount = amount
	})
}

// Delete removes a card, freeing a slot under the cap.
func (s *Service) Delete(ctx context.Context, id string) error {
	cards, err := s.store.ExchangeCards(ctx)
	if err != nil {
		return err
	}

	kept := cards[:0]
	for _, card := range cards {
		if card.ID != id {
			kept = append(kept, card)
		}
	}
	return s.store.SaveExchangeCards(ctx, kept)
}

// mutate applies fn to the card with the given id and persists the result.
func (s *Service) mutate(ctx context.Context, id string, fn func(*model.ExchangeCard)) (model.ExchangeCard, error) {
	cards, err := s.store.ExchangeCards(ctx)
	if err != nil {
		return model.ExchangeCard{}, err
	}

	for i := range cards {
		if cards[i].ID != id {
			continue
		}
		fn(&cards[i])
		if err := s.store.SaveExchangeCards(ctx, cards); err != nil {
			return model.ExchangeCard{}, err
		}
		return cards[i], nil
	}
	return model.ExchangeCard{}, fmt.Errorf("%w: card %s", common.ErrNotFound, id)
}

// fetchInto updates the card's rate in place. Failure stores a zero rate and
// leaves LastUpdated unchanged; the caller still gets a card back.
func (s *Service) fetchInto(ctx context.Context, card *model.ExchangeCard) {
	rate, err := s.fetcher.Rate(ctx, card.From, card.To)
	if err != nil {
		slog.Warn("Rate fetch failed",
			"from", card.From,
			"to", card.To,
			"error", err)
		zero := 0.0
		card.Rate = &zero
		return
	}

	now := s.now()
	card.Rate = &rate
	card.LastUpdated = &now
}
