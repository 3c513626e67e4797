package store

import (
	"context"

	"github.com/fintrackhq/fintrack/internal/model"
)

// ExchangeCards returns the profile's exchange card records. Cap enforcement
// lives in the rates service; the store is just the record layer.
func (s *Store) ExchangeCards(ctx context.Context) ([]model.ExchangeCard, error) {
	var cards []model.ExchangeCard
	if _, err := s.getJSON(ctx, keyExchangeCards, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// SaveExchangeCards replaces the exchange card records.
func (s *Store) SaveExchangeCards(ctx context.Context, cards []model.ExchangeCard) error {
	return s.setJSON(ctx, keyExchangeCards, cards)
}
