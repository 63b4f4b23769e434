package service

import (
	"log/slog"

	"subfeed/internal/domain"
)

// ContentFilter drops cards rejected by a policy and keeps the order of the rest.
// A policy error keeps the card.
type ContentFilter struct {
	policy FilterPolicy
	logger *slog.Logger
}

func NewContentFilter(policy FilterPolicy, logger *slog.Logger) *ContentFilter {
	return &ContentFilter{
		policy: policy,
		logger: logger.With("component", "filter"),
	}
}

func (f *ContentFilter) Apply(cards []domain.Card) []domain.Card {
	if f == nil || f.policy == nil {
		return cards
	}

	kept := make([]domain.Card, 0, len(cards))
	for _, card := range cards {
		allowed, err := f.policy.Allow(card)
		if err != nil {
			f.logger.Warn("filter policy failed, keeping card",
				"card_id", card.ID,
				"kind", card.Kind.String(),
				"error", err,
			)
			kept = append(kept, card)
			continue
		}
		if allowed {
			kept = append(kept, card)
		}
	}

	if dropped := len(cards) - len(kept); dropped > 0 {
		f.logger.Debug("filtered cards", "dropped", dropped, "kept", len(kept))
	}

	return kept
}
