package services

import (
	"fmt"

	"hanviet-cards/backend/app/models"
	"hanviet-cards/backend/app/repo"

	"github.com/rs/zerolog"
)

// SeedService inserts the built-in vocabulary dataset. All seeded cards are
// system cards with no author. The routine is idempotent: existing system
// cards are matched by their chinese text, missing pinyin values are
// backfilled, and only absent entries are inserted.
type SeedService struct {
	cards *repo.CardRepository
	log   zerolog.Logger
}

func NewSeedService(cards *repo.CardRepository, log zerolog.Logger) *SeedService {
	return &SeedService{cards: cards, log: log}
}

func (s *SeedService) Run() error {
	existing, err := s.cards.ListSystemCards()
	if err != nil {
		return fmt.Errorf("list system cards: %w", err)
	}

	byChinese := make(map[string]SeedEntry, len(seedCards))
	for _, e := range seedCards {
		byChinese[e.Chinese] = e
	}

	present := make(map[string]bool, len(existing))
	backfilled := 0
	for i := range existing {
		card := &existing[i]
		present[card.Chinese] = true
		entry, ok := byChinese[card.Chinese]
		if !ok || card.Pinyin != "" {
			continue
		}
		card.Pinyin = entry.Pinyin
		if err := s.cards.Save(card); err != nil {
			return fmt.Errorf("backfill pinyin for %s: %w", card.Chinese, err)
		}
		backfilled++
	}

	inserted := 0
	for _, e := range seedCards {
		if present[e.Chinese] {
			continue
		}
		card := &models.Card{
			Chinese:      e.Chinese,
			Pinyin:       e.Pinyin,
			Vietnamese:   e.Vietnamese,
			Categories:   models.StringList(e.Categories),
			IsSystemCard: true,
		}
		if err := s.cards.Create(card); err != nil {
			return fmt.Errorf("insert seed card %s: %w", e.Chinese, err)
		}
		inserted++
	}

	s.log.Info().Int("inserted", inserted).Int("backfilled", backfilled).Msg("seed run finished")
	return nil
}

// AutoRun seeds at startup only when no system cards exist yet. Errors are
// logged and swallowed so a broken seed never prevents the service from
// starting.
func (s *SeedService) AutoRun() {
	count, err := s.cards.CountSystemCards()
	if err != nil {
		s.log.Error().Err(err).Msg("auto-seed skipped: counting system cards failed")
		return
	}
	if count > 0 {
		s.log.Info().Int64("count", count).Msg("system cards present, skipping auto-seed")
		return
	}
	if err := s.Run(); err != nil {
		s.log.Error().Err(err).Msg("auto-seed failed")
	}
}
