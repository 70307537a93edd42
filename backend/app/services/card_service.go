package services

import (
	"errors"
	"fmt"
	"strings"

	"hanviet-cards/backend/app/dto"
	"hanviet-cards/backend/app/models"
	"hanviet-cards/backend/app/repo"

	"gorm.io/gorm"
)

type CardService struct{ cards *repo.CardRepository }

func NewCardService(cards *repo.CardRepository) *CardService { return &CardService{cards: cards} }

// List returns all cards, or only those whose categories list contains the
// given string. Membership is exact-match; the filter runs in Go because
// neither the mysql nor the sqlite driver has a portable array-overlap query.
func (s *CardService) List(category string) ([]models.Card, error) {
	cards, err := s.cards.ListAll()
	if err != nil {
		return nil, err
	}
	if category == "" {
		return cards, nil
	}
	filtered := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if c.Categories.Contains(category) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *CardService) Get(id string) (*models.Card, error) {
	c, err := s.cards.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CardService) Create(req dto.CreateCardRequest, actor *models.User) (*models.Card, error) {
	if strings.TrimSpace(req.Chinese) == "" || strings.TrimSpace(req.Vietnamese) == "" {
		return nil, fmt.Errorf("%w: chinese and vietnamese are required", ErrValidation)
	}
	categories := req.Categories
	if categories == nil {
		categories = []string{}
	}
	authorID := actor.ID
	c := &models.Card{
		Chinese:    req.Chinese,
		Pinyin:     req.Pinyin,
		Vietnamese: req.Vietnamese,
		Categories: models.StringList(categories),
		AuthorID:   &authorID,
	}
	if err := s.cards.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update applies a field-level partial merge. Only admins and the original
// author may mutate a card; is_system_card is never settable here.
func (s *CardService) Update(id string, req dto.UpdateCardRequest, actor *models.User) (*models.Card, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !canMutate(c, actor) {
		return nil, ErrCardForbidden
	}
	if req.Chinese != nil {
		if strings.TrimSpace(*req.Chinese) == "" {
			return nil, fmt.Errorf("%w: chinese must not be empty", ErrValidation)
		}
		c.Chinese = *req.Chinese
	}
	if req.Vietnamese != nil {
		if strings.TrimSpace(*req.Vietnamese) == "" {
			return nil, fmt.Errorf("%w: vietnamese must not be empty", ErrValidation)
		}
		c.Vietnamese = *req.Vietnamese
	}
	if req.Pinyin != nil {
		c.Pinyin = *req.Pinyin
	}
	if req.Categories != nil {
		c.Categories = models.StringList(*req.Categories)
	}
	if err := s.cards.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CardService) Remove(id string, actor *models.User) error {
	c, err := s.Get(id)
	if err != nil {
		return err
	}
	if !canMutate(c, actor) {
		return ErrCardForbidden
	}
	return s.cards.Delete(c)
}

func canMutate(c *models.Card, actor *models.User) bool {
	if actor.IsAdmin() {
		return true
	}
	return c.AuthorID != nil && *c.AuthorID == actor.ID
}
