package repo

import (
	"hanviet-cards/backend/app/models"

	"gorm.io/gorm"
)

type CardRepository struct{ db *gorm.DB }

func NewCardRepository(db *gorm.DB) *CardRepository { return &CardRepository{db: db} }

func (r *CardRepository) Create(c *models.Card) error { return r.db.Create(c).Error }

func (r *CardRepository) Save(c *models.Card) error { return r.db.Save(c).Error }

func (r *CardRepository) Delete(c *models.Card) error { return r.db.Delete(c).Error }

func (r *CardRepository) FindByID(id string) (*models.Card, error) {
	var c models.Card
	if err := r.db.Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CardRepository) ListAll() ([]models.Card, error) {
	cards := []models.Card{}
	return cards, r.db.Order("created_at").Find(&cards).Error
}

func (r *CardRepository) ListSystemCards() ([]models.Card, error) {
	var cards []models.Card
	return cards, r.db.Where("is_system_card = ?", true).Find(&cards).Error
}

func (r *CardRepository) CountSystemCards() (int64, error) {
	var count int64
	return count, r.db.Model(&models.Card{}).Where("is_system_card = ?", true).Count(&count).Error
}
