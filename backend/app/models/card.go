package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList stores a list of tags as a JSON text column so the same
// entity works on both the mysql and sqlite drivers.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported categories column type %T", src)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Contains reports exact set membership, not substring match.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

type Card struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Chinese      string     `gorm:"size:255;not null" json:"chinese"`
	Pinyin       string     `gorm:"size:255" json:"pinyin"`
	Vietnamese   string     `gorm:"size:255;not null" json:"vietnamese"`
	Categories   StringList `gorm:"type:text" json:"categories"`
	AuthorID     *string    `gorm:"size:36;index" json:"authorId"`
	Author       *User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"-"`
	IsSystemCard bool       `gorm:"not null;default:false" json:"isSystemCard"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Categories == nil {
		c.Categories = StringList{}
	}
	return nil
}
