package models

import "gorm.io/gorm"

// List is a named column on a board. Lists keep their creation order;
// the cards inside them are ordered by position.
type List struct {
	gorm.Model
	PublicID string `gorm:"uniqueIndex;size:100" json:"public_id"`
	Name     string `gorm:"not null;size:100" json:"name"`
	BoardID  uint   `gorm:"not null;index" json:"board_id"`
	Board    Board  `gorm:"foreignKey:BoardID" json:"-"`
	Cards    []Card `gorm:"foreignKey:ListID" json:"cards,omitempty"`
}
