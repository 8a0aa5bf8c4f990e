package models

import "gorm.io/gorm"

// Comment is an immutable annotation on a card. There are no update or
// delete operations; comments live and die with their card.
type Comment struct {
	gorm.Model
	Content  string `gorm:"type:text;not null" json:"content"`
	CardID   uint   `gorm:"not null;index" json:"card_id"`
	AuthorID uint   `gorm:"not null;index" json:"-"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"-"`

	AuthorName string `gorm:"-" json:"author"`
}
