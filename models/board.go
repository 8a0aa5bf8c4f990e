package models

import "gorm.io/gorm"

// Board is the top-level container. It has exactly one owner and any
// number of collaborators through the board_collaborators join table.
type Board struct {
	gorm.Model
	PublicID      string `gorm:"uniqueIndex;size:100" json:"public_id"`
	Name          string `gorm:"not null;size:100" json:"name"`
	OwnerID       uint   `gorm:"not null;index" json:"-"`
	Owner         User   `gorm:"foreignKey:OwnerID" json:"-"`
	Lists         []List `gorm:"foreignKey:BoardID" json:"lists,omitempty"`
	Collaborators []User `gorm:"many2many:board_collaborators;" json:"collaborators,omitempty"`
}
