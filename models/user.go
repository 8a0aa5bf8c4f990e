package models

import "gorm.io/gorm"

// User represents a registered account. The password is only ever stored
// as a bcrypt hash.
type User struct {
	gorm.Model
	Username     string  `gorm:"uniqueIndex;not null;size:50" json:"username"`
	PasswordHash string  `gorm:"not null;size:200" json:"-"`
	Boards       []Board `gorm:"foreignKey:OwnerID" json:"-"`
	SharedBoards []Board `gorm:"many2many:board_collaborators;" json:"-"`
}
