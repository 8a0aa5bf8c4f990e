package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nexusboard/nexus-api/auth"
	"github.com/nexusboard/nexus-api/models"
	"gorm.io/gorm"
)

// Register creates a new account. Usernames are case-sensitive
// exact-match unique keys.
func (s *Store) Register(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: username, PasswordHash: hash}
	if err := s.db.Create(&user).Error; err != nil {
		// Lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies credentials by recomputing the hash. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *Store) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// DeleteAccount removes the user, every board they own with its full
// subtree, their collaborator memberships, and comments they authored
// on other people's boards. One transaction, all or nothing. The user
// row is removed outright so the username becomes registrable again.
func (s *Store) DeleteAccount(user *models.User) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var boards []models.Board
	if err := tx.Where("owner_id = ?", user.ID).Find(&boards).Error; err != nil {
		tx.Rollback()
		return err
	}
	for i := range boards {
		if err := deleteBoardTree(tx, &boards[i]); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Unscoped().Where("author_id = ?", user.ID).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Exec("DELETE FROM board_collaborators WHERE user_id = ?", user.ID).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Unscoped().Delete(user).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
