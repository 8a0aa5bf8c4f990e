package store

import (
	"errors"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/nexusboard/nexus-api/models"
	"gorm.io/gorm"
)

// CreateList adds a named column to a board. Owner or collaborator.
func (s *Store) CreateList(user *models.User, boardPublicID, name string) (*models.List, error) {
	board, err := s.boardByPublicID(boardPublicID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBoard(user, board); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: list name cannot be empty", ErrValidation)
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	list := models.List{
		PublicID: publicID,
		Name:     name,
		BoardID:  board.ID,
	}
	if err := s.db.Create(&list).Error; err != nil {
		return nil, err
	}

	return &list, nil
}

// DeleteList removes a list and its cards and comments in one
// transaction. Returns the ancestor board so callers can broadcast the
// right refresh event.
func (s *Store) DeleteList(user *models.User, listPublicID string) (*models.Board, error) {
	var list models.List
	if err := s.db.Where("public_id = ?", listPublicID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var board models.Board
	if err := s.db.First(&board, list.BoardID).Error; err != nil {
		return nil, err
	}
	if err := s.authorizeBoard(user, &board); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var cardIDs []uint
	if err := tx.Model(&models.Card{}).Where("list_id = ?", list.ID).Pluck("id", &cardIDs).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if len(cardIDs) > 0 {
		if err := tx.Unscoped().Where("card_id IN ?", cardIDs).Delete(&models.Comment{}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := tx.Unscoped().Where("id IN ?", cardIDs).Delete(&models.Card{}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Unscoped().Delete(&list).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &board, nil
}
