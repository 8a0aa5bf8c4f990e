package store

import (
	"errors"

	"github.com/nexusboard/nexus-api/models"
	"gorm.io/gorm"
)

// boardByPublicID resolves a board or reports ErrNotFound. It never
// leaks which of the two happened to unauthorized callers; the access
// check runs before any board detail leaves the store.
func (s *Store) boardByPublicID(publicID string) (*models.Board, error) {
	var board models.Board
	if err := s.db.Where("public_id = ?", publicID).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &board, nil
}

// authorizeBoard applies the one access rule: owner or collaborator.
// List, card, and comment mutations all resolve their ancestor board
// and come through here; nothing is authorized independently.
func (s *Store) authorizeBoard(user *models.User, board *models.Board) error {
	if board.OwnerID == user.ID {
		return nil
	}

	var n int64
	err := s.db.Table("board_collaborators").
		Where("board_id = ? AND user_id = ?", board.ID, user.ID).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUnauthorized
	}
	return nil
}

// requireOwner gates the operations collaborators do not get: renaming
// or deleting the board and managing its collaborator set.
func requireOwner(user *models.User, board *models.Board) error {
	if board.OwnerID != user.ID {
		return ErrUnauthorized
	}
	return nil
}
