package store

import (
	"errors"

	"github.com/nexusboard/nexus-api/models"
	"gorm.io/gorm"
)

// AddCollaborator shares a board with another user by username. Only
// the owner can share. Adding the owner themselves or an existing
// collaborator is a no-op reported through the informational errors so
// the caller can word its feedback.
func (s *Store) AddCollaborator(user *models.User, boardPublicID, username string) (*models.User, error) {
	board, err := s.boardByPublicID(boardPublicID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(user, board); err != nil {
		return nil, err
	}

	var collaborator models.User
	if err := s.db.Where("username = ?", username).First(&collaborator).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if collaborator.ID == board.OwnerID {
		return nil, ErrOwnerCollaborator
	}

	var n int64
	err = s.db.Table("board_collaborators").
		Where("board_id = ? AND user_id = ?", board.ID, collaborator.ID).
		Count(&n).Error
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrAlreadyCollaborator
	}

	if err := s.db.Model(board).Association("Collaborators").Append(&collaborator); err != nil {
		return nil, err
	}

	return &collaborator, nil
}
