package store

import (
	"fmt"
	"strings"

	"github.com/nexusboard/nexus-api/models"
)

// AddComment attaches an immutable comment to a card. Authorization
// resolves through the card's ancestor board like every other mutation.
func (s *Store) AddComment(user *models.User, cardPublicID, content string) (*models.Comment, *models.Board, error) {
	card, board, err := s.cardWithBoard(cardPublicID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.authorizeBoard(user, board); err != nil {
		return nil, nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil, fmt.Errorf("%w: comment cannot be empty", ErrValidation)
	}

	comment := models.Comment{
		Content:  content,
		CardID:   card.ID,
		AuthorID: user.ID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, nil, err
	}
	comment.AuthorName = user.Username

	return &comment, board, nil
}
