package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/nexusboard/nexus-api/models"
	"gorm.io/gorm"
)

// cardWithBoard resolves a card and its ancestor board through explicit
// foreign-key lookups (card -> list -> board).
func (s *Store) cardWithBoard(publicID string) (*models.Card, *models.Board, error) {
	var card models.Card
	if err := s.db.Where("public_id = ?", publicID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var list models.List
	if err := s.db.First(&list, card.ListID).Error; err != nil {
		return nil, nil, err
	}

	var board models.Board
	if err := s.db.First(&board, list.BoardID).Error; err != nil {
		return nil, nil, err
	}

	return &card, &board, nil
}

// CreateCard adds a card at the end of a list. The due date, when
// present, must already be a parsed calendar date; wire-format handling
// belongs to the transport layer.
func (s *Store) CreateCard(user *models.User, listPublicID, title, description string, dueDate *time.Time) (*models.Card, *models.Board, error) {
	var list models.List
	if err := s.db.Where("public_id = ?", listPublicID).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var board models.Board
	if err := s.db.First(&board, list.BoardID).Error; err != nil {
		return nil, nil, err
	}
	if err := s.authorizeBoard(user, &board); err != nil {
		return nil, nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, nil, fmt.Errorf("%w: card title cannot be empty", ErrValidation)
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return nil, nil, err
	}

	var position int64
	if err := s.db.Model(&models.Card{}).Where("list_id = ?", list.ID).Count(&position).Error; err != nil {
		return nil, nil, err
	}

	card := models.Card{
		PublicID:    publicID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Position:    int(position),
		Status:      models.StatusPending,
		DueDate:     dueDate,
		ListID:      list.ID,
	}
	if err := s.db.Create(&card).Error; err != nil {
		return nil, nil, err
	}

	return &card, &board, nil
}

// UpdateDueDate sets or, with nil, clears a card's due date.
func (s *Store) UpdateDueDate(user *models.User, cardPublicID string, dueDate *time.Time) (*models.Card, *models.Board, error) {
	card, board, err := s.cardWithBoard(cardPublicID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.authorizeBoard(user, board); err != nil {
		return nil, nil, err
	}

	card.DueDate = dueDate
	// Update writes NULL through when clearing
	if err := s.db.Model(card).Update("due_date", dueDate).Error; err != nil {
		return nil, nil, err
	}

	return card, board, nil
}

// SetCardStatus flips a card between Pending and Done. Any other value
// is rejected.
func (s *Store) SetCardStatus(user *models.User, cardPublicID, status string) (*models.Card, *models.Board, error) {
	card, board, err := s.cardWithBoard(cardPublicID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.authorizeBoard(user, board); err != nil {
		return nil, nil, err
	}

	if status != models.StatusPending && status != models.StatusDone {
		return nil, nil, fmt.Errorf("%w: status must be %s or %s", ErrValidation, models.StatusPending, models.StatusDone)
	}

	card.Status = status
	if err := s.db.Model(card).Update("status", status).Error; err != nil {
		return nil, nil, err
	}

	return card, board, nil
}
