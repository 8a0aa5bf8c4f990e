package store

import (
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/nexusboard/nexus-api/models"
	"gorm.io/gorm"
)

// CreateBoard makes a new board owned by the caller.
func (s *Store) CreateBoard(owner *models.User, name string) (*models.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: board name cannot be empty", ErrValidation)
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	board := models.Board{
		PublicID: publicID,
		Name:     name,
		OwnerID:  owner.ID,
	}
	if err := s.db.Create(&board).Error; err != nil {
		return nil, err
	}

	return &board, nil
}

// BoardsForUser returns the dashboard set: boards the user owns plus
// boards shared with them, deduplicated. An optional search term
// filters by case-insensitive substring match on the name.
func (s *Store) BoardsForUser(user *models.User, search string) ([]models.Board, error) {
	var owned []models.Board
	if err := s.db.Where("owner_id = ?", user.ID).Order("boards.id").Find(&owned).Error; err != nil {
		return nil, err
	}

	var shared []models.Board
	err := s.db.
		Joins("JOIN board_collaborators bc ON bc.board_id = boards.id").
		Where("bc.user_id = ?", user.ID).
		Order("boards.id").
		Find(&shared).Error
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	seen := make(map[uint]bool)
	boards := make([]models.Board, 0, len(owned)+len(shared))
	for _, b := range append(owned, shared...) {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		if search != "" && !strings.Contains(strings.ToLower(b.Name), search) {
			continue
		}
		boards = append(boards, b)
	}

	return boards, nil
}

// GetBoard loads the full board view: lists in creation order, cards by
// position, comments oldest first, with overdue flags derived against
// now.
func (s *Store) GetBoard(user *models.User, publicID string, now time.Time) (*models.Board, error) {
	board, err := s.boardByPublicID(publicID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBoard(user, board); err != nil {
		return nil, err
	}

	err = s.db.
		Preload("Collaborators").
		Preload("Lists", func(db *gorm.DB) *gorm.DB {
			return db.Order("lists.id")
		}).
		Preload("Lists.Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("cards.position, cards.id")
		}).
		Preload("Lists.Cards.Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at, comments.id")
		}).
		Preload("Lists.Cards.Comments.Author").
		First(board, board.ID).Error
	if err != nil {
		return nil, err
	}

	for i := range board.Lists {
		for j := range board.Lists[i].Cards {
			board.Lists[i].Cards[j].Annotate(now)
		}
	}

	return board, nil
}

// RenameBoard is owner-only.
func (s *Store) RenameBoard(user *models.User, publicID, newName string) (*models.Board, error) {
	board, err := s.boardByPublicID(publicID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(user, board); err != nil {
		return nil, err
	}

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, fmt.Errorf("%w: board name cannot be empty", ErrValidation)
	}

	board.Name = newName
	if err := s.db.Save(board).Error; err != nil {
		return nil, err
	}

	return board, nil
}

// DeleteBoard is owner-only and removes the entire subtree — lists,
// cards, comments, and collaborator rows — or nothing at all.
func (s *Store) DeleteBoard(user *models.User, publicID string) error {
	board, err := s.boardByPublicID(publicID)
	if err != nil {
		return err
	}
	if err := requireOwner(user, board); err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := deleteBoardTree(tx, board); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// deleteBoardTree removes a board and everything reachable from it
// inside the caller's transaction. Children are resolved by explicit
// foreign-key queries, never by walking loaded associations. Deletes
// are unscoped: the rows are gone, not soft-deleted, so nothing
// lingers in unique indexes after a cascade.
func deleteBoardTree(tx *gorm.DB, board *models.Board) error {
	var listIDs []uint
	if err := tx.Model(&models.List{}).Where("board_id = ?", board.ID).Pluck("id", &listIDs).Error; err != nil {
		return err
	}

	if len(listIDs) > 0 {
		var cardIDs []uint
		if err := tx.Model(&models.Card{}).Where("list_id IN ?", listIDs).Pluck("id", &cardIDs).Error; err != nil {
			return err
		}
		if len(cardIDs) > 0 {
			if err := tx.Unscoped().Where("card_id IN ?", cardIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("id IN ?", cardIDs).Delete(&models.Card{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("id IN ?", listIDs).Delete(&models.List{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Exec("DELETE FROM board_collaborators WHERE board_id = ?", board.ID).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(board).Error
}
