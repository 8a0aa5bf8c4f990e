package store

import (
	"time"

	"github.com/nexusboard/nexus-api/models"
	"gorm.io/gorm"
)

// BoardStats is the programmatic stats result for one board.
type BoardStats struct {
	TotalCards int64 `json:"total_cards"`
	Completed  int64 `json:"completed"`
	Pending    int64 `json:"pending"`
	Overdue    int64 `json:"overdue"`
}

// BoardBreakdown is one board's slice of a user's analytics.
type BoardBreakdown struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
	Overdue   int    `json:"overdue"`
}

// UserAnalytics aggregates across every board the user owns.
type UserAnalytics struct {
	TotalBoards int              `json:"total_boards"`
	TotalLists  int              `json:"total_lists"`
	TotalCards  int              `json:"total_cards"`
	Completed   int              `json:"completed"`
	Pending     int              `json:"pending"`
	Overdue     int              `json:"overdue"`
	Boards      []BoardBreakdown `json:"boards"`
}

// BoardStats counts the board's cards by status and overdue state,
// computed fresh against now on every call.
func (s *Store) BoardStats(user *models.User, boardPublicID string, now time.Time) (*BoardStats, error) {
	board, err := s.boardByPublicID(boardPublicID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeBoard(user, board); err != nil {
		return nil, err
	}

	cards := func() *gorm.DB {
		return s.db.Model(&models.Card{}).
			Joins("JOIN lists ON lists.id = cards.list_id AND lists.deleted_at IS NULL").
			Where("lists.board_id = ?", board.ID)
	}

	var stats BoardStats
	if err := cards().Count(&stats.TotalCards).Error; err != nil {
		return nil, err
	}
	if err := cards().Where("cards.status = ?", models.StatusDone).Count(&stats.Completed).Error; err != nil {
		return nil, err
	}
	if err := cards().
		Where("cards.due_date < ? AND cards.status <> ?", models.StartOfDay(now), models.StatusDone).
		Count(&stats.Overdue).Error; err != nil {
		return nil, err
	}
	stats.Pending = stats.TotalCards - stats.Completed

	return &stats, nil
}

// UserAnalytics folds over the boards the user owns. Boards merely
// shared with the user are deliberately excluded: the dashboard answers
// "what can I see", analytics answers "how are my boards doing".
func (s *Store) UserAnalytics(user *models.User, now time.Time) (*UserAnalytics, error) {
	var boards []models.Board
	err := s.db.
		Where("owner_id = ?", user.ID).
		Preload("Lists").
		Preload("Lists.Cards").
		Order("boards.id").
		Find(&boards).Error
	if err != nil {
		return nil, err
	}

	analytics := UserAnalytics{
		TotalBoards: len(boards),
		Boards:      make([]BoardBreakdown, 0, len(boards)),
	}

	for _, b := range boards {
		breakdown := BoardBreakdown{Name: b.Name}
		analytics.TotalLists += len(b.Lists)
		for _, lst := range b.Lists {
			analytics.TotalCards += len(lst.Cards)
			for i := range lst.Cards {
				card := &lst.Cards[i]
				if card.Status == models.StatusDone {
					breakdown.Completed++
				} else {
					breakdown.Pending++
				}
				if card.IsOverdue(now) {
					breakdown.Overdue++
				}
			}
		}
		analytics.Completed += breakdown.Completed
		analytics.Pending += breakdown.Pending
		analytics.Overdue += breakdown.Overdue
		analytics.Boards = append(analytics.Boards, breakdown)
	}

	return &analytics, nil
}
