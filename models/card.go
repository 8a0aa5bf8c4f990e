package models

import (
	"time"

	"gorm.io/gorm"
)

// Card statuses. Anything else is rejected as invalid input.
const (
	StatusPending = "Pending"
	StatusDone    = "Done"
)

// DateLayout is the wire format for due dates: a calendar date with no
// time component.
const DateLayout = "2006-01-02"

// Card is a task unit inside a list.
type Card struct {
	gorm.Model
	PublicID    string     `gorm:"uniqueIndex;size:100" json:"public_id"`
	Title       string     `gorm:"not null;size:200" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Position    int        `gorm:"default:0" json:"position"`
	Status      string     `gorm:"not null;size:20;default:Pending" json:"status"`
	DueDate     *time.Time `json:"-"`
	ListID      uint       `gorm:"not null;index" json:"list_id"`
	List        List       `gorm:"foreignKey:ListID" json:"-"`
	Comments    []Comment  `gorm:"foreignKey:CardID" json:"comments,omitempty"`

	// Derived at read time so they can never drift from "now".
	Due      string `gorm:"-" json:"due_date,omitempty"`
	Overdue  bool   `gorm:"-" json:"is_overdue"`
	DueToday bool   `gorm:"-" json:"is_due_today"`
}

// StartOfDay truncates a time to its UTC calendar date.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDueDate parses a YYYY-MM-DD form value into a UTC calendar date.
func ParseDueDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// IsOverdue reports whether the card has a due date strictly before
// now's date and is not yet done.
func (c *Card) IsOverdue(now time.Time) bool {
	if c.DueDate == nil || c.Status == StatusDone {
		return false
	}
	return c.DueDate.Before(StartOfDay(now))
}

// IsDueToday reports whether the card is due on now's date.
func (c *Card) IsDueToday(now time.Time) bool {
	if c.DueDate == nil {
		return false
	}
	return c.DueDate.Equal(StartOfDay(now))
}

// Annotate fills the derived read-time fields for responses.
func (c *Card) Annotate(now time.Time) {
	c.Overdue = c.IsOverdue(now)
	c.DueToday = c.IsDueToday(now)
	if c.DueDate != nil {
		c.Due = c.DueDate.Format(DateLayout)
	} else {
		c.Due = ""
	}
	for i := range c.Comments {
		c.Comments[i].AuthorName = c.Comments[i].Author.Username
	}
}
