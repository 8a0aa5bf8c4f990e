package models

import (
	"testing"
	"time"
)

func date(s string) *time.Time {
	d, err := ParseDueDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		card Card
		want bool
	}{
		{"no due date", Card{Status: StatusPending}, false},
		{"due yesterday, pending", Card{Status: StatusPending, DueDate: date("2024-03-09")}, true},
		{"due today, pending", Card{Status: StatusPending, DueDate: date("2024-03-10")}, false},
		{"due tomorrow, pending", Card{Status: StatusPending, DueDate: date("2024-03-11")}, false},
		{"due yesterday, done", Card{Status: StatusDone, DueDate: date("2024-03-09")}, false},
		{"long past, pending", Card{Status: StatusPending, DueDate: date("2020-01-01")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverdueFlipsWithStatusAlone(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	card := Card{Status: StatusPending, DueDate: date("2024-03-01")}

	if !card.IsOverdue(now) {
		t.Fatal("expected pending card past due date to be overdue")
	}

	card.Status = StatusDone
	if card.IsOverdue(now) {
		t.Error("expected done card to stop being overdue with no other change")
	}
}

func TestIsDueToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)

	if (&Card{}).IsDueToday(now) {
		t.Error("card without due date is never due today")
	}
	if !(&Card{DueDate: date("2024-03-10")}).IsDueToday(now) {
		t.Error("expected card due on now's date to be due today")
	}
	if (&Card{DueDate: date("2024-03-11")}).IsDueToday(now) {
		t.Error("card due tomorrow is not due today")
	}
}

func TestAnnotate(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	card := Card{Status: StatusPending, DueDate: date("2024-03-01")}
	card.Annotate(now)
	if !card.Overdue {
		t.Error("expected overdue flag set")
	}
	if card.Due != "2024-03-01" {
		t.Errorf("expected due string 2024-03-01, got %q", card.Due)
	}

	bare := Card{Status: StatusPending}
	bare.Annotate(now)
	if bare.Overdue || bare.DueToday || bare.Due != "" {
		t.Error("card without due date annotates to zero values")
	}
}

func TestParseDueDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"not-a-date", "2024-13-40", "01-02-2024", "2024/01/02"} {
		if _, err := ParseDueDate(input); err == nil {
			t.Errorf("expected parse failure for %q", input)
		}
	}
}
