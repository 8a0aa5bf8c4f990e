package store

import (
	"testing"
	"time"

	"github.com/nexusboard/nexus-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardStats(t *testing.T) {
	s := newTestStore(t)
	alice := mustRegister(t, s, "alice")
	board := mustBoard(t, s, alice, "Sprint 1")
	todo := mustList(t, s, alice, board, "To Do")
	done := mustList(t, s, alice, board, "Done")

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past, err := models.ParseDueDate("2024-06-01")
	require.NoError(t, err)
	future, err := models.ParseDueDate("2024-07-01")
	require.NoError(t, err)

	// pending, no due date
	mustCard(t, s, alice, todo, "plain")
	// pending, overdue
	_, _, err = s.CreateCard(alice, todo.PublicID, "late", "", &past)
	require.NoError(t, err)
	// pending, due in the future
	_, _, err = s.CreateCard(alice, todo.PublicID, "upcoming", "", &future)
	require.NoError(t, err)
	// done despite a past due date: not overdue
	doneCard, _, err := s.CreateCard(alice, done.PublicID, "finished", "", &past)
	require.NoError(t, err)
	_, _, err = s.SetCardStatus(alice, doneCard.PublicID, models.StatusDone)
	require.NoError(t, err)

	stats, err := s.BoardStats(alice, board.PublicID, now)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalCards)
	assert.EqualValues(t, 1, stats.Completed)
	assert.EqualValues(t, 3, stats.Pending)
	assert.EqualValues(t, 1, stats.Overdue)
	assert.Equal(t, stats.TotalCards-stats.Completed, stats.Pending)
}

func TestBoardStatsEmptyBoard(t *testing.T) {
	s := newTestStore(t)
	alice := mustRegister(t, s, "alice")
	board := mustBoard(t, s, alice, "Empty")

	stats, err := s.BoardStats(alice, board.PublicID, time.Now())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalCards)
	assert.Zero(t, stats.Completed)
	assert.Zero(t, stats.Pending)
	assert.Zero(t, stats.Overdue)
}

func TestUserAnalytics(t *testing.T) {
	s := newTestStore(t)
	alice := mustRegister(t, s, "alice")
	bob := mustRegister(t, s, "bob")

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past, err := models.ParseDueDate("2024-06-01")
	require.NoError(t, err)

	one := mustBoard(t, s, alice, "One")
	oneList := mustList(t, s, alice, one, "L1")
	mustCard(t, s, alice, oneList, "a")
	doneCard := mustCard(t, s, alice, oneList, "b")
	_, _, err = s.SetCardStatus(alice, doneCard.PublicID, models.StatusDone)
	require.NoError(t, err)

	two := mustBoard(t, s, alice, "Two")
	twoList := mustList(t, s, alice, two, "L2")
	_, _, err = s.CreateCard(alice, twoList.PublicID, "late", "", &past)
	require.NoError(t, err)

	// A shared board full of Bob's cards must not count toward Alice
	shared := mustBoard(t, s, bob, "Bob's")
	_, err = s.AddCollaborator(bob, shared.PublicID, "alice")
	require.NoError(t, err)
	sharedList := mustList(t, s, bob, shared, "BL")
	mustCard(t, s, bob, sharedList, "bob 1")
	mustCard(t, s, bob, sharedList, "bob 2")

	got, err := s.UserAnalytics(alice, now)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalBoards, "collaborated boards are excluded")
	assert.Equal(t, 2, got.TotalLists)
	assert.Equal(t, 3, got.TotalCards)
	assert.Equal(t, 1, got.Completed)
	assert.Equal(t, 2, got.Pending)
	assert.Equal(t, 1, got.Overdue)

	require.Len(t, got.Boards, 2)
	assert.Equal(t, "One", got.Boards[0].Name)
	assert.Equal(t, 1, got.Boards[0].Completed)
	assert.Equal(t, 1, got.Boards[0].Pending)
	assert.Equal(t, 0, got.Boards[0].Overdue)
	assert.Equal(t, "Two", got.Boards[1].Name)
	assert.Equal(t, 1, got.Boards[1].Overdue)
}

func TestUserAnalyticsNoBoards(t *testing.T) {
	s := newTestStore(t)
	alice := mustRegister(t, s, "alice")

	got, err := s.UserAnalytics(alice, time.Now())
	require.NoError(t, err)
	assert.Zero(t, got.TotalBoards)
	assert.NotNil(t, got.Boards, "breakdown marshals as [] not null")
	assert.Empty(t, got.Boards)
}
