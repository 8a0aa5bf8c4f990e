package store

import (
	"testing"
	"time"

	"github.com/nexusboard/nexus-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCollaborator(t *testing.T) {
	s := newTestStore(t)
	alice := mustRegister(t, s, "alice")
	mustRegister(t, s, "bob")
	board := mustBoard(t, s, alice, "Sprint 1")

	collab, err := s.AddCollaborator(alice, board.PublicID, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", collab.Username)

	// The set holds no duplicates; re-adding is an informational no-op
	_, err = s.AddCollaborator(alice, board.PublicID, "bob")
	assert.ErrorIs(t, err, ErrAlreadyCollaborator)
	var n int64
	require.NoError(t, s.db.Table("board_collaborators").Where("board_id = ?", board.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	// So is adding the owner
	_, err = s.AddCollaborator(alice, board.PublicID, "alice")
	assert.ErrorIs(t, err, ErrOwnerCollaborator)

	// Unknown usernames are a real failure
	_, err = s.AddCollaborator(alice, board.PublicID, "carol")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCollaboratorOwnerOnly(t *testing.T) {
	s := newTestStore(t)
	alice := mustRegister(t, s, "alice")
	mustRegister(t, s, "bob")
	mustRegister(t, s, "carol")
	board := mustBoard(t, s, alice, "Sprint 1")

	_, err := s.AddCollaborator(alice, board.PublicID, "bob")
	require.NoError(t, err)

	bob, err := s.Authenticate("bob", "correct horse battery staple")
	require.NoError(t, err)
	_, err = s.AddCollaborator(bob, board.PublicID, "carol")
	assert.ErrorIs(t, err, ErrUnauthorized, "collaborators cannot reshare the board")
}

// Scenario: Alice shares "Sprint 1" with Bob. Bob can view the board
// and add cards, but not delete the board.
func TestCollaboratorScope(t *testing.T) {
	s := newTestStore(t)
	alice := mustRegister(t, s, "alice")
	bob := mustRegister(t, s, "bob")

	board := mustBoard(t, s, alice, "Sprint 1")
	list := mustList(t, s, alice, board, "To Do")

	_, err := s.GetBoard(bob, board.PublicID, time.Now())
	assert.ErrorIs(t, err, ErrUnauthorized, "not shared yet")

	_, err = s.AddCollaborator(alice, board.PublicID, "bob")
	require.NoError(t, err)

	_, err = s.GetBoard(bob, board.PublicID, time.Now())
	require.NoError(t, err)

	card, _, err := s.CreateCard(bob, list.PublicID, "Bob's card", "", nil)
	require.NoError(t, err)
	_, _, err = s.SetCardStatus(bob, card.PublicID, models.StatusDone)
	require.NoError(t, err)
	_, _, err = s.AddComment(bob, card.PublicID, "done by bob")
	require.NoError(t, err)

	err = s.DeleteBoard(bob, board.PublicID)
	assert.ErrorIs(t, err, ErrUnauthorized, "deleting the board is owner-only")
}

// Every read and mutation on a board the caller neither owns nor
// collaborates on must come back ErrUnauthorized, uniformly.
func TestStrangerIsRejectedEverywhere(t *testing.T) {
	s := newTestStore(t)
	alice := mustRegister(t, s, "alice")
	mallory := mustRegister(t, s, "mallory")

	board := mustBoard(t, s, alice, "Private")
	list := mustList(t, s, alice, board, "To Do")
	card := mustCard(t, s, alice, list, "secret task")

	now := time.Now()
	checks := map[string]error{}

	_, err := s.GetBoard(mallory, board.PublicID, now)
	checks["GetBoard"] = err
	_, err = s.RenameBoard(mallory, board.PublicID, "mine now")
	checks["RenameBoard"] = err
	checks["DeleteBoard"] = s.DeleteBoard(mallory, board.PublicID)
	_, err = s.CreateList(mallory, board.PublicID, "intrusion")
	checks["CreateList"] = err
	_, err = s.DeleteList(mallory, list.PublicID)
	checks["DeleteList"] = err
	_, _, err = s.CreateCard(mallory, list.PublicID, "intrusion", "", nil)
	checks["CreateCard"] = err
	_, _, err = s.SetCardStatus(mallory, card.PublicID, models.StatusDone)
	checks["SetCardStatus"] = err
	_, _, err = s.UpdateDueDate(mallory, card.PublicID, nil)
	checks["UpdateDueDate"] = err
	_, _, err = s.AddComment(mallory, card.PublicID, "hi")
	checks["AddComment"] = err
	_, err = s.AddCollaborator(mallory, board.PublicID, "mallory")
	checks["AddCollaborator"] = err
	_, err = s.BoardStats(mallory, board.PublicID, now)
	checks["BoardStats"] = err

	for op, err := range checks {
		assert.ErrorIs(t, err, ErrUnauthorized, op)
	}

	// And none of it changed anything
	got, err := s.GetBoard(alice, board.PublicID, now)
	require.NoError(t, err)
	assert.Equal(t, "Private", got.Name)
	require.Len(t, got.Lists, 1)
	require.Len(t, got.Lists[0].Cards, 1)
	assert.Equal(t, models.StatusPending, got.Lists[0].Cards[0].Status)
	assert.Empty(t, got.Lists[0].Cards[0].Comments)
}
