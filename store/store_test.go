package store

import (
	"testing"

	"github.com/nexusboard/nexus-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.User{}, &models.Board{}, &models.List{}, &models.Card{}, &models.Comment{})
	require.NoError(t, err)

	return New(db)
}

func mustRegister(t *testing.T, s *Store, username string) *models.User {
	t.Helper()
	u, err := s.Register(username, "correct horse battery staple")
	require.NoError(t, err)
	return u
}

func mustBoard(t *testing.T, s *Store, owner *models.User, name string) *models.Board {
	t.Helper()
	b, err := s.CreateBoard(owner, name)
	require.NoError(t, err)
	return b
}

func mustList(t *testing.T, s *Store, user *models.User, board *models.Board, name string) *models.List {
	t.Helper()
	l, err := s.CreateList(user, board.PublicID, name)
	require.NoError(t, err)
	return l
}

func mustCard(t *testing.T, s *Store, user *models.User, list *models.List, title string) *models.Card {
	t.Helper()
	c, _, err := s.CreateCard(user, list.PublicID, title, "", nil)
	require.NoError(t, err)
	return c
}
