// Package store implements the data and authorization model behind the
// board/list/card hierarchy. Every mutation authorizes against the
// ancestor board before touching anything, and cascading deletes run
// inside a single transaction so a failure leaves state unchanged.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
