package repository

import (
	"gorm.io/gorm"
)

// DefaultListLimit is the number of documents returned by a listing when no
// limit is assigned.
const DefaultListLimit = 100

// MaxListLimit is the maximum number of documents a listing returns.
const MaxListLimit = 1000

// Repository is the relational store of the ingestion pipeline: document
// records and their embedding chunks.
type Repository interface {
	Document
	EmbeddingChunk
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a Repository backed by db.
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}
