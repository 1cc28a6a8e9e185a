package repository

import (
	"context"
	"database/sql"

	"portfolio_backend/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// Projects is a document-style store for portfolio entries. Update replaces
// the whole mutable part of the row (last-writer-wins).
type Projects interface {
	Insert(ctx context.Context, p models.Project) error
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Update(ctx context.Context, p models.Project) error
	Delete(ctx context.Context, id string) error
}

// ErrNoProject is returned by Update/Delete when the row does not exist.
// GetByID signals absence with (nil, nil) instead.
var ErrNoProject = sql.ErrNoRows

type Repository struct {
	Projects Projects
	Auth     Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Projects: NewProjectSQLite(db),
		Auth:     NewUserRepository(db),
	}
}
