package service

import (
	"context"

	"portfolio_backend/internal/blob"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

type Authorization interface {
	// Login checks credentials and returns a signed token.
	// Unknown user and wrong password are indistinguishable to the caller.
	Login(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
	// EnsureAdmin creates the admin account if it does not exist yet.
	// Safe to call on every startup.
	EnsureAdmin(username, password string) error
}

// ProjectFields carries the scalar form fields of create/update requests.
// On update, empty values mean "leave unchanged".
type ProjectFields struct {
	Title       string
	Description string
	TechStr     string // comma-separated, split/trimmed by the service
	GitHub      string
	Live        string
}

// UpdateImages carries the image part of an update request. KeepProvided
// distinguishes "existingImages absent" (keep everything) from
// "existingImages explicitly empty" (discard all previous images).
type UpdateImages struct {
	UploadedURLs []string
	Keep         []string
	KeepProvided bool
}

type Projects interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, fields ProjectFields, uploadedURLs []string) (models.Project, error)
	Update(ctx context.Context, id string, fields ProjectFields, images UpdateImages) (models.Project, error)
	Delete(ctx context.Context, id string) error
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Projects
	Authorization
}

// NewService wires the repository and blob layers into concrete services.
// signingKey comes from configuration; it is never hard-coded here.
func NewService(repos *repository.Repository, blobs blob.Store, signingKey string, log *logger.Logger) *Service {
	return &Service{
		Projects:      NewProjectService(repos.Projects, blobs, log),
		Authorization: NewAuthService(repos.Auth, signingKey),
	}
}
