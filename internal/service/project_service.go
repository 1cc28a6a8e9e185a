package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio_backend/internal/blob"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"

	"github.com/google/uuid"
)

// Domain errors for project flows.
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrValidation      = errors.New("title and description are required")
)

type ProjectService struct {
	projectRepo repository.Projects
	cleanup     *janitor
}

func NewProjectService(repo repository.Projects, blobs blob.Store, log *logger.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: repo,
		cleanup:     newJanitor(blobs, log),
	}
}

// splitTech turns a comma-separated string into an ordered tech list:
// entries are trimmed, empties dropped, duplicates allowed.
func splitTech(techStr string) []string {
	parts := strings.Split(techStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.List(ctx)
}

// Create stores a new project. uploadedURLs become the image list in upload
// order; the first one is the cover.
func (s *ProjectService) Create(ctx context.Context, fields ProjectFields, uploadedURLs []string) (models.Project, error) {
	if strings.TrimSpace(fields.Title) == "" || strings.TrimSpace(fields.Description) == "" {
		return models.Project{}, ErrValidation
	}

	images := make([]string, 0, len(uploadedURLs))
	images = append(images, uploadedURLs...)

	p := models.Project{
		ID:          uuid.NewString(),
		Title:       fields.Title,
		Description: fields.Description,
		Tech:        splitTech(fields.TechStr),
		GitHub:      fields.GitHub,
		Live:        fields.Live,
		Images:      images,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.projectRepo.Insert(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Update applies partial-update semantics: empty scalar inputs leave the
// stored value alone, a provided techStr fully replaces the tech list, and
// the image set is reconciled against the keep list. Orphaned images are
// handed to the janitor after the row is written; the caller never waits for
// or hears about blob cleanup.
func (s *ProjectService) Update(ctx context.Context, id string, fields ProjectFields, images UpdateImages) (models.Project, error) {
	existing, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	if existing == nil {
		return models.Project{}, ErrProjectNotFound
	}

	if fields.Title != "" {
		existing.Title = fields.Title
	}
	if fields.Description != "" {
		existing.Description = fields.Description
	}
	if fields.TechStr != "" {
		existing.Tech = splitTech(fields.TechStr)
	}
	if fields.GitHub != "" {
		existing.GitHub = fields.GitHub
	}
	if fields.Live != "" {
		existing.Live = fields.Live
	}

	final, toDelete := reconcileImages(existing.Images, images.Keep, images.KeepProvided, images.UploadedURLs)
	existing.Images = final

	if err := s.projectRepo.Update(ctx, *existing); err != nil {
		if errors.Is(err, repository.ErrNoProject) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}

	s.cleanup.discard(toDelete)
	return *existing, nil
}

// Delete removes the project and schedules deletion of every image it
// referenced (the legacy single image is already folded in by the read).
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	existing, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProjectNotFound
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoProject) {
			return ErrProjectNotFound
		}
		return err
	}

	s.cleanup.discard(existing.Images)
	return nil
}
