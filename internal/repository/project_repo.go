package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"portfolio_backend/internal/models"
)

type ProjectSQLite struct {
	db *sql.DB
}

func NewProjectSQLite(db *sql.DB) *ProjectSQLite { return &ProjectSQLite{db: db} }

var _ Projects = (*ProjectSQLite)(nil)

const (
	insertProjectSQL = `
		INSERT INTO projects (id, title, description, tech, github, live, image, images, created_at)
		VALUES (?, ?, ?, ?, ?, ?, '', ?, ?)
	`

	selectProjectsSQL = `
		SELECT id, title, description, tech, github, live, image, images, created_at
		FROM projects ORDER BY created_at DESC
	`

	selectProjectByIDSQL = `
		SELECT id, title, description, tech, github, live, image, images, created_at
		FROM projects WHERE id = ?
	`

	// image is cleared on update: its value has already been folded into
	// images by the read that preceded the write.
	updateProjectSQL = `
		UPDATE projects SET title = ?, description = ?, tech = ?, github = ?, live = ?, image = '', images = ?
		WHERE id = ?
	`

	deleteProjectSQL = `DELETE FROM projects WHERE id = ?`
)

// sqliteTimeLayout is the stored TIMESTAMP format; it sorts
// lexicographically, which keeps ORDER BY created_at correct. Millisecond
// precision keeps the ordering stable for rows created within the same
// second.
const sqliteTimeLayout = "2006-01-02 15:04:05.000"

// marshalStrings converts an ordered string slice to its stored JSON form.
// nil is stored as [] so reads never produce null sequences.
func marshalStrings(ss []string) (string, error) {
	if ss == nil {
		ss = []string{}
	}
	b, err := json.Marshal(ss)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalStrings(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	var ss []string
	if err := json.Unmarshal([]byte(s), &ss); err != nil {
		return nil, err
	}
	if ss == nil {
		ss = []string{}
	}
	return ss, nil
}

// foldLegacyImage moves the old single-image value to the front of Images
// (it was the cover) unless it is already listed.
func foldLegacyImage(p *models.Project) {
	if p.LegacyImage == "" {
		return
	}
	for _, u := range p.Images {
		if u == p.LegacyImage {
			p.LegacyImage = ""
			return
		}
	}
	p.Images = append([]string{p.LegacyImage}, p.Images...)
	p.LegacyImage = ""
}

// Insert stores a new project. ID and CreatedAt must be set by the caller.
func (r *ProjectSQLite) Insert(ctx context.Context, p models.Project) error {
	techJSON, err := marshalStrings(p.Tech)
	if err != nil {
		return fmt.Errorf("marshal tech for project %q: %w", p.ID, err)
	}
	imagesJSON, err := marshalStrings(p.Images)
	if err != nil {
		return fmt.Errorf("marshal images for project %q: %w", p.ID, err)
	}

	_, err = r.db.ExecContext(ctx, insertProjectSQL,
		p.ID,
		p.Title,
		p.Description,
		techJSON,
		p.GitHub,
		p.Live,
		imagesJSON,
		p.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert project %q: %w", p.ID, err)
	}
	return nil
}

// List returns all projects, newest first.
func (r *ProjectSQLite) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, selectProjectsSQL)
	if err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}
	defer rows.Close()

	out := make([]models.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one project. Returns (nil, nil) if not found.
func (r *ProjectSQLite) GetByID(ctx context.Context, id string) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx, selectProjectByIDSQL, id)
	p, err := scanProject(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select project %q: %w", id, err)
	}
	return &p, nil
}

// Update replaces the mutable fields of the row. Returns ErrNoProject if the
// id does not exist.
func (r *ProjectSQLite) Update(ctx context.Context, p models.Project) error {
	techJSON, err := marshalStrings(p.Tech)
	if err != nil {
		return fmt.Errorf("marshal tech for project %q: %w", p.ID, err)
	}
	imagesJSON, err := marshalStrings(p.Images)
	if err != nil {
		return fmt.Errorf("marshal images for project %q: %w", p.ID, err)
	}

	res, err := r.db.ExecContext(ctx, updateProjectSQL,
		p.Title,
		p.Description,
		techJSON,
		p.GitHub,
		p.Live,
		imagesJSON,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update project %q: %w", p.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for project %q: %w", p.ID, err)
	}
	if affected == 0 {
		return ErrNoProject
	}
	return nil
}

// Delete removes the row. Returns ErrNoProject if the id does not exist.
func (r *ProjectSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteProjectSQL, id)
	if err != nil {
		return fmt.Errorf("delete project %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for project %q: %w", id, err)
	}
	if affected == 0 {
		return ErrNoProject
	}
	return nil
}

// scanProject scans one row in the column order of the select statements and
// folds the legacy single-image column into Images.
func scanProject(scan func(dest ...any) error) (models.Project, error) {
	var (
		p          models.Project
		github     sql.NullString
		live       sql.NullString
		legacy     sql.NullString
		techJSON   string
		imagesJSON string
		createdAt  time.Time
	)
	if err := scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&techJSON,
		&github,
		&live,
		&legacy,
		&imagesJSON,
		&createdAt,
	); err != nil {
		return models.Project{}, err
	}

	p.GitHub = github.String
	p.Live = live.String
	p.LegacyImage = legacy.String
	p.CreatedAt = createdAt.UTC()

	var err error
	if p.Tech, err = unmarshalStrings(techJSON); err != nil {
		return models.Project{}, fmt.Errorf("unmarshal tech for project %q: %w", p.ID, err)
	}
	if p.Images, err = unmarshalStrings(imagesJSON); err != nil {
		return models.Project{}, fmt.Errorf("unmarshal images for project %q: %w", p.ID, err)
	}
	foldLegacyImage(&p)
	return p, nil
}
