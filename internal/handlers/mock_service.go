package handlers

import (
	"context"
	"io"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginToken string
	loginErr   error
	parseID    int
	parseErr   error
	ensureErr  error

	lastLoginUsername  string
	lastLoginPassword  string
	lastParseToken     string
	lastEnsureUsername string
}

func (m *mockAuth) Login(username, password string) (string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}
func (m *mockAuth) EnsureAdmin(username, password string) error {
	m.lastEnsureUsername = username
	return m.ensureErr
}

type mockProjects struct {
	listResp  []models.Project
	listErr   error
	createdP  models.Project
	createErr error
	updatedP  models.Project
	updateErr error
	deleteErr error

	lastCreateFields service.ProjectFields
	lastCreateURLs   []string
	lastUpdateID     string
	lastUpdateFields service.ProjectFields
	lastUpdateImages service.UpdateImages
	lastDeleteID     string
}

func (m *mockProjects) List(ctx context.Context) ([]models.Project, error) {
	return m.listResp, m.listErr
}
func (m *mockProjects) Create(ctx context.Context, fields service.ProjectFields, uploadedURLs []string) (models.Project, error) {
	m.lastCreateFields = fields
	m.lastCreateURLs = uploadedURLs
	return m.createdP, m.createErr
}
func (m *mockProjects) Update(ctx context.Context, id string, fields service.ProjectFields, images service.UpdateImages) (models.Project, error) {
	m.lastUpdateID = id
	m.lastUpdateFields = fields
	m.lastUpdateImages = images
	return m.updatedP, m.updateErr
}
func (m *mockProjects) Delete(ctx context.Context, id string) error {
	m.lastDeleteID = id
	return m.deleteErr
}

// ---- Blob Store Mock ----

type mockBlobStore struct {
	saveURLs  []string // consumed in order
	saveErr   error
	deleteErr error

	savedNames  []string
	deletedURLs []string
}

func (m *mockBlobStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.savedNames = append(m.savedNames, name)
	if len(m.saveURLs) == 0 {
		return "http://blob.test/uploads/" + name, nil
	}
	url := m.saveURLs[0]
	m.saveURLs = m.saveURLs[1:]
	return url, nil
}

func (m *mockBlobStore) Delete(ctx context.Context, url string) error {
	m.deletedURLs = append(m.deletedURLs, url)
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, &mockBlobStore{}, "", nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func newTestRouterWithBlobs(s *service.Service, blobs *mockBlobStore) *gin.Engine {
	h := NewHandler(s, blobs, "", nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

