package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	// imagesField and keepField are the multipart field names the admin
	// panel sends. keepField is tri-state: absent = keep all current
	// images, one empty value = keep none, otherwise = keep exactly these.
	imagesField = "images"
	keepField   = "existingImages"

	maxUploadFiles = 10

	errInvalidForm     = "invalid multipart form: "
	errTooManyImages   = "too many images: at most 10 per request"
	errStoreImages     = "failed to store uploaded images"
	errListProjects    = "failed to fetch projects"
	errSaveProject     = "failed to save project"
	errUpdateProject   = "failed to update project"
	errDeleteProject   = "failed to delete project"
	errProjectNotFound = "Project not found"

	msgDeleted = "Deleted successfully"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// formValue pulls the first value for a key out of a parsed multipart form.
func formValue(form *multipart.Form, key string) string {
	if vals := form.Value[key]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// saveUploads streams each uploaded file into the blob store and returns the
// issued URLs in upload order.
func (h *Handler) saveUploads(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		url, err := h.blobs.Save(c.Request.Context(), fh.Filename, f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   models.Project
// @Failure      500  {object}  map[string]string
// @Router       /api/projects [get]
func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.services.Projects.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListProjects, "projects_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// @Summary      Create project
// @Description  multipart form: title, description, techStr, github, live, images[]
// @Tags         projects
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  models.Project
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects [post]
func (h *Handler) createProject(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidForm + err.Error()})
		return
	}

	files := form.File[imagesField]
	if len(files) > maxUploadFiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": errTooManyImages})
		return
	}

	urls, err := h.saveUploads(c, files)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errStoreImages, "project_upload_failed", err)
		return
	}

	fields := service.ProjectFields{
		Title:       formValue(form, "title"),
		Description: formValue(form, "description"),
		TechStr:     formValue(form, "techStr"),
		GitHub:      formValue(form, "github"),
		Live:        formValue(form, "live"),
	}

	p, err := h.services.Projects.Create(c.Request.Context(), fields, urls)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errSaveProject, "project_create_failed", err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// @Summary      Update project
// @Description  multipart form: optional scalar fields, new images[], and existingImages (absent = keep all, one empty value = keep none, else keep exactly those)
// @Tags         projects
// @Accept       mpfd
// @Produce      json
// @Param        id  path  string  true  "Project ID"
// @Success      200  {object}  models.Project
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id} [put]
func (h *Handler) updateProject(c *gin.Context) {
	id := c.Param("id")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidForm + err.Error()})
		return
	}

	files := form.File[imagesField]
	if len(files) > maxUploadFiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": errTooManyImages})
		return
	}

	urls, err := h.saveUploads(c, files)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errStoreImages, "project_upload_failed", err, "id", id)
		return
	}

	// Field presence matters here: only a present existingImages field may
	// shrink the image set. See keepField.
	keep, keepProvided := form.Value[keepField]

	fields := service.ProjectFields{
		Title:       formValue(form, "title"),
		Description: formValue(form, "description"),
		TechStr:     formValue(form, "techStr"),
		GitHub:      formValue(form, "github"),
		Live:        formValue(form, "live"),
	}
	images := service.UpdateImages{
		UploadedURLs: urls,
		Keep:         keep,
		KeepProvided: keepProvided,
	}

	p, err := h.services.Projects.Update(c.Request.Context(), id, fields, images)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateProject, "project_update_failed", err, "id", id)
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      Delete project
// @Description  Removes the record and schedules best-effort deletion of its images.
// @Tags         projects
// @Produce      json
// @Param        id  path  string  true  "Project ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id} [delete]
func (h *Handler) deleteProject(c *gin.Context) {
	id := c.Param("id")

	if err := h.services.Projects.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errProjectNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteProject, "project_delete_failed", err, "id", id)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgDeleted})
}
