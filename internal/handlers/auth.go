package handlers

import (
	"errors"
	"net/http"

	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

const (
	msgInvalidCredentials = "Invalid credentials"
	errLoginServer        = "Server error during login"
)

// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "success, token"
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		if h.log != nil {
			h.log.Infow("login_bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	token, err := h.services.Login(input.Username, input.Password)
	if err != nil {
		// Unknown user and wrong password come back as one error; don't
		// leak which one it was. Anything else is a storage failure, not
		// a credential problem.
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("login_failed", "username", input.Username)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": msgInvalidCredentials})
			return
		}
		if h.log != nil {
			h.log.Errorw("login_storage_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": errLoginServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
