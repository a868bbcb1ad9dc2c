package handlers

import (
	"errors"
	"io"
	"net/http"

	"community_survey/internal/models"

	"github.com/gin-gonic/gin"
)

// SaveUserRequest is the profile payload. Every field is optional and a
// missing field clears the stored value.
type SaveUserRequest struct {
	Name        *string `json:"name" example:"Ada Lovelace"`
	Email       *string `json:"email" example:"ada@example.co.uk"`
	Address     *string `json:"address" example:"12 High St, Birmingham"`
	DateOfBirth *string `json:"dateOfBirth" example:"1990-12-10"`
}

// @Summary      Get profile
// @Description  Unknown ids return an object holding only userId.
// @Tags         users
// @Produce      json
// @Param        userId  path  string  true  "Client token"
// @Success      200  {object}  models.User
// @Failure      500  {object}  ErrorResponse
// @Router       /api/users/{userId} [get]
func (h *Handler) getUser(c *gin.Context) {
	userID := c.Param("userId")
	p, err := h.services.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err, errMessages{invalid: errUserIDRequired, internal: errLoadUser}, "user_get_failed", "user_id", userID)
		return
	}
	if !p.Found {
		c.JSON(http.StatusOK, gin.H{"userId": p.User.UserID})
		return
	}
	c.JSON(http.StatusOK, p.User)
}

// @Summary      Save profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  path  string           true  "Client token"
// @Param        body    body  SaveUserRequest  false "Profile"
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/users/{userId} [put]
func (h *Handler) saveUser(c *gin.Context) {
	var req SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	userID := c.Param("userId")
	saved, err := h.services.SaveUser(c.Request.Context(), models.User{
		UserID:      userID,
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		h.respondServiceError(c, err, errMessages{invalid: errUserIDRequired, internal: errSaveUser}, "user_save_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, saved)
}
