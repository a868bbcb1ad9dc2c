package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"community_survey/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidID       = "invalid id"
	errNotFound        = "not found"
	errPromptRequired  = "prompt is required"
	errInvalidIDPrompt = "invalid id or prompt"
	errAnswerFields    = "Missing or invalid fields: userId, questionId:number, answer:boolean"
	errContactFields   = "Missing required fields: name, phone"
	errContactNotFound = "Contact not found"
	errUserIDRequired  = "userId is required"

	errLoadUser       = "Failed to load user"
	errSaveUser       = "Failed to save user"
	errLoadQuestions  = "Failed to load questions"
	errSaveQuestion   = "Failed to save question"
	errDeleteQuestion = "Failed to delete question"
	errSaveAnswer     = "Failed to save answer"
	errLoadAnswers    = "Failed to load answers"
	errDeleteAnswers  = "Failed to delete answers"
	errLoadStats      = "Failed to load stats"
	errLoadContacts   = "Failed to load contacts"
	errSaveContact    = "Failed to save contact"
	errDeleteContact  = "Failed to delete contact"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDKey)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// errMessages holds the client-facing text for each error class of an endpoint.
type errMessages struct {
	invalid  string
	notFound string
	internal string
}

// respondServiceError maps service errors onto 400/404/500.
func (h *Handler) respondServiceError(c *gin.Context, err error, msgs errMessages, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgs.invalid})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgs.notFound})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgs.internal, logKey, err, kv...)
	}
}

// parseID reads an integer path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
