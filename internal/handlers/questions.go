package handlers

import (
	"net/http"

	"community_survey/internal/service"

	"github.com/gin-gonic/gin"
)

// QuestionRequest is the create/update payload for a prompt.
type QuestionRequest struct {
	Prompt         string  `json:"prompt" binding:"notblank" example:"Do you like tea?"`
	ImageURL       *string `json:"imageUrl" example:"https://example.org/tea.jpg"`
	AdditionalInfo *string `json:"additionalInfo" example:"Local cafés are planning a tea week."`
}

func (r QuestionRequest) toInput() service.QuestionInput {
	return service.QuestionInput{Prompt: r.Prompt, ImageURL: r.ImageURL, AdditionalInfo: r.AdditionalInfo}
}

// @Summary      List questions
// @Tags         questions
// @Produce      json
// @Success      200  {array}   models.Question
// @Failure      500  {object}  ErrorResponse
// @Router       /api/questions [get]
func (h *Handler) listQuestions(c *gin.Context) {
	qs, err := h.services.ListQuestions(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadQuestions, "questions_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, qs)
}

// @Summary      Create question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        body  body  QuestionRequest  true  "Question"
// @Success      201  {object}  models.Question
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/questions [post]
func (h *Handler) createQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errPromptRequired})
		return
	}
	q, err := h.services.CreateQuestion(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondServiceError(c, err, errMessages{invalid: errPromptRequired, internal: errSaveQuestion}, "question_create_failed")
		return
	}
	c.JSON(http.StatusCreated, q)
}

// @Summary      Update question
// @Description  An id that matches no question still answers 200 with the submitted record.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "Question id"
// @Param        body  body  QuestionRequest  true  "Question"
// @Success      200  {object}  models.Question
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/questions/{id} [put]
func (h *Handler) updateQuestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidIDPrompt})
		return
	}
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidIDPrompt})
		return
	}
	q, err := h.services.UpdateQuestion(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.respondServiceError(c, err, errMessages{invalid: errInvalidIDPrompt, internal: errSaveQuestion},
			"question_update_failed", "question_id", id)
		return
	}
	c.JSON(http.StatusOK, q)
}

// @Summary      Delete question
// @Description  Answers to the question are removed with it.
// @Tags         questions
// @Produce      json
// @Param        id  path  int  true  "Question id"
// @Success      200  {object}  map[string]int
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/questions/{id} [delete]
func (h *Handler) deleteQuestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return
	}
	if err := h.services.DeleteQuestion(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err, errMessages{invalid: errInvalidID, notFound: errNotFound, internal: errDeleteQuestion},
			"question_delete_failed", "question_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
