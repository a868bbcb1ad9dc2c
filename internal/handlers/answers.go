package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SubmitAnswerRequest records one swipe. Pointers make the presence of
// questionId and answer checkable, so a literal false still binds.
// questionId is any JSON number (1, 1.0 and 1e0 are the same id).
type SubmitAnswerRequest struct {
	UserID     string   `json:"userId" binding:"required" example:"user_ab12cd34"`
	QuestionID *float64 `json:"questionId" binding:"required" example:"1"`
	Answer     *bool    `json:"answer" binding:"required" example:"true"`
}

// questionID returns the id when it is integral and fits an int64.
func (r SubmitAnswerRequest) questionID() (int64, bool) {
	f := *r.QuestionID
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// @Summary      Submit answer
// @Description  Upserts the answer of a user to a question; the latest submission wins.
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        body  body  SubmitAnswerRequest  true  "Answer"
// @Success      201  {object}  models.Answer
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/answers [post]
func (h *Handler) submitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errAnswerFields})
		return
	}
	questionID, ok := req.questionID()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errAnswerFields})
		return
	}
	saved, err := h.services.SubmitAnswer(c.Request.Context(), req.UserID, questionID, *req.Answer)
	if err != nil {
		h.respondServiceError(c, err, errMessages{invalid: errAnswerFields, internal: errSaveAnswer},
			"answer_submit_failed", "user_id", req.UserID, "question_id", questionID)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// @Summary      List answers of a user
// @Tags         answers
// @Produce      json
// @Param        userId  path  string  true  "Client token"
// @Success      200  {array}   models.UserAnswer
// @Failure      500  {object}  ErrorResponse
// @Router       /api/answers/{userId} [get]
func (h *Handler) listAnswers(c *gin.Context) {
	userID := c.Param("userId")
	answers, err := h.services.ListAnswersForUser(c.Request.Context(), userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadAnswers, "answers_list_failed", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, answers)
}

// @Summary      Delete answers of a user
// @Description  Backs the "forget me" action of the profile view.
// @Tags         answers
// @Produce      json
// @Param        userId  path  string  true  "Client token"
// @Success      200  {object}  map[string]int
// @Failure      500  {object}  ErrorResponse
// @Router       /api/answers/{userId} [delete]
func (h *Handler) deleteAnswers(c *gin.Context) {
	userID := c.Param("userId")
	removed, err := h.services.DeleteAnswersForUser(c.Request.Context(), userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteAnswers, "answers_delete_failed", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// @Summary      Answer statistics
// @Description  One row per question, including questions nobody answered yet.
// @Tags         stats
// @Produce      json
// @Success      200  {array}   models.AnswerStat
// @Failure      500  {object}  ErrorResponse
// @Router       /api/stats/answers [get]
func (h *Handler) answerStats(c *gin.Context) {
	stats, err := h.services.AnswerStats(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadStats, "stats_failed", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
