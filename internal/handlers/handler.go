package handlers

import (
	"community_survey/internal/logger"
	"community_survey/internal/service"

	"github.com/gin-gonic/gin"

	_ "community_survey/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options tune the HTTP layer.
type Options struct {
	// AllowedOrigin locks CORS to a single client origin. Empty reflects any origin.
	AllowedOrigin string
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	registerValidators()
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID, h.accessLog, h.cors())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", h.health)
		h.registerUserRoutes(api)
		h.registerQuestionRoutes(api)
		h.registerAnswerRoutes(api)
		h.registerStatsRoutes(api)
		h.registerContactRoutes(api)
	}

	return router
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("/:userId", h.getUser)
		users.PUT("/:userId", h.saveUser)
	}
}

func (h *Handler) registerQuestionRoutes(api *gin.RouterGroup) {
	questions := api.Group("/questions")
	{
		questions.GET("", h.listQuestions)
		questions.POST("", h.createQuestion)
		questions.PUT("/:id", h.updateQuestion)
		questions.DELETE("/:id", h.deleteQuestion)
	}
}

func (h *Handler) registerAnswerRoutes(api *gin.RouterGroup) {
	answers := api.Group("/answers")
	{
		// Body example: {"userId":"user_ab12cd34","questionId":1,"answer":true}
		answers.POST("", h.submitAnswer)
		answers.GET("/:userId", h.listAnswers)
		answers.DELETE("/:userId", h.deleteAnswers)
	}
}

func (h *Handler) registerStatsRoutes(api *gin.RouterGroup) {
	stats := api.Group("/stats")
	{
		stats.GET("/answers", h.answerStats)
	}
}

func (h *Handler) registerContactRoutes(api *gin.RouterGroup) {
	contacts := api.Group("/contacts")
	{
		contacts.GET("", h.listContacts)
		contacts.POST("", h.createContact)
		contacts.DELETE("/:id", h.deleteContact)
	}
}
