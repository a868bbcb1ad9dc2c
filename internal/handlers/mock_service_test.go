package handlers

import (
	"context"
	"net/http"

	"community_survey/internal/logger"
	"community_survey/internal/models"
	"community_survey/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockUsers struct {
	profile service.UserProfile
	getErr  error
	saveErr error

	lastGetID string
	lastSaved models.User
}

func (m *mockUsers) GetUser(ctx context.Context, userID string) (service.UserProfile, error) {
	m.lastGetID = userID
	return m.profile, m.getErr
}
func (m *mockUsers) SaveUser(ctx context.Context, u models.User) (models.User, error) {
	m.lastSaved = u
	return u, m.saveErr
}

type mockQuestions struct {
	list      []models.Question
	listErr   error
	created   models.Question
	createErr error
	updateErr error
	deleteErr error

	lastInput    service.QuestionInput
	lastUpdateID int64
	lastDeleteID int64
}

func (m *mockQuestions) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return m.list, m.listErr
}
func (m *mockQuestions) CreateQuestion(ctx context.Context, in service.QuestionInput) (models.Question, error) {
	m.lastInput = in
	return m.created, m.createErr
}
func (m *mockQuestions) UpdateQuestion(ctx context.Context, id int64, in service.QuestionInput) (models.Question, error) {
	m.lastUpdateID = id
	m.lastInput = in
	if m.updateErr != nil {
		return models.Question{}, m.updateErr
	}
	return models.Question{ID: id, Prompt: in.Prompt}, nil
}
func (m *mockQuestions) DeleteQuestion(ctx context.Context, id int64) error {
	m.lastDeleteID = id
	return m.deleteErr
}

type mockAnswers struct {
	submitErr error
	list      []models.UserAnswer
	listErr   error
	removed   int64
	deleteErr error
	stats     []models.AnswerStat
	statsErr  error

	submitCalls int
	lastSubmit  models.Answer
}

func (m *mockAnswers) SubmitAnswer(ctx context.Context, userID string, questionID int64, answer bool) (models.Answer, error) {
	m.submitCalls++
	m.lastSubmit = models.Answer{UserID: userID, QuestionID: questionID, Answer: answer}
	return m.lastSubmit, m.submitErr
}
func (m *mockAnswers) ListAnswersForUser(ctx context.Context, userID string) ([]models.UserAnswer, error) {
	return m.list, m.listErr
}
func (m *mockAnswers) DeleteAnswersForUser(ctx context.Context, userID string) (int64, error) {
	return m.removed, m.deleteErr
}
func (m *mockAnswers) AnswerStats(ctx context.Context) ([]models.AnswerStat, error) {
	return m.stats, m.statsErr
}

type mockContacts struct {
	list      []models.Contact
	createErr error
	deleteErr error

	lastName  string
	lastPhone string
}

func (m *mockContacts) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return m.list, nil
}
func (m *mockContacts) CreateContact(ctx context.Context, name, phone string) (models.Contact, error) {
	m.lastName, m.lastPhone = name, phone
	return models.Contact{ID: 1, Name: name, Phone: phone}, m.createErr
}
func (m *mockContacts) DeleteContact(ctx context.Context, id int64) error {
	return m.deleteErr
}

// ---- Helpers ----

func newTestRouter(s *service.Service) http.Handler {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, logger.Nop(), Options{})
	return h.InitRoutes()
}

func newMockService() (*service.Service, *mockUsers, *mockQuestions, *mockAnswers, *mockContacts) {
	u, q, a, c := &mockUsers{}, &mockQuestions{}, &mockAnswers{}, &mockContacts{}
	return &service.Service{Users: u, Questions: q, Answers: a, Contacts: c}, u, q, a, c
}
