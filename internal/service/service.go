package service

import (
	"context"

	"community_survey/internal/models"
	"community_survey/internal/repository"
)

// Users manages participant profiles.
type Users interface {
	GetUser(ctx context.Context, userID string) (UserProfile, error)
	SaveUser(ctx context.Context, u models.User) (models.User, error)
}

// Questions is the admin surface over the prompt set.
type Questions interface {
	ListQuestions(ctx context.Context) ([]models.Question, error)
	CreateQuestion(ctx context.Context, in QuestionInput) (models.Question, error)
	UpdateQuestion(ctx context.Context, id int64, in QuestionInput) (models.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
}

// Answers covers answer submission and aggregation.
type Answers interface {
	SubmitAnswer(ctx context.Context, userID string, questionID int64, answer bool) (models.Answer, error)
	ListAnswersForUser(ctx context.Context, userID string) ([]models.UserAnswer, error)
	DeleteAnswersForUser(ctx context.Context, userID string) (int64, error)
	AnswerStats(ctx context.Context) ([]models.AnswerStat, error)
}

// Contacts is the legacy phone list.
type Contacts interface {
	ListContacts(ctx context.Context) ([]models.Contact, error)
	CreateContact(ctx context.Context, name, phone string) (models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

// Service aggregates all sub-services.
type Service struct {
	Users
	Questions
	Answers
	Contacts
}

func NewService(repos *repository.Repository) *Service {
	return &Service{
		Users:     NewUserService(repos.Users),
		Questions: NewQuestionService(repos.Questions),
		Answers:   NewAnswerService(repos.Answers),
		Contacts:  NewContactService(repos.Contacts),
	}
}
