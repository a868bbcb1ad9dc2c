package repository

import (
	"context"
	"database/sql"

	"community_survey/internal/models"
)

type UserRepo interface {
	Get(ctx context.Context, userID string) (*models.User, error)
	Upsert(ctx context.Context, u models.User) error
	ListIDsWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

type QuestionRepo interface {
	List(ctx context.Context) ([]models.Question, error)
	Create(ctx context.Context, q models.Question) (int64, error)
	Update(ctx context.Context, q models.Question) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListIDs(ctx context.Context) ([]int64, error)
}

type AnswerRepo interface {
	Upsert(ctx context.Context, a models.Answer) error
	ListForUser(ctx context.Context, userID string) ([]models.UserAnswer, error)
	DeleteForUser(ctx context.Context, userID string) (int64, error)
	Stats(ctx context.Context) ([]models.AnswerStat, error)
}

type ContactRepo interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, name, phone string) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type Repository struct {
	Users     UserRepo
	Questions QuestionRepo
	Answers   AnswerRepo
	Contacts  ContactRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserSQLite(db),
		Questions: NewQuestionSQLite(db),
		Answers:   NewAnswerSQLite(db),
		Contacts:  NewContactSQLite(db),
	}
}
