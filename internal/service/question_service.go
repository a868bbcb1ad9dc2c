package service

import (
	"context"
	"fmt"
	"strings"

	"community_survey/internal/models"
	"community_survey/internal/repository"
)

// QuestionInput is the writable part of a question.
type QuestionInput struct {
	Prompt         string
	ImageURL       *string
	AdditionalInfo *string
}

var errPromptRequired = fmt.Errorf("%w: prompt is required", ErrInvalidInput)

type QuestionService struct {
	questionRepo repository.QuestionRepo
}

func NewQuestionService(questionRepo repository.QuestionRepo) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// normalize trims the prompt and turns empty optional strings into nil.
func (in QuestionInput) normalize() (QuestionInput, error) {
	out := QuestionInput{
		Prompt:         strings.TrimSpace(in.Prompt),
		ImageURL:       emptyToNil(in.ImageURL),
		AdditionalInfo: emptyToNil(in.AdditionalInfo),
	}
	if out.Prompt == "" {
		return QuestionInput{}, errPromptRequired
	}
	return out, nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.questionRepo.List(ctx)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, in QuestionInput) (models.Question, error) {
	in, err := in.normalize()
	if err != nil {
		return models.Question{}, err
	}
	q := models.Question{Prompt: in.Prompt, ImageURL: in.ImageURL, AdditionalInfo: in.AdditionalInfo}
	id, err := s.questionRepo.Create(ctx, q)
	if err != nil {
		return models.Question{}, err
	}
	q.ID = id
	return q, nil
}

// UpdateQuestion overwrites the prompt and optional fields. Answers keep
// pointing at the same id. An id that matches no row is not an error: the
// normalized record is echoed back either way.
func (s *QuestionService) UpdateQuestion(ctx context.Context, id int64, in QuestionInput) (models.Question, error) {
	in, err := in.normalize()
	if err != nil {
		return models.Question{}, err
	}
	q := models.Question{ID: id, Prompt: in.Prompt, ImageURL: in.ImageURL, AdditionalInfo: in.AdditionalInfo}
	if _, err := s.questionRepo.Update(ctx, q); err != nil {
		return models.Question{}, err
	}
	return q, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id int64) error {
	found, err := s.questionRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: question %d", ErrNotFound, id)
	}
	return nil
}
