package service

import (
	"context"
	"fmt"

	"community_survey/internal/models"
	"community_survey/internal/repository"
)

type AnswerService struct {
	answerRepo repository.AnswerRepo
}

func NewAnswerService(answerRepo repository.AnswerRepo) *AnswerService {
	return &AnswerService{answerRepo: answerRepo}
}

// SubmitAnswer upserts the (user, question) answer; the last write wins.
func (s *AnswerService) SubmitAnswer(ctx context.Context, userID string, questionID int64, answer bool) (models.Answer, error) {
	if userID == "" {
		return models.Answer{}, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	a := models.Answer{UserID: userID, QuestionID: questionID, Answer: answer}
	if err := s.answerRepo.Upsert(ctx, a); err != nil {
		return models.Answer{}, err
	}
	return a, nil
}

func (s *AnswerService) ListAnswersForUser(ctx context.Context, userID string) ([]models.UserAnswer, error) {
	return s.answerRepo.ListForUser(ctx, userID)
}

func (s *AnswerService) DeleteAnswersForUser(ctx context.Context, userID string) (int64, error) {
	return s.answerRepo.DeleteForUser(ctx, userID)
}

// AnswerStats returns one row per question ordered by id, with PercentTrue filled in.
func (s *AnswerService) AnswerStats(ctx context.Context) ([]models.AnswerStat, error) {
	stats, err := s.answerRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	for i := range stats {
		stats[i].PercentTrue = models.PercentTrue(stats[i].TrueCount, stats[i].Total)
	}
	return stats, nil
}
