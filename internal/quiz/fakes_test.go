package quiz

import (
	"context"
	"errors"
	"sync"

	"community_survey/internal/models"
)

var errBackend = errors.New("backend down")

// fakeBackend is an in-memory API; answers are keyed by question id for one user.
type fakeBackend struct {
	mu sync.Mutex

	questions []models.Question
	answers   map[int64]bool
	stats     []models.AnswerStat

	questionsErr error
	answersErr   error
	submitErr    error
	statsErr     error

	submits []models.Answer
}

func newFakeBackend(questionIDs ...int64) *fakeBackend {
	f := &fakeBackend{answers: map[int64]bool{}}
	for _, id := range questionIDs {
		f.questions = append(f.questions, models.Question{ID: id, Prompt: "Q?"})
	}
	return f
}

func (f *fakeBackend) ListQuestions(ctx context.Context) ([]models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.questionsErr != nil {
		return nil, f.questionsErr
	}
	return f.questions, nil
}

func (f *fakeBackend) ListAnswers(ctx context.Context, userID string) ([]models.UserAnswer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.answersErr != nil {
		return nil, f.answersErr
	}
	out := make([]models.UserAnswer, 0, len(f.answers))
	for _, q := range f.questions {
		if v, ok := f.answers[q.ID]; ok {
			out = append(out, models.UserAnswer{QuestionID: q.ID, Answer: v})
		}
	}
	return out, nil
}

func (f *fakeBackend) SubmitAnswer(ctx context.Context, userID string, questionID int64, answer bool) (models.Answer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := models.Answer{UserID: userID, QuestionID: questionID, Answer: answer}
	f.submits = append(f.submits, a)
	if f.submitErr != nil {
		return models.Answer{}, f.submitErr
	}
	f.answers[questionID] = answer
	return a, nil
}

func (f *fakeBackend) AnswerStats(ctx context.Context) ([]models.AnswerStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats, f.statsErr
}
