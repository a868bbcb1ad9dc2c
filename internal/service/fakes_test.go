package service

import (
	"context"

	"community_survey/internal/models"
)

// fakeUserRepo is an in-memory repository.UserRepo.
type fakeUserRepo struct {
	users  map[string]models.User
	getErr error
	putErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User{}}
}

func (f *fakeUserRepo) Get(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserRepo) Upsert(ctx context.Context, u models.User) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.users[u.UserID] = u
	return nil
}

func (f *fakeUserRepo) ListIDsWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	return nil, nil
}

// fakeQuestionRepo records the last written question.
type fakeQuestionRepo struct {
	nextID    int64
	found     bool
	err       error
	lastWrite models.Question
	deleted   []int64
}

func (f *fakeQuestionRepo) List(ctx context.Context) ([]models.Question, error) {
	return []models.Question{f.lastWrite}, f.err
}

func (f *fakeQuestionRepo) Create(ctx context.Context, q models.Question) (int64, error) {
	f.lastWrite = q
	return f.nextID, f.err
}

func (f *fakeQuestionRepo) Update(ctx context.Context, q models.Question) (bool, error) {
	f.lastWrite = q
	return f.found, f.err
}

func (f *fakeQuestionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	f.deleted = append(f.deleted, id)
	return f.found, f.err
}

func (f *fakeQuestionRepo) ListIDs(ctx context.Context) ([]int64, error) { return nil, f.err }

// fakeAnswerRepo keeps answers keyed by (user, question).
type fakeAnswerRepo struct {
	rows  []models.Answer
	stats []models.AnswerStat
	err   error
}

func (f *fakeAnswerRepo) Upsert(ctx context.Context, a models.Answer) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.rows {
		if f.rows[i].UserID == a.UserID && f.rows[i].QuestionID == a.QuestionID {
			f.rows[i].Answer = a.Answer
			return nil
		}
	}
	f.rows = append(f.rows, a)
	return nil
}

func (f *fakeAnswerRepo) ListForUser(ctx context.Context, userID string) ([]models.UserAnswer, error) {
	var out []models.UserAnswer
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, models.UserAnswer{QuestionID: r.QuestionID, Answer: r.Answer})
		}
	}
	return out, f.err
}

func (f *fakeAnswerRepo) DeleteForUser(ctx context.Context, userID string) (int64, error) {
	kept := f.rows[:0]
	var n int64
	for _, r := range f.rows {
		if r.UserID == userID {
			n++
			continue
		}
		kept = append(kept, r)
	}
	f.rows = kept
	return n, f.err
}

func (f *fakeAnswerRepo) Stats(ctx context.Context) ([]models.AnswerStat, error) {
	return f.stats, f.err
}

type fakeContactRepo struct {
	found bool
	err   error
}

func (f *fakeContactRepo) List(ctx context.Context) ([]models.Contact, error) { return nil, f.err }
func (f *fakeContactRepo) Create(ctx context.Context, name, phone string) (int64, error) {
	return 5, f.err
}
func (f *fakeContactRepo) Delete(ctx context.Context, id int64) (bool, error) { return f.found, f.err }
